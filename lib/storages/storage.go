package storages

import (
	"github.com/pescuma/cogmeter/lib/model"
)

type Storage interface {
	LoadFiles() (*model.Files, error)
	WriteFiles() error
	WriteFile(file *model.File) error

	LoadConfig() (*map[string]string, error)
	WriteConfig() error

	Close() error
}

type Factory = func(path string) (Storage, error)
