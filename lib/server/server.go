package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/cogmeter/lib/consoles"
	"github.com/pescuma/cogmeter/lib/importers/metrics"
	"github.com/pescuma/cogmeter/lib/model"
	"github.com/pescuma/cogmeter/lib/storages"
)

type Options struct {
	Port uint
}

func Run(console consoles.Console, storage storages.Storage, opts *Options) error {
	s := newServer(console, opts)

	console.Printf("Loading existing data...\n")

	err := s.load(storage)
	if err != nil {
		return err
	}

	console.Printf("Starting server on port %v...\n", s.opts.Port)

	return s.run()
}

type server struct {
	opts    *Options
	console consoles.Console

	storage  storages.Storage
	files    *model.Files
	config   *map[string]string
	computer *metrics.Computer
}

func newServer(console consoles.Console, opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2428
	}

	return &server{
		opts:    opts,
		console: console,
	}
}

func (s *server) load(storage storages.Storage) error {
	var err error

	s.storage = storage

	s.files, err = storage.LoadFiles()
	if err != nil {
		return err
	}

	s.config, err = storage.LoadConfig()
	if err != nil {
		return err
	}

	s.computer = metrics.NewComputer(s.console, storage)

	return nil
}

func (s *server) init(r *gin.Engine) {
	s.initFiles(r)
	s.initFunctions(r)
	s.initStats(r)
}

func (s *server) run() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	s.init(r)

	return r.Run(fmt.Sprintf(":%v", s.opts.Port))
}
