package orm

import (
	"time"

	"github.com/pescuma/cogmeter/lib/model"
)

type sqlFile struct {
	ID       model.ID
	Name     string `gorm:"uniqueIndex;size:512"`
	Language string `gorm:"index;size:64"`

	Exists    bool
	Size      *sqlSize          `gorm:"embedded;embeddedPrefix:size_"`
	Metrics   *sqlMetrics       `gorm:"embedded"`
	Data      map[string]string `gorm:"serializer:json"`
	FirstSeen time.Time
	LastSeen  time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Functions []sqlFunction `gorm:"foreignKey:FileID"`
}

func newSqlFile(f *model.File) *sqlFile {
	return &sqlFile{
		ID:        f.ID,
		Name:      f.Path,
		Language:  f.Language,
		Exists:    f.Exists,
		Size:      newSqlSize(f.Size),
		Metrics:   newSqlMetrics(f.Metrics),
		Data:      encodeMap(f.Data),
		FirstSeen: f.FirstSeen,
		LastSeen:  f.LastSeen,
	}
}

func (s *sqlFile) ToModel() *model.File {
	result := model.NewFile(s.Name, s.ID)
	result.Language = s.Language
	result.Exists = s.Exists
	result.Size = s.Size.ToModel()
	result.Metrics = s.Metrics.ToModel()
	result.Data = decodeMap(s.Data)
	result.FirstSeen = s.FirstSeen
	result.LastSeen = s.LastSeen
	return result
}

func (s *sqlFile) CacheKey() string {
	return s.ID.String()
}
