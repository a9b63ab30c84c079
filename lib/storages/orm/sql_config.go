package orm

import "time"

type sqlConfig struct {
	Key   string `gorm:"primaryKey;size:128"`
	Value string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlConfig(k string, v string) *sqlConfig {
	return &sqlConfig{
		Key:   k,
		Value: v,
	}
}

func (s *sqlConfig) CacheKey() string {
	return s.Key
}
