package orm

import (
	"time"

	"github.com/pescuma/cogmeter/lib/model"
)

type sqlFunction struct {
	ID     model.ID
	FileID model.ID `gorm:"index"`
	Name   string
	Line   int
	Column int

	ComplexityCognitive  int `gorm:"index"`
	ComplexityCyclomatic int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlFunction(f *model.Function) *sqlFunction {
	return &sqlFunction{
		ID:                   f.ID,
		FileID:               f.FileID,
		Name:                 f.Name,
		Line:                 f.Line,
		Column:               f.Column,
		ComplexityCognitive:  f.CognitiveComplexity,
		ComplexityCyclomatic: f.CyclomaticComplexity,
	}
}

func (s *sqlFunction) ToModel() *model.Function {
	return &model.Function{
		ID:                   s.ID,
		FileID:               s.FileID,
		Name:                 s.Name,
		Line:                 s.Line,
		Column:               s.Column,
		CognitiveComplexity:  s.ComplexityCognitive,
		CyclomaticComplexity: s.ComplexityCyclomatic,
	}
}

func (s *sqlFunction) CacheKey() string {
	return s.ID.String()
}
