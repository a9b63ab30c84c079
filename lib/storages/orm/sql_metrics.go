package orm

import "github.com/pescuma/cogmeter/lib/model"

type sqlMetrics struct {
	Functions               int
	ComplexityCognitive     int
	ComplexityCognitiveMax  int
	ComplexityCyclomatic    int
	ComplexityCyclomaticMax int
}

func newSqlMetrics(m *model.Metrics) *sqlMetrics {
	return &sqlMetrics{
		Functions:               m.Functions,
		ComplexityCognitive:     m.CognitiveComplexity,
		ComplexityCognitiveMax:  m.MaxCognitiveComplexity,
		ComplexityCyclomatic:    m.CyclomaticComplexity,
		ComplexityCyclomaticMax: m.MaxCyclomaticComplexity,
	}
}

func (s *sqlMetrics) ToModel() *model.Metrics {
	return &model.Metrics{
		Functions:               s.Functions,
		CognitiveComplexity:     s.ComplexityCognitive,
		MaxCognitiveComplexity:  s.ComplexityCognitiveMax,
		CyclomaticComplexity:    s.ComplexityCyclomatic,
		MaxCyclomaticComplexity: s.ComplexityCyclomaticMax,
	}
}
