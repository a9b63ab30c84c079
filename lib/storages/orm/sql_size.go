package orm

import "github.com/pescuma/cogmeter/lib/model"

type sqlSize struct {
	Lines    *int
	Code     *int
	Comments *int
	Blanks   *int
}

func newSqlSize(s *model.Size) *sqlSize {
	return &sqlSize{
		Lines:    encodeMetric(s.Lines),
		Code:     encodeMetric(s.Code),
		Comments: encodeMetric(s.Comments),
		Blanks:   encodeMetric(s.Blanks),
	}
}

func (s *sqlSize) ToModel() *model.Size {
	return &model.Size{
		Lines:    decodeMetric(s.Lines),
		Code:     decodeMetric(s.Code),
		Comments: decodeMetric(s.Comments),
		Blanks:   decodeMetric(s.Blanks),
	}
}
