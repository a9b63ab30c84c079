package model

// Size holds the line counts of a file. -1 means unknown.
type Size struct {
	Lines    int
	Code     int
	Comments int
	Blanks   int
}

func NewSize() *Size {
	return &Size{
		Lines:    -1,
		Code:     -1,
		Comments: -1,
		Blanks:   -1,
	}
}

func (s *Size) Add(other *Size) {
	s.Lines = add(s.Lines, other.Lines)
	s.Code = add(s.Code, other.Code)
	s.Comments = add(s.Comments, other.Comments)
	s.Blanks = add(s.Blanks, other.Blanks)
}

func (s *Size) IsEmpty() bool {
	return s.Lines == -1 && s.Code == -1 && s.Comments == -1 && s.Blanks == -1
}

func (s *Size) Clear() {
	s.Lines = 0
	s.Code = 0
	s.Comments = 0
	s.Blanks = 0
}

func add(a, b int) int {
	if a == -1 {
		return b
	}
	if b == -1 {
		return a
	}
	return a + b
}
