package model

// Function is the score of a single function definition of a file.
type Function struct {
	ID     ID
	FileID ID

	// Qualified with the enclosing classes and functions, like A.b.<anonymous_1>
	Name   string
	Line   int
	Column int

	CognitiveComplexity  int
	CyclomaticComplexity int
}

func NewFunction(fileID ID, name string) *Function {
	return &Function{
		FileID: fileID,
		Name:   name,
	}
}
