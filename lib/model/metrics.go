package model

// Metrics aggregates the scores of the functions of a file, or of a group of files.
type Metrics struct {
	Functions int

	CognitiveComplexity    int
	MaxCognitiveComplexity int

	CyclomaticComplexity    int
	MaxCyclomaticComplexity int
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) AddFunction(f *Function) {
	m.Functions++
	m.CognitiveComplexity += f.CognitiveComplexity
	m.MaxCognitiveComplexity = max(m.MaxCognitiveComplexity, f.CognitiveComplexity)
	m.CyclomaticComplexity += f.CyclomaticComplexity
	m.MaxCyclomaticComplexity = max(m.MaxCyclomaticComplexity, f.CyclomaticComplexity)
}

func (m *Metrics) Add(other *Metrics) {
	m.Functions += other.Functions
	m.CognitiveComplexity += other.CognitiveComplexity
	m.MaxCognitiveComplexity = max(m.MaxCognitiveComplexity, other.MaxCognitiveComplexity)
	m.CyclomaticComplexity += other.CyclomaticComplexity
	m.MaxCyclomaticComplexity = max(m.MaxCyclomaticComplexity, other.MaxCyclomaticComplexity)
}

func (m *Metrics) Clear() {
	*m = Metrics{}
}
