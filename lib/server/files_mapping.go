package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/cogmeter/lib/model"
)

func (s *server) toFile(f *model.File) gin.H {
	return gin.H{
		"id":        f.ID,
		"path":      f.Path,
		"language":  f.Language,
		"exists":    f.Exists,
		"size":      s.toSize(f.Size),
		"metrics":   s.toMetrics(f.Metrics),
		"firstSeen": encodeDate(f.FirstSeen),
		"lastSeen":  encodeDate(f.LastSeen),
	}
}

func (s *server) toFileWithFunctions(f *model.File) gin.H {
	result := s.toFile(f)

	result["functions"] = lo.Map(f.Functions, func(fn *model.Function, _ int) gin.H {
		return s.toFunction(f, fn)
	})

	return result
}

func (s *server) toFunction(f *model.File, fn *model.Function) gin.H {
	return gin.H{
		"id":                   fn.ID,
		"fileID":               f.ID,
		"path":                 f.Path,
		"language":             f.Language,
		"name":                 fn.Name,
		"line":                 fn.Line,
		"column":               fn.Column,
		"cognitiveComplexity":  fn.CognitiveComplexity,
		"cyclomaticComplexity": fn.CyclomaticComplexity,
	}
}

func (s *server) toSize(i *model.Size) gin.H {
	return gin.H{
		"lines":    encodeMetric(i.Lines),
		"code":     encodeMetric(i.Code),
		"comments": encodeMetric(i.Comments),
		"blanks":   encodeMetric(i.Blanks),
	}
}

func (s *server) toMetrics(i *model.Metrics) gin.H {
	return gin.H{
		"functions":               i.Functions,
		"cognitiveComplexity":     i.CognitiveComplexity,
		"maxCognitiveComplexity":  i.MaxCognitiveComplexity,
		"cyclomaticComplexity":    i.CyclomaticComplexity,
		"maxCyclomaticComplexity": i.MaxCyclomaticComplexity,
	}
}
