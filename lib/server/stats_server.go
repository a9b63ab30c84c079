package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/cogmeter/lib/importers/metrics"
	"github.com/pescuma/cogmeter/lib/model"
)

func (s *server) initStats(r *gin.Engine) {
	r.GET("/api/stats", getP[StatsParams](s.statsGet))
}

func (s *server) statsGet(params *StatsParams) (any, error) {
	threshold := model.ConfigInt(*s.config, model.ConfigThreshold, model.DefaultThreshold)
	if params.Threshold != nil {
		threshold = *params.Threshold
	}

	stats, err := s.computer.Compute(threshold)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"files":         stats.Files,
		"size":          s.toSize(stats.Size),
		"metrics":       s.toMetrics(stats.Metrics),
		"threshold":     stats.Threshold,
		"overThreshold": stats.OverThreshold,
		"languages": lo.Map(stats.Languages, func(l *metrics.LanguageStats, _ int) gin.H {
			return gin.H{
				"language": l.Language,
				"files":    l.Files,
				"size":     s.toSize(l.Size),
				"metrics":  s.toMetrics(l.Metrics),
			}
		}),
	}, nil
}
