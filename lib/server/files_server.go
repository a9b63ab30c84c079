package server

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/cogmeter/lib/filters"
	"github.com/pescuma/cogmeter/lib/model"
)

func (s *server) initFiles(r *gin.Engine) {
	r.GET("/api/files", getP[ListParams](s.filesList))
	r.GET("/api/files/:id", getU[IDParams](s.fileGet))
}

func (s *server) filesList(params *ListParams) (any, error) {
	files, err := s.listFiles(params.Filter)
	if err != nil {
		return nil, err
	}

	err = s.sortFiles(files, params.Sort, params.Asc)
	if err != nil {
		return nil, err
	}

	total := len(files)

	files = paginate(files, params.Offset, params.Limit)

	result := lo.Map(files, func(f *model.File, _ int) gin.H { return s.toFile(f) })

	return gin.H{
		"data":  result,
		"total": total,
	}, nil
}

func (s *server) fileGet(params *IDParams) (any, error) {
	id, err := model.StringToID(params.ID)
	if err != nil {
		return nil, errors.Wrapf(errorBadRequest, "invalid id %v", params.ID)
	}

	file := s.files.GetByID(id)
	if file == nil {
		return nil, errors.Wrapf(errorNotFound, "file %v", id)
	}

	return s.toFileWithFunctions(file), nil
}

func (s *server) listFiles(rule string) ([]*model.File, error) {
	filter, err := filters.ParseFileFilter(rule)
	if err != nil {
		return nil, errors.Wrap(errorBadRequest, err.Error())
	}

	return lo.Filter(s.files.ListExisting(), func(f *model.File, _ int) bool {
		return filter(f)
	}), nil
}

func (s *server) sortFiles(col []*model.File, field string, asc *bool) error {
	if field == "" {
		field = "path"
	}
	if asc == nil {
		asc = lo.ToPtr(field == "path" || field == "language")
	}

	switch field {
	case "path":
		sortBy(col, func(f *model.File) string { return f.Path }, *asc)
	case "language":
		sortBy(col, func(f *model.File) string { return f.Language }, *asc)
	case "lines":
		sortBy(col, func(f *model.File) int { return f.Size.Lines }, *asc)
	case "functions":
		sortBy(col, func(f *model.File) int { return f.Metrics.Functions }, *asc)
	case "cognitive":
		sortBy(col, func(f *model.File) int { return f.Metrics.CognitiveComplexity }, *asc)
	case "maxCognitive":
		sortBy(col, func(f *model.File) int { return f.Metrics.MaxCognitiveComplexity }, *asc)
	case "cyclomatic":
		sortBy(col, func(f *model.File) int { return f.Metrics.CyclomaticComplexity }, *asc)
	default:
		return errors.Wrapf(errorBadRequest, "unknown sort field %v", field)
	}

	return nil
}
