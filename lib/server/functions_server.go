package server

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/cogmeter/lib/filters"
	"github.com/pescuma/cogmeter/lib/model"
)

type fileFunction struct {
	file *model.File
	fn   *model.Function
}

func (s *server) initFunctions(r *gin.Engine) {
	r.GET("/api/functions", getP[ListParams](s.functionsList))
}

func (s *server) functionsList(params *ListParams) (any, error) {
	fns, err := s.listFunctions(params.Filter)
	if err != nil {
		return nil, err
	}

	err = s.sortFunctions(fns, params.Sort, params.Asc)
	if err != nil {
		return nil, err
	}

	total := len(fns)

	fns = paginate(fns, params.Offset, params.Limit)

	result := lo.Map(fns, func(ff fileFunction, _ int) gin.H { return s.toFunction(ff.file, ff.fn) })

	return gin.H{
		"data":  result,
		"total": total,
	}, nil
}

func (s *server) listFunctions(rule string) ([]fileFunction, error) {
	filter, err := filters.ParseFunctionFilter(rule)
	if err != nil {
		return nil, errors.Wrap(errorBadRequest, err.Error())
	}

	var result []fileFunction
	for _, file := range s.files.ListExisting() {
		for _, fn := range file.Functions {
			if filter(file, fn) {
				result = append(result, fileFunction{file, fn})
			}
		}
	}

	return result, nil
}

func (s *server) sortFunctions(col []fileFunction, field string, asc *bool) error {
	if field == "" {
		field = "cognitive"
	}
	if asc == nil {
		asc = lo.ToPtr(field == "name" || field == "path")
	}

	switch field {
	case "cognitive":
		sortBy(col, func(ff fileFunction) int { return ff.fn.CognitiveComplexity }, *asc)
	case "cyclomatic":
		sortBy(col, func(ff fileFunction) int { return ff.fn.CyclomaticComplexity }, *asc)
	case "name":
		sortBy(col, func(ff fileFunction) string { return ff.fn.Name }, *asc)
	case "path":
		sortBy(col, func(ff fileFunction) string { return ff.file.Path }, *asc)
	default:
		return errors.Wrapf(errorBadRequest, "unknown sort field %v", field)
	}

	return nil
}
