package server

type Filters struct {
	// Function filter rules, like src/** & cognitive>10
	Filter string `form:"filter"`
}

type ListParams struct {
	GridParams
	Filters
}

type IDParams struct {
	ID string `uri:"id" binding:"required"`
}

type StatsParams struct {
	Threshold *int `form:"threshold"`
}
