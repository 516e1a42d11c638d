package model

// Project bundles a demand list, a stock catalog and the optimize
// parameters that produced (or will produce) a result — the saveable unit
// a caller works with between Optimize calls.
type Project struct {
	Name   string              `json:"name"`
	Parts  []Part              `json:"parts"`
	Stocks []Stock             `json:"stocks"`
	Params OptimizeParams      `json:"params"`
	Result *OptimizationResult `json:"result,omitempty"`
}

// NewProject builds an empty project with the given name and default
// params.
func NewProject(name string) Project {
	return Project{Name: name, Parts: []Part{}, Stocks: []Stock{}, Params: DefaultParams()}
}
