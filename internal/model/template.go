package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectTemplate is a reusable (parts, stocks, params) bundle that
// excludes results, adapted from the teacher's ProjectTemplate.
type ProjectTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	Parts       []Part         `json:"parts"`
	Stocks      []Stock        `json:"stocks"`
	Params      OptimizeParams `json:"params"`
}

// NewProjectTemplate creates a new template from the given job data.
func NewProjectTemplate(name, description string, parts []Part, stocks []Stock, params OptimizeParams) ProjectTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ProjectTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Parts:       copyParts(parts),
		Stocks:      copyStocks(stocks),
		Params:      params,
	}
}

// ToProject creates a new Project from this template.
func (t ProjectTemplate) ToProject(projectName string) Project {
	return Project{
		Name:   projectName,
		Parts:  copyParts(t.Parts),
		Stocks: copyStocks(t.Stocks),
		Params: t.Params,
	}
}

// TemplateStore holds a collection of job templates.
type TemplateStore struct {
	Templates []ProjectTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []ProjectTemplate{}}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t ProjectTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name,
// or nil.
func (ts *TemplateStore) FindByName(name string) *ProjectTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for listing/selection.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

func copyParts(parts []Part) []Part {
	if parts == nil {
		return []Part{}
	}
	cp := make([]Part, len(parts))
	copy(cp, parts)
	return cp
}

func copyStocks(stocks []Stock) []Stock {
	if stocks == nil {
		return []Stock{}
	}
	cp := make([]Stock, len(stocks))
	copy(cp, stocks)
	return cp
}
