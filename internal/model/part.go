package model

import "fmt"

// Part is a single demanded length, possibly requested in quantity.
type Part struct {
	ID       string  `json:"id"`
	Length   float64 `json:"length"`
	Quantity int     `json:"quantity"`
	Label    string  `json:"label"`
}

// NewPart builds a Part with the given id, length, quantity and label.
// An empty label defaults to id.
func NewPart(id string, length float64, quantity int, label string) Part {
	if label == "" {
		label = id
	}
	return Part{ID: id, Length: length, Quantity: quantity, Label: label}
}

// Validate reports the first structural problem with the part, if any.
func (p Part) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: part has no id", ErrInputInvalid)
	}
	if p.Length <= 0 {
		return fmt.Errorf("%w: part %q has non-positive length %v", ErrInputInvalid, p.ID, p.Length)
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("%w: part %q has non-positive quantity %d", ErrInputInvalid, p.ID, p.Quantity)
	}
	return nil
}
