package domain

import "strings"

type Venue struct {
	ID       uint   `json:"id"`
	Name     string `json:"nombre"`
	City     string `json:"ciudad"`
	Capacity int    `json:"capacidad"`
}

// Validate checks the field rules a venue must satisfy before it is stored.
func (v Venue) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return fieldErr("nombre", ErrBlankField)
	}
	if strings.TrimSpace(v.City) == "" {
		return fieldErr("ciudad", ErrBlankField)
	}
	if v.Capacity < 0 {
		return ErrNegativeCapacity
	}

	return nil
}
