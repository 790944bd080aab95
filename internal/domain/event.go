package domain

import (
	"strings"
	"time"
)

type Event struct {
	ID          uint      `json:"id"`
	Name        string    `json:"nombre"`
	Date        time.Time `json:"fecha"`
	Price       float64   `json:"precio"`
	TicketsSold int       `json:"tickets_vendidos"`
	VenueID     uint      `json:"recinto_id"`
}

// ValidateNew checks an event about to be created. Price may be zero but
// never negative.
func (e Event) ValidateNew() error {
	if strings.TrimSpace(e.Name) == "" {
		return fieldErr("nombre", ErrBlankField)
	}
	if e.Price < 0 {
		return ErrNegativePrice
	}

	return nil
}

func ValidatePurchaseQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	return nil
}
