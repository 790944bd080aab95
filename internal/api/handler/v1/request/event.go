package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/domain"
)

var errInvalidDate = errors.New("formato de fecha inválido")

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

type CreateEventRequest struct {
	Name    *string  `json:"nombre" example:"Concierto de primavera"`
	Date    *string  `json:"fecha" example:"2026-05-20T21:00:00"`
	Price   *float64 `json:"precio" example:"35.5"`
	VenueID *uint    `json:"recinto_id" example:"1"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NotNil, validation.By(notBlank)),
		validation.Field(&req.Date, validation.NotNil, validation.By(validDate)),
		validation.Field(&req.Price, validation.NotNil, validation.Min(0.0).Error(msgNegativePrice)),
		validation.Field(&req.VenueID, validation.NotNil),
	)
}

// ToDomain must only be called after Validate succeeded.
func (req *CreateEventRequest) ToDomain() domain.Event {
	date, _ := ParseDate(*req.Date)

	return domain.Event{
		Name:    *req.Name,
		Date:    date,
		Price:   *req.Price,
		VenueID: *req.VenueID,
	}
}

type PurchaseRequest struct {
	Quantity *int `json:"cantidad" example:"2"`
}

func (req *PurchaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Quantity, validation.NotNil, validation.By(validQuantity)),
	)
}

// ParseDate accepts RFC 3339 timestamps and the ISO forms without offset,
// which are read as UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errInvalidDate
}

func validDate(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, _ := v.(string)
	if _, err := ParseDate(s); err != nil {
		return err
	}

	return nil
}
