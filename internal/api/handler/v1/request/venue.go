package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/domain"
)

// VenueRequest is the body of both venue creation and full venue update.
type VenueRequest struct {
	Name     *string `json:"nombre" example:"WiZink Center"`
	City     *string `json:"ciudad" example:"Madrid"`
	Capacity *int    `json:"capacidad" example:"15000"`
}

func (req *VenueRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NotNil, validation.By(notBlank)),
		validation.Field(&req.City, validation.NotNil, validation.By(notBlank)),
		validation.Field(&req.Capacity, validation.NotNil, validation.Min(0).Error(msgNegativeCapacity)),
	)
}

// ToDomain must only be called after Validate succeeded.
func (req *VenueRequest) ToDomain() domain.Venue {
	return domain.Venue{
		Name:     *req.Name,
		City:     *req.City,
		Capacity: *req.Capacity,
	}
}
