package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Venue struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"column:nombre;not null"`
	City     string  `gorm:"column:ciudad;not null"`
	Capacity int     `gorm:"column:capacidad;not null"`
	Events   []Event `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

func (Venue) TableName() string {
	return "recintos"
}

type VenueDAO struct {
	db *gorm.DB
}

func NewVenueDAO(db *gorm.DB) *VenueDAO {
	return &VenueDAO{
		db: db,
	}
}

func (d *VenueDAO) Insert(ctx context.Context, venue Venue) (Venue, error) {
	result := d.db.WithContext(ctx).Omit("Events").Create(&venue)
	if result.Error != nil {
		return Venue{}, result.Error
	}

	return venue, nil
}

func (d *VenueDAO) FindAll(ctx context.Context) ([]Venue, error) {
	venues := []Venue{}

	result := d.db.WithContext(ctx).Order("id").Find(&venues)
	if result.Error != nil {
		return nil, result.Error
	}

	return venues, nil
}

func (d *VenueDAO) FindByID(ctx context.Context, id uint) (Venue, error) {
	return findVenue(d.db.WithContext(ctx), id)
}

func findVenue(db *gorm.DB, id uint) (Venue, error) {
	var venue Venue

	result := db.First(&venue, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Venue{}, ErrVenueNotFound
		}

		return Venue{}, result.Error
	}

	return venue, nil
}

// Update overwrites every column of the venue with id.
func (d *VenueDAO) Update(ctx context.Context, id uint, venue Venue) (Venue, error) {
	var updated Venue

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findVenue(tx, id)
		if err != nil {
			return err
		}
		updated = found

		updated.Name = venue.Name
		updated.City = venue.City
		updated.Capacity = venue.Capacity

		return tx.Model(&updated).
			Select("nombre", "ciudad", "capacidad").
			Updates(&updated).Error
	})
	if err != nil {
		return Venue{}, err
	}

	return updated, nil
}

// Delete removes the venue and all of its events in one transaction.
func (d *VenueDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recinto_id = ?", id).Delete(&Event{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Venue{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVenueNotFound
		}

		return nil
	})
}
