package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"column:nombre;not null"`
	Date        time.Time `gorm:"column:fecha;not null"`
	Price       float64   `gorm:"column:precio;not null"`
	TicketsSold int       `gorm:"column:tickets_vendidos;not null;default:0"`
	VenueID     uint      `gorm:"column:recinto_id;not null;index"`
}

func (Event) TableName() string {
	return "eventos"
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// Insert stores a new event with no tickets sold. The venue must exist.
func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	event.ID = 0
	event.TicketsSold = 0

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Venue{}).Where("id = ?", event.VenueID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrVenueNotFound
		}

		return tx.Create(&event).Error
	})
	if err != nil {
		if !errors.Is(err, ErrVenueNotFound) && isForeignKeyViolation(err) {
			return Event{}, ErrVenueNotFound
		}
		return Event{}, err
	}

	return event, nil
}

// FindAll lists events. A non-empty city keeps only events whose venue city
// contains it, ignoring case.
func (d *EventDAO) FindAll(ctx context.Context, city string) ([]Event, error) {
	events := []Event{}

	query := d.db.WithContext(ctx).Model(&Event{}).Select("eventos.*")
	if city != "" {
		query = query.
			Joins("JOIN recintos ON recintos.id = eventos.recinto_id").
			Where(`LOWER(recintos.ciudad) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(city)+"%")
	}

	result := query.Order("eventos.id").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	return findEvent(d.db.WithContext(ctx), id)
}

func findEvent(db *gorm.DB, id uint) (Event, error) {
	var event Event

	result := db.First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// Purchase adds quantity to tickets_vendidos only if the result stays within
// the venue capacity. Check and increment are one UPDATE statement, so
// concurrent purchases on the same event cannot oversell.
func (d *EventDAO) Purchase(ctx context.Context, id uint, quantity int) (Event, error) {
	var event Event

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Event{}).
			Where("id = ?", id).
			Where("? <= (SELECT capacidad FROM recintos WHERE recintos.id = eventos.recinto_id) - tickets_vendidos", quantity).
			UpdateColumn("tickets_vendidos", gorm.Expr("tickets_vendidos + ?", quantity))
		if result.Error != nil {
			return result.Error
		}

		found, err := findEvent(tx, id)
		if err != nil {
			return err
		}
		event = found

		if result.RowsAffected == 0 {
			return ErrCapacityExceeded
		}

		return nil
	})
	if err != nil {
		return Event{}, err
	}

	return event, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
