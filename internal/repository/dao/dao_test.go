package dao

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yizeng/gab/gin/gorm/eventmaster/internal/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, InitTables(gdb))

	t.Cleanup(func() {
		_ = db.Close(gdb)
	})

	return gdb
}

func seedVenue(t *testing.T, d *VenueDAO, name, city string, capacity int) Venue {
	t.Helper()

	v, err := d.Insert(context.Background(), Venue{Name: name, City: city, Capacity: capacity})
	require.NoError(t, err)

	return v
}

func seedEvent(t *testing.T, d *EventDAO, venueID uint, name string) Event {
	t.Helper()

	e, err := d.Insert(context.Background(), Event{
		Name:    name,
		Date:    time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC),
		Price:   25.5,
		VenueID: venueID,
	})
	require.NoError(t, err)

	return e
}

// dropAllTables gives tests on a shared store a clean schema.
func dropAllTables(db *gorm.DB) error {
	return db.Migrator().DropTable(&Event{}, &Venue{})
}
