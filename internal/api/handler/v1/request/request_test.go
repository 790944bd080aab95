package request

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestVenueRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        VenueRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  VenueRequest{Name: ptr("Sala"), City: ptr("Vigo"), Capacity: ptr(0)},
		},
		{
			name:       "all missing",
			req:        VenueRequest{},
			wantFields: []string{"nombre", "ciudad", "capacidad"},
		},
		{
			name:       "whitespace only",
			req:        VenueRequest{Name: ptr(" \t\n"), City: ptr("Vigo"), Capacity: ptr(1)},
			wantFields: []string{"nombre"},
		},
		{
			name:       "empty string",
			req:        VenueRequest{Name: ptr("Sala"), City: ptr(""), Capacity: ptr(1)},
			wantFields: []string{"ciudad"},
		},
		{
			name:       "negative capacity",
			req:        VenueRequest{Name: ptr("Sala"), City: ptr("Vigo"), Capacity: ptr(-5)},
			wantFields: []string{"capacidad"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
			assert.Len(t, errs, len(tt.wantFields))
		})
	}
}

func TestCreateEventRequest_Validate(t *testing.T) {
	valid := func() CreateEventRequest {
		return CreateEventRequest{
			Name:    ptr("Feria"),
			Date:    ptr("2026-09-01T18:30:00+02:00"),
			Price:   ptr(0.0),
			VenueID: ptr(uint(1)),
		}
	}

	req := valid()
	assert.NoError(t, req.Validate())

	req = valid()
	req.Price = ptr(-0.01)
	assert.Error(t, req.Validate())

	req = valid()
	req.Date = ptr("mañana")
	assert.Error(t, req.Validate())

	req = valid()
	req.VenueID = nil
	assert.Error(t, req.Validate())
}

func TestCreateEventRequest_ToDomain(t *testing.T) {
	req := CreateEventRequest{
		Name:    ptr("Feria"),
		Date:    ptr("2026-09-01T18:30:00+02:00"),
		Price:   ptr(12.5),
		VenueID: ptr(uint(4)),
	}
	require.NoError(t, req.Validate())

	event := req.ToDomain()

	assert.Equal(t, "Feria", event.Name)
	assert.True(t, event.Date.Equal(time.Date(2026, 9, 1, 16, 30, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, event.Date.Location())
	assert.Equal(t, 12.5, event.Price)
	assert.Equal(t, uint(4), event.VenueID)
	assert.Zero(t, event.TicketsSold)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{in: "2026-05-20T21:00:00Z", want: time.Date(2026, 5, 20, 21, 0, 0, 0, time.UTC)},
		{in: "2026-05-20T21:00:00", want: time.Date(2026, 5, 20, 21, 0, 0, 0, time.UTC)},
		{in: "2026-05-20 21:00:00.5", want: time.Date(2026, 5, 20, 21, 0, 0, 5e8, time.UTC)},
		{in: "2026-05-20T21:00", want: time.Date(2026, 5, 20, 21, 0, 0, 0, time.UTC)},
		{in: "2026-05-20", want: time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}

	_, err := ParseDate("20-05-2026")
	assert.ErrorIs(t, err, errInvalidDate)
}

func TestPurchaseRequest_Validate(t *testing.T) {
	assert.NoError(t, (&PurchaseRequest{Quantity: ptr(1)}).Validate())
	assert.Error(t, (&PurchaseRequest{Quantity: ptr(0)}).Validate())
	assert.Error(t, (&PurchaseRequest{Quantity: ptr(-1)}).Validate())
	assert.Error(t, (&PurchaseRequest{}).Validate())
}
