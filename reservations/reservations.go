package reservations

import (
	"context"
	"fmt"

	"github.com/kultura-platform/adminkit/gateway"
)

const basePath = "/api/reservations"

// Reservation statuses as the backend spells them.
const (
	StatusConfirmed = "Confirmée"
	StatusPending   = "En attente"
	StatusCancelled = "Annulée"
)

// Reservation is a booking held by the authenticated user.
type Reservation struct {
	ID     int64  `json:"id"`
	Event  string `json:"event"`
	Date   string `json:"date"`
	Status string `json:"status"`
	Places int    `json:"places"`
	Price  string `json:"prix"`
}

// Reference returns the printable booking reference, e.g. RES-000042.
func (r Reservation) Reference() string {
	return fmt.Sprintf("RES-%06d", r.ID)
}

// Client exposes the reservation surface of the backend.
type Client struct {
	gw *gateway.Gateway
}

// NewClient creates a reservation client sharing the given gateway.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// List returns the caller's reservations.
func (c *Client) List(ctx context.Context) ([]Reservation, error) {
	var list []Reservation
	if err := c.gw.Get(ctx, basePath+"/all", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Get returns a single reservation by ID.
func (c *Client) Get(ctx context.Context, id int64) (Reservation, error) {
	var reservation Reservation
	if err := c.gw.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), &reservation); err != nil {
		return Reservation{}, err
	}
	return reservation, nil
}

// Cancel removes a reservation.
func (c *Client) Cancel(ctx context.Context, id int64) error {
	return c.gw.Delete(ctx, fmt.Sprintf("%s/%d", basePath, id))
}
