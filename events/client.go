package events

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/kultura-platform/adminkit/gateway"
)

const basePath = "/api/evenements"

// Client exposes the event CRUD surface of the backend.
type Client struct {
	gw *gateway.Gateway
}

// NewClient creates an event client sharing the given gateway.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// Input is the event payload for Create and Update. It is sent in the
// backend's camelCase spelling.
type Input struct {
	Title       string `json:"titreEvent"`
	Description string `json:"description"`
	StartDate   string `json:"dateDebut"`
	EndDate     string `json:"dateFin"`
	Image       string `json:"image,omitempty"`
	Capacity    int    `json:"nbPlace"`
	AddressID   int64  `json:"adresseIdAdresse,omitempty"`
	OrganizerID int64  `json:"organisateurIdUser,omitempty"`
	TariffID    int64  `json:"tarifIdTarif,omitempty"`
	TypeID      int64  `json:"typeEventIdTypeEvent,omitempty"`
}

// List returns all events. Entries without a title are dropped; the backend
// occasionally answers with placeholder rows.
func (c *Client) List(ctx context.Context) ([]Event, error) {
	var raw []Event
	if err := c.gw.Get(ctx, basePath+"/all", &raw); err != nil {
		return nil, err
	}

	list := raw[:0]
	for _, event := range raw {
		if strings.TrimSpace(event.Title) != "" {
			list = append(list, event)
		}
	}
	return list, nil
}

// Get returns a single event by ID.
func (c *Client) Get(ctx context.Context, id int64) (Event, error) {
	var event Event
	if err := c.gw.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Create adds a new event and returns the backend's normalized view of it.
func (c *Client) Create(ctx context.Context, in Input) (Event, error) {
	var event Event
	if err := c.gw.Post(ctx, basePath, in, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Update replaces an existing event.
func (c *Client) Update(ctx context.Context, id int64, in Input) (Event, error) {
	var event Event
	if err := c.gw.Put(ctx, fmt.Sprintf("%s/%d", basePath, id), in, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// Delete removes an event.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.gw.Delete(ctx, fmt.Sprintf("%s/%d", basePath, id))
}

// Search returns the events matching the free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]Event, error) {
	var list []Event
	path := basePath + "/search?q=" + url.QueryEscape(query)
	if err := c.gw.Get(ctx, path, &list); err != nil {
		return nil, err
	}
	return list, nil
}
