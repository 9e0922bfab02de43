package store

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"petcare/internal/platform/dates"
	"petcare/internal/platform/httpclient"
	"petcare/internal/platform/logger"
)

var (
	// ErrInFlight: la misma mutación ya está en curso (doble tap en Save).
	ErrInFlight = errors.New("operation already in flight")

	ErrMissingFields     = errors.New("all fields are required")
	ErrMissingNameOrDate = errors.New("please fill in name and date")
)

// Client ejecuta los flujos CRUD contra el store remoto.
// Cada llamada es un round trip; la reconciliación del cache la hace flows.
type Client struct {
	http *httpclient.Client
	log  logger.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func New(baseURL string, timeout time.Duration, log logger.Logger) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.New(logger.Options{})
	}
	return &Client{
		http:     hc,
		log:      log,
		inflight: make(map[string]struct{}),
	}, nil
}

// begin registra una mutación en curso; una segunda idéntica se rechaza.
// Las lecturas no pasan por acá: repetirlas es inocuo.
func (c *Client) begin(op string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inflight[op]; busy {
		c.log.Warn("duplicate submit ignored", map[string]any{"op": op})
		return ErrInFlight
	}
	c.inflight[op] = struct{}{}
	return nil
}

func (c *Client) end(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, op)
}

// PetInput valida en el cliente antes de tocar la red:
// name, type y birth_date obligatorios, photo opcional.
type PetInput struct {
	Name      string
	Type      string
	BirthDate string // YYYY-MM-DD
	Photo     string
}

func (in PetInput) validate() (dates.ISODate, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Type) == "" ||
		strings.TrimSpace(in.BirthDate) == "" {
		return dates.ISODate{}, ErrMissingFields
	}
	return dates.Parse(in.BirthDate)
}

type petPayload struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	BirthDate string `json:"birth_date"`
	Photo     string `json:"photo"`
}

func (in PetInput) payload() petPayload {
	return petPayload{
		Name:      in.Name,
		Type:      in.Type,
		BirthDate: in.BirthDate,
		Photo:     in.Photo,
	}
}

func (c *Client) ListPets(ctx context.Context) ([]Pet, error) {
	var out []Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, "/v1/animal", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePet(ctx context.Context, in PetInput) (Pet, error) {
	if _, err := in.validate(); err != nil {
		return Pet{}, err
	}

	if err := c.begin("create_pet"); err != nil {
		return Pet{}, err
	}
	defer c.end("create_pet")

	var out Pet
	if err := c.http.DoJSON(ctx, http.MethodPost, "/v1/animal", nil, in.payload(), &out); err != nil {
		return Pet{}, err
	}
	return out, nil
}

// GetPet siempre re-lee del store (la vista de detalle no usa el cache),
// y entrega las categorías ya ordenadas para presentación.
func (c *Client) GetPet(ctx context.Context, id string) (Pet, error) {
	var out Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, "/v1/animal/"+id, nil, nil, &out); err != nil {
		return Pet{}, err
	}
	SortCategories(out.MedicalEvents)
	return out, nil
}

func (c *Client) UpdatePet(ctx context.Context, id string, in PetInput) (Pet, error) {
	if _, err := in.validate(); err != nil {
		return Pet{}, err
	}

	op := "update_pet:" + id
	if err := c.begin(op); err != nil {
		return Pet{}, err
	}
	defer c.end(op)

	var out Pet
	if err := c.http.DoJSON(ctx, http.MethodPut, "/v1/animal/"+id, nil, in.payload(), &out); err != nil {
		return Pet{}, err
	}
	return out, nil
}

func (c *Client) DeletePet(ctx context.Context, id string) error {
	op := "delete_pet:" + id
	if err := c.begin(op); err != nil {
		return err
	}
	defer c.end(op)

	return c.http.DoJSON(ctx, http.MethodDelete, "/v1/animal/"+id, nil, nil, nil)
}

// EventInput: event_name y date obligatorios; next_date y notes pueden ir vacíos.
// next_date anterior a date se acepta (permisivo a propósito).
type EventInput struct {
	EventName string
	Date      string // YYYY-MM-DD
	NextDate  string
	Notes     string
}

func (in EventInput) validate() error {
	if strings.TrimSpace(in.EventName) == "" || strings.TrimSpace(in.Date) == "" {
		return ErrMissingNameOrDate
	}
	if _, err := dates.Parse(in.Date); err != nil {
		return err
	}
	_, err := dates.Parse(in.NextDate)
	return err
}

type eventPayload struct {
	EventName string `json:"event_name"`
	Date      string `json:"date"`
	NextDate  string `json:"next_date"`
	Notes     string `json:"notes"`
}

func (in EventInput) payload() eventPayload {
	return eventPayload{
		EventName: in.EventName,
		Date:      in.Date,
		NextDate:  in.NextDate,
		Notes:     in.Notes,
	}
}

func (c *Client) GetCategory(ctx context.Context, id string) (Category, error) {
	var out Category
	if err := c.http.DoJSON(ctx, http.MethodGet, "/v1/medical_events/"+id, nil, nil, &out); err != nil {
		return Category{}, err
	}
	return out, nil
}

// CreateEvent no inserta nada localmente: la vista de categoría re-lee al volver.
func (c *Client) CreateEvent(ctx context.Context, categoryID string, in EventInput) (Event, error) {
	if err := in.validate(); err != nil {
		return Event{}, err
	}

	op := "create_event:" + categoryID
	if err := c.begin(op); err != nil {
		return Event{}, err
	}
	defer c.end(op)

	var out Event
	if err := c.http.DoJSON(ctx, http.MethodPost, "/v1/event/"+categoryID, nil, in.payload(), &out); err != nil {
		return Event{}, err
	}
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (Event, error) {
	var out Event
	if err := c.http.DoJSON(ctx, http.MethodGet, "/v1/event/"+id, nil, nil, &out); err != nil {
		return Event{}, err
	}
	return out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in EventInput) (Event, error) {
	if err := in.validate(); err != nil {
		return Event{}, err
	}

	op := "update_event:" + id
	if err := c.begin(op); err != nil {
		return Event{}, err
	}
	defer c.end(op)

	var out Event
	if err := c.http.DoJSON(ctx, http.MethodPut, "/v1/event/"+id, nil, in.payload(), &out); err != nil {
		return Event{}, err
	}
	return out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	op := "delete_event:" + id
	if err := c.begin(op); err != nil {
		return err
	}
	defer c.end(op)

	return c.http.DoJSON(ctx, http.MethodDelete, "/v1/event/"+id, nil, nil, nil)
}
