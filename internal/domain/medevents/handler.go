package medevents

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petcare/internal/platform/dates"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Una categoría con su lista completa de eventos
	r.Get("/v1/medical_events/{categoryID}", getCategoryHandler(svc))

	// Eventos individuales. El {id} del POST es de categoría, el del resto
	// es de evento: mismo path, distinto significado según el verbo.
	r.Route("/v1/event", func(er chi.Router) {
		er.Post("/{id}", createEventHandler(svc))
		er.Get("/{id}", getEventHandler(svc))
		er.Put("/{id}", updateEventHandler(svc))
		er.Delete("/{id}", deleteEventHandler(svc))
	})
}

// CategoryView es la forma JSON de una categoría con sus eventos.
// Lo usa también el handler de animals para anidar medical_events.
type CategoryView struct {
	ID           string      `json:"id"`
	AnimalID     string      `json:"animal_id"`
	CategoryName string      `json:"category_name"`
	EventDetails []EventView `json:"event_details"`
}

type EventView struct {
	ID             string        `json:"id"`
	MedicalEventID string        `json:"medical_event_id"`
	EventName      string        `json:"event_name"`
	Date           dates.ISODate `json:"date"`
	NextDate       dates.ISODate `json:"next_date"`
	Notes          string        `json:"notes"`
}

func NewCategoryView(d CategoryDetail) CategoryView {
	evs := make([]EventView, 0, len(d.Events))
	for _, e := range d.Events {
		evs = append(evs, NewEventView(e))
	}
	return CategoryView{
		ID:           d.ID,
		AnimalID:     d.AnimalID,
		CategoryName: d.CategoryName,
		EventDetails: evs,
	}
}

func NewEventView(e Event) EventView {
	return EventView{
		ID:             e.ID,
		MedicalEventID: e.CategoryID,
		EventName:      e.EventName,
		Date:           e.Date,
		NextDate:       e.NextDate,
		Notes:          e.Notes,
	}
}

type eventRequest struct {
	EventName string `json:"event_name"`
	Date      string `json:"date"`
	NextDate  string `json:"next_date"`
	Notes     string `json:"notes"`
}

func (req eventRequest) toInput() (EventInput, error) {
	d, err := dates.Parse(req.Date)
	if err != nil {
		return EventInput{}, err
	}
	nd, err := dates.Parse(req.NextDate)
	if err != nil {
		return EventInput{}, err
	}
	return EventInput{
		EventName: req.EventName,
		Date:      d,
		NextDate:  nd,
		Notes:     req.Notes,
	}, nil
}

func getCategoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetCategory(r.Context(), chi.URLParam(r, "categoryID"))
		if err != nil {
			writeError(w, err, "category not found")
			return
		}
		writeJSON(w, http.StatusOK, NewCategoryView(d))
	}
}

func createEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		e, err := svc.CreateEvent(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			writeError(w, err, "category not found")
			return
		}
		writeJSON(w, http.StatusCreated, NewEventView(e))
	}
}

func getEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.GetEvent(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err, "event not found")
			return
		}
		writeJSON(w, http.StatusOK, NewEventView(e))
	}
}

func updateEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		e, err := svc.UpdateEvent(r.Context(), chi.URLParam(r, "id"), in)
		if err != nil {
			writeError(w, err, "event not found")
			return
		}
		writeJSON(w, http.StatusOK, NewEventView(e))
	}
}

func deleteEventHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err, "event not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, notFoundMsg, http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// (animals/medevents/users) para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
