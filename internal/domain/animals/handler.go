package animals

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petcare/internal/domain/medevents"
	"petcare/internal/platform/dates"
)

func RegisterRoutes(r chi.Router, svc *Service, medSvc *medevents.Service) {
	r.Route("/v1/animal", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc, medSvc))
		ar.Post("/", createAnimalHandler(svc, medSvc))

		ar.Get("/{petID}", getAnimalHandler(svc, medSvc))
		ar.Put("/{petID}", updateAnimalHandler(svc, medSvc))
		ar.Delete("/{petID}", deleteAnimalHandler(svc, medSvc))
	})
}

type animalRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	Photo     string `json:"photo"`
}

type animalResponse struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Type          string                   `json:"type"`
	BirthDate     dates.ISODate            `json:"birth_date"`
	Photo         string                   `json:"photo"`
	MedicalEvents []medevents.CategoryView `json:"medical_events"`
}

func (req animalRequest) toInput() (Input, error) {
	bd, err := dates.Parse(req.BirthDate)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Name:      req.Name,
		Type:      req.Type,
		BirthDate: bd,
		Photo:     req.Photo,
	}, nil
}

func toAnimalResponse(a Animal, cats []medevents.CategoryDetail) animalResponse {
	views := make([]medevents.CategoryView, 0, len(cats))
	for _, c := range cats {
		views = append(views, medevents.NewCategoryView(c))
	}
	return animalResponse{
		ID:            a.ID,
		Name:          a.Name,
		Type:          a.Type,
		BirthDate:     a.BirthDate,
		Photo:         a.Photo,
		MedicalEvents: views,
	}
}

func listAnimalsHandler(svc *Service, medSvc *medevents.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			cats, err := medSvc.ListByAnimal(r.Context(), a.ID)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			out = append(out, toAnimalResponse(a, cats))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func createAnimalHandler(svc *Service, medSvc *medevents.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		// Las categorías estándar nacen junto con el animal.
		seeded, err := medSvc.SeedStandard(r.Context(), a.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		cats := make([]medevents.CategoryDetail, 0, len(seeded))
		for _, c := range seeded {
			cats = append(cats, medevents.CategoryDetail{Category: c, Events: []medevents.Event{}})
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a, cats))
	}
}

func getAnimalHandler(svc *Service, medSvc *medevents.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err)
			return
		}

		cats, err := medSvc.ListByAnimal(r.Context(), a.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a, cats))
	}
}

func updateAnimalHandler(svc *Service, medSvc *medevents.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in, err := req.toInput()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), in)
		if err != nil {
			writeError(w, err)
			return
		}

		cats, err := medSvc.ListByAnimal(r.Context(), a.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a, cats))
	}
}

func deleteAnimalHandler(svc *Service, medSvc *medevents.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "petID")

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}

		// Los eventos médicos no sobreviven al animal.
		if err := medSvc.RemoveForAnimal(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
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
