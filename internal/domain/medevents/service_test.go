package medevents_test

import (
	"context"
	"errors"
	"testing"

	"petcare/internal/adapters/storage/memory"
	"petcare/internal/domain/medevents"
	"petcare/internal/platform/dates"
)

func mustDate(t *testing.T, s string) dates.ISODate {
	t.Helper()
	d, err := dates.Parse(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestSeedStandard_CreatesFourCategoriesInOrder(t *testing.T) {
	svc := medevents.NewService(memory.NewMedEventsRepo())

	cats, err := svc.SeedStandard(context.Background(), "animal-1")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(cats) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(cats))
	}

	want := []string{"vaccine", "prevention", "check up", "other"}
	for i, c := range cats {
		if c.CategoryName != want[i] {
			t.Errorf("category %d: got %q want %q", i, c.CategoryName, want[i])
		}
		if c.AnimalID != "animal-1" {
			t.Errorf("category %d: wrong animal id %q", i, c.AnimalID)
		}
		if c.ID == "" {
			t.Errorf("category %d: empty id", i)
		}
	}
}

func TestCreateEvent_UnknownCategory(t *testing.T) {
	svc := medevents.NewService(memory.NewMedEventsRepo())

	_, err := svc.CreateEvent(context.Background(), "no-such", medevents.EventInput{
		EventName: "Rabies",
		Date:      mustDate(t, "2024-03-01"),
	})
	if !errors.Is(err, medevents.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateEvent_ValidatesNameAndDate(t *testing.T) {
	svc := medevents.NewService(memory.NewMedEventsRepo())
	cats, err := svc.SeedStandard(context.Background(), "animal-1")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	catID := cats[0].ID

	_, err = svc.CreateEvent(context.Background(), catID, medevents.EventInput{
		Date: mustDate(t, "2024-03-01"),
	})
	if !errors.Is(err, medevents.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}

	_, err = svc.CreateEvent(context.Background(), catID, medevents.EventInput{
		EventName: "Rabies",
	})
	if !errors.Is(err, medevents.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without date, got %v", err)
	}

	// next_date anterior a date pasa igual
	_, err = svc.CreateEvent(context.Background(), catID, medevents.EventInput{
		EventName: "Rabies",
		Date:      mustDate(t, "2024-03-01"),
		NextDate:  mustDate(t, "2023-01-01"),
	})
	if err != nil {
		t.Fatalf("earlier next_date should be accepted, got %v", err)
	}
}

func TestUpdateEvent_FullReplacement(t *testing.T) {
	svc := medevents.NewService(memory.NewMedEventsRepo())
	cats, err := svc.SeedStandard(context.Background(), "animal-1")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	ev, err := svc.CreateEvent(context.Background(), cats[0].ID, medevents.EventInput{
		EventName: "Rabies",
		Date:      mustDate(t, "2024-03-01"),
		NextDate:  mustDate(t, "2025-03-01"),
		Notes:     "anual",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// campos omitidos se vacían: reemplazo completo, no merge
	got, err := svc.UpdateEvent(context.Background(), ev.ID, medevents.EventInput{
		EventName: "Rabies booster",
		Date:      mustDate(t, "2024-04-01"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.EventName != "Rabies booster" || got.Notes != "" || !got.NextDate.IsZero() {
		t.Fatalf("update should replace all fields, got %+v", got)
	}
	if got.CategoryID != cats[0].ID {
		t.Fatalf("update should keep category, got %q", got.CategoryID)
	}
}

func TestRemoveForAnimal_DropsCategoriesAndEvents(t *testing.T) {
	svc := medevents.NewService(memory.NewMedEventsRepo())
	ctx := context.Background()

	cats, err := svc.SeedStandard(ctx, "animal-1")
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	ev, err := svc.CreateEvent(ctx, cats[0].ID, medevents.EventInput{
		EventName: "Rabies",
		Date:      mustDate(t, "2024-03-01"),
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	if err := svc.RemoveForAnimal(ctx, "animal-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if _, err := svc.GetCategory(ctx, cats[0].ID); !errors.Is(err, medevents.ErrNotFound) {
		t.Fatalf("category should be gone, got %v", err)
	}
	if _, err := svc.GetEvent(ctx, ev.ID); !errors.Is(err, medevents.ErrNotFound) {
		t.Fatalf("event should be gone, got %v", err)
	}

	cds, err := svc.ListByAnimal(ctx, "animal-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cds) != 0 {
		t.Fatalf("expected no categories, got %d", len(cds))
	}
}
