package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medpipeline/internal/domain/entities"
	"medpipeline/internal/infrastructure/sheetdb"
)

func TestOpportunitySheetRepository_FetchAll(t *testing.T) {
	// Mixed string/number cells, as the sheet store actually serves them.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"id": "1",
				"date": "2023-05-01",
				"drName": "Dr. X",
				"hospitalName": "Apollo",
				"pipelineStage": "quoted",
				"potentialValue": 150000,
				"winningPercentage": "50",
				"buyingPercentage": "10",
				"totalPercentage": 30,
				"weightedForecast": "45000",
				"forecastMonth": "2023-06",
				"createdAt": "2023-05-01T10:30:00Z"
			},
			{
				"id": 2,
				"drName": "Dr. Y",
				"pipelineStage": "lost",
				"potentialValue": "",
				"notes": null
			}
		]`))
	}))
	defer srv.Close()

	repo := NewOpportunitySheetRepository(sheetdb.NewClient(5*time.Second), srv.URL)
	records, err := repo.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.ID != 1 || first.PotentialValue != 150000 || first.WinningPercentage != 50 {
		t.Fatalf("numeric coercion failed: %+v", first)
	}
	if first.PipelineStage != entities.StageQuoted {
		t.Fatalf("unexpected stage: %q", first.PipelineStage)
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("expected parsed createdAt")
	}

	second := records[1]
	if second.ID != 2 || second.PotentialValue != 0 || second.Notes != "" {
		t.Fatalf("empty-cell coercion failed: %+v", second)
	}
}

func TestOpportunitySheetRepository_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		w.Write([]byte(`{"created": 1}`))
	}))
	defer srv.Close()

	repo := NewOpportunitySheetRepository(sheetdb.NewClient(5*time.Second), srv.URL)
	o := entities.Opportunity{ID: 3, DrName: "Dr. Z", PipelineStage: entities.StageQuoted}

	created, err := repo.Create(context.Background(), o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected created=1, got %d", created)
	}
}

func TestOpportunitySheetRepository_UpdateDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/id/3" {
			t.Fatalf("expected /id/3, got %s", r.URL.Path)
		}
		switch r.Method {
		case http.MethodPatch:
			w.Write([]byte(`{"updated": 1}`))
		case http.MethodDelete:
			w.Write([]byte(`{"deleted": 1}`))
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	repo := NewOpportunitySheetRepository(sheetdb.NewClient(5*time.Second), srv.URL)

	updated, err := repo.Update(context.Background(), 3, entities.Opportunity{ID: 3})
	if err != nil || updated != 1 {
		t.Fatalf("update: got (%d, %v)", updated, err)
	}
	deleted, err := repo.Delete(context.Background(), 3)
	if err != nil || deleted != 1 {
		t.Fatalf("delete: got (%d, %v)", deleted, err)
	}
}
