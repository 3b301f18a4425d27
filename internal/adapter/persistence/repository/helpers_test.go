package repository

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCell_UnmarshalJSON(t *testing.T) {
	var row struct {
		A cell `json:"a"`
		B cell `json:"b"`
		C cell `json:"c"`
		D cell `json:"d"`
	}
	payload := `{"a": "150000", "b": 150000, "c": null, "d": 12.5}`
	if err := json.Unmarshal([]byte(payload), &row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if row.A.Int() != 150000 {
		t.Fatalf("string cell: expected 150000, got %d", row.A.Int())
	}
	if row.B.Int() != 150000 {
		t.Fatalf("number cell: expected 150000, got %d", row.B.Int())
	}
	if row.C.String() != "" || row.C.Int() != 0 {
		t.Fatalf("null cell: expected empty, got %q", row.C.String())
	}
	if row.D.Int() != 12 {
		t.Fatalf("fractional cell: expected truncation to 12, got %d", row.D.Int())
	}
}

func TestCell_Int_NonNumeric(t *testing.T) {
	if got := cell("n/a").Int(); got != 0 {
		t.Fatalf("expected 0 for non-numeric, got %d", got)
	}
	if got := cell("  42  ").Int(); got != 42 {
		t.Fatalf("expected 42 for padded numeric, got %d", got)
	}
	if got := cell("").Int(); got != 0 {
		t.Fatalf("expected 0 for empty, got %d", got)
	}
}

func TestCell_Time(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got := cell("2023-05-01T10:30:00Z").Time()
		want := time.Date(2023, 5, 1, 10, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("no zone suffix", func(t *testing.T) {
		got := cell("2023-05-01T10:30:00").Time()
		if got.IsZero() {
			t.Fatal("expected a parsed time")
		}
	})

	t.Run("garbage yields zero time", func(t *testing.T) {
		if got := cell("yesterday").Time(); !got.IsZero() {
			t.Fatalf("expected zero time, got %v", got)
		}
	})

	t.Run("empty yields zero time", func(t *testing.T) {
		if got := cell("").Time(); !got.IsZero() {
			t.Fatalf("expected zero time, got %v", got)
		}
	})
}

func TestTimeCell_RoundTrip(t *testing.T) {
	now := time.Date(2023, 5, 1, 10, 30, 0, 0, time.UTC)
	if got := timeCell(now).Time(); !got.Equal(now) {
		t.Fatalf("round trip lost the value: %v", got)
	}
	if timeCell(time.Time{}) != "" {
		t.Fatal("expected empty cell for zero time")
	}
}
