package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestRowReader(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

	row := Row{
		"id":         id.String(),
		"created_at": ts,
		"title":      "Novecento",
		"authors":    `{"Baricco Alessandro"}`,
		"page_count": int64(100),
		"published":  true,
		"publisher":  nil,
	}

	rr := NewRowReader(row)
	gotID, _ := rr.Identifier("id")
	gotTS, _ := rr.Timestamp("created_at")
	title, _ := rr.Text("title")
	authors, _ := rr.TextArray("authors")
	pages, _ := rr.Int32("page_count")
	published, _ := rr.Bool("published")
	publisher, publisherValid := rr.Text("publisher")

	if err := rr.Err(); err != nil {
		t.Fatalf("RowReader failed: %v", err)
	}

	if gotID != id || !gotTS.Equal(ts) || title != "Novecento" || pages != 100 || !published {
		t.Errorf("decoded id=%s ts=%s title=%q pages=%d published=%v", gotID, gotTS, title, pages, published)
	}
	if diff := cmp.Diff([]string{"Baricco Alessandro"}, authors); diff != "" {
		t.Errorf("authors mismatch (-want +got):\n%s", diff)
	}
	if publisherValid || publisher != "" {
		t.Errorf("publisher = %q valid=%v, want NULL", publisher, publisherValid)
	}
}

func TestRowReaderKeepsFirstError(t *testing.T) {
	rr := NewRowReader(Row{"id": "garbage", "title": "x"})

	rr.Identifier("id")
	title, _ := rr.Text("title")

	if !errors.Is(rr.Err(), ErrDecode) {
		t.Fatalf("Err() = %v, want ErrDecode", rr.Err())
	}
	if errors.Is(rr.Err(), ErrParse) {
		t.Errorf("Err() = %v, stored data must not read as a caller parse error", rr.Err())
	}
	if title != "" {
		t.Errorf("reads after an error should yield zero values, got %q", title)
	}
}

func TestRowMissingColumn(t *testing.T) {
	_, _, err := Row{"id": "x"}.Value("title", KindText)
	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("err = %v, want ErrInvariantViolation", err)
	}
}

func TestCheckDescription(t *testing.T) {
	if err := CheckDescription([]string{"a", "b"}, []Value{Text("x"), Int32(1)}); err != nil {
		t.Errorf("valid description rejected: %v", err)
	}

	if err := CheckDescription([]string{"a"}, []Value{Text("x"), Int32(1)}); !errors.Is(err, ErrInvalidDescription) {
		t.Errorf("err = %v, want ErrInvalidDescription", err)
	}
}
