package book

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"

	"github.com/likearthian/galadriel/store"
)

var fixedNow = time.Date(2024, 4, 1, 12, 30, 0, 123456789, time.UTC)

func TestNewValidatesRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		bfc  BookForCreate
		want error
	}{
		{"empty title", BookForCreate{Authors: []string{"Baricco Alessandro"}}, ErrTitleNotSet},
		{"no authors", BookForCreate{Title: "Novecento"}, ErrAuthorsNotSet},
		{"empty authors", BookForCreate{Title: "Novecento", Authors: []string{}}, ErrAuthorsNotSet},
		{"page count overflow", BookForCreate{Title: "Novecento", Authors: []string{"a"}, PageCount: null.IntFrom(1 << 40)}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.bfc, fixedNow)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("expected errors.Is(err, ErrValidation)")
			}
		})
	}
}

func TestNewGeneratesIdentityAndTimestamps(t *testing.T) {
	b, err := New(BookForCreate{Title: "Novecento", Authors: []string{"Baricco Alessandro"}}, fixedNow)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if b.ID == uuid.Nil {
		t.Error("expected a generated id")
	}

	want := fixedNow.Truncate(time.Microsecond)
	if !b.CreatedAt.Equal(want) || !b.UpdatedAt.Equal(want) {
		t.Errorf("timestamps = %s / %s, want %s", b.CreatedAt, b.UpdatedAt, want)
	}
}

func TestBookDescribe(t *testing.T) {
	b, err := New(BookForCreate{
		Title:      "Novecento",
		Authors:    []string{"Baricco Alessandro"},
		Publisher:  null.StringFrom("Feltrinelli"),
		PageCount:  null.IntFrom(62),
		Categories: []string{"Theatre"},
	}, fixedNow)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	names, values := b.Describe()
	if len(names) != len(values) {
		t.Fatalf("%d names for %d values", len(names), len(values))
	}
	if err := store.CheckDescription(names, values); err != nil {
		t.Fatalf("description invalid: %v", err)
	}

	want := []string{"id", "created_at", "updated_at", "title", "authors", "publisher", "page_count", "categories"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}

	if pages, ok := values[6].AsInt32(); !ok || pages != 62 {
		t.Errorf("page_count value = %s", values[6])
	}
}

func TestBookDescribeAllColumns(t *testing.T) {
	b := Book{
		ID:             uuid.New(),
		CreatedAt:      fixedNow,
		UpdatedAt:      fixedNow,
		EditionID:      uuid.NullUUID{UUID: uuid.New(), Valid: true},
		ExternalID:     null.StringFrom("ext"),
		ExternalSource: null.StringFrom("google"),
		Title:          "Novecento",
		Authors:        []string{"Baricco Alessandro"},
		Publisher:      null.StringFrom("Feltrinelli"),
		PublishedDate:  null.TimeFrom(fixedNow),
		PublishedYear:  null.IntFrom(1994),
		Description:    null.StringFrom("monologue"),
		Isbn10:         null.StringFrom("8807880857"),
		Isbn13:         null.StringFrom("9788807880858"),
		PageCount:      null.IntFrom(62),
		PrintType:      null.StringFrom("BOOK"),
		Categories:     []string{"Theatre"},
		MaturityRating: null.StringFrom("NOT_MATURE"),
		Language:       null.StringFrom("it"),
		ImageURL:       null.StringFrom("http://img"),
		ImageURLSmall:  null.StringFrom("http://img/s"),
		PreviewLink:    null.StringFrom("http://preview"),
	}

	names, values := b.Describe()
	if len(names) != 22 || len(values) != 22 {
		t.Fatalf("described %d/%d columns, want 22", len(names), len(values))
	}
	if err := store.CheckDescription(names, values); err != nil {
		t.Fatalf("description invalid: %v", err)
	}
}

func TestBookForUpdateDescribe(t *testing.T) {
	t.Run("updated_at only", func(t *testing.T) {
		names, values := BookForUpdate{UpdatedAt: fixedNow}.Describe()
		if diff := cmp.Diff([]string{"updated_at"}, names); diff != "" {
			t.Errorf("columns mismatch (-want +got):\n%s", diff)
		}
		if ts, ok := values[0].AsTimestamp(); !ok || !ts.Equal(fixedNow) {
			t.Errorf("updated_at value = %s", values[0])
		}
	})

	t.Run("set fields only", func(t *testing.T) {
		bfu := BookForUpdate{
			UpdatedAt: fixedNow,
			Title:     null.StringFrom("Novecento - Un monologo"),
			Publisher: null.StringFrom("Feltrinelli"),
			PageCount: null.IntFrom(100),
			Language:  null.StringFrom("it"),
		}

		names, values := bfu.Describe()
		want := []string{"updated_at", "title", "publisher", "page_count", "language"}
		if diff := cmp.Diff(want, names); diff != "" {
			t.Errorf("columns mismatch (-want +got):\n%s", diff)
		}
		if err := store.CheckDescription(names, values); err != nil {
			t.Errorf("description invalid: %v", err)
		}
	})

	t.Run("empty categories clears the list", func(t *testing.T) {
		names, values := BookForUpdate{UpdatedAt: fixedNow, Categories: []string{}}.Describe()
		if diff := cmp.Diff([]string{"updated_at", "categories"}, names); diff != "" {
			t.Errorf("columns mismatch (-want +got):\n%s", diff)
		}
		if arr, ok := values[1].AsTextArray(); !ok || len(arr) != 0 {
			t.Errorf("categories value = %s", values[1])
		}
	})
}

func TestBookForUpdateValidate(t *testing.T) {
	tests := []struct {
		name string
		bfu  BookForUpdate
		want error
	}{
		{"nothing set", BookForUpdate{}, nil},
		{"blank title", BookForUpdate{Title: null.StringFrom("")}, ErrTitleNotSet},
		{"empty authors", BookForUpdate{Authors: []string{}}, ErrAuthorsNotSet},
		{"year overflow", BookForUpdate{PublishedYear: null.IntFrom(-1 << 40)}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.bfu.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromRow(t *testing.T) {
	id := uuid.New()
	edition := uuid.New()

	row := store.Row{
		"id":              id.String(),
		"created_at":      fixedNow,
		"updated_at":      fixedNow,
		"edition_id":      edition.String(),
		"external_id":     nil,
		"external_source": nil,
		"title":           "Novecento",
		"authors":         `{"Baricco Alessandro"}`,
		"publisher":       "Feltrinelli",
		"published_date":  nil,
		"published_year":  int64(1994),
		"description":     nil,
		"isbn10":          nil,
		"isbn13":          nil,
		"page_count":      nil,
		"print_type":      nil,
		"categories":      nil,
		"maturity_rating": nil,
		"language":        "it",
		"image_url":       nil,
		"image_url_small": nil,
		"preview_link":    nil,
	}

	b, err := FromRow(row)
	if err != nil {
		t.Fatalf("FromRow failed: %v", err)
	}

	want := Book{
		ID:            id,
		CreatedAt:     fixedNow,
		UpdatedAt:     fixedNow,
		EditionID:     uuid.NullUUID{UUID: edition, Valid: true},
		Title:         "Novecento",
		Authors:       []string{"Baricco Alessandro"},
		Publisher:     null.StringFrom("Feltrinelli"),
		PublishedYear: null.IntFrom(1994),
		Language:      null.StringFrom("it"),
	}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("FromRow mismatch (-want +got):\n%s", diff)
	}

	if b.PageCount.Valid || b.PublishedDate.Valid || b.ExternalID.Valid {
		t.Error("NULL columns must stay invalid")
	}
}

func TestFromRowMissingColumn(t *testing.T) {
	_, err := FromRow(store.Row{"id": uuid.NewString()})
	if !errors.Is(err, store.ErrInvariantViolation) {
		t.Fatalf("err = %v, want ErrInvariantViolation", err)
	}
}
