package book

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/guregu/null.v4"

	"github.com/likearthian/galadriel/migrations"
	"github.com/likearthian/galadriel/store"
)

// newPostgresController connects to GALADRIEL_TEST_DATABASE_URL and skips
// the test when it is not set.
func newPostgresController(t *testing.T) (*Controller, *store.Engine) {
	t.Helper()

	url := os.Getenv("GALADRIEL_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("GALADRIEL_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := store.ConnectPostgresql(ctx, store.PGConfig{URL: url})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(ctx, db, nil); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := db.Exec("TRUNCATE books"); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	engine := store.NewEngine(db)
	return NewController(engine), engine
}

func TestPostgresRoundTrip(t *testing.T) {
	ctrl, _ := newPostgresController(t)
	ctx := context.Background()

	published := time.Date(1994, 3, 1, 0, 0, 0, 0, time.UTC)
	id, err := ctrl.Create(ctx, BookForCreate{
		Title:         "Novecento",
		Authors:       []string{"Baricco Alessandro", "Someone, Else"},
		PublishedDate: null.TimeFrom(published),
		Categories:    []string{"Theatre"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = ctrl.Update(ctx, BookForUpdate{Categories: []string{}, PageCount: null.IntFrom(62)}, id)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	b, err := ctrl.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if diff := cmp.Diff([]string{"Baricco Alessandro", "Someone, Else"}, b.Authors); diff != "" {
		t.Errorf("authors mismatch (-want +got):\n%s", diff)
	}
	if len(b.Categories) != 0 {
		t.Errorf("categories = %v, want empty", b.Categories)
	}
	if !b.PublishedDate.Time.Equal(published) || b.PageCount.Int64 != 62 {
		t.Errorf("book = %+v", b)
	}
	if b.Publisher.Valid {
		t.Error("publisher must stay NULL")
	}

	if err := ctrl.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := ctrl.Get(ctx, id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get after delete: %v", err)
	}
}

func TestPostgresDuplicateKey(t *testing.T) {
	_, engine := newPostgresController(t)
	ctx := context.Background()

	b, err := New(BookForCreate{Title: "Novecento", Authors: []string{"Baricco Alessandro"}}, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := engine.Create(ctx, Table, b); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err = engine.Create(ctx, Table, b)
	if !errors.Is(err, store.ErrKeyAlreadyExists) {
		t.Fatalf("err = %v, want ErrKeyAlreadyExists", err)
	}
}
