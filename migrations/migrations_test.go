package migrations

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func versions(t *testing.T, driver, dsn string) []int64 {
	t.Helper()

	// Listing sources never connects, so the dsn need not be reachable.
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		t.Fatalf("open %s: %v", driver, err)
	}
	t.Cleanup(func() { db.Close() })

	provider, err := newProvider(db)
	if err != nil {
		t.Fatalf("provider for %s: %v", driver, err)
	}

	var out []int64
	for _, src := range provider.ListSources() {
		out = append(out, src.Version)
	}
	return out
}

func TestSourcesAreOrderedAndMatchAcrossDialects(t *testing.T) {
	pg := versions(t, "pgx", "postgres://galadriel@localhost:5432/galadriel")
	if diff := cmp.Diff([]int64{1, 2}, pg); diff != "" {
		t.Fatalf("postgres versions (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(pg, versions(t, "sqlite", ":memory:")); diff != "" {
		t.Errorf("dialects diverge (-postgres +sqlite):\n%s", diff)
	}
}

func TestPostgresSchemaUsesNativeTypes(t *testing.T) {
	b, err := fs.ReadFile(files, "postgres/0001_books.sql")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"-- +goose Up", "id UUID PRIMARY KEY", "authors TEXT[] NOT NULL", "created_at TIMESTAMPTZ"} {
		if !strings.Contains(string(b), want) {
			t.Errorf("books migration lacks %q", want)
		}
	}
}

func TestDialect(t *testing.T) {
	tests := []struct {
		driver  string
		want    string
		wantErr bool
	}{
		{"pgx", "postgres", false},
		{"postgres", "postgres", false},
		{"sqlite", "sqlite", false},
		{"mysql", "", true},
	}

	for _, tt := range tests {
		got, err := Dialect(tt.driver)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("Dialect(%q) = %q, %v", tt.driver, got, err)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := Run(ctx, db, nil); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	var applied []int64
	if err := db.Select(&applied, "SELECT version_id FROM "+VersionTable+" WHERE version_id > 0 ORDER BY version_id"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int64{1, 2}, applied); diff != "" {
		t.Errorf("applied mismatch (-want +got):\n%s", diff)
	}

	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM books"); err != nil {
		t.Fatalf("books table missing: %v", err)
	}
}

func TestRunLeavesNothingPending(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	if err := Run(ctx, db, nil); err != nil {
		t.Fatal(err)
	}

	provider, err := newProvider(db)
	if err != nil {
		t.Fatal(err)
	}

	pending, err := provider.HasPending(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if pending {
		t.Error("migrations still pending after Run")
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, st := range statuses {
		if st.State != goose.StateApplied {
			t.Errorf("version %d state = %s", st.Source.Version, st.State)
		}
	}
}

func TestUnknownDriverHasNoProvider(t *testing.T) {
	if _, err := newProvider(sqlx.NewDb(nil, "mysql")); err == nil {
		t.Error("expected an error for mysql")
	}
}
