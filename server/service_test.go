package server

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/likearthian/galadriel/book"
	pb "github.com/likearthian/galadriel/proto/galadriel"
	"github.com/likearthian/galadriel/store"
)

type fakeBooks struct {
	err     error
	created book.BookForCreate
	updated book.BookForUpdate
	id      uuid.UUID
	books   []book.Book
	calls   int
}

func (f *fakeBooks) Create(_ context.Context, bfc book.BookForCreate) (uuid.UUID, error) {
	f.calls++
	f.created = bfc
	return f.id, f.err
}

func (f *fakeBooks) Get(_ context.Context, id uuid.UUID) (book.Book, error) {
	f.calls++
	f.id = id
	if f.err != nil {
		return book.Book{}, f.err
	}
	return f.books[0], nil
}

func (f *fakeBooks) GetAll(context.Context) ([]book.Book, error) {
	f.calls++
	return f.books, f.err
}

func (f *fakeBooks) Update(_ context.Context, bfu book.BookForUpdate, id uuid.UUID) error {
	f.calls++
	f.updated = bfu
	f.id = id
	return f.err
}

func (f *fakeBooks) Delete(_ context.Context, id uuid.UUID) error {
	f.calls++
	f.id = id
	return f.err
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"validation", book.ErrTitleNotSet, codes.InvalidArgument},
		{"parse", &store.ParseError{Kind: store.KindIdentifier, Input: "x"}, codes.InvalidArgument},
		{"decode", &store.DecodeError{Kind: store.KindTimestamp, Err: errors.New("bad")}, codes.Internal},
		{"not found", fmt.Errorf("get book: %w", &store.EntityNotFoundError{Table: "books", ID: uuid.New()}), codes.NotFound},
		{"persistence", &store.PersistenceError{Op: "insert", Table: "books", Err: errors.New("boom")}, codes.Internal},
		{"duplicate key", fmt.Errorf("create book: %w", store.ErrKeyAlreadyExists), codes.Internal},
		{"canceled", context.Canceled, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFromError(tt.err).Code(); got != tt.want {
				t.Errorf("code = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStatusFromErrorHidesInternalCause(t *testing.T) {
	st := statusFromError(errors.New("password authentication failed for user galadriel"))
	if st.Message() != "internal error" {
		t.Errorf("message = %q", st.Message())
	}
}

func TestServiceCorruptStoredRowIsInternal(t *testing.T) {
	_, decodeErr := book.FromRow(store.Row{
		"id":         uuid.NewString(),
		"created_at": "not a timestamp",
	})
	if decodeErr == nil {
		t.Fatal("FromRow accepted a corrupt created_at")
	}

	fake := &fakeBooks{err: decodeErr}
	svc := NewService(fake)

	_, err := svc.GetBook(context.Background(), &pb.GetBookRequest{BookId: uuid.NewString()})
	st := status.Convert(err)
	if st.Code() != codes.Internal {
		t.Errorf("code = %s, want Internal", st.Code())
	}
	if st.Message() != "internal error" {
		t.Errorf("message = %q, stored data must not leak to the caller", st.Message())
	}
}

func TestServiceCreateBook(t *testing.T) {
	fake := &fakeBooks{id: uuid.New()}
	svc := NewService(fake)

	resp, err := svc.CreateBook(context.Background(), &pb.CreateBookRequest{
		Title:   "Novecento",
		Authors: []string{"Baricco Alessandro"},
	})
	if err != nil {
		t.Fatalf("CreateBook failed: %v", err)
	}
	if !resp.Success || resp.BookId != fake.id.String() {
		t.Errorf("resp = %+v", resp)
	}
	if fake.created.Title != "Novecento" {
		t.Errorf("controller got title %q", fake.created.Title)
	}
}

func TestServiceRejectsMalformedIDsBeforeController(t *testing.T) {
	fake := &fakeBooks{}
	svc := NewService(fake)
	ctx := context.Background()

	calls := map[string]func() error{
		"GetBook": func() error {
			_, err := svc.GetBook(ctx, &pb.GetBookRequest{BookId: "nope"})
			return err
		},
		"UpdateBook": func() error {
			_, err := svc.UpdateBook(ctx, &pb.UpdateBookRequest{BookId: "nope"})
			return err
		},
		"DeleteBook": func() error {
			_, err := svc.DeleteBook(ctx, &pb.DeleteBookRequest{BookId: "nope"})
			return err
		},
		"CreateBook with bad date": func() error {
			_, err := svc.CreateBook(ctx, &pb.CreateBookRequest{Title: "t", Authors: []string{"a"}, PublishedDate: ptr("yesterday")})
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			if code := status.Code(call()); code != codes.InvalidArgument {
				t.Errorf("code = %s, want InvalidArgument", code)
			}
		})
	}

	if fake.calls != 0 {
		t.Errorf("controller called %d times", fake.calls)
	}
}

func TestServicePropagatesControllerErrors(t *testing.T) {
	fake := &fakeBooks{err: &store.EntityNotFoundError{Table: "books", ID: uuid.New()}}
	svc := NewService(fake)

	_, err := svc.DeleteBook(context.Background(), &pb.DeleteBookRequest{BookId: uuid.NewString()})
	if code := status.Code(err); code != codes.NotFound {
		t.Errorf("code = %s, want NotFound", code)
	}
}

func TestServiceListBooksEmpty(t *testing.T) {
	svc := NewService(&fakeBooks{books: []book.Book{}})

	resp, err := svc.ListBooks(context.Background(), &pb.ListBooksRequest{})
	if err != nil {
		t.Fatalf("ListBooks failed: %v", err)
	}
	if resp.Books == nil || len(resp.Books) != 0 {
		t.Errorf("books = %#v, want empty non-nil", resp.Books)
	}
}

func TestServiceHealthCheck(t *testing.T) {
	resp, err := NewService(&fakeBooks{}).HealthCheck(context.Background(), &pb.HealthCheckRequest{})
	if err != nil || !resp.Success {
		t.Errorf("HealthCheck = %+v, %v", resp, err)
	}
}
