package book

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/likearthian/galadriel/store"
)

// Table is the books table. It is the only table this package touches.
var Table = store.TableDef{Name: "books", KeyField: "id"}

type ControllerOption func(c *Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithClock replaces time.Now for stamping created_at and updated_at.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		c.now = now
	}
}

// Controller validates book input and runs it through the store.
type Controller struct {
	repo   *store.Repository[Book]
	logger *slog.Logger
	now    func() time.Time
}

func NewController(engine *store.Engine, options ...ControllerOption) *Controller {
	c := &Controller{
		repo:   store.NewRepository[Book](engine, Table, FromRow),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, op := range options {
		op(c)
	}

	c.logger = c.logger.With("component", "book")
	return c
}

// Create validates bfc, stores the new book and returns its id.
func (c *Controller) Create(ctx context.Context, bfc BookForCreate) (uuid.UUID, error) {
	b, err := New(bfc, c.now())
	if err != nil {
		return uuid.Nil, err
	}

	created, err := c.repo.Insert(ctx, b)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create book: %w", err)
	}

	c.logger.DebugContext(ctx, "book created", "id", created.ID)
	return created.ID, nil
}

func (c *Controller) Get(ctx context.Context, id uuid.UUID) (Book, error) {
	b, err := c.repo.Get(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("get book: %w", err)
	}

	return b, nil
}

func (c *Controller) GetAll(ctx context.Context) ([]Book, error) {
	books, err := c.repo.Select(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all books: %w", err)
	}

	return books, nil
}

// Update applies bfu to the book with the given id. A zero UpdatedAt is
// stamped with the controller clock.
func (c *Controller) Update(ctx context.Context, bfu BookForUpdate, id uuid.UUID) error {
	if err := bfu.Validate(); err != nil {
		return err
	}

	if bfu.UpdatedAt.IsZero() {
		bfu.UpdatedAt = c.now().UTC().Truncate(time.Microsecond)
	}

	if err := c.repo.Update(ctx, id, bfu); err != nil {
		return fmt.Errorf("update book: %w", err)
	}

	c.logger.DebugContext(ctx, "book updated", "id", id)
	return nil
}

func (c *Controller) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	c.logger.DebugContext(ctx, "book deleted", "id", id)
	return nil
}
