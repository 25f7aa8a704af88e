package book

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"

	"github.com/likearthian/galadriel/store"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrTitleNotSet   = fmt.Errorf("%w: book title is not set", ErrValidation)
	ErrAuthorsNotSet = fmt.Errorf("%w: book authors are not set", ErrValidation)
)

// Book is a persisted book row. Optional columns keep SQL NULL as an
// invalid null value instead of collapsing it into a zero value.
type Book struct {
	ID             uuid.UUID     `json:"id"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	EditionID      uuid.NullUUID `json:"edition_id"`
	ExternalID     null.String   `json:"external_id"`
	ExternalSource null.String   `json:"external_source"`
	Title          string        `json:"title"`
	Authors        []string      `json:"authors"`
	Publisher      null.String   `json:"publisher"`
	PublishedDate  null.Time     `json:"published_date"`
	PublishedYear  null.Int      `json:"published_year"`
	Description    null.String   `json:"description"`
	Isbn10         null.String   `json:"isbn10"`
	Isbn13         null.String   `json:"isbn13"`
	PageCount      null.Int      `json:"page_count"`
	PrintType      null.String   `json:"print_type"`
	Categories     []string      `json:"categories"`
	MaturityRating null.String   `json:"maturity_rating"`
	Language       null.String   `json:"language"`
	ImageURL       null.String   `json:"image_url"`
	ImageURLSmall  null.String   `json:"image_url_small"`
	PreviewLink    null.String   `json:"preview_link"`
}

// New validates bfc and builds a fresh book with a new id and both
// timestamps set to now.
func New(bfc BookForCreate, now time.Time) (Book, error) {
	if bfc.Title == "" {
		return Book{}, ErrTitleNotSet
	}
	if len(bfc.Authors) == 0 {
		return Book{}, ErrAuthorsNotSet
	}
	if err := checkInt32("published_year", bfc.PublishedYear); err != nil {
		return Book{}, err
	}
	if err := checkInt32("page_count", bfc.PageCount); err != nil {
		return Book{}, err
	}

	now = now.UTC().Truncate(time.Microsecond)

	return Book{
		ID:             uuid.New(),
		CreatedAt:      now,
		UpdatedAt:      now,
		EditionID:      bfc.EditionID,
		ExternalID:     bfc.ExternalID,
		ExternalSource: bfc.ExternalSource,
		Title:          bfc.Title,
		Authors:        append([]string(nil), bfc.Authors...),
		Publisher:      bfc.Publisher,
		PublishedDate:  bfc.PublishedDate,
		PublishedYear:  bfc.PublishedYear,
		Description:    bfc.Description,
		Isbn10:         bfc.Isbn10,
		Isbn13:         bfc.Isbn13,
		PageCount:      bfc.PageCount,
		PrintType:      bfc.PrintType,
		Categories:     append([]string(nil), bfc.Categories...),
		MaturityRating: bfc.MaturityRating,
		Language:       bfc.Language,
		ImageURL:       bfc.ImageURL,
		ImageURLSmall:  bfc.ImageURLSmall,
		PreviewLink:    bfc.PreviewLink,
	}, nil
}

// Describe lists the mandatory columns followed by every optional
// column that holds a value. Unset optionals are left out so they are
// stored as NULL.
func (b Book) Describe() ([]string, []store.Value) {
	c := columns{}
	c.add("id", store.Identifier(b.ID))
	c.add("created_at", store.Timestamp(b.CreatedAt))
	c.add("updated_at", store.Timestamp(b.UpdatedAt))
	c.addUUID("edition_id", b.EditionID)
	c.addString("external_id", b.ExternalID)
	c.addString("external_source", b.ExternalSource)
	c.add("title", store.Text(b.Title))
	c.add("authors", store.TextArray(b.Authors))
	c.addString("publisher", b.Publisher)
	c.addTime("published_date", b.PublishedDate)
	c.addInt("published_year", b.PublishedYear)
	c.addString("description", b.Description)
	c.addString("isbn10", b.Isbn10)
	c.addString("isbn13", b.Isbn13)
	c.addInt("page_count", b.PageCount)
	c.addString("print_type", b.PrintType)
	if b.Categories != nil {
		c.add("categories", store.TextArray(b.Categories))
	}
	c.addString("maturity_rating", b.MaturityRating)
	c.addString("language", b.Language)
	c.addString("image_url", b.ImageURL)
	c.addString("image_url_small", b.ImageURLSmall)
	c.addString("preview_link", b.PreviewLink)

	return c.names, c.values
}

// FromRow rebuilds a Book from a raw books row.
func FromRow(row store.Row) (Book, error) {
	rr := store.NewRowReader(row)

	var b Book
	b.ID, _ = rr.Identifier("id")
	b.CreatedAt, _ = rr.Timestamp("created_at")
	b.UpdatedAt, _ = rr.Timestamp("updated_at")
	b.EditionID = readUUID(rr, "edition_id")
	b.ExternalID = readString(rr, "external_id")
	b.ExternalSource = readString(rr, "external_source")
	b.Title, _ = rr.Text("title")
	b.Authors, _ = rr.TextArray("authors")
	b.Publisher = readString(rr, "publisher")
	b.PublishedDate = readTime(rr, "published_date")
	b.PublishedYear = readInt(rr, "published_year")
	b.Description = readString(rr, "description")
	b.Isbn10 = readString(rr, "isbn10")
	b.Isbn13 = readString(rr, "isbn13")
	b.PageCount = readInt(rr, "page_count")
	b.PrintType = readString(rr, "print_type")
	if categories, ok := rr.TextArray("categories"); ok {
		b.Categories = categories
	}
	b.MaturityRating = readString(rr, "maturity_rating")
	b.Language = readString(rr, "language")
	b.ImageURL = readString(rr, "image_url")
	b.ImageURLSmall = readString(rr, "image_url_small")
	b.PreviewLink = readString(rr, "preview_link")

	if err := rr.Err(); err != nil {
		return Book{}, fmt.Errorf("decode book: %w", err)
	}

	return b, nil
}

func readUUID(rr *store.RowReader, col string) uuid.NullUUID {
	id, ok := rr.Identifier(col)
	return uuid.NullUUID{UUID: id, Valid: ok}
}

func readString(rr *store.RowReader, col string) null.String {
	s, ok := rr.Text(col)
	return null.NewString(s, ok)
}

func readTime(rr *store.RowReader, col string) null.Time {
	ts, ok := rr.Timestamp(col)
	return null.NewTime(ts, ok)
}

func readInt(rr *store.RowReader, col string) null.Int {
	i, ok := rr.Int32(col)
	return null.NewInt(int64(i), ok)
}
