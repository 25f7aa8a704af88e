package book

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"

	"github.com/likearthian/galadriel/store"
)

// BookForCreate carries the fields a caller may supply for a new book.
type BookForCreate struct {
	EditionID      uuid.NullUUID
	ExternalID     null.String
	ExternalSource null.String
	Title          string
	Authors        []string
	Publisher      null.String
	PublishedDate  null.Time
	PublishedYear  null.Int
	Description    null.String
	Isbn10         null.String
	Isbn13         null.String
	PageCount      null.Int
	PrintType      null.String
	Categories     []string
	MaturityRating null.String
	Language       null.String
	ImageURL       null.String
	ImageURLSmall  null.String
	PreviewLink    null.String
}

// BookForUpdate is a sparse change set. Only fields that are set end up
// in the UPDATE statement; updated_at is always written. A nil slice
// leaves Authors or Categories untouched.
type BookForUpdate struct {
	UpdatedAt      time.Time
	EditionID      uuid.NullUUID
	ExternalID     null.String
	ExternalSource null.String
	Title          null.String
	Authors        []string
	Publisher      null.String
	PublishedDate  null.Time
	PublishedYear  null.Int
	Description    null.String
	Isbn10         null.String
	Isbn13         null.String
	PageCount      null.Int
	PrintType      null.String
	Categories     []string
	MaturityRating null.String
	Language       null.String
	ImageURL       null.String
	ImageURLSmall  null.String
	PreviewLink    null.String
}

// Validate rejects updates that would blank a required field.
func (bfu BookForUpdate) Validate() error {
	if bfu.Title.Valid && bfu.Title.String == "" {
		return ErrTitleNotSet
	}
	if bfu.Authors != nil && len(bfu.Authors) == 0 {
		return ErrAuthorsNotSet
	}
	if err := checkInt32("published_year", bfu.PublishedYear); err != nil {
		return err
	}

	return checkInt32("page_count", bfu.PageCount)
}

func (bfu BookForUpdate) Describe() ([]string, []store.Value) {
	c := columns{}
	c.add("updated_at", store.Timestamp(bfu.UpdatedAt))
	c.addUUID("edition_id", bfu.EditionID)
	c.addString("external_id", bfu.ExternalID)
	c.addString("external_source", bfu.ExternalSource)
	c.addString("title", bfu.Title)
	if bfu.Authors != nil {
		c.add("authors", store.TextArray(bfu.Authors))
	}
	c.addString("publisher", bfu.Publisher)
	c.addTime("published_date", bfu.PublishedDate)
	c.addInt("published_year", bfu.PublishedYear)
	c.addString("description", bfu.Description)
	c.addString("isbn10", bfu.Isbn10)
	c.addString("isbn13", bfu.Isbn13)
	c.addInt("page_count", bfu.PageCount)
	c.addString("print_type", bfu.PrintType)
	if bfu.Categories != nil {
		c.add("categories", store.TextArray(bfu.Categories))
	}
	c.addString("maturity_rating", bfu.MaturityRating)
	c.addString("language", bfu.Language)
	c.addString("image_url", bfu.ImageURL)
	c.addString("image_url_small", bfu.ImageURLSmall)
	c.addString("preview_link", bfu.PreviewLink)

	return c.names, c.values
}

func checkInt32(field string, v null.Int) error {
	if v.Valid && (v.Int64 < math.MinInt32 || v.Int64 > math.MaxInt32) {
		return fmt.Errorf("%w: %s %d is out of range", ErrValidation, field, v.Int64)
	}

	return nil
}

// columns accumulates a column description in order.
type columns struct {
	names  []string
	values []store.Value
}

func (c *columns) add(name string, v store.Value) {
	c.names = append(c.names, name)
	c.values = append(c.values, v)
}

func (c *columns) addString(name string, v null.String) {
	if v.Valid {
		c.add(name, store.Text(v.String))
	}
}

func (c *columns) addTime(name string, v null.Time) {
	if v.Valid {
		c.add(name, store.Timestamp(v.Time))
	}
}

func (c *columns) addInt(name string, v null.Int) {
	if v.Valid {
		c.add(name, store.Int32(int32(v.Int64)))
	}
}

func (c *columns) addUUID(name string, v uuid.NullUUID) {
	if v.Valid {
		c.add(name, store.Identifier(v.UUID))
	}
}
