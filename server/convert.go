package server

import (
	"time"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"

	"github.com/likearthian/galadriel/book"
	pb "github.com/likearthian/galadriel/proto/galadriel"
	"github.com/likearthian/galadriel/store"
)

// PublishedDateLayout is the wire format of published_date.
const PublishedDateLayout = "2006-01-02 15:04:05"

func toBookForCreate(req *pb.CreateBookRequest) (book.BookForCreate, error) {
	editionID, err := parseOptionalID(req.EditionId)
	if err != nil {
		return book.BookForCreate{}, err
	}

	publishedDate, err := parseOptionalDate(req.PublishedDate)
	if err != nil {
		return book.BookForCreate{}, err
	}

	return book.BookForCreate{
		EditionID:      editionID,
		ExternalID:     null.StringFromPtr(req.ExternalId),
		ExternalSource: null.StringFromPtr(req.ExternalSource),
		Title:          req.Title,
		Authors:        req.Authors,
		Publisher:      null.StringFromPtr(req.Publisher),
		PublishedDate:  publishedDate,
		PublishedYear:  intFromPtr(req.PublishedYear),
		Description:    null.StringFromPtr(req.Description),
		Isbn10:         null.StringFromPtr(req.Isbn10),
		Isbn13:         null.StringFromPtr(req.Isbn13),
		PageCount:      intFromPtr(req.PageCount),
		PrintType:      null.StringFromPtr(req.PrintType),
		Categories:     req.Categories,
		MaturityRating: null.StringFromPtr(req.MaturityRating),
		Language:       null.StringFromPtr(req.Language),
		ImageURL:       null.StringFromPtr(req.ImageUrl),
		ImageURLSmall:  null.StringFromPtr(req.ImageUrlSmall),
		PreviewLink:    null.StringFromPtr(req.PreviewLink),
	}, nil
}

func toBookForUpdate(req *pb.UpdateBookRequest) (book.BookForUpdate, error) {
	editionID, err := parseOptionalID(req.EditionId)
	if err != nil {
		return book.BookForUpdate{}, err
	}

	publishedDate, err := parseOptionalDate(req.PublishedDate)
	if err != nil {
		return book.BookForUpdate{}, err
	}

	return book.BookForUpdate{
		EditionID:      editionID,
		ExternalID:     null.StringFromPtr(req.ExternalId),
		ExternalSource: null.StringFromPtr(req.ExternalSource),
		Title:          null.StringFromPtr(req.Title),
		Authors:        stringList(req.Authors),
		Publisher:      null.StringFromPtr(req.Publisher),
		PublishedDate:  publishedDate,
		PublishedYear:  intFromPtr(req.PublishedYear),
		Description:    null.StringFromPtr(req.Description),
		Isbn10:         null.StringFromPtr(req.Isbn10),
		Isbn13:         null.StringFromPtr(req.Isbn13),
		PageCount:      intFromPtr(req.PageCount),
		PrintType:      null.StringFromPtr(req.PrintType),
		Categories:     stringList(req.Categories),
		MaturityRating: null.StringFromPtr(req.MaturityRating),
		Language:       null.StringFromPtr(req.Language),
		ImageURL:       null.StringFromPtr(req.ImageUrl),
		ImageURLSmall:  null.StringFromPtr(req.ImageUrlSmall),
		PreviewLink:    null.StringFromPtr(req.PreviewLink),
	}, nil
}

func toBookMessage(b book.Book) *pb.Book {
	msg := &pb.Book{
		Id:             b.ID.String(),
		CreatedAt:      b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      b.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ExternalId:     b.ExternalID.Ptr(),
		ExternalSource: b.ExternalSource.Ptr(),
		Title:          b.Title,
		Authors:        b.Authors,
		Publisher:      b.Publisher.Ptr(),
		PublishedYear:  int32Ptr(b.PublishedYear),
		Description:    b.Description.Ptr(),
		Isbn10:         b.Isbn10.Ptr(),
		Isbn13:         b.Isbn13.Ptr(),
		PageCount:      int32Ptr(b.PageCount),
		PrintType:      b.PrintType.Ptr(),
		Categories:     b.Categories,
		MaturityRating: b.MaturityRating.Ptr(),
		Language:       b.Language.Ptr(),
		ImageUrl:       b.ImageURL.Ptr(),
		ImageUrlSmall:  b.ImageURLSmall.Ptr(),
		PreviewLink:    b.PreviewLink.Ptr(),
	}

	if b.EditionID.Valid {
		s := b.EditionID.UUID.String()
		msg.EditionId = &s
	}

	if b.PublishedDate.Valid {
		s := b.PublishedDate.Time.UTC().Format(PublishedDateLayout)
		msg.PublishedDate = &s
	}

	return msg
}

// stringList keeps an absent list nil and a present one non-nil.
func stringList(l *pb.StringList) []string {
	if l == nil {
		return nil
	}
	if l.Values == nil {
		return []string{}
	}

	return l.Values
}

func parseID(s string) (uuid.UUID, error) {
	return store.ParseIdentifier(s)
}

func parseOptionalID(s *string) (uuid.NullUUID, error) {
	if s == nil {
		return uuid.NullUUID{}, nil
	}

	id, err := store.ParseIdentifier(*s)
	if err != nil {
		return uuid.NullUUID{}, err
	}

	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

func parseOptionalDate(s *string) (null.Time, error) {
	if s == nil {
		return null.Time{}, nil
	}

	ts, err := store.ParseTimestamp(PublishedDateLayout, *s)
	if err != nil {
		return null.Time{}, err
	}

	return null.TimeFrom(ts), nil
}

func intFromPtr(i *int32) null.Int {
	if i == nil {
		return null.Int{}
	}

	return null.IntFrom(int64(*i))
}

func int32Ptr(i null.Int) *int32 {
	if !i.Valid {
		return nil
	}

	v := int32(i.Int64)
	return &v
}
