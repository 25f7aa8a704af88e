package server

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/likearthian/galadriel/book"
	"github.com/likearthian/galadriel/store"
)

// statusFromError maps domain and store errors onto gRPC status codes.
// Internal errors carry a generic message; the cause is only logged.
func statusFromError(err error) *status.Status {
	switch {
	case errors.Is(err, book.ErrValidation), errors.Is(err, store.ErrParse):
		return status.New(codes.InvalidArgument, err.Error())
	case errors.Is(err, store.ErrNotFound):
		return status.New(codes.NotFound, err.Error())
	default:
		return status.New(codes.Internal, "internal error")
	}
}
