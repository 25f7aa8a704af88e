package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/likearthian/galadriel/book"
	pb "github.com/likearthian/galadriel/proto/galadriel"
)

// BookService is the book controller as seen by the transport.
type BookService interface {
	Create(ctx context.Context, bfc book.BookForCreate) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (book.Book, error)
	GetAll(ctx context.Context) ([]book.Book, error)
	Update(ctx context.Context, bfu book.BookForUpdate, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceOption func(s *Service)

func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// Service implements pb.GaladrielServer on top of a BookService.
type Service struct {
	pb.UnimplementedGaladrielServer

	books  BookService
	logger *slog.Logger
}

var _ pb.GaladrielServer = (*Service)(nil)

func NewService(books BookService, options ...ServiceOption) *Service {
	s := &Service{
		books:  books,
		logger: slog.Default(),
	}
	for _, op := range options {
		op(s)
	}

	s.logger = s.logger.With("component", "server")
	return s
}

func (s *Service) HealthCheck(ctx context.Context, _ *pb.HealthCheckRequest) (*pb.HealthCheckResponse, error) {
	return &pb.HealthCheckResponse{Success: true}, nil
}

func (s *Service) CreateBook(ctx context.Context, req *pb.CreateBookRequest) (*pb.CreateBookResponse, error) {
	bfc, err := toBookForCreate(req)
	if err != nil {
		return nil, s.fail(ctx, "CreateBook", err)
	}

	id, err := s.books.Create(ctx, bfc)
	if err != nil {
		return nil, s.fail(ctx, "CreateBook", err)
	}

	return &pb.CreateBookResponse{Success: true, BookId: id.String()}, nil
}

func (s *Service) GetBook(ctx context.Context, req *pb.GetBookRequest) (*pb.GetBookResponse, error) {
	id, err := parseID(req.BookId)
	if err != nil {
		return nil, s.fail(ctx, "GetBook", err)
	}

	b, err := s.books.Get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "GetBook", err)
	}

	return &pb.GetBookResponse{Book: toBookMessage(b)}, nil
}

func (s *Service) ListBooks(ctx context.Context, _ *pb.ListBooksRequest) (*pb.ListBooksResponse, error) {
	books, err := s.books.GetAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, "ListBooks", err)
	}

	resp := &pb.ListBooksResponse{Books: make([]*pb.Book, 0, len(books))}
	for _, b := range books {
		resp.Books = append(resp.Books, toBookMessage(b))
	}

	return resp, nil
}

func (s *Service) UpdateBook(ctx context.Context, req *pb.UpdateBookRequest) (*pb.UpdateBookResponse, error) {
	id, err := parseID(req.BookId)
	if err != nil {
		return nil, s.fail(ctx, "UpdateBook", err)
	}

	bfu, err := toBookForUpdate(req)
	if err != nil {
		return nil, s.fail(ctx, "UpdateBook", err)
	}

	if err := s.books.Update(ctx, bfu, id); err != nil {
		return nil, s.fail(ctx, "UpdateBook", err)
	}

	return &pb.UpdateBookResponse{Success: true}, nil
}

func (s *Service) DeleteBook(ctx context.Context, req *pb.DeleteBookRequest) (*pb.DeleteBookResponse, error) {
	id, err := parseID(req.BookId)
	if err != nil {
		return nil, s.fail(ctx, "DeleteBook", err)
	}

	if err := s.books.Delete(ctx, id); err != nil {
		return nil, s.fail(ctx, "DeleteBook", err)
	}

	return &pb.DeleteBookResponse{Success: true}, nil
}

func (s *Service) fail(ctx context.Context, method string, err error) error {
	st := statusFromError(err)
	s.logger.WarnContext(ctx, "request failed", "method", method, "code", st.Code().String(), "error", err)
	return st.Err()
}
