package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jmoiron/sqlx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/testing/protocmp"
	_ "modernc.org/sqlite"

	"github.com/likearthian/galadriel/book"
	"github.com/likearthian/galadriel/migrations"
	pb "github.com/likearthian/galadriel/proto/galadriel"
	"github.com/likearthian/galadriel/store"
)

const (
	testAuthKey   = "x-galadriel-token"
	testAuthValue = "mellon"
)

func startServer(t *testing.T) pb.GaladrielClient {
	t.Helper()
	return pb.NewGaladrielClient(dialServer(t))
}

func dialServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := migrations.Run(context.Background(), db, logger); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctrl := book.NewController(store.NewEngine(db, store.WithLogger(logger)), book.WithLogger(logger))

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		LoggingInterceptor(logger),
		AuthInterceptor(testAuthKey, testAuthValue),
	))
	pb.RegisterGaladrielServer(srv, NewService(ctrl, WithLogger(logger)))

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func authed() context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), testAuthKey, testAuthValue)
}

func TestGRPCAuth(t *testing.T) {
	client := startServer(t)

	if _, err := client.HealthCheck(context.Background(), &pb.HealthCheckRequest{}); err != nil {
		t.Errorf("HealthCheck without token: %v", err)
	}

	_, err := client.ListBooks(context.Background(), &pb.ListBooksRequest{})
	if code := status.Code(err); code != codes.Unauthenticated {
		t.Errorf("no token: code = %s, want Unauthenticated", code)
	}

	ctx := metadata.AppendToOutgoingContext(context.Background(), testAuthKey, "wrong")
	_, err = client.ListBooks(ctx, &pb.ListBooksRequest{})
	if code := status.Code(err); code != codes.Unauthenticated {
		t.Errorf("wrong token: code = %s, want Unauthenticated", code)
	}
}

func TestGRPCBookLifecycle(t *testing.T) {
	client := startServer(t)
	ctx := authed()

	created, err := client.CreateBook(ctx, &pb.CreateBookRequest{
		Title:         "Novecento",
		Authors:       []string{"Baricco Alessandro"},
		PublishedDate: proto.String("1994-03-01 00:00:00"),
		Categories:    []string{"Theatre"},
	})
	if err != nil {
		t.Fatalf("CreateBook failed: %v", err)
	}
	if !created.Success {
		t.Fatal("CreateBook reported no success")
	}

	_, err = client.UpdateBook(ctx, &pb.UpdateBookRequest{
		BookId:    created.BookId,
		Title:     proto.String("Novecento - Un monologo"),
		Publisher: proto.String("Feltrinelli"),
		PageCount: proto.Int32(100),
		Language:  proto.String("it"),
	})
	if err != nil {
		t.Fatalf("UpdateBook failed: %v", err)
	}

	got, err := client.GetBook(ctx, &pb.GetBookRequest{BookId: created.BookId})
	if err != nil {
		t.Fatalf("GetBook failed: %v", err)
	}

	want := &pb.Book{
		Id:            created.BookId,
		Title:         "Novecento - Un monologo",
		Authors:       []string{"Baricco Alessandro"},
		Publisher:     proto.String("Feltrinelli"),
		PublishedDate: proto.String("1994-03-01 00:00:00"),
		PageCount:     proto.Int32(100),
		Categories:    []string{"Theatre"},
		Language:      proto.String("it"),
	}
	if diff := cmp.Diff(want, got.Book,
		protocmp.Transform(),
		protocmp.IgnoreFields(&pb.Book{}, "created_at", "updated_at"),
	); diff != "" {
		t.Errorf("book mismatch (-want +got):\n%s", diff)
	}

	list, err := client.ListBooks(ctx, &pb.ListBooksRequest{})
	if err != nil {
		t.Fatalf("ListBooks failed: %v", err)
	}
	if len(list.Books) != 1 {
		t.Fatalf("listed %d books, want 1", len(list.Books))
	}

	if _, err := client.DeleteBook(ctx, &pb.DeleteBookRequest{BookId: created.BookId}); err != nil {
		t.Fatalf("DeleteBook failed: %v", err)
	}

	_, err = client.GetBook(ctx, &pb.GetBookRequest{BookId: created.BookId})
	if code := status.Code(err); code != codes.NotFound {
		t.Errorf("GetBook after delete: code = %s, want NotFound", code)
	}

	_, err = client.DeleteBook(ctx, &pb.DeleteBookRequest{BookId: created.BookId})
	if code := status.Code(err); code != codes.NotFound {
		t.Errorf("second DeleteBook: code = %s, want NotFound", code)
	}
}

func TestGRPCInvalidArgument(t *testing.T) {
	client := startServer(t)
	ctx := authed()

	_, err := client.CreateBook(ctx, &pb.CreateBookRequest{Authors: []string{"Baricco Alessandro"}})
	if code := status.Code(err); code != codes.InvalidArgument {
		t.Errorf("missing title: code = %s, want InvalidArgument", code)
	}

	_, err = client.UpdateBook(ctx, &pb.UpdateBookRequest{BookId: "not-a-uuid", Title: proto.String("x")})
	if code := status.Code(err); code != codes.InvalidArgument {
		t.Errorf("bad id: code = %s, want InvalidArgument", code)
	}
}

func TestGRPCUpdateClearsListOnlyWhenPresent(t *testing.T) {
	client := startServer(t)
	ctx := authed()

	created, err := client.CreateBook(ctx, &pb.CreateBookRequest{
		Title:      "Seta",
		Authors:    []string{"Baricco Alessandro"},
		Categories: []string{"Fiction", "Romance"},
	})
	if err != nil {
		t.Fatalf("CreateBook failed: %v", err)
	}

	_, err = client.UpdateBook(ctx, &pb.UpdateBookRequest{
		BookId:     created.BookId,
		Categories: &pb.StringList{},
	})
	if err != nil {
		t.Fatalf("UpdateBook failed: %v", err)
	}

	got, err := client.GetBook(ctx, &pb.GetBookRequest{BookId: created.BookId})
	if err != nil {
		t.Fatalf("GetBook failed: %v", err)
	}
	if len(got.Book.Categories) != 0 {
		t.Errorf("categories = %v, want cleared", got.Book.Categories)
	}
	if diff := cmp.Diff([]string{"Baricco Alessandro"}, got.Book.Authors); diff != "" {
		t.Errorf("authors changed (-want +got):\n%s", diff)
	}
}

func TestWireFieldNumbers(t *testing.T) {
	tests := []struct {
		msg    proto.Message
		fields map[protoreflect.Name]protowire.Number
	}{
		{&pb.HealthCheckResponse{}, map[protoreflect.Name]protowire.Number{"success": 1}},
		{&pb.CreateBookRequest{}, map[protoreflect.Name]protowire.Number{
			"edition_id": 1, "external_id": 2, "external_source": 3, "title": 4,
			"authors": 5, "publisher": 6, "published_date": 7, "published_year": 8,
			"description": 9, "isbn10": 10, "isbn13": 11, "page_count": 12,
			"print_type": 13, "categories": 14, "maturity_rating": 15, "language": 16,
			"image_url": 17, "image_url_small": 18, "preview_link": 19,
		}},
		{&pb.CreateBookResponse{}, map[protoreflect.Name]protowire.Number{"success": 1}},
		{&pb.DeleteBookRequest{}, map[protoreflect.Name]protowire.Number{"book_id": 2}},
		{&pb.DeleteBookResponse{}, map[protoreflect.Name]protowire.Number{"success": 1}},
	}

	for _, tt := range tests {
		desc := tt.msg.ProtoReflect().Descriptor()
		t.Run(string(desc.Name()), func(t *testing.T) {
			for name, num := range tt.fields {
				fd := desc.Fields().ByName(name)
				if fd == nil {
					t.Errorf("field %s missing", name)
					continue
				}
				if fd.Number() != num {
					t.Errorf("%s = %d, want %d", name, fd.Number(), num)
				}
			}
		})
	}
}

func TestWireEncodingOfDeleteRequest(t *testing.T) {
	id := "0b5c7e4a-6f1e-4d5e-9a3b-2c1d0e9f8a7b"

	got, err := proto.Marshal(&pb.DeleteBookRequest{BookId: id})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := protowire.AppendTag(nil, 2, protowire.BytesType)
	want = protowire.AppendString(want, id)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encoding mismatch (-want +got):\n%s", diff)
	}
}

func TestGRPCAcceptsPlainProtobufCaller(t *testing.T) {
	conn := dialServer(t)

	in := protowire.AppendTag(nil, 4, protowire.BytesType)
	in = protowire.AppendString(in, "Oceano mare")
	in = protowire.AppendTag(in, 5, protowire.BytesType)
	in = protowire.AppendString(in, "Baricco Alessandro")

	req := &pb.CreateBookRequest{}
	if err := proto.Unmarshal(in, req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	resp := &pb.CreateBookResponse{}
	if err := conn.Invoke(authed(), pb.Galadriel_CreateBook_FullMethodName, req, resp); err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if !resp.Success || resp.BookId == "" {
		t.Errorf("resp = %v", resp)
	}
}
