// Package galadriel holds the protobuf contract of the Galadriel service.
package galadriel

//go:generate protoc -I . --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative galadriel.proto
