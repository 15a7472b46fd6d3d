// Package binarypb contains the generated protobuf frame type for the node
// tree carried over the socket.
package binarypb

//go:generate protoc --go_out=. --go_opt=paths=source_relative Node.proto
