// Package waproto contains the generated end-to-end message and device
// identity types, with helpers for building and inspecting encoded messages.
package waproto

//go:generate protoc --go_out=. --go_opt=paths=source_relative WAE2E.proto WAAdv.proto
