// Package signalpb contains generated protobuf types for Signal protocol
// messages and the locally persisted session and key records.
package signalpb

//go:generate protoc --go_out=. --go_opt=paths=source_relative WhisperTextProtocol.proto LocalStorageProtocol.proto
