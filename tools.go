//go:build tools

package tools

// This file tracks the CLI tools used during development.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: go:generate mocks in *_mock_test.go
// - github.com/pressly/goose/v3/cmd/goose: declared as a tool in go.mod
