// Package internalcheck holds source-level policy tests for the module.
//
// The tests load the module's packages with golang.org/x/tools/go/packages
// and inspect their syntax and types. The package has no API; it exists so
// `go test ./...` enforces the boundaries below.
//
// # Native boundary
//
// Only internal/abi may import unsafe, purego or x/sys. Everything
// else reaches the component system through pkg/com.
//
// # Status codes
//
// Status values are compared through Failed and Succeeded, never against
// raw numbers, outside pkg/com itself.
//
// # Comment width
//
// Line comments in pkg/com, pkg/chatframe and cmd/chatctl wrap at 100
// columns.
package internalcheck
