// Package abi contains every piece of the repository that touches raw memory.
//
// # Design Principles
//
//  1. Isolation: ALL unsafe, purego and golang.org/x/sys code lives in this
//     package. pkg/com/internalcheck enforces this.
//
//  2. Minimal Surface: Expose vtable calls, callback trampolines, the BSTR
//     allocator and an object registry. Nothing domain specific.
//
//  3. Status Codes: Calls return the raw 32-bit status. Translation into Go
//     errors happens in pkg/com.
//
//  4. Memory Management: Native code never sees Go heap memory. Headers,
//     vtables, call scratch and off-Windows BSTRs come from Alloc, which maps
//     pages with mmap or VirtualAlloc, so uintptr round trips stay valid
//     under -race and checkptr.
//
// # Memory Layout
//
// A binary object is a pointer to a struct whose first word is a pointer to
// an array of function pointers (the vtable). Objects implemented in Go use
// Header for that first word and are tracked by Registry so trampolines can
// map the incoming this pointer back to Go state.
//
// # Threading
//
// Trampolines may be entered from threads the Go program did not create.
// Registry and Alloc are safe for concurrent use; everything else is
// stateless.
package abi
