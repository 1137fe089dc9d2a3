// Package com bridges Go code and externally registered binary components
// that follow the COM object model: reference-counted objects whose first
// word points at a table of function pointers.
//
// The package offers four pieces:
//
//   - Handle, a typed wrapper over a raw interface pointer;
//   - the property accessor protocol (GetScalar/PutScalar, GetString/PutString
//     and the Property/TextProperty descriptors) that turns vtable slots into
//     get/set calls;
//   - Resolver, which instantiates a class and negotiates an interface;
//   - EventSink and Advise, which let a component call back into Go through
//     the late-bound IDispatch::Invoke entry.
//
// Every call into a component is synchronous. EventSink handlers may run on
// threads the Go program did not create and must do their own locking.
//
// All raw memory access lives in internal/abi; this package never imports
// unsafe.
package com
