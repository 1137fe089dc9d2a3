package com

import (
	"errors"
	"fmt"
)

var (
	// ErrBoundaryCallFailed indicates a vtable entry returned a failure status.
	ErrBoundaryCallFailed = errors.New("com: boundary call failed")

	// ErrInvalidArgument indicates a required value was not supplied.
	ErrInvalidArgument = errors.New("com: invalid argument")

	// ErrComponentCreationFailed indicates the class is unregistered or
	// refused construction.
	ErrComponentCreationFailed = errors.New("com: component creation failed")

	// ErrInterfaceNotSupported indicates QueryInterface refused the id.
	ErrInterfaceNotSupported = errors.New("com: interface not supported")

	// ErrNullHandle indicates an operation on an empty Handle.
	ErrNullHandle = errors.New("com: null handle")

	// ErrNotBuilt indicates the native call layer is unavailable on this
	// platform.
	ErrNotBuilt = errors.New("com: native call layer not built for this platform")
)

// Error carries the failed operation and, when the failure came from the
// component, its status code.
type Error struct {
	Op     string  // Operation that failed
	Status HRESULT // Status returned by the component, zero when not applicable
	Err    error   // Underlying error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("com.%s: %v (status %s)", e.Op, e.Err, e.Status)
	}
	return fmt.Sprintf("com.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusOf extracts the component status from err, if any.
func StatusOf(err error) (HRESULT, bool) {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status, true
	}
	return 0, false
}

func opError(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// check turns a raw status into an error wrapping kind.
func check(op string, hr int32, kind error) error {
	if HRESULT(hr).Succeeded() {
		return nil
	}
	return &Error{Op: op, Status: HRESULT(hr), Err: kind}
}
