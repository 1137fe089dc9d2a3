package com

import "github.com/ircx/chatframe-go/internal/abi"

// takeString converts a BSTR produced by a successful getter into a Go
// string and frees it. A null pointer is the empty string.
func takeString(raw uintptr) string {
	return abi.TakeString(raw)
}

// lendString allocates a BSTR for one outbound call. The returned release
// func must run after the call returns; the callee only borrows the value.
// A nil s yields a null pointer when nullable is set and ErrInvalidArgument
// otherwise.
func lendString(op string, s *string, nullable bool) (uintptr, func(), error) {
	if s == nil {
		if nullable {
			return 0, func() {}, nil
		}
		return 0, nil, opError(op, ErrInvalidArgument)
	}
	p := abi.AllocString(*s)
	if p == 0 {
		return 0, nil, &Error{Op: op, Status: HRESULT(abi.EFail), Err: ErrBoundaryCallFailed}
	}
	return p, func() { abi.FreeString(p) }, nil
}

// borrowString decodes a BSTR owned by someone else, such as an Invoke
// argument.
func borrowString(raw uintptr) string {
	return abi.ReadString(raw)
}
