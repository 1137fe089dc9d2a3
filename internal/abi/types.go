package abi

import (
	"errors"
	"fmt"
)

// ErrNotBuilt reports that the native call layer is unavailable on the
// current GOOS/GOARCH.
var ErrNotBuilt = errors.New("chatframe/internal/abi: native call layer not built")

// Status codes shared with the component system. Values are the canonical
// HRESULT bit patterns.
const (
	SOK                  int32 = 0
	SFalse               int32 = 1
	ENotImpl             int32 = -2147467263 // 0x80004001
	ENoInterface         int32 = -2147467262 // 0x80004002
	EPointer             int32 = -2147467261 // 0x80004003
	EFail                int32 = -2147467259 // 0x80004005
	EUnexpected          int32 = -2147418113 // 0x8000FFFF
	EInvalidArg          int32 = -2147024809 // 0x80070057
	ClassNotAvailable    int32 = -2147221231 // 0x80040111
	ClassNotRegistered   int32 = -2147221164 // 0x80040154
	ConnectNoConnection  int32 = -2147220992 // 0x80040200
	ConnectAdviseLimit   int32 = -2147220991 // 0x80040201
	ConnectCannotConnect int32 = -2147220990 // 0x80040202
)

// DispIDUnknown is written into GetIDsOfNames output for every name.
const DispIDUnknown int32 = -1

// Variant type tags.
const (
	VTEmpty uint16 = 0
	VTI4    uint16 = 3
	VTBSTR  uint16 = 8
	VTBool  uint16 = 11
	VTByRef uint16 = 0x4000
)

// DispatchMethod is the wFlags value for a method invocation.
const DispatchMethod = 1

// GUID mirrors the in-memory layout of a 128-bit class or interface id.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// String renders the registry form, e.g. {00000000-0000-0000-C000-000000000046}.
func (g GUID) String() string {
	return fmt.Sprintf("{%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X}",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// IsZero reports whether g is the null GUID.
func (g GUID) IsZero() bool { return g == GUID{} }

// Variant mirrors VARIANT: a 16-bit type tag, three reserved words and a
// union wide enough for two pointers (16 bytes on 32-bit, 24 on 64-bit).
type Variant struct {
	VT  uint16
	_   [3]uint16
	Val uintptr
	_   uintptr
}

// DispParams mirrors DISPPARAMS. Args points at NArgs Variants stored in
// reverse positional order.
type DispParams struct {
	Args       uintptr
	NamedArgs  uintptr
	NArgs      uint32
	NNamedArgs uint32
}
