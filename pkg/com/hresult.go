package com

import (
	"fmt"

	"github.com/ircx/chatframe-go/internal/abi"
)

// HRESULT is the 32-bit status returned by every vtable entry. Negative
// values are failures; zero and positive values are success codes.
type HRESULT int32

// Status codes the binding produces or inspects.
const (
	SOK                HRESULT = HRESULT(abi.SOK)
	SFalse             HRESULT = HRESULT(abi.SFalse)
	ENotImpl           HRESULT = HRESULT(abi.ENotImpl)
	ENoInterface       HRESULT = HRESULT(abi.ENoInterface)
	EPointer           HRESULT = HRESULT(abi.EPointer)
	EFail              HRESULT = HRESULT(abi.EFail)
	EUnexpected        HRESULT = HRESULT(abi.EUnexpected)
	EInvalidArg        HRESULT = HRESULT(abi.EInvalidArg)
	ClassNotAvailable  HRESULT = HRESULT(abi.ClassNotAvailable)
	ClassNotRegistered HRESULT = HRESULT(abi.ClassNotRegistered)
	ConnectNoConn      HRESULT = HRESULT(abi.ConnectNoConnection)
)

// Failed reports whether hr is a failure code.
func (hr HRESULT) Failed() bool { return hr < 0 }

// Succeeded reports whether hr is a success code.
func (hr HRESULT) Succeeded() bool { return hr >= 0 }

func (hr HRESULT) String() string {
	return fmt.Sprintf("0x%08X", uint32(hr))
}
