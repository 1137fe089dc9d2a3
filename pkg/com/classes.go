package com

import (
	"github.com/ircx/chatframe-go/internal/abi"
)

// ClassFactory constructs component instances. CreateInstance returns a
// pointer to interface iid of a new instance of clsid, carrying one
// reference, or a failure status.
type ClassFactory interface {
	CreateInstance(clsid, iid GUID) (uintptr, HRESULT)
}

// ClassFactoryFunc adapts a function to ClassFactory.
type ClassFactoryFunc func(clsid, iid GUID) (uintptr, HRESULT)

func (f ClassFactoryFunc) CreateInstance(clsid, iid GUID) (uintptr, HRESULT) {
	return f(clsid, iid)
}

// SystemClasses creates in-process servers registered with the operating
// system. Off Windows every class reports ClassNotRegistered.
var SystemClasses ClassFactory = ClassFactoryFunc(func(clsid, iid GUID) (uintptr, HRESULT) {
	ptr, hr := abi.CoCreateInstance(clsid, iid)
	return ptr, HRESULT(hr)
})

// Initialize prepares the calling thread for component calls and locks it
// to its OS thread. Pair every successful call with Uninitialize on the same
// goroutine.
func Initialize() error {
	return check("initialize", abi.CoInitialize(), ErrBoundaryCallFailed)
}

// Uninitialize undoes Initialize.
func Uninitialize() {
	abi.CoUninitialize()
}
