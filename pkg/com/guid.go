package com

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/ircx/chatframe-go/internal/abi"
)

// GUID is a 128-bit class or interface identifier in its in-memory layout.
type GUID = abi.GUID

// ParseGUID parses the canonical five-group form, with or without braces.
func ParseGUID(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("%w: guid %q: %v", ErrInvalidArgument, s, err)
	}
	g := GUID{
		Data1: binary.BigEndian.Uint32(u[0:4]),
		Data2: binary.BigEndian.Uint16(u[4:6]),
		Data3: binary.BigEndian.Uint16(u[6:8]),
	}
	copy(g.Data4[:], u[8:16])
	return g, nil
}

// MustParseGUID is ParseGUID for package-level identifier tables.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// Well-known interface ids of the object model.
var (
	IIDUnknown                  = MustParseGUID("00000000-0000-0000-C000-000000000046")
	IIDDispatch                 = MustParseGUID("00020400-0000-0000-C000-000000000046")
	IIDOleObject                = MustParseGUID("00000112-0000-0000-C000-000000000046")
	IIDConnectionPointContainer = MustParseGUID("B196B284-BAB4-101A-B69C-00AA00341D07")
	IIDConnectionPoint          = MustParseGUID("B196B286-BAB4-101A-B69C-00AA00341D07")
)
