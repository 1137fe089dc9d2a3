package comtest

import (
	"sync"

	"github.com/ircx/chatframe-go/internal/abi"
	"github.com/ircx/chatframe-go/pkg/com"
)

// Kind is the value shape of a stub property.
type Kind int

const (
	Uint32 Kind = iota // colors and bit flags
	Int32              // modes and enumerations
	Bool               // 16-bit VARIANT_BOOL
	Text               // BSTR
)

func (k Kind) String() string {
	switch k {
	case Uint32:
		return "uint32"
	case Int32:
		return "int32"
	case Bool:
		return "bool"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Interface declares a property interface deriving from IUnknown.
type Interface struct {
	IID   com.GUID
	Props []Kind
}

// Class declares a creatable stub class.
type Class struct {
	CLSID      com.GUID
	Interfaces []Interface

	// Events is the outgoing event interface. The zero GUID means the
	// class exposes no connection points.
	Events com.GUID
}

// Server is a class table of stub components. It implements
// com.ClassFactory.
type Server struct {
	mu      sync.Mutex
	classes map[com.GUID]Class
	objects []*Object
}

// NewServer returns an empty Server.
func NewServer() *Server {
	return &Server{classes: make(map[com.GUID]Class)}
}

// Register declares c, replacing any class with the same CLSID.
func (s *Server) Register(c Class) {
	for _, iface := range c.Interfaces {
		if len(iface.Props) > maxProps {
			panic("comtest: too many properties on " + iface.IID.String())
		}
	}
	s.mu.Lock()
	s.classes[c.CLSID] = c
	s.mu.Unlock()
}

// CreateInstance builds a new object of clsid and returns interface iid.
func (s *Server) CreateInstance(clsid, iid com.GUID) (uintptr, com.HRESULT) {
	s.mu.Lock()
	c, ok := s.classes[clsid]
	s.mu.Unlock()
	if !ok {
		return 0, com.ClassNotRegistered
	}

	o := newObject(c)
	ptr, hr := o.queryInterface(iid)
	if hr.Failed() {
		o.destroy()
		return 0, hr
	}

	s.mu.Lock()
	s.objects = append(s.objects, o)
	s.mu.Unlock()
	return ptr, com.SOK
}

// Objects returns every object created so far, destroyed ones included.
func (s *Server) Objects() []*Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Object(nil), s.objects...)
}

// Last returns the most recently created object, or nil.
func (s *Server) Last() *Object {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.objects) == 0 {
		return nil
	}
	return s.objects[len(s.objects)-1]
}

// OutstandingStrings returns the number of boundary strings allocated and
// not yet freed, across the whole process.
func OutstandingStrings() int64 { return abi.Outstanding() }
