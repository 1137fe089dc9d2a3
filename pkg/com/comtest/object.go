package comtest

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/ircx/chatframe-go/internal/abi"
	"github.com/ircx/chatframe-go/pkg/com"
)

type role int

const (
	roleIdentity role = iota
	roleProps
	roleContainer
	rolePoint
)

// binding is what a trampoline finds behind a this pointer.
type binding struct {
	obj   *Object
	role  role
	iface int
}

type propKey struct {
	iface int
	index int
}

type slotKey struct {
	iface int
	slot  com.Slot
}

var bindings abi.Registry[binding]

// Object is one stub component instance.
type Object struct {
	class Class
	refs  atomic.Int32

	mu        sync.Mutex
	identity  uintptr
	ifaces    []uintptr
	container uintptr
	point     uintptr
	scalars   map[propKey]uint32
	texts     map[propKey]string
	calls     map[slotKey]int
	total     int
	faults    map[slotKey]com.HRESULT
	sinks     map[uint32]uintptr
	cookie    uint32
	destroyed bool
}

func newObject(c Class) *Object {
	o := &Object{
		class:   c,
		scalars: make(map[propKey]uint32),
		texts:   make(map[propKey]string),
		calls:   make(map[slotKey]int),
		faults:  make(map[slotKey]com.HRESULT),
		sinks:   make(map[uint32]uintptr),
	}
	tables := stubVtables()
	o.identity = bindings.Add(tables.identity, binding{obj: o, role: roleIdentity})
	for i := range c.Interfaces {
		o.ifaces = append(o.ifaces, bindings.Add(tables.props, binding{obj: o, role: roleProps, iface: i}))
	}
	if !c.Events.IsZero() {
		o.container = bindings.Add(tables.container, binding{obj: o, role: roleContainer})
		o.point = bindings.Add(tables.point, binding{obj: o, role: rolePoint})
	}
	return o
}

// CLSID returns the class of the object.
func (o *Object) CLSID() com.GUID { return o.class.CLSID }

// RefCount returns the object's reference count.
func (o *Object) RefCount() int32 { return o.refs.Load() }

// Destroyed reports whether the last reference has been released.
func (o *Object) Destroyed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.destroyed
}

// Calls returns how many times slot of interface iid has been called.
func (o *Object) Calls(iid com.GUID, slot com.Slot) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls[slotKey{iface: o.ifaceIndex(iid), slot: slot}]
}

// PropertyCalls returns the number of property getter and setter calls
// across all interfaces.
func (o *Object) PropertyCalls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.total
}

// Fail makes every later call to slot of interface iid return hr.
func (o *Object) Fail(iid com.GUID, slot com.Slot, hr com.HRESULT) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.faults[slotKey{iface: o.ifaceIndex(iid), slot: slot}] = hr
}

// Value returns the raw bits stored for scalar property i of iid.
func (o *Object) Value(iid com.GUID, i int) uint32 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.scalars[propKey{iface: o.ifaceIndex(iid), index: i}]
}

// SetText seeds text property i of iid without going through the boundary.
func (o *Object) SetText(iid com.GUID, i int, s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.texts[propKey{iface: o.ifaceIndex(iid), index: i}] = s
}

// Text returns text property i of iid.
func (o *Object) Text(iid com.GUID, i int) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.texts[propKey{iface: o.ifaceIndex(iid), index: i}]
}

// Sinks returns the number of currently advised sinks.
func (o *Object) Sinks() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.sinks)
}

func (o *Object) ifaceIndex(iid com.GUID) int {
	for i, iface := range o.class.Interfaces {
		if iface.IID == iid {
			return i
		}
	}
	return -1
}

func (o *Object) addRef() uint32 {
	return uint32(o.refs.Add(1))
}

func (o *Object) release() uint32 {
	n := o.refs.Add(-1)
	if n == 0 {
		o.destroy()
	}
	if n < 0 {
		o.refs.Store(0)
		return 0
	}
	return uint32(n)
}

// destroy unregisters every header and releases advised sinks, the way a
// component drops its connections on final release.
func (o *Object) destroy() {
	o.mu.Lock()
	if o.destroyed {
		o.mu.Unlock()
		return
	}
	o.destroyed = true
	headers := append([]uintptr{o.identity, o.container, o.point}, o.ifaces...)
	held := make([]uintptr, 0, len(o.sinks))
	for cookie, p := range o.sinks {
		held = append(held, p)
		delete(o.sinks, cookie)
	}
	o.mu.Unlock()

	for _, p := range headers {
		if p != 0 {
			bindings.Remove(p)
		}
	}
	for _, p := range held {
		abi.Call(p, int(com.SlotRelease))
	}
}

func (o *Object) queryInterface(iid com.GUID) (uintptr, com.HRESULT) {
	var p uintptr
	switch {
	case iid == com.IIDUnknown || iid == com.IIDOleObject:
		p = o.identity
	case iid == com.IIDConnectionPointContainer:
		p = o.container
	default:
		if i := o.ifaceIndex(iid); i >= 0 {
			p = o.ifaces[i]
		}
	}
	if p == 0 {
		return 0, com.ENoInterface
	}
	o.addRef()
	return p, com.SOK
}

func (o *Object) property(iface int, slot com.Slot, arg uintptr) com.HRESULT {
	o.mu.Lock()
	defer o.mu.Unlock()

	key := slotKey{iface: iface, slot: slot}
	o.calls[key]++
	o.total++
	if hr, ok := o.faults[key]; ok {
		return hr
	}

	props := o.class.Interfaces[iface].Props
	index := int(slot-3) / 2
	getter := int(slot-3)%2 == 0
	if index >= len(props) {
		return com.ENotImpl
	}
	pk := propKey{iface: iface, index: index}

	switch props[index] {
	case Uint32, Int32:
		if !getter {
			o.scalars[pk] = uint32(arg)
		} else if !abi.Store(arg, o.scalars[pk]) {
			return com.EPointer
		}
	case Bool:
		if !getter {
			o.scalars[pk] = uint32(uint16(arg))
		} else if !abi.Store(arg, uint16(o.scalars[pk])) {
			return com.EPointer
		}
	case Text:
		if !getter {
			o.texts[pk] = abi.ReadString(arg)
			return com.SOK
		}
		if arg == 0 {
			return com.EPointer
		}
		abi.Store(arg, abi.AllocString(o.texts[pk]))
	}
	return com.SOK
}

func (o *Object) findConnectionPoint(iid com.GUID) (uintptr, com.HRESULT) {
	if iid != o.class.Events {
		return 0, com.HRESULT(abi.ConnectNoConnection)
	}
	o.addRef()
	return o.point, com.SOK
}

func (o *Object) advise(unk uintptr) (uint32, com.HRESULT) {
	if unk == 0 {
		return 0, com.EPointer
	}
	sink, hr := abi.CallGUIDOut[uintptr](unk, int(com.SlotQueryInterface), o.class.Events)
	if com.HRESULT(hr).Failed() || sink == 0 {
		return 0, com.HRESULT(abi.ConnectCannotConnect)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.cookie++
	o.sinks[o.cookie] = sink
	return o.cookie, com.SOK
}

func (o *Object) unadvise(cookie uint32) com.HRESULT {
	o.mu.Lock()
	sink, ok := o.sinks[cookie]
	delete(o.sinks, cookie)
	o.mu.Unlock()
	if !ok {
		return com.HRESULT(abi.ConnectNoConnection)
	}
	abi.Call(sink, int(com.SlotRelease))
	return com.SOK
}

// Arg is a positional event argument.
type Arg struct {
	vt  uint16
	str string
	num int32
}

// String returns a BSTR argument.
func String(s string) Arg { return Arg{vt: abi.VTBSTR, str: s} }

// Int returns a 32-bit integer argument.
func Int(v int32) Arg { return Arg{vt: abi.VTI4, num: v} }

// Fire invokes member id on every advised sink, in cookie order, with args
// in declaration order. It may be called from any goroutine.
func (o *Object) Fire(id com.DispID, args ...Arg) error {
	o.mu.Lock()
	cookies := make([]uint32, 0, len(o.sinks))
	for c := range o.sinks {
		cookies = append(cookies, c)
	}
	sort.Slice(cookies, func(i, j int) bool { return cookies[i] < cookies[j] })
	targets := make([]uintptr, 0, len(cookies))
	for _, c := range cookies {
		p := o.sinks[c]
		abi.Call(p, int(com.SlotAddRef))
		targets = append(targets, p)
	}
	o.mu.Unlock()

	variants := make([]abi.Variant, len(args))
	for i, a := range args {
		variants[i].VT = a.vt
		switch a.vt {
		case abi.VTBSTR:
			variants[i].Val = abi.AllocString(a.str)
		default:
			variants[i].Val = uintptr(uint32(a.num))
		}
	}
	defer func() {
		for _, v := range variants {
			if v.VT == abi.VTBSTR {
				abi.FreeString(v.Val)
			}
		}
	}()

	var firstErr error
	for _, p := range targets {
		hr := com.HRESULT(abi.Invoke(p, int32(id), variants))
		abi.Call(p, int(com.SlotRelease))
		if hr.Failed() && firstErr == nil {
			firstErr = fmt.Errorf("comtest: invoke dispid %d: %w", id,
				&com.Error{Op: "invoke", Status: hr, Err: com.ErrBoundaryCallFailed})
		}
	}
	return firstErr
}
