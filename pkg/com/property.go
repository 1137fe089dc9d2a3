package com

import "github.com/ircx/chatframe-go/internal/abi"

// Scalar is the set of fixed-width values a property slot passes by value.
type Scalar interface {
	~int16 | ~uint16 | ~int32 | ~uint32
}

// Color is a packed OLE_COLOR value (0x00BBGGRR).
type Color uint32

// RGB packs red, green and blue components into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16)
}

// Flags is a 32-bit bit set.
type Flags uint32

// Has reports whether every bit of mask is set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Mode is a 32-bit enumeration value.
type Mode int32

// VariantBool is the object model's 16-bit boolean: -1 true, 0 false.
type VariantBool int16

const (
	VariantTrue  VariantBool = -1
	VariantFalse VariantBool = 0
)

// Bool converts v to a Go bool. Any non-zero value is true.
func (v VariantBool) Bool() bool { return v != 0 }

// ToVariantBool converts b to its 16-bit representation.
func ToVariantBool(b bool) VariantBool {
	if b {
		return VariantTrue
	}
	return VariantFalse
}

// GetScalar calls the getter entry with a pointer to a zeroed T and returns
// the value the component stored there.
func GetScalar[T Scalar](h Handle, getter Slot) (T, error) {
	return getScalar[T]("get", h, getter)
}

// PutScalar calls the setter entry with *v. A nil v fails with
// ErrInvalidArgument without calling the component: properties have no
// implicit unset.
func PutScalar[T Scalar](h Handle, setter Slot, v *T) error {
	return putScalar("put", h, setter, v)
}

// GetString calls a text getter and takes ownership of the returned string.
func GetString(h Handle, getter Slot) (string, error) {
	return getString("get", h, getter)
}

// PutString calls a text setter, lending *v for the duration of the call. A
// nil v fails with ErrInvalidArgument without calling the component.
func PutString(h Handle, setter Slot, v *string) error {
	return putString("put", h, setter, v, false)
}

// PutNullableString is PutString for properties documented to accept a
// null string; a nil v passes a null pointer to clear the value.
func PutNullableString(h Handle, setter Slot, v *string) error {
	return putString("put", h, setter, v, true)
}

func getScalar[T Scalar](op string, h Handle, getter Slot) (T, error) {
	var zero T
	if h.IsNull() {
		return zero, opError(op, ErrNullHandle)
	}
	v, hr := abi.CallOut[T](h.ptr, int(getter))
	if err := check(op, hr, ErrBoundaryCallFailed); err != nil {
		return zero, err
	}
	return v, nil
}

func putScalar[T Scalar](op string, h Handle, setter Slot, v *T) error {
	if v == nil {
		return opError(op, ErrInvalidArgument)
	}
	return h.Call(op, setter, uintptr(*v))
}

func getString(op string, h Handle, getter Slot) (string, error) {
	if h.IsNull() {
		return "", opError(op, ErrNullHandle)
	}
	raw, hr := abi.CallOut[uintptr](h.ptr, int(getter))
	if err := check(op, hr, ErrBoundaryCallFailed); err != nil {
		return "", err
	}
	return takeString(raw), nil
}

func putString(op string, h Handle, setter Slot, v *string, nullable bool) error {
	if h.IsNull() && v != nil {
		return opError(op, ErrNullHandle)
	}
	raw, release, err := lendString(op, v, nullable)
	if err != nil {
		return err
	}
	defer release()
	return h.Call(op, setter, raw)
}

// Layout describes where property entries start in an interface's vtable.
// Property i has its getter at Base+2i and its setter right after it.
type Layout struct {
	Base Slot
}

var (
	// IUnknownLayout is for interfaces deriving directly from IUnknown.
	IUnknownLayout = Layout{Base: 3}

	// DispatchLayout is for dual interfaces deriving from IDispatch.
	DispatchLayout = Layout{Base: 7}
)

// Pair returns the getter and setter slots of property i.
func (l Layout) Pair(i int) (getter, setter Slot) {
	getter = l.Base + Slot(2*i)
	return getter, getter + 1
}

// Property binds a scalar property name to its getter and setter slots.
type Property[T Scalar] struct {
	Name   string
	Getter Slot
	Setter Slot
}

// ScalarAt declares scalar property i of layout l.
func ScalarAt[T Scalar](l Layout, name string, i int) Property[T] {
	g, s := l.Pair(i)
	return Property[T]{Name: name, Getter: g, Setter: s}
}

// Get reads the property.
func (p Property[T]) Get(h Handle) (T, error) {
	return getScalar[T]("get "+p.Name, h, p.Getter)
}

// Put writes the property. A nil v fails with ErrInvalidArgument.
func (p Property[T]) Put(h Handle, v *T) error {
	return putScalar("put "+p.Name, h, p.Setter, v)
}

// TextProperty binds a string property name to its getter and setter slots.
type TextProperty struct {
	Name     string
	Getter   Slot
	Setter   Slot
	Nullable bool
}

// TextAt declares text property i of layout l.
func (l Layout) TextAt(name string, i int) TextProperty {
	g, s := l.Pair(i)
	return TextProperty{Name: name, Getter: g, Setter: s}
}

// Get reads the property.
func (p TextProperty) Get(h Handle) (string, error) {
	return getString("get "+p.Name, h, p.Getter)
}

// Put writes the property. A nil v fails with ErrInvalidArgument unless the
// property is Nullable, in which case the component receives a null string.
func (p TextProperty) Put(h Handle, v *string) error {
	return putString("put "+p.Name, h, p.Setter, v, p.Nullable)
}
