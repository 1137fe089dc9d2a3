package chatframe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/ircx/chatframe-go/pkg/com"
	"github.com/ircx/chatframe-go/pkg/logging"
)

// FieldKind is the value shape of a property.
type FieldKind int

const (
	KindColor FieldKind = iota
	KindMode
	KindFlags
	KindText
)

func (k FieldKind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindMode:
		return "mode"
	case KindFlags:
		return "flags"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// ErrUnknownField reports a property name the interface does not declare.
var ErrUnknownField = errors.New("chatframe: unknown property")

// Field describes one property by name, for callers that configure the
// control from data rather than code.
type Field struct {
	Name string
	Kind FieldKind

	// Sensitive fields carry credentials and are never logged.
	Sensitive bool

	get func(com.Handle) (any, error)
	set func(com.Handle, any) error
}

// Value is a property value read by Snapshot.
type Value struct {
	Field Field
	Value any
}

func colorField(p com.Property[com.Color]) Field { return scalarField(p, KindColor) }

func modeField(p com.Property[com.Mode]) Field { return scalarField(p, KindMode) }

func flagsField(p com.Property[com.Flags]) Field { return scalarField(p, KindFlags) }

func scalarField[T com.Scalar](p com.Property[T], kind FieldKind) Field {
	return Field{
		Name: p.Name,
		Kind: kind,
		get: func(h com.Handle) (any, error) {
			return p.Get(h)
		},
		set: func(h com.Handle, v any) error {
			if v == nil {
				return p.Put(h, nil)
			}
			t, err := toScalar[T](v)
			if err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			return p.Put(h, &t)
		},
	}
}

func textField(p com.TextProperty, sensitive bool) Field {
	return Field{
		Name:      p.Name,
		Kind:      KindText,
		Sensitive: sensitive,
		get: func(h com.Handle) (any, error) {
			return p.Get(h)
		},
		set: func(h com.Handle, v any) error {
			if v == nil {
				return p.Put(h, nil)
			}
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("%s: %w: want string, got %T", p.Name, com.ErrInvalidArgument, v)
			}
			return p.Put(h, &s)
		},
	}
}

// toScalar converts a decoded configuration value into T, rejecting values
// that do not fit.
func toScalar[T com.Scalar](v any) (T, error) {
	var n int64
	switch x := v.(type) {
	case T:
		return x, nil
	case int:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint32:
		n = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d out of range", com.ErrInvalidArgument, x)
		}
		n = int64(x)
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("%w: %v is not an integer", com.ErrInvalidArgument, x)
		}
		n = int64(x)
	case string:
		parsed, err := strconv.ParseInt(x, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", com.ErrInvalidArgument, x, err)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("%w: want integer, got %T", com.ErrInvalidArgument, v)
	}
	t := T(n)
	if int64(t) != n {
		return 0, fmt.Errorf("%w: %d out of range", com.ErrInvalidArgument, n)
	}
	return t, nil
}

// object is the name-driven part shared by Frame and Settings.
type object struct {
	h      com.Handle
	fields []Field
	byName map[string]int
	log    logging.Logger
}

func newObject(h com.Handle, fields []Field, log logging.Logger) *object {
	byName := make(map[string]int, len(fields))
	for i, f := range fields {
		byName[f.Name] = i
	}
	return &object{h: h, fields: fields, byName: byName, log: log}
}

// Handle returns the underlying interface handle.
func (o *object) Handle() com.Handle { return o.h }

// Close releases the interface reference. Closing twice is a no-op.
func (o *object) Close() error {
	if o.h.IsNull() {
		return nil
	}
	_, err := o.h.Release()
	o.h = com.Handle{}
	return err
}

// Fields lists the properties in declared order.
func (o *object) Fields() []Field {
	return append([]Field(nil), o.fields...)
}

func (o *object) field(name string) (Field, error) {
	i, ok := o.byName[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return o.fields[i], nil
}

// Get reads a property by name.
func (o *object) Get(name string) (any, error) {
	f, err := o.field(name)
	if err != nil {
		return nil, err
	}
	return f.get(o.h)
}

// Set writes a property by name. Scalars accept any integer or a numeric
// string such as "0x00FF00"; text accepts strings. A nil v fails with
// com.ErrInvalidArgument.
func (o *object) Set(ctx context.Context, name string, v any) error {
	f, err := o.field(name)
	if err != nil {
		return err
	}
	if f.Sensitive {
		o.log.Debug(ctx, "property set", "name", name, logging.Redacted("value"))
	} else {
		o.log.Debug(ctx, "property set", "name", name, "value", v)
	}
	return f.set(o.h, v)
}

// Apply writes every entry of values in declared order. It keeps going
// after a failure and returns all failures joined.
func (o *object) Apply(ctx context.Context, values map[string]any) error {
	var errs []error
	for name := range values {
		if _, ok := o.byName[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownField, name))
		}
	}
	for _, f := range o.fields {
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		if err := o.Set(ctx, f.Name, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Snapshot reads every property in declared order.
func (o *object) Snapshot() ([]Value, error) {
	out := make([]Value, 0, len(o.fields))
	for _, f := range o.fields {
		v, err := f.get(o.h)
		if err != nil {
			return nil, err
		}
		out = append(out, Value{Field: f, Value: v})
	}
	return out, nil
}

// FrameFields lists the IChatFrame properties in declared order.
func FrameFields() []Field { return append([]Field(nil), frameFields...) }

// SettingsFields lists the IChatSettings properties in declared order.
func SettingsFields() []Field { return append([]Field(nil), settingsFields...) }
