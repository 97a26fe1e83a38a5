package liketype

import (
	"encoding/json"
	"fmt"

	"github.com/kleinwareio/liketype/functional"
	"github.com/vmihailenco/msgpack/v5"
)

// Like holds a single value of T on behalf of a domain type. Embed it in the
// domain type and build it through the type's Kind.
type Like[T any] struct {
	kind  *Kind[T]
	value T
	null  bool
}

// liker is satisfied by Like[T] and by every type embedding it.
type liker[T any] interface {
	like() Like[T]
}

func (l Like[T]) like() Like[T] {
	return l
}

// Value returns the wrapped value, or the zero T when absent. Slices and maps
// come back as copies.
func (l Like[T]) Value() T {
	return shallowCopy(l.value)
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (l Like[T]) Ptr() *T {
	if l.kind == nil || l.null {
		return nil
	}
	v := shallowCopy(l.value)
	return &v
}

// Option returns the value as an Option.
func (l Like[T]) Option() functional.Option[T] {
	return functional.FromPtr(l.Ptr())
}

// IsNull reports whether the wrapped value is absent.
func (l Like[T]) IsNull() bool {
	return l.kind == nil || l.null
}

// IsNil reports whether l is an unset handle, i.e. it was not built by a Kind.
func (l Like[T]) IsNil() bool {
	return l.kind == nil
}

// Kind returns the type tag, nil for an unset handle.
func (l Like[T]) Kind() *Kind[T] {
	return l.kind
}

// TypeName returns the name of the Kind.
func (l Like[T]) TypeName() string {
	if l.kind == nil {
		return ""
	}
	return l.kind.name
}

// Equal reports whether other wraps an equal value of the same Kind.
// Unset handles, nil pointers and nil interfaces are equal only to each other.
func (l Like[T]) Equal(other any) bool {
	o, ok := asLike[T](other)
	if !ok {
		return false
	}
	if l.kind == nil || o.kind == nil {
		return l.kind == nil && o.kind == nil
	}
	if l.kind != o.kind {
		return false
	}
	if l.null || o.null {
		return l.null && o.null
	}
	return l.kind.equal(l.value, o.value)
}

func asLike[T any](v any) (Like[T], bool) {
	if isNilRef(v) {
		return Like[T]{}, true
	}
	w, ok := v.(liker[T])
	if !ok {
		return Like[T]{}, false
	}
	return w.like(), true
}

// Hash returns 0 for absent values, otherwise the Kind's hash of the value.
func (l Like[T]) Hash() uint64 {
	if l.kind == nil || l.null {
		return 0
	}
	return l.kind.hash(l.value)
}

// String renders the value, or "" when absent.
func (l Like[T]) String() string {
	if l.kind == nil || l.null {
		return ""
	}
	return fmt.Sprint(l.value)
}

// MarshalJSON implements json.Marshaler. Absent values encode as null.
func (l Like[T]) MarshalJSON() ([]byte, error) {
	if l.IsNull() {
		return []byte("null"), nil
	}
	return json.Marshal(l.value)
}

// MarshalText implements encoding.TextMarshaler.
func (l Like[T]) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// MarshalYAML implements yaml.Marshaler.
func (l Like[T]) MarshalYAML() (any, error) {
	if l.IsNull() {
		return nil, nil
	}
	return l.value, nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (l Like[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if l.IsNull() {
		return enc.EncodeNil()
	}
	return enc.Encode(l.value)
}

// Equal reports whether a and b are equal wrappers. Nil pointers, nil
// interfaces and unset handles are equal to each other and to nothing else.
// It never panics.
func Equal(a, b any) bool {
	if isNilRef(a) {
		return isNilRef(b) || isUnsetHandle(b)
	}
	e, ok := a.(equaler)
	if !ok {
		return false
	}
	return e.Equal(b)
}

// NotEqual is the negation of Equal.
func NotEqual(a, b any) bool {
	return !Equal(a, b)
}

func isUnsetHandle(v any) bool {
	n, ok := v.(nilReporter)
	return ok && n.IsNil()
}
