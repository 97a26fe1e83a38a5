package liketype

import (
	"reflect"

	"github.com/kleinwareio/liketype/codec"
	apperrors "github.com/kleinwareio/liketype/errors"
	"github.com/kleinwareio/liketype/functional"
)

// Kind is the type tag of a wrapper type. Values built by different Kinds are
// never equal, even when they wrap the same T.
//
// A Kind is configured once, usually in a package-level var, and must not be
// reconfigured after values have been built from it.
type Kind[T any] struct {
	name      string
	allowNull bool
	equal     func(a, b T) bool
	hash      func(v T) uint64
}

// Define creates a Kind with the given type name.
func Define[T any](name string) *Kind[T] {
	return &Kind[T]{
		name:  name,
		equal: defaultEqual[T],
		hash:  defaultHash[T],
	}
}

// DefineFor creates a Kind named after the Go type W, which is normally the
// domain type embedding Like[T].
func DefineFor[W, T any]() *Kind[T] {
	return Define[T](typeNameOf[W]())
}

func typeNameOf[W any]() string {
	t := reflect.TypeFor[W]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// AllowNull lets the Kind build values from an absent input.
func (k *Kind[T]) AllowNull() *Kind[T] {
	k.allowNull = true
	return k
}

// WithComparer replaces the equality used for present values.
// It must stay consistent with the hasher.
func (k *Kind[T]) WithComparer(equal func(a, b T) bool) *Kind[T] {
	if equal != nil {
		k.equal = equal
	}
	return k
}

// WithHasher replaces the hash used for present values.
func (k *Kind[T]) WithHasher(hash func(v T) uint64) *Kind[T] {
	if hash != nil {
		k.hash = hash
	}
	return k
}

// Name returns the type name used in rendering.
func (k *Kind[T]) Name() string {
	return k.name
}

// AllowsNull reports whether absent values are accepted.
func (k *Kind[T]) AllowsNull() bool {
	return k.allowNull
}

// New wraps value. Nil pointers, maps, slices, interfaces, funcs, channels and
// unset wrapper handles count as absent. Slices and maps are copied one level
// deep; values they point to are still shared.
func (k *Kind[T]) New(value T) (Like[T], error) {
	if isNull(value) {
		return k.Null()
	}
	return Like[T]{kind: k, value: shallowCopy(value)}, nil
}

// MustNew wraps value, panicking when it is rejected.
func (k *Kind[T]) MustNew(value T) Like[T] {
	return apperrors.Must(k.New(value))
}

// Null builds the absent value of this Kind.
func (k *Kind[T]) Null() (Like[T], error) {
	if !k.allowNull {
		return Like[T]{}, missingValue(k.name)
	}
	return Like[T]{kind: k, null: true}, nil
}

// FromPtr wraps *p, treating a nil pointer as absent.
func (k *Kind[T]) FromPtr(p *T) (Like[T], error) {
	if p == nil {
		return k.Null()
	}
	return k.New(*p)
}

// FromOption wraps the Option's value, treating None as absent.
func (k *Kind[T]) FromOption(o functional.Option[T]) (Like[T], error) {
	return k.FromPtr(o.ToPtr())
}

// Decode reads a bare value written by any codec and applies the null policy.
func (k *Kind[T]) Decode(c codec.Codec, data []byte) (Like[T], error) {
	var p *T
	if err := c.Decode(data, &p); err != nil {
		return Like[T]{}, apperrors.Decode(c.Name(), err).WithDetail("type", k.name)
	}
	return k.FromPtr(p)
}
