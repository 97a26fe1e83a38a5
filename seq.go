package liketype

import (
	"fmt"
	"iter"
	"strings"

	"github.com/kleinwareio/liketype/codec"
	apperrors "github.com/kleinwareio/liketype/errors"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	elementHashFactor = 9001
	nullElementHash   = 8999
	positionFactor    = 31
)

// SeqKind is the type tag of a sequence wrapper type.
type SeqKind[E any] struct {
	base      *Kind[[]E]
	strategy  RenderStrategy
	typeHash  uint64
	elemEqual func(a, b E) bool
	elemHash  func(e E) uint64
	elemNull  func(e E) bool
}

// DefineSeq creates a SeqKind with the given type name. Values render
// CountOnly unless configured otherwise.
func DefineSeq[E any](name string) *SeqKind[E] {
	k := &SeqKind[E]{
		strategy:  CountOnly,
		typeHash:  typeHash(name),
		elemEqual: defaultEqual[E],
		elemHash:  defaultHash[E],
		elemNull:  isNull[E],
	}
	k.base = Define[[]E](name).WithComparer(k.equalItems).WithHasher(k.hashItems)
	return k
}

// DefineSeqFor creates a SeqKind named after the Go type W.
func DefineSeqFor[W, E any]() *SeqKind[E] {
	return DefineSeq[E](typeNameOf[W]())
}

// AllowNull makes a nil input build an empty sequence instead of failing.
func (k *SeqKind[E]) AllowNull() *SeqKind[E] {
	k.base.AllowNull()
	return k
}

// WithStrategy sets the strategy used by New, Of and Collect.
func (k *SeqKind[E]) WithStrategy(strategy RenderStrategy) *SeqKind[E] {
	k.strategy = strategy
	return k
}

// WithElementComparer replaces the equality used for non-null elements.
func (k *SeqKind[E]) WithElementComparer(equal func(a, b E) bool) *SeqKind[E] {
	if equal != nil {
		k.elemEqual = equal
	}
	return k
}

// WithElementHasher replaces the hash used for non-null elements.
func (k *SeqKind[E]) WithElementHasher(hash func(e E) uint64) *SeqKind[E] {
	if hash != nil {
		k.elemHash = hash
	}
	return k
}

// WithElementNull replaces the test deciding whether an element is null.
func (k *SeqKind[E]) WithElementNull(isNull func(e E) bool) *SeqKind[E] {
	if isNull != nil {
		k.elemNull = isNull
	}
	return k
}

// Name returns the type name used in rendering.
func (k *SeqKind[E]) Name() string {
	return k.base.name
}

// AllowsNull reports whether a nil input is accepted.
func (k *SeqKind[E]) AllowsNull() bool {
	return k.base.allowNull
}

// Strategy returns the default render strategy.
func (k *SeqKind[E]) Strategy() RenderStrategy {
	return k.strategy
}

// New copies items into a new sequence. A nil slice is absent.
func (k *SeqKind[E]) New(items []E) (Seq[E], error) {
	return k.NewWith(k.strategy, items)
}

// NewWith copies items into a new sequence rendered with strategy.
func (k *SeqKind[E]) NewWith(strategy RenderStrategy, items []E) (Seq[E], error) {
	if !strategy.Valid() {
		return Seq[E]{}, apperrors.InvalidArgument("strategy", "unknown render strategy").
			WithDetail("type", k.base.name)
	}
	if items == nil {
		if !k.base.allowNull {
			return Seq[E]{}, missingValue(k.base.name)
		}
		items = []E{}
	}
	owned := make([]E, len(items))
	copy(owned, items)
	base := Like[[]E]{kind: k.base, value: owned}
	return Seq[E]{base: base, kind: k, strategy: strategy}, nil
}

// Of builds a sequence from the given items. It never yields an absent input.
func (k *SeqKind[E]) Of(items ...E) (Seq[E], error) {
	if items == nil {
		items = []E{}
	}
	return k.New(items)
}

// MustOf is like Of but panics on error.
func (k *SeqKind[E]) MustOf(items ...E) Seq[E] {
	return apperrors.Must(k.Of(items...))
}

// Collect drains items eagerly into a new sequence. A nil iterator is absent.
func (k *SeqKind[E]) Collect(items iter.Seq[E]) (Seq[E], error) {
	if items == nil {
		return k.New(nil)
	}
	collected := []E{}
	for item := range items {
		collected = append(collected, item)
	}
	return k.New(collected)
}

// Decode reads a list written by any codec and applies the null policy.
func (k *SeqKind[E]) Decode(c codec.Codec, data []byte) (Seq[E], error) {
	var p *[]E
	if err := c.Decode(data, &p); err != nil {
		return Seq[E]{}, apperrors.Decode(c.Name(), err).WithDetail("type", k.base.name)
	}
	if p == nil {
		return k.New(nil)
	}
	if *p == nil {
		return k.New([]E{})
	}
	return k.New(*p)
}

func (k *SeqKind[E]) equalItems(a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		aNull, bNull := k.elemNull(a[i]), k.elemNull(b[i])
		if aNull || bNull {
			if aNull != bNull {
				return false
			}
			continue
		}
		if !k.elemEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (k *SeqKind[E]) hashItems(items []E) uint64 {
	hash := k.typeHash
	for _, item := range items {
		var contribution uint64 = nullElementHash
		if !k.elemNull(item) {
			contribution = k.elemHash(item)
		}
		hash = hash*positionFactor + elementHashFactor*contribution
	}
	return hash
}

// Seq is an immutable ordered collection on behalf of a domain type. Embed it
// in the domain type and build it through the type's SeqKind.
type Seq[E any] struct {
	base     Like[[]E]
	kind     *SeqKind[E]
	strategy RenderStrategy
}

func (s Seq[E]) like() Like[[]E] {
	return s.base
}

// Kind returns the type tag, nil for an unset handle.
func (s Seq[E]) Kind() *SeqKind[E] {
	return s.kind
}

// TypeName returns the name of the SeqKind.
func (s Seq[E]) TypeName() string {
	return s.base.TypeName()
}

// IsNil reports whether s is an unset handle.
func (s Seq[E]) IsNil() bool {
	return s.base.IsNil()
}

// Strategy returns the render strategy fixed at construction.
func (s Seq[E]) Strategy() RenderStrategy {
	return s.strategy
}

// Count returns the number of elements.
func (s Seq[E]) Count() int {
	return len(s.base.value)
}

// ItemAt returns the element at position i.
func (s Seq[E]) ItemAt(i int) (E, error) {
	if i < 0 || i >= len(s.base.value) {
		var zero E
		return zero, apperrors.OutOfRange(i, len(s.base.value)).WithDetail("type", s.TypeName())
	}
	return s.base.value[i], nil
}

// Items returns a copy of the elements.
func (s Seq[E]) Items() []E {
	items := make([]E, len(s.base.value))
	copy(items, s.base.value)
	return items
}

// Value returns a copy of the elements, so the wrapper can be handed to code
// expecting a plain slice.
func (s Seq[E]) Value() []E {
	return s.Items()
}

// All iterates the elements in insertion order. It can be ranged over repeatedly.
func (s Seq[E]) All() iter.Seq[E] {
	items := s.base.value
	return func(yield func(E) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Equal reports whether other is a sequence of the same SeqKind holding equal
// elements in the same order. Render strategies are ignored.
func (s Seq[E]) Equal(other any) bool {
	return s.base.Equal(other)
}

// Hash is consistent with Equal and never zero for a constructed sequence. It
// is positional: each element contributes 9001 times its hash (8999 for null)
// to a running value seeded by the type name and multiplied by 31 per step, so
// reordering the elements changes the hash.
func (s Seq[E]) Hash() uint64 {
	return s.base.Hash()
}

// String renders s with its own strategy.
func (s Seq[E]) String() string {
	return s.Render(s.strategy)
}

// Render renders s with the given strategy. An unset handle renders as "".
func (s Seq[E]) Render(strategy RenderStrategy) string {
	if s.kind == nil {
		return ""
	}
	items := s.base.value
	nameAndCount := fmt.Sprintf("%s[%d]", s.kind.base.name, len(items))
	if strategy != AllValuesSingleLine && strategy != AllValuesMultiLine {
		return nameAndCount
	}
	separator := " "
	if strategy == AllValuesMultiLine {
		if len(items) == 0 {
			return nameAndCount + " = { }"
		}
		separator = "\n  "
	}
	parts := make([]string, len(items))
	for i, item := range items {
		if s.kind.elemNull(item) {
			parts[i] = "null"
		} else {
			parts[i] = "'" + fmt.Sprint(item) + "'"
		}
	}
	return nameAndCount + " = {" + separator + strings.Join(parts, ","+separator) + " }"
}

// MarshalJSON implements json.Marshaler.
func (s Seq[E]) MarshalJSON() ([]byte, error) {
	return s.base.MarshalJSON()
}

// MarshalYAML implements yaml.Marshaler.
func (s Seq[E]) MarshalYAML() (any, error) {
	return s.base.MarshalYAML()
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (s Seq[E]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return s.base.EncodeMsgpack(enc)
}
