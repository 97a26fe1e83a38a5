// Package testutil provides rapid generators and contract checks for wrapper types.
package testutil

import (
	"github.com/google/uuid"
	"github.com/kleinwareio/liketype"
	"pgregory.net/rapid"
)

// LikeGen generates present values of kind.
func LikeGen[T any](kind *liketype.Kind[T], values *rapid.Generator[T]) *rapid.Generator[liketype.Like[T]] {
	return rapid.Custom(func(t *rapid.T) liketype.Like[T] {
		like, err := kind.New(values.Draw(t, "value"))
		if err != nil {
			t.Fatalf("cannot build %s: %v", kind.Name(), err)
		}
		return like
	})
}

// NullableLikeGen generates present or absent values of kind. The kind must allow null.
func NullableLikeGen[T any](kind *liketype.Kind[T], values *rapid.Generator[T]) *rapid.Generator[liketype.Like[T]] {
	return rapid.Custom(func(t *rapid.T) liketype.Like[T] {
		if rapid.Bool().Draw(t, "isNull") {
			like, err := kind.Null()
			if err != nil {
				t.Fatalf("cannot build null %s: %v", kind.Name(), err)
			}
			return like
		}
		return LikeGen(kind, values).Draw(t, "like")
	})
}

// SeqGen generates sequences of kind holding up to maxLen elements.
func SeqGen[E any](kind *liketype.SeqKind[E], elems *rapid.Generator[E], maxLen int) *rapid.Generator[liketype.Seq[E]] {
	return rapid.Custom(func(t *rapid.T) liketype.Seq[E] {
		items := rapid.SliceOfN(elems, 0, maxLen).Draw(t, "items")
		seq, err := kind.NewWith(StrategyGen().Draw(t, "strategy"), items)
		if err != nil {
			t.Fatalf("cannot build %s: %v", kind.Name(), err)
		}
		return seq
	})
}

// StrategyGen generates render strategies.
func StrategyGen() *rapid.Generator[liketype.RenderStrategy] {
	return rapid.SampledFrom([]liketype.RenderStrategy{
		liketype.CountOnly,
		liketype.AllValuesSingleLine,
		liketype.AllValuesMultiLine,
	})
}

// UUIDStringGen generates random UUID strings, handy for identifier kinds.
func UUIDStringGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		var raw [16]byte
		for i := range raw {
			raw[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
		}
		id, err := uuid.FromBytes(raw[:])
		if err != nil {
			t.Fatalf("cannot build uuid: %v", err)
		}
		return id.String()
	})
}
