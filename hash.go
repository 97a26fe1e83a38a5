package liketype

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

type hasher interface {
	Hash() uint64
}

type equaler interface {
	Equal(other any) bool
}

type nilReporter interface {
	IsNil() bool
}

// isNull reports whether v carries no value: a nil reference, or a wrapper
// handle that was never constructed.
func isNull[T any](v T) bool {
	av := any(v)
	if av == nil {
		return true
	}
	rv := reflect.ValueOf(av)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			return true
		}
	}
	if n, ok := av.(nilReporter); ok {
		return n.IsNil()
	}
	return false
}

// isNilRef reports whether v is a nil interface or a nil pointer.
func isNilRef(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// shallowCopy copies a non-nil slice or map so the wrapper owns it.
func shallowCopy[T any](v T) T {
	rv := reflect.ValueOf(any(v))
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface().(T)
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface().(T)
	}
	return v
}

func defaultEqual[T any](a, b T) bool {
	if e, ok := any(a).(equaler); ok {
		return e.Equal(b)
	}
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	switch x := av.(type) {
	case float64:
		y, ok := bv.(float64)
		return ok && equalFloat(x, y)
	case float32:
		y, ok := bv.(float32)
		return ok && equalFloat(float64(x), float64(y))
	}
	if reflect.TypeOf(av) != reflect.TypeOf(bv) {
		return false
	}
	// Interface fields make a comparable type hold uncomparable values.
	if reflect.ValueOf(av).Comparable() {
		return av == bv
	}
	return reflect.DeepEqual(av, bv)
}

// equalFloat treats every NaN as equal to every other NaN.
func equalFloat(a, b float64) bool {
	return a == b || (a != a && b != b)
}

func defaultHash[T any](v T) uint64 {
	switch x := any(v).(type) {
	case hasher:
		return x.Hash()
	case string:
		return xxhash.Sum64String(x)
	case []byte:
		return xxhash.Sum64(x)
	case bool:
		return xxhash.Sum64String(strconv.FormatBool(x))
	case int:
		return xxhash.Sum64String(strconv.FormatInt(int64(x), 10))
	case int64:
		return xxhash.Sum64String(strconv.FormatInt(x, 10))
	case int32:
		return xxhash.Sum64String(strconv.FormatInt(int64(x), 10))
	case uint:
		return xxhash.Sum64String(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return xxhash.Sum64String(strconv.FormatUint(x, 10))
	case float64:
		return hashFloat(x)
	case float32:
		return hashFloat(float64(x))
	}
	return xxhash.Sum64String(fmt.Sprintf("%#v", v))
}

// hashFloat folds -0 into +0 and every NaN into one payload so the hash
// agrees with equalFloat.
func hashFloat(f float64) uint64 {
	switch {
	case f == 0:
		f = 0
	case math.IsNaN(f):
		f = math.NaN()
	}
	return xxhash.Sum64String(strconv.FormatUint(math.Float64bits(f), 16))
}

// typeHash seeds sequence hashes. It is never zero.
func typeHash(name string) uint64 {
	h := xxhash.Sum64String(name)
	if h == 0 {
		return 1
	}
	return h
}
