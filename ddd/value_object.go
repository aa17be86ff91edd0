// Package ddd holds the building blocks of a domain model: value objects, entities and specifications.
package ddd

import (
	"encoding/binary"
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ValueObject as described in the DDD book.
// Value objects compare by the values of their attributes, they don't have an identity.
type ValueObject interface {
	// AtomicValues return every field that takes part in equality, always in the same order.
	// Each call returns a new slice.
	AtomicValues() []any
}

// Equal reports whether v and other hold the same atomic values.
// Both must be non-nil and of the same dynamic type.
func Equal(v, other ValueObject) bool {
	if isNil(v) || isNil(other) {
		return false
	}
	if reflect.TypeOf(v) != reflect.TypeOf(other) {
		return false
	}
	return equalValues(v.AtomicValues(), other.AtomicValues())
}

func equalValues(left, right []any) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !equalValue(reflect.ValueOf(left[i]), reflect.ValueOf(right[i])) {
			return false
		}
	}
	return true
}

// equalValue walks x and y the same way writeValue does, so equal values always hash alike.
// Atomic values must not contain pointer cycles.
func equalValue(x, y reflect.Value) bool {
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	if x.Type() != y.Type() {
		return false
	}
	// interface fields are unwrapped below, their dynamic types may differ
	if x.Kind() != reflect.Interface && x.CanInterface() {
		switch xv := x.Interface().(type) {
		case ValueObject:
			yv := y.Interface().(ValueObject)
			if isNil(xv) || isNil(yv) {
				return isNil(xv) && isNil(yv)
			}
			return Equal(xv, yv)
		case time.Time:
			return xv.Equal(y.Interface().(time.Time))
		}
	}

	switch x.Kind() {
	case reflect.Bool:
		return x.Bool() == y.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return x.Int() == y.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return x.Uint() == y.Uint()
	case reflect.Float32, reflect.Float64:
		return x.Float() == y.Float()
	case reflect.Complex64, reflect.Complex128:
		return x.Complex() == y.Complex()
	case reflect.String:
		return x.String() == y.String()
	case reflect.Slice, reflect.Array:
		// a nil slice equals an empty one
		if x.Len() != y.Len() {
			return false
		}
		for i := 0; i < x.Len(); i++ {
			if !equalValue(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < x.NumField(); i++ {
			if !equalValue(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if x.Len() != y.Len() {
			return false
		}
		iter := x.MapRange()
		for iter.Next() {
			yv := y.MapIndex(iter.Key())
			if !yv.IsValid() || !equalValue(iter.Value(), yv) {
				return false
			}
		}
		return true
	case reflect.Pointer, reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		if x.Kind() == reflect.Pointer && x.Pointer() == y.Pointer() {
			return true
		}
		return equalValue(x.Elem(), y.Elem())
	case reflect.Chan, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	default:
		// funcs are only equal when both are nil
		return x.IsNil() && y.IsNil()
	}
}

// Hash combines the dynamic type and the atomic values of v, in order.
// Equal values always have the same hash. Hash(nil) is 0.
func Hash(v ValueObject) uint64 {
	if isNil(v) {
		return 0
	}
	d := xxhash.New()
	writeString(d, reflect.TypeOf(v).String())
	values := v.AtomicValues()
	writeUvarint(d, uint64(len(values)))
	for _, value := range values {
		writeValue(d, reflect.ValueOf(value))
	}
	return d.Sum64()
}

// tags keep values of different kinds from colliding.
const (
	tagNil byte = iota
	tagValueObject
	tagTime
	tagString
	tagInt
	tagUint
	tagFloat
	tagComplex
	tagBool
	tagSequence
	tagStruct
	tagMap
	tagPointer
	tagOther
)

func writeValue(d *xxhash.Digest, rv reflect.Value) {
	if !rv.IsValid() {
		writeTag(d, tagNil)
		return
	}
	if rv.Kind() != reflect.Interface && rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case ValueObject:
			writeTag(d, tagValueObject)
			writeUvarint(d, Hash(x))
			return
		case time.Time:
			writeTag(d, tagTime)
			writeVarint(d, x.UnixNano())
			return
		}
	}

	switch rv.Kind() {
	case reflect.String:
		writeTag(d, tagString)
		writeString(d, rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeTag(d, tagInt)
		writeVarint(d, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeTag(d, tagUint)
		writeUvarint(d, rv.Uint())
	case reflect.Float32, reflect.Float64:
		writeTag(d, tagFloat)
		writeFloat(d, rv.Float())
	case reflect.Complex64, reflect.Complex128:
		writeTag(d, tagComplex)
		c := rv.Complex()
		writeFloat(d, real(c))
		writeFloat(d, imag(c))
	case reflect.Bool:
		writeTag(d, tagBool)
		if rv.Bool() {
			writeTag(d, 1)
		} else {
			writeTag(d, 0)
		}
	case reflect.Slice, reflect.Array:
		writeTag(d, tagSequence)
		writeUvarint(d, uint64(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			writeValue(d, rv.Index(i))
		}
	case reflect.Struct:
		writeTag(d, tagStruct)
		writeUvarint(d, uint64(rv.NumField()))
		for i := 0; i < rv.NumField(); i++ {
			writeValue(d, rv.Field(i))
		}
	case reflect.Map:
		// entries are hashed on their own and summed, so iteration order does not matter
		writeTag(d, tagMap)
		writeUvarint(d, uint64(rv.Len()))
		var sum uint64
		iter := rv.MapRange()
		for iter.Next() {
			entry := xxhash.New()
			writeValue(entry, iter.Key())
			writeValue(entry, iter.Value())
			sum += entry.Sum64()
		}
		writeUvarint(d, sum)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			writeTag(d, tagNil)
			return
		}
		writeTag(d, tagPointer)
		writeValue(d, rv.Elem())
	case reflect.Chan, reflect.UnsafePointer:
		writeTag(d, tagOther)
		writeUvarint(d, uint64(rv.Pointer()))
	default:
		writeTag(d, tagOther)
		writeString(d, rv.Kind().String())
	}
}

func writeTag(d *xxhash.Digest, tag byte) {
	_, _ = d.Write([]byte{tag})
}

func writeFloat(d *xxhash.Digest, f float64) {
	if f == 0 {
		// -0 == +0
		f = 0
	}
	writeUvarint(d, math.Float64bits(f))
}

func writeString(d *xxhash.Digest, s string) {
	writeUvarint(d, uint64(len(s)))
	_, _ = d.WriteString(s)
}

func writeVarint(d *xxhash.Digest, i int64) {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutVarint(buf, i)
	_, _ = d.Write(buf[:n])
}

func writeUvarint(d *xxhash.Digest, u uint64) {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, u)
	_, _ = d.Write(buf[:n])
}

func isNil(v ValueObject) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
