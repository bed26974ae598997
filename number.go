package kdtree

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of coordinate types a tree can index. Coordinates only
// need ordering and subtraction; everything else is up to the metric.
type Number interface {
	constraints.Integer | constraints.Float
}

// minValue returns the smallest representable value of T.
// Floats use -MaxFloat rather than -Inf so sentinel arithmetic stays finite.
func minValue[T Number]() T {
	var (
		i64 int64
		f64 float64
	)
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		i64 = math.MinInt8
	case reflect.Int16:
		i64 = math.MinInt16
	case reflect.Int32:
		i64 = math.MinInt32
	case reflect.Int, reflect.Int64:
		i64 = math.MinInt64
		if reflect.TypeFor[T]().Size() == 4 {
			i64 = math.MinInt32
		}
	case reflect.Float32:
		f64 = -math.MaxFloat32
		return T(f64)
	case reflect.Float64:
		f64 = -math.MaxFloat64
		return T(f64)
	default:
		// Unsigned integers bottom out at zero.
		return 0
	}
	return T(i64)
}

// maxValue returns the largest representable value of T.
func maxValue[T Number]() T {
	var (
		i64 int64
		u64 uint64
		f64 float64
	)
	typ := reflect.TypeFor[T]()
	switch typ.Kind() {
	case reflect.Int8:
		i64 = math.MaxInt8
	case reflect.Int16:
		i64 = math.MaxInt16
	case reflect.Int32:
		i64 = math.MaxInt32
	case reflect.Int, reflect.Int64:
		i64 = math.MaxInt64
		if typ.Size() == 4 {
			i64 = math.MaxInt32
		}
	case reflect.Uint8:
		u64 = math.MaxUint8
		return T(u64)
	case reflect.Uint16:
		u64 = math.MaxUint16
		return T(u64)
	case reflect.Uint32:
		u64 = math.MaxUint32
		return T(u64)
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		u64 = math.MaxUint64
		if typ.Size() == 4 {
			u64 = math.MaxUint32
		}
		return T(u64)
	case reflect.Float32:
		f64 = math.MaxFloat32
		return T(f64)
	default:
		f64 = math.MaxFloat64
		return T(f64)
	}
	return T(i64)
}

// filled returns a point of length dims with every coordinate set to v.
func filled[T Number](dims int, v T) []T {
	p := make([]T, dims)
	for i := range p {
		p[i] = v
	}
	return p
}
