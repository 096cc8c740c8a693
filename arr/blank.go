package arr

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Blank reports whether v is "empty" in the loose sense used by dynamic
// records: nil, false, any numeric zero, "", "0", and empty slices, arrays
// and maps. Nil pointers and interfaces are blank too.
//
//	arr.Blank(0)        // true
//	arr.Blank("0")      // true
//	arr.Blank("0.0")    // false
//	arr.Blank([]int{})  // true
func Blank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == "" || x == "0"
	case json.Number:
		if x == "" || x == "0" {
			return true
		}
		f, err := x.Float64()
		return err == nil && f == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	switch {
	case rv.CanInt():
		return rv.Int() == 0
	case rv.CanUint():
		return rv.Uint() == 0
	case rv.CanFloat():
		return rv.Float() == 0
	case rv.CanComplex():
		return rv.Complex() == 0
	}
	return false
}

// IsNumeric reports whether v is a number or a string holding one.
// Surrounding whitespace in strings is ignored.
func IsNumeric(v any) bool {
	_, ok := toFloat(v)
	return ok
}

// IsEven reports whether v is numeric and its integer part is even.
func IsEven(v any) bool {
	f, ok := toFloat(v)
	return ok && int64(f)%2 == 0
}

// IsOdd reports whether v is numeric and its integer part is odd.
func IsOdd(v any) bool {
	f, ok := toFloat(v)
	return ok && int64(f)%2 != 0
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}
	return 0, false
}
