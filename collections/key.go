package collections

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// NormalizeKey converts an arbitrary scalar into the canonical form used
// as a key in an [OrderedMap][any, V]. The rules follow PHP's array-key
// casting, so that ids read from JSON, SQL rows or form input address the
// same entry regardless of their dynamic type:
//
//   - every Go integer kind becomes int
//   - bool becomes 0 or 1
//   - an integral float becomes int
//   - a canonical decimal-integer string ("12", "-3", not "012" or "+3") becomes int
//   - nil becomes ""
//   - any other string is kept verbatim
//
// Any other value, including non-integral floats, yields [ErrUnsupportedKey].
func NormalizeKey(v any) (any, error) {
	switch k := v.(type) {
	case nil:
		return "", nil
	case int:
		return k, nil
	case int8:
		return int(k), nil
	case int16:
		return int(k), nil
	case int32:
		return int(k), nil
	case int64:
		return int(k), nil
	case uint8:
		return int(k), nil
	case uint16:
		return int(k), nil
	case uint32:
		return int(k), nil
	case uint:
		if uint64(k) > math.MaxInt {
			return nil, fmt.Errorf("%w: %d overflows int", ErrUnsupportedKey, k)
		}
		return int(k), nil
	case uint64:
		if k > math.MaxInt {
			return nil, fmt.Errorf("%w: %d overflows int", ErrUnsupportedKey, k)
		}
		return int(k), nil
	case bool:
		if k {
			return 1, nil
		}
		return 0, nil
	case float32:
		return floatKey(float64(k))
	case float64:
		return floatKey(k)
	case string:
		if n, ok := intString(k); ok {
			return n, nil
		}
		return k, nil
	case json.Number:
		if n, ok := intString(string(k)); ok {
			return n, nil
		}
		if f, err := k.Float64(); err == nil {
			return floatKey(f)
		}
		return string(k), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, v)
	}
}

func floatKey(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
		f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("%w: float %v", ErrUnsupportedKey, f)
	}
	return int(f), nil
}

// intString reports whether s is a canonical decimal integer that fits in
// an int, and returns its value.
func intString(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" || (digits[0] == '0' && len(s) > 1) {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
