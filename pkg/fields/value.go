package fields

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"
)

// Unset marks a value that was never assigned. Validation treats it like nil.
var Unset any = unset{}

type unset struct{}

func (unset) String() string {
	return "<unset>"
}

var (
	timeType       = reflect.TypeOf(time.Time{})
	jsonNumberType = reflect.TypeOf(json.Number(""))
)

// IsNull reports whether value is nil, a nil pointer, map, slice or interface,
// or Unset. Pointer chains are followed, so a pointer to a nil pointer is null.
func IsNull(value any) bool {
	if value == nil {
		return true
	}
	if _, ok := value.(unset); ok {
		return true
	}
	rv := indirect(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func indirect(value any) reflect.Value {
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}

func textValue(value any) (string, bool) {
	rv := indirect(value)
	if !rv.IsValid() || rv.Kind() != reflect.String || rv.Type() == jsonNumberType {
		return "", false
	}
	return rv.String(), true
}

func boolValue(value any) (bool, bool) {
	rv := indirect(value)
	if !rv.IsValid() || rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

// numeric holds a number without losing integer precision: integer kinds and
// integral json.Number text keep an exact big.Int, everything else a float64.
type numeric struct {
	i *big.Int
	f float64
}

func floatNumeric(f float64) numeric {
	return numeric{f: f}
}

func (n numeric) isZero() bool {
	if n.i != nil {
		return n.i.Sign() == 0
	}
	return n.f == 0
}

// cmp orders n against o exactly. ok is false when either side is NaN.
func (n numeric) cmp(o numeric) (c int, ok bool) {
	if n.i != nil && o.i != nil {
		return n.i.Cmp(o.i), true
	}
	a, b := n.bigFloat(), o.bigFloat()
	if a == nil || b == nil {
		return 0, false
	}
	return a.Cmp(b), true
}

func (n numeric) bigFloat() *big.Float {
	if n.i != nil {
		return new(big.Float).SetInt(n.i)
	}
	if math.IsNaN(n.f) {
		return nil
	}
	return new(big.Float).SetFloat64(n.f)
}

func numberValue(value any) (numeric, bool) {
	rv := indirect(value)
	if !rv.IsValid() {
		return numeric{}, false
	}
	if rv.Type() == jsonNumberType {
		return parseNumeric(rv.String())
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numeric{i: big.NewInt(rv.Int())}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numeric{i: new(big.Int).SetUint64(rv.Uint())}, true
	case reflect.Float32, reflect.Float64:
		return numeric{f: rv.Float()}, true
	default:
		return numeric{}, false
	}
}

// parseNumeric reads json.Number text. Values beyond float64 range become
// infinities so bounds still order them.
func parseNumeric(text string) (numeric, bool) {
	if i, ok := new(big.Int).SetString(text, 10); ok {
		return numeric{i: i}, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return numeric{f: f}, true
		}
		return numeric{}, false
	}
	return numeric{f: f}, true
}

func timeValue(value any) (time.Time, bool) {
	rv := indirect(value)
	if !rv.IsValid() || rv.Type() != timeType {
		return time.Time{}, false
	}
	t, ok := rv.Interface().(time.Time)
	return t, ok
}

// sameValue compares enum members: numbers numerically, strings (including
// named string types) by text, everything else with reflect.DeepEqual.
func sameValue(a, b any) bool {
	if an, ok := numberValue(a); ok {
		bn, ok := numberValue(b)
		if !ok {
			return false
		}
		c, ok := an.cmp(bn)
		return ok && c == 0
	}
	ra, rb := indirect(a), indirect(b)
	if !ra.IsValid() || !rb.IsValid() {
		return !ra.IsValid() && !rb.IsValid()
	}
	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		return ra.String() == rb.String()
	}
	return reflect.DeepEqual(ra.Interface(), rb.Interface())
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}

func indexPath(parent string, idx int) string {
	return fmt.Sprintf("%s[%d]", parent, idx)
}
