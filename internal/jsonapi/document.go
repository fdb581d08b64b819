package jsonapi

import (
	"errors"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

var ErrInvalidJSON = errors.New("invalid json")
var ErrNotAnObject = errors.New("document is not a JSON object")

// Document is a parsed JSON value with optional-field accessors.
//
// Every accessor treats a missing key, a null or a value of the wrong type as absent
// instead of failing. The zero value is an absent document.
type Document struct {
	result gjson.Result
}

// Parse a single JSON object
func Parse(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return Document{}, ErrInvalidJSON
	}

	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return Document{}, ErrNotAnObject
	}

	return Document{result: result}, nil
}

func (d Document) IsAbsent() bool {
	return !d.result.Exists() || d.result.Type == gjson.Null
}

// The JSON text of the value. Empty when absent.
func (d Document) Raw() string {
	if d.IsAbsent() {
		return ""
	}
	return d.result.Raw
}

// Returns the value at key, or an absent document if d is not an object or has no such key.
// Keys are matched literally, without gjson path syntax.
func (d Document) Get(key string) Document {
	if !d.result.IsObject() {
		return Document{}
	}

	var found gjson.Result
	d.result.ForEach(func(k, value gjson.Result) bool {
		// Later duplicates win
		if k.String() == key {
			found = value
		}
		return true
	})
	return Document{result: found}
}

// Get following a chain of keys
func (d Document) Path(keys ...string) Document {
	current := d
	for _, key := range keys {
		current = current.Get(key)
		if current.IsAbsent() {
			return Document{}
		}
	}
	return current
}

func (d Document) IsObject() bool {
	return d.result.IsObject()
}

func (d Document) AsArray() ([]Document, bool) {
	if !d.result.IsArray() {
		return nil, false
	}

	values := d.result.Array()
	elements := make([]Document, len(values))
	for i, value := range values {
		elements[i] = Document{result: value}
	}
	return elements, true
}

func (d Document) AsString() (string, bool) {
	if d.result.Type != gjson.String {
		return "", false
	}
	return d.result.Str, true
}

// The number as written in the document, for numeric ids
func (d Document) AsNumberText() (string, bool) {
	if d.result.Type != gjson.Number {
		return "", false
	}
	return d.result.Raw, true
}

// Integer value of a JSON number. Fractions are truncated toward zero, out of range values clamped.
func (d Document) AsInt() (int, bool) {
	raw, ok := d.AsNumberText()
	if !ok {
		return 0, false
	}

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return clampInt(i), true
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return floatToInt(f)
}

func (d Document) AsBool() (bool, bool) {
	switch d.result.Type {
	case gjson.True:
		return true, true
	case gjson.False:
		return false, true
	}
	return false, false
}

func (d Document) StringOr(fallback string) string {
	if s, ok := d.AsString(); ok {
		return s
	}
	return fallback
}

func (d Document) IntOr(fallback int) int {
	if i, ok := d.AsInt(); ok {
		return i
	}
	return fallback
}

func (d Document) BoolOr(fallback bool) bool {
	if b, ok := d.AsBool(); ok {
		return b
	}
	return fallback
}

func (d Document) MarshalJSON() ([]byte, error) {
	if d.IsAbsent() {
		return []byte("null"), nil
	}
	return []byte(d.result.Raw), nil
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) {
		return 0, false
	}
	if f >= math.MaxInt64 {
		return math.MaxInt, true
	}
	if f <= math.MinInt64 {
		return math.MinInt, true
	}
	return clampInt(int64(f)), true
}

func clampInt(i int64) int {
	if i > math.MaxInt {
		return math.MaxInt
	}
	if i < math.MinInt {
		return math.MinInt
	}
	return int(i)
}
