package greenops

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// numericPrefix matches the longest leading decimal number of a string.
//
//nolint:gochecknoglobals // Compiled once.
var numericPrefix = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

// Value is an activity quantity as supplied by the logging collaborator:
// either a number or free text such as "12.5" or "12 km".
// The zero Value is a missing quantity.
type Value struct {
	text  string
	num   float64
	isNum bool
}

// Number returns a numeric Value.
func Number(f float64) Value { return Value{num: f, isNum: true} }

// Text returns a textual Value that is parsed on use.
func Text(s string) Value { return Value{text: s} }

// Float64 returns the quantity as a finite number.
// Text is read leniently: leading whitespace is skipped and the longest numeric
// prefix is used, so "12 km" reads as 12. Missing, non-numeric and non-finite
// values return (0, false).
func (v Value) Float64() (float64, bool) {
	if v.isNum {
		if !isFinite(v.num) {
			return 0, false
		}
		return v.num, true
	}
	return parseLeadingFloat(v.text)
}

// String returns the value as supplied.
func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.text
}

// IsMissing reports whether no quantity was supplied.
func (v Value) IsMissing() bool { return !v.isNum && v.text == "" }

func parseLeadingFloat(s string) (float64, bool) {
	match := numericPrefix.FindString(strings.TrimLeft(s, " \t\r\n"))
	if match == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(match, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// MarshalJSON encodes numbers as JSON numbers and text as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case v.isNum && isFinite(v.num):
		return []byte(strconv.FormatFloat(v.num, 'g', -1, 64)), nil
	case v.isNum:
		return json.Marshal(v.String())
	case v.text == "":
		return []byte("null"), nil
	default:
		return json.Marshal(v.text)
	}
}

// UnmarshalJSON accepts a number, a string or null. Any other JSON value is
// kept as text so that it reads as zero instead of failing the whole document.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = Value{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*v = Text(string(data))
			return nil
		}
		*v = Number(f)
	}
	return nil
}

// MarshalYAML encodes the value as a YAML number, string or null.
func (v Value) MarshalYAML() (interface{}, error) {
	switch {
	case v.isNum && isFinite(v.num):
		return v.num, nil
	case v.isNum:
		return v.String(), nil
	case v.text == "":
		return nil, nil
	default:
		return v.text, nil
	}
}

// UnmarshalYAML accepts int, float, string and null scalars.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*v = Value{}
		return nil
	}
	switch node.ShortTag() {
	case "!!null":
		*v = Value{}
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			*v = Text(node.Value)
			return nil
		}
		*v = Number(f)
	default:
		*v = Text(node.Value)
	}
	return nil
}
