// Package params holds parameter values and resolves them from presets and prompts.
package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/smartcontractkit/scaffold/internal/descriptor"
)

var ErrInvalidValue = errors.New("invalid parameter value")

// Value is one of String, Integer, Float, Boolean or Array.
type Value interface {
	fmt.Stringer
	// Native returns the plain Go value handed to the renderer.
	Native() any
	isValue()
}

type (
	String  string
	Integer int64
	Float   float64
	Boolean bool
	Array   []Value
)

func (String) isValue()  {}
func (Integer) isValue() {}
func (Float) isValue()   {}
func (Boolean) isValue() {}
func (Array) isValue()   {}

func (v String) String() string  { return string(v) }
func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string   { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }

func (v Array) String() string {
	parts := make([]string, len(v))
	for i, item := range v {
		parts[i] = item.String()
	}
	return strings.Join(parts, ",")
}

func (v String) Native() any  { return string(v) }
func (v Integer) Native() any { return int64(v) }
func (v Float) Native() any   { return float64(v) }
func (v Boolean) Native() any { return bool(v) }

func (v Array) Native() any {
	out := make([]any, len(v))
	for i, item := range v {
		out[i] = item.Native()
	}
	return out
}

// FromTOML converts a value decoded from the descriptor.
func FromTOML(raw any) (Value, error) {
	switch v := raw.(type) {
	case string:
		return String(v), nil
	case int64:
		return Integer(v), nil
	case int:
		return Integer(int64(v)), nil
	case float64:
		return Float(v), nil
	case bool:
		return Boolean(v), nil
	case []any:
		arr := make(Array, 0, len(v))
		for _, item := range v {
			converted, err := FromTOML(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, converted)
		}
		return arr, nil
	case Value:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %v (%T)", ErrInvalidValue, raw, raw)
	}
}

// Parse converts text supplied on the command line into a value of the given kind.
// Select results are plain strings and multiselect results are comma separated.
// Membership in the declared choices is checked by the resolver.
func Parse(kind descriptor.Kind, text string) (Value, error) {
	switch kind {
	case descriptor.KindString, descriptor.KindSelect:
		return String(text), nil
	case descriptor.KindInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, text)
		}
		return Integer(n), nil
	case descriptor.KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, text)
		}
		return Float(f), nil
	case descriptor.KindBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, text)
		}
		return Boolean(b), nil
	case descriptor.KindMultiSelect:
		arr := Array{}
		for _, item := range strings.Split(text, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			arr = append(arr, String(item))
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("%w: unknown parameter type %q", ErrInvalidValue, kind)
	}
}

// Display formats a raw descriptor value for prompts and tables.
func Display(raw any) string {
	if raw == nil {
		return ""
	}
	v, err := FromTOML(raw)
	if err != nil {
		return fmt.Sprintf("%v", raw)
	}
	return v.String()
}
