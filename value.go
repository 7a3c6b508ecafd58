package meow

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind enumerates the dynamic type tags of runtime values.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindString
	KindFloat
	KindInt
	KindBool
	KindList
	KindDict
	KindFunction
)

// floatEqualityEpsilon is the absolute tolerance used when comparing
// floating-point values for equality.
const floatEqualityEpsilon = 1e-9

// Value is a runtime value: a tagged union over the dynamic types of the
// language. Values are treated as immutable once built; aliasing a list or
// dict value shares the backing storage.
type Value struct {
	kind ValueKind
	str  string
	f    float64
	i    int64
	b    bool
	list []*Value
	dict map[string]*Value
	fn   *functionDef
}

// functionDef is a user-defined function: its parameter names and body.
// The function table maps names to these.
type functionDef struct {
	params []string
	body   []Node
}

// valueNone is the shared None value. None carries no payload, so one
// instance serves every occurrence.
var valueNone = &Value{kind: KindNone}

// AsValue lifts a Go value into a runtime value. Accepted inputs: nil,
// string, float64, int, int64, bool, []*Value and map[string]*Value.
// Anything else panics; the set of dynamic types is closed.
func AsValue(i any) *Value {
	switch v := i.(type) {
	case nil:
		return valueNone
	case string:
		return &Value{kind: KindString, str: v}
	case float64:
		return &Value{kind: KindFloat, f: v}
	case int:
		return &Value{kind: KindInt, i: int64(v)}
	case int64:
		return &Value{kind: KindInt, i: v}
	case bool:
		return &Value{kind: KindBool, b: v}
	case []*Value:
		return &Value{kind: KindList, list: v}
	case map[string]*Value:
		return &Value{kind: KindDict, dict: v}
	default:
		panic("meow: AsValue called with an unsupported type")
	}
}

func asFunction(fn *functionDef) *Value {
	return &Value{kind: KindFunction, fn: fn}
}

// Kind returns the dynamic type tag.
func (v *Value) Kind() ValueKind {
	return v.kind
}

func (v *Value) IsString() bool { return v.kind == KindString }
func (v *Value) IsFloat() bool  { return v.kind == KindFloat }
func (v *Value) IsInteger() bool { return v.kind == KindInt }
func (v *Value) IsNumber() bool { return v.kind == KindFloat || v.kind == KindInt }
func (v *Value) IsList() bool   { return v.kind == KindList }
func (v *Value) IsNone() bool   { return v.kind == KindNone }

// String returns the display form: the canonical textual rendering used by
// ecrire, string concatenation and the demander prompts.
func (v *Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		if v.b {
			return "vrai"
		}
		return "faux"
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindDict:
		return "<dictionnaire>"
	case KindFunction:
		return "<fonction>"
	default:
		return ""
	}
}

// Number coerces the value to a float64. Strings are parsed; the ok result
// is false when the value has no numeric reading.
func (v *Value) Number() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Integer returns the value truncated to an integer; 0 when the value has
// no numeric reading.
func (v *Value) Integer() int64 {
	if v.kind == KindInt {
		return v.i
	}
	f, ok := v.Number()
	if !ok {
		return 0
	}
	return int64(f)
}

// List returns the backing slice of a list value, nil otherwise.
func (v *Value) List() []*Value {
	return v.list
}

// IsTrue implements truthiness: false for boolean false, integer 0, float
// 0.0, the empty string, the empty list and None; true for everything
// else (including every dict and function).
func (v *Value) IsTrue() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0.0
	case KindString:
		return v.str != ""
	case KindList:
		return len(v.list) > 0
	case KindNone:
		return false
	default:
		return true
	}
}

// EqualValueTo reports value equality. Numeric values compare across the
// int/float split with an absolute-epsilon tolerance; all other
// comparisons require the same tag. Lists, dicts and functions compare by
// identity of nothing — two distinct ones are never equal.
func (v *Value) EqualValueTo(other *Value) bool {
	if v.IsNumber() && other.IsNumber() {
		a, _ := v.Number()
		b, _ := other.Number()
		return math.Abs(a-b) < floatEqualityEpsilon
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindBool:
		return v.b == other.b
	case KindNone:
		return true
	default:
		return false
	}
}

// TypeName returns the French type name used in type-mismatch
// diagnostics.
func (v *Value) TypeName() string {
	switch v.kind {
	case KindString:
		return "texte"
	case KindFloat:
		return "nombre"
	case KindInt:
		return "entier"
	case KindBool:
		return "booleen"
	case KindList:
		return "liste"
	case KindDict:
		return "dictionnaire"
	case KindFunction:
		return "fonction"
	default:
		return "rien"
	}
}
