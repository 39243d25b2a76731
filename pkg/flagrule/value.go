package flagrule

import (
	"cmp"
	"strconv"
)

// Domain is the closed set of value domains a condition can carry.
type Domain int

const (
	DomainFloat Domain = iota
	DomainInt
	DomainString
)

// String implements fmt.Stringer.
func (d Domain) String() string {
	switch d {
	case DomainFloat:
		return "float"
	case DomainInt:
		return "int"
	case DomainString:
		return "string"
	}
	return "?"
}

// Value is a typed fact value: a tagged union over the three domains.
// Construct with FloatValue, IntValue, or StringValue.
type Value struct {
	domain Domain
	f      float64
	i      int64
	s      string
}

// FloatValue returns a float-domain Value.
func FloatValue(f float64) Value { return Value{domain: DomainFloat, f: f} }

// IntValue returns an int-domain Value.
func IntValue(i int64) Value { return Value{domain: DomainInt, i: i} }

// StringValue returns a string-domain Value.
func StringValue(s string) Value { return Value{domain: DomainString, s: s} }

// Domain returns the value's domain tag.
func (v Value) Domain() Domain { return v.domain }

// String renders the value as expression-literal text.
func (v Value) String() string {
	switch v.domain {
	case DomainFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case DomainInt:
		return strconv.FormatInt(v.i, 10)
	}
	return v.s
}

// compare applies a relational operator with v on the left and a raw
// literal on the right. The literal is coerced into v's domain first.
// ok is false when the coercion fails or op is not relational; callers
// treat that as a fail-closed false.
func (v Value) compare(op Operator, literal string) (result, ok bool) {
	if !op.IsRelational() {
		return false, false
	}
	switch v.domain {
	case DomainFloat:
		rhs, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return false, false
		}
		return compareOrdered(v.f, rhs, op), true
	case DomainInt:
		rhs, err := strconv.ParseInt(literal, 10, 64)
		if err != nil {
			return false, false
		}
		return compareOrdered(v.i, rhs, op), true
	}
	return compareOrdered(v.s, literal, op), true
}

// compareOrdered evaluates a relational operator over any ordered type.
func compareOrdered[T cmp.Ordered](lhs, rhs T, op Operator) bool {
	switch op {
	case OpNotEqual:
		return lhs != rhs
	case OpLess:
		return lhs < rhs
	case OpLessEqual:
		return lhs <= rhs
	case OpEqual:
		return lhs == rhs
	case OpGreater:
		return lhs > rhs
	case OpGreaterEqual:
		return lhs >= rhs
	}
	return false
}
