package sql

import "fmt"

// ValuesEqual implements SQL-style value equality: NULL equals nothing
// (including NULL), and values of different kinds are unequal rather
// than an error.
func ValuesEqual(a, b Value) bool {
	if a.IsNull() || b.IsNull() {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case TypeInt:
		return a.I64 == b.I64
	case TypeString:
		return a.S == b.S
	case TypeBool:
		return a.B == b.B
	}
	return false
}

// CompareValues evaluates "rowValue operator compareValue" for the six
// comparison operators. A NULL row value satisfies no operator. The
// ordering operators require both operands to be of the same orderable
// kind (integer, or string with lexicographic order); anything else is
// an error, not a silent false.
func CompareValues(rowValue Value, operator string, compareValue Value) (bool, error) {
	if rowValue.IsNull() {
		return false, nil
	}

	switch operator {
	case "=":
		return ValuesEqual(rowValue, compareValue), nil
	case "!=", "<>":
		if compareValue.IsNull() {
			return false, nil
		}
		return !ValuesEqual(rowValue, compareValue), nil
	case ">", "<", ">=", "<=":
		// NULL participates in no ordering.
		if compareValue.IsNull() {
			return false, nil
		}
		cmp, err := orderValues(rowValue, compareValue)
		if err != nil {
			return false, err
		}
		switch operator {
		case ">":
			return cmp > 0, nil
		case "<":
			return cmp < 0, nil
		case ">=":
			return cmp >= 0, nil
		default:
			return cmp <= 0, nil
		}
	}

	return false, fmt.Errorf("unknown operator: %s", operator)
}

// orderValues returns -1, 0 or 1 for two non-null values of the same
// orderable kind.
func orderValues(a, b Value) (int, error) {
	if a.Type != b.Type || a.Type == TypeBool {
		return 0, fmt.Errorf("cannot compare %s with %s", a.Type, b.Type)
	}
	switch a.Type {
	case TypeInt:
		switch {
		case a.I64 < b.I64:
			return -1, nil
		case a.I64 > b.I64:
			return 1, nil
		}
		return 0, nil
	case TypeString:
		switch {
		case a.S < b.S:
			return -1, nil
		case a.S > b.S:
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("cannot compare %s with %s", a.Type, b.Type)
}
