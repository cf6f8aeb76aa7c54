package sql

import "strconv"

// DataType represents the logical type of a value.
// TypeNull is a value-only kind: columns are declared as one of the
// three concrete types, while any cell may hold TypeNull.
type DataType int

const (
	TypeInt DataType = iota
	TypeString
	TypeBool
	TypeNull
)

func (t DataType) String() string {
	switch t {
	case TypeInt:
		return "INTEGER"
	case TypeString:
		return "STRING"
	case TypeBool:
		return "BOOLEAN"
	case TypeNull:
		return "NULL"
	}
	return "UNKNOWN"
}

// Value represents a single cell (one column in one row) or a literal
// from a query. Only the field matching Type should be read; the other
// fields stay at their zero values.
type Value struct {
	Type DataType

	I64 int64  // for TypeInt
	S   string // for TypeString
	B   bool   // for TypeBool
}

// IsNull reports whether the value is the SQL NULL.
func (v Value) IsNull() bool {
	return v.Type == TypeNull
}

// String renders the value the way it would appear in a query:
// strings single-quoted, NULL as the bare keyword.
func (v Value) String() string {
	switch v.Type {
	case TypeInt:
		return strconv.FormatInt(v.I64, 10)
	case TypeString:
		return "'" + v.S + "'"
	case TypeBool:
		if v.B {
			return "true"
		}
		return "false"
	}
	return "NULL"
}

// Display renders the value as bare cell text (no quotes), for result
// formatting and row serialization.
func (v Value) Display() string {
	if v.Type == TypeString {
		return v.S
	}
	return v.String()
}
