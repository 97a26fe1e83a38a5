package logging

import "fmt"

// Field is one key/value pair of an entry.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field { return Field{key, value} }

func Int(key string, value int) Field { return Field{key, value} }

func Bool(key string, value bool) Field { return Field{key, value} }

// Error stores err's message under "error".
func Error(err error) Field {
	if err == nil {
		return Field{"error", nil}
	}
	return Field{"error", err.Error()}
}

// Stringer stores the rendering of value.
func Stringer(key string, value fmt.Stringer) Field {
	if value == nil {
		return Field{key, nil}
	}
	return Field{key, value.String()}
}

// Wrapper stores a wrapper value as {"type": ..., "value": ...}.
func Wrapper(key string, value interface {
	TypeName() string
	String() string
}) Field {
	return Field{key, map[string]string{"type": value.TypeName(), "value": value.String()}}
}
