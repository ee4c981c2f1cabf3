package document

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Decoded values are one of:
//
//	nil, string, bool, int64, float64, []any, Object
//
// Decoders normalize every string and key to NFC.

// Member is one key/value entry of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a decoded mapping that keeps source key order.
type Object []Member

// Lookup returns the value for key and whether it exists.
func (o Object) Lookup(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in source order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

func normalize(s string) string {
	return norm.NFC.String(s)
}

// Error reports a document that does not decode or does not describe a
// valid query. Path locates the offending value, e.g. "cases[2].query.and[0]".
type Error struct {
	File    string
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	switch {
	case e.File != "" && e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.File, e.Path, msg)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, msg)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Path, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int64, float64:
		return "number"
	case []any:
		return "list"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
