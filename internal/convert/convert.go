package convert

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"strconv"
)

type Error struct {
	Value interface{}
	Type  string
}

func (c Error) Error() string {
	return fmt.Sprintf("unable to convert value %v to %s", c.Value, c.Type)
}

// String formats a decoded field value. Byte slices are hex encoded.
func String(value interface{}) (string, error) {
	if buf, ok := value.([]byte); ok {
		return hex.EncodeToString(buf), nil
	}

	v := reflect.ValueOf(value)

	// nolint: exhaustive
	switch v.Kind() {
	case reflect.String:
		return strconv.Quote(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	}

	return "", Error{Value: value, Type: "string"}
}

// Int parses a non-negative decimal integer.
func Int(s string) (int, error) {
	v, err := strconv.Atoi(s)

	if err != nil || v < 0 {
		return 0, Error{Value: s, Type: "int"}
	}

	return v, nil
}
