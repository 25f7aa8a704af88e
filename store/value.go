package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Kind is the case tag of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindIdentifier
	KindTimestamp
	KindBool
	KindText
	KindInt32
	KindTextArray
)

func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindTimestamp:
		return "timestamp"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindInt32:
		return "int32"
	case KindTextArray:
		return "text[]"
	default:
		return "invalid"
	}
}

// Value is a single bindable or retrievable column value.
// Only the field matching kind is meaningful; the others stay at their
// zero values.
type Value struct {
	kind Kind

	id  uuid.UUID // KindIdentifier
	ts  time.Time // KindTimestamp
	b   bool      // KindBool
	s   string    // KindText
	i32 int32     // KindInt32
	arr []string  // KindTextArray
}

func Identifier(id uuid.UUID) Value {
	return Value{kind: KindIdentifier, id: id}
}

// Timestamp stores t normalized to UTC.
func Timestamp(t time.Time) Value {
	return Value{kind: KindTimestamp, ts: t.UTC()}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

func Int32(i int32) Value {
	return Value{kind: KindInt32, i32: i}
}

// TextArray copies list so later changes to the caller's slice are not
// observed by the value.
func TextArray(list []string) Value {
	arr := make([]string, len(list))
	copy(arr, list)
	return Value{kind: KindTextArray, arr: arr}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) AsIdentifier() (uuid.UUID, bool) {
	return v.id, v.kind == KindIdentifier
}

func (v Value) AsTimestamp() (time.Time, bool) {
	return v.ts, v.kind == KindTimestamp
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsText() (string, bool) {
	return v.s, v.kind == KindText
}

func (v Value) AsInt32() (int32, bool) {
	return v.i32, v.kind == KindInt32
}

func (v Value) AsTextArray() ([]string, bool) {
	if v.kind != KindTextArray {
		return nil, false
	}

	arr := make([]string, len(v.arr))
	copy(arr, v.arr)
	return arr, true
}

func (v Value) String() string {
	switch v.kind {
	case KindIdentifier:
		return v.id.String()
	case KindTimestamp:
		return v.ts.Format(time.RFC3339Nano)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindText:
		return v.s
	case KindInt32:
		return strconv.FormatInt(int64(v.i32), 10)
	case KindTextArray:
		return "{" + strings.Join(v.arr, ",") + "}"
	default:
		return "<invalid>"
	}
}

// arg returns the driver argument the value is bound as.
func (v Value) arg() (any, error) {
	switch v.kind {
	case KindIdentifier:
		return v.id, nil
	case KindTimestamp:
		return v.ts, nil
	case KindBool:
		return v.b, nil
	case KindText:
		return v.s, nil
	case KindInt32:
		return v.i32, nil
	case KindTextArray:
		return pq.StringArray(v.arr), nil
	default:
		return nil, fmt.Errorf("%w: cannot bind value of kind %s", ErrInvalidDescription, v.kind)
	}
}

// FromColumn converts a raw driver value into a Value of the requested
// kind. A SQL NULL yields the zero value of that kind and valid=false.
func FromColumn(kind Kind, raw any) (v Value, valid bool, err error) {
	v, valid, err = fromColumn(kind, raw)
	if err != nil {
		return Value{}, false, &DecodeError{Kind: kind, Err: err}
	}

	return v, valid, nil
}

func fromColumn(kind Kind, raw any) (Value, bool, error) {
	if raw == nil {
		return zeroOf(kind), false, nil
	}

	switch kind {
	case KindIdentifier:
		id, err := toUUID(raw)
		if err != nil {
			return Value{}, false, err
		}
		return Identifier(id), true, nil
	case KindTimestamp:
		ts, err := toTime(raw)
		if err != nil {
			return Value{}, false, err
		}
		return Timestamp(ts), true, nil
	case KindBool:
		b, err := toBool(raw)
		if err != nil {
			return Value{}, false, err
		}
		return Bool(b), true, nil
	case KindText:
		s, err := toText(raw)
		if err != nil {
			return Value{}, false, err
		}
		return Text(s), true, nil
	case KindInt32:
		i, err := toInt32(raw)
		if err != nil {
			return Value{}, false, err
		}
		return Int32(i), true, nil
	case KindTextArray:
		arr, err := toTextArray(raw)
		if err != nil {
			return Value{}, false, err
		}
		return TextArray(arr), true, nil
	default:
		return Value{}, false, fmt.Errorf("unsupported column kind %s", kind)
	}
}

func zeroOf(kind Kind) Value {
	switch kind {
	case KindIdentifier:
		return Identifier(uuid.Nil)
	case KindTimestamp:
		return Timestamp(time.Time{})
	case KindBool:
		return Bool(false)
	case KindText:
		return Text("")
	case KindInt32:
		return Int32(0)
	case KindTextArray:
		return TextArray(nil)
	default:
		return Value{}
	}
}

func toUUID(raw any) (uuid.UUID, error) {
	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case [16]byte:
		return uuid.UUID(v), nil
	case string:
		return uuid.Parse(v)
	case []byte:
		if len(v) == 16 {
			return uuid.FromBytes(v)
		}
		return uuid.ParseBytes(v)
	default:
		return uuid.Nil, fmt.Errorf("cannot convert %T to %s", raw, KindIdentifier)
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999",
}

func toTime(raw any) (time.Time, error) {
	var s string
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return time.Time{}, fmt.Errorf("cannot convert %T to %s", raw, KindTimestamp)
	}

	// time.Time.String may append a monotonic clock reading
	if i := strings.Index(s, " m="); i >= 0 {
		s = s[:i]
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	case string:
		return strconv.ParseBool(v)
	case []byte:
		return strconv.ParseBool(string(v))
	default:
		return false, fmt.Errorf("cannot convert %T to %s", raw, KindBool)
	}
}

func toText(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot convert %T to %s", raw, KindText)
	}
}

func toInt32(raw any) (int32, error) {
	var i int64
	switch v := raw.(type) {
	case int32:
		return v, nil
	case int64:
		i = v
	case int:
		i = int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return 0, err
		}
		return int32(n), nil
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 32)
		if err != nil {
			return 0, err
		}
		return int32(n), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to %s", raw, KindInt32)
	}

	if i < -1<<31 || i > 1<<31-1 {
		return 0, fmt.Errorf("value %d overflows %s", i, KindInt32)
	}

	return int32(i), nil
}

func toTextArray(raw any) ([]string, error) {
	if v, ok := raw.([]string); ok {
		return v, nil
	}

	var arr pq.StringArray
	if err := arr.Scan(raw); err != nil {
		return nil, err
	}

	return arr, nil
}

// ParseIdentifier parses external text into an identifier.
func ParseIdentifier(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, &ParseError{Kind: KindIdentifier, Input: s, Err: err}
	}

	return id, nil
}

// ParseTimestamp parses external text with layout and returns it in UTC.
func ParseTimestamp(layout, s string) (time.Time, error) {
	ts, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, &ParseError{Kind: KindTimestamp, Input: s, Err: err}
	}

	return ts.UTC(), nil
}
