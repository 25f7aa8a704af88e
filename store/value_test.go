package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestValueConstructorsKeepOneCase(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2023, 5, 4, 3, 2, 1, 0, time.FixedZone("CET", 3600))

	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"identifier", Identifier(id), KindIdentifier},
		{"timestamp", Timestamp(ts), KindTimestamp},
		{"bool", Bool(true), KindBool},
		{"text", Text("hello"), KindText},
		{"int32", Int32(-5), KindInt32},
		{"text array", TextArray([]string{"a"}), KindTextArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Fatalf("Kind() = %s, want %s", tt.v.Kind(), tt.kind)
			}

			_, isID := tt.v.AsIdentifier()
			_, isTS := tt.v.AsTimestamp()
			_, isBool := tt.v.AsBool()
			_, isText := tt.v.AsText()
			_, isInt := tt.v.AsInt32()
			_, isArr := tt.v.AsTextArray()

			active := 0
			for _, ok := range []bool{isID, isTS, isBool, isText, isInt, isArr} {
				if ok {
					active++
				}
			}
			if active != 1 {
				t.Errorf("%d cases report ok, want exactly 1", active)
			}
		})
	}
}

func TestTimestampIsUTC(t *testing.T) {
	ts := time.Date(2023, 5, 4, 3, 2, 1, 0, time.FixedZone("CET", 3600))

	got, _ := Timestamp(ts).AsTimestamp()
	if got.Location() != time.UTC {
		t.Errorf("location = %s, want UTC", got.Location())
	}
	if !got.Equal(ts) {
		t.Errorf("instant changed: %s != %s", got, ts)
	}
}

func TestTextArrayCopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	v := TextArray(in)
	in[0] = "z"

	got, _ := v.AsTextArray()
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("TextArray mismatch (-want +got):\n%s", diff)
	}

	got[1] = "y"
	again, _ := v.AsTextArray()
	if again[1] != "b" {
		t.Error("AsTextArray must not expose the internal slice")
	}
}

func TestFromColumn(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)

	tests := []struct {
		name string
		kind Kind
		raw  any
		want Value
	}{
		{"uuid from string", KindIdentifier, id.String(), Identifier(id)},
		{"uuid from bytes", KindIdentifier, id[:], Identifier(id)},
		{"uuid from array", KindIdentifier, [16]byte(id), Identifier(id)},
		{"time", KindTimestamp, ts, Timestamp(ts)},
		{"time from text", KindTimestamp, ts.Format(time.RFC3339Nano), Timestamp(ts)},
		{"bool", KindBool, true, Bool(true)},
		{"bool from int", KindBool, int64(1), Bool(true)},
		{"text", KindText, "x", Text("x")},
		{"text from bytes", KindText, []byte("x"), Text("x")},
		{"int32 from int64", KindInt32, int64(42), Int32(42)},
		{"int32 from text", KindInt32, "42", Int32(42)},
		{"text array literal", KindTextArray, `{"Baricco Alessandro",Eco}`, TextArray([]string{"Baricco Alessandro", "Eco"})},
		{"text array bytes", KindTextArray, []byte(`{a,b}`), TextArray([]string{"a", "b"})},
		{"text array slice", KindTextArray, []string{"a"}, TextArray([]string{"a"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid, err := FromColumn(tt.kind, tt.raw)
			if err != nil {
				t.Fatalf("FromColumn failed: %v", err)
			}
			if !valid {
				t.Fatal("valid = false, want true")
			}
			if got.String() != tt.want.String() || got.Kind() != tt.want.Kind() {
				t.Errorf("FromColumn = %s (%s), want %s (%s)", got, got.Kind(), tt.want, tt.want.Kind())
			}
		})
	}
}

func TestFromColumnNullYieldsZeroOfKind(t *testing.T) {
	for _, kind := range []Kind{KindIdentifier, KindTimestamp, KindBool, KindText, KindInt32, KindTextArray} {
		v, valid, err := FromColumn(kind, nil)
		if err != nil {
			t.Fatalf("%s: FromColumn(nil) failed: %v", kind, err)
		}
		if valid {
			t.Errorf("%s: valid = true for NULL", kind)
		}
		if v.Kind() != kind {
			t.Errorf("%s: zero value has kind %s", kind, v.Kind())
		}
	}
}

func TestFromColumnErrors(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		raw  any
	}{
		{"bad uuid", KindIdentifier, "not-a-uuid"},
		{"int32 overflow", KindInt32, int64(1) << 40},
		{"wrong type", KindText, 3.14},
		{"bad time", KindTimestamp, "yesterday"},
		{"unknown kind", KindInvalid, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := FromColumn(tt.kind, tt.raw)
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("err = %v, want ErrDecode", err)
			}
			if errors.Is(err, ErrParse) {
				t.Errorf("err = %v, must not match ErrParse", err)
			}
		})
	}
}

func TestParseIdentifier(t *testing.T) {
	id := uuid.New()

	got, err := ParseIdentifier(id.String())
	if err != nil || got != id {
		t.Fatalf("ParseIdentifier = %s, %v", got, err)
	}

	_, err = ParseIdentifier("1234")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Kind != KindIdentifier || perr.Input != "1234" {
		t.Errorf("ParseError = %+v", perr)
	}
	if !errors.Is(err, ErrParse) {
		t.Error("expected errors.Is(err, ErrParse)")
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2006-01-02 15:04:05", "1998-06-10 00:00:00")
	if err != nil {
		t.Fatalf("ParseTimestamp failed: %v", err)
	}
	if want := time.Date(1998, 6, 10, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("ParseTimestamp = %s, want %s", got, want)
	}

	if _, err := ParseTimestamp("2006-01-02 15:04:05", "10/06/1998"); !errors.Is(err, ErrParse) {
		t.Errorf("err = %v, want ErrParse", err)
	}
}

func TestBindArgsRejectsInvalid(t *testing.T) {
	if _, err := bindArgs([]Value{Text("a"), {}}); !errors.Is(err, ErrInvalidDescription) {
		t.Errorf("err = %v, want ErrInvalidDescription", err)
	}
}
