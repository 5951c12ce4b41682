package mpris

import (
	"reflect"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestAsString(t *testing.T) {
	if s, ok := asString("plain"); !ok || s != "plain" {
		t.Fatalf("asString(plain) = %q, %v", s, ok)
	}
	if s, ok := asString(dbus.MakeVariant("wrapped")); !ok || s != "wrapped" {
		t.Fatalf("asString(variant) = %q, %v", s, ok)
	}
	if s, ok := asString(dbus.MakeVariant(dbus.MakeVariant("double"))); !ok || s != "double" {
		t.Fatalf("asString(nested variant) = %q, %v", s, ok)
	}
	if _, ok := asString(42); ok {
		t.Fatal("asString(int) should report a mismatch")
	}
	if _, ok := asString(nil); ok {
		t.Fatal("asString(nil) should report a mismatch")
	}
}

func TestAsStringList(t *testing.T) {
	if got, ok := asStringList([]string{"a", "b"}); !ok || !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("asStringList([]string) = %v, %v", got, ok)
	}

	// mixed []any: non-string elements are skipped, not fatal
	mixed := []any{"a", 7, dbus.MakeVariant("b")}
	if got, ok := asStringList(mixed); !ok || !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("asStringList(mixed) = %v, %v", got, ok)
	}

	if _, ok := asStringList("not a list"); ok {
		t.Fatal("asStringList(string) should report a mismatch")
	}
}

func TestAsPropMap(t *testing.T) {
	m := map[string]dbus.Variant{"k": dbus.MakeVariant("v")}
	if got, ok := asPropMap(dbus.MakeVariant(m)); !ok || len(got) != 1 {
		t.Fatalf("asPropMap(variant map) = %v, %v", got, ok)
	}
	if _, ok := asPropMap([]string{"k"}); ok {
		t.Fatal("asPropMap(slice) should report a mismatch")
	}
}
