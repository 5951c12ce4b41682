package mpris

import (
	"github.com/godbus/dbus/v5"
)

// unwrap peels nested variant layers; some players double-wrap their
// metadata values.
func unwrap(v any) any {
	for {
		variant, ok := v.(dbus.Variant)
		if !ok {
			return v
		}
		v = variant.Value()
	}
}

// asString reads v as a string, reporting whether it had that shape.
func asString(v any) (string, bool) {
	s, ok := unwrap(v).(string)
	return s, ok
}

// asStringList reads v as a list of strings. Elements of other types
// are skipped individually; ok reports whether v was a list at all.
func asStringList(v any) ([]string, bool) {
	switch list := unwrap(v).(type) {
	case []string:
		return append([]string(nil), list...), true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := asString(item); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// asPropMap reads v as a string-keyed property map.
func asPropMap(v any) (map[string]dbus.Variant, bool) {
	m, ok := unwrap(v).(map[string]dbus.Variant)
	return m, ok
}
