// Package nested walks decoded data (typically the result of json.Unmarshal into
// an any) by a path of keys and indices.
package nested

import "reflect"

// GetPath follows path through root and returns the value found, or def as soon as
// a step cannot be taken.
//
// A string (or any comparable) step indexes a map; an integer step of any kind
// indexes a slice, an array or a string (by rune, giving a one-character string),
// with negative values counting from the end. A step that does not fit the
// container, a missing key and an out-of-range index all yield def.
//
//	doc := map[string]any{"foo": []any{map[string]any{"bar": 3}}}
//	GetPath(doc, []any{"foo", 0, "bar"}, nil)   // 3
//	GetPath(doc, []any{"foo", "bar"}, "missing") // "missing"
func GetPath(root any, path []any, def any) any {
	cur := root
	for _, step := range path {
		next, ok := index(cur, step)
		if !ok {
			return def
		}
		cur = next
	}
	return cur
}

// Get is GetPath with a typed result. A value of the wrong type also yields def.
func Get[T any](root any, path []any, def T) T {
	v, ok := GetPath(root, path, def).(T)
	if !ok {
		return def
	}
	return v
}

func index(container, step any) (any, bool) {
	// fast paths for what encoding/json produces
	switch c := container.(type) {
	case map[string]any:
		key, ok := step.(string)
		if !ok {
			return nil, false
		}
		v, ok := c[key]
		return v, ok
	case []any:
		i, ok := normIndex(step, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	case string:
		rs := []rune(c)
		i, ok := normIndex(step, len(rs))
		if !ok {
			return nil, false
		}
		return string(rs[i]), true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if step == nil {
			return nil, false
		}
		kv := reflect.ValueOf(step)
		if !kv.Type().AssignableTo(rv.Type().Key()) {
			if !kv.Type().ConvertibleTo(rv.Type().Key()) || kv.Kind() != rv.Type().Key().Kind() {
				return nil, false
			}
			kv = kv.Convert(rv.Type().Key())
		}
		if !kv.Comparable() {
			return nil, false
		}
		v := rv.MapIndex(kv)
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := normIndex(step, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.String:
		rs := []rune(rv.String())
		i, ok := normIndex(step, len(rs))
		if !ok {
			return nil, false
		}
		return string(rs[i]), true
	}
	return nil, false
}

func normIndex(step any, n int) (int, bool) {
	var i int
	switch sv := reflect.ValueOf(step); sv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if sv.Int() < -int64(n) || sv.Int() >= int64(n) {
			return 0, false
		}
		i = int(sv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if sv.Uint() >= uint64(n) {
			return 0, false
		}
		i = int(sv.Uint())
	default:
		return 0, false
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
