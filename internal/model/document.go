package model

// Documents loaded from disk are generic string-keyed maps. Reconstruction
// is an explicit allow-list per type: unknown keys are dropped, missing keys
// fall back to the type's default, and a value of the wrong shape is treated
// as missing rather than coerced.

func docString(doc map[string]any, key, def string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return def
}

func docBool(doc map[string]any, key string, def bool) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return def
}

// docStrings reads an ordered string list. Accepts both []any (decoded JSON)
// and []string (documents built in-process). Non-string elements are dropped.
func docStrings(doc map[string]any, key string) []string {
	switch v := doc[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

func docMap(doc map[string]any, key string) (map[string]any, bool) {
	v, ok := doc[key].(map[string]any)
	return v, ok
}
