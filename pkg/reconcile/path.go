package reconcile

import "strings"

// pathValue descends a nested structured source one dotted-path component at
// a time. The path fails when any intermediate value is absent, null, or not
// a mapping; failures never raise, they just report false.
func pathValue(src map[string]any, path string) (any, bool) {
	if src == nil {
		return nil, false
	}
	var cur any = src
	for _, part := range strings.Split(path, ".") {
		m, ok := asMapping(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// firstPathValue tries candidate paths in order and returns the first
// non-null leaf.
func firstPathValue(src map[string]any, paths []string) (any, bool) {
	for _, p := range paths {
		if v, ok := pathValue(src, p); ok {
			return v, true
		}
	}
	return nil, false
}

// asMapping accepts the mapping shapes JSON and YAML decoders produce.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	default:
		return nil, false
	}
}
