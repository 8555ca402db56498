package editor

import (
	"strconv"
	"strings"
)

// GetNestedValue resolves a dotted path ("media.src", "form.fields.2.label")
// against a data object. Each segment is looked up as an object key; numeric
// segments index arrays. A path through a missing or non-container value
// resolves to (nil, false), never panics.
func GetNestedValue(obj map[string]interface{}, path string) (interface{}, bool) {
	segs := pathSegments(path)
	if len(segs) == 0 {
		return nil, false
	}

	var current interface{} = obj
	for _, seg := range segs {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[seg]
			if !ok {
				return nil, false
			}
			current = value
		case []interface{}:
			index, ok := parseIndex(seg)
			if !ok || index < 0 || index >= len(node) {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}
	return current, true
}

// SetNestedValue writes value at the dotted path and returns a new object.
// The original is never mutated: only the containers on the path to the leaf
// are copied, every sibling subtree is shared by reference. Missing
// intermediate objects are created; a path that indexes a missing array slot
// or passes through a scalar is a no-op, reported via the second return.
func SetNestedValue(obj map[string]interface{}, path string, value interface{}) (map[string]interface{}, bool) {
	segs := pathSegments(path)
	if len(segs) == 0 {
		return obj, false
	}

	updated, changed := setSegments(obj, segs, value)
	if !changed {
		return obj, false
	}
	result, ok := updated.(map[string]interface{})
	if !ok {
		return obj, false
	}
	return result, true
}

func setSegments(current interface{}, segs []string, value interface{}) (interface{}, bool) {
	if len(segs) == 0 {
		return value, true
	}

	seg := segs[0]

	switch node := current.(type) {
	case map[string]interface{}:
		child, changed := setSegments(node[seg], segs[1:], value)
		if !changed {
			return current, false
		}
		clone := make(map[string]interface{}, len(node)+1)
		for k, v := range node {
			clone[k] = v
		}
		clone[seg] = child
		return clone, true

	case []interface{}:
		index, ok := parseIndex(seg)
		if !ok || index < 0 || index >= len(node) {
			return current, false
		}
		child, changed := setSegments(node[index], segs[1:], value)
		if !changed {
			return current, false
		}
		clone := make([]interface{}, len(node))
		copy(clone, node)
		clone[index] = child
		return clone, true

	case nil:
		// Arrays are never fabricated; objects are.
		if _, numeric := parseIndex(seg); numeric {
			return current, false
		}
		child, changed := setSegments(nil, segs[1:], value)
		if !changed {
			return current, false
		}
		return map[string]interface{}{seg: child}, true

	default:
		// Path addresses through a scalar: leave the object untouched.
		return current, false
	}
}

func pathSegments(path string) []string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil
	}
	segs := strings.Split(trimmed, ".")
	for _, seg := range segs {
		if seg == "" {
			return nil
		}
	}
	return segs
}

func parseIndex(seg string) (int, bool) {
	index, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return index, true
}

// DeepClone copies a JSON-shaped value (maps, slices, scalars) recursively.
func DeepClone(value interface{}) interface{} {
	switch node := value.(type) {
	case map[string]interface{}:
		clone := make(map[string]interface{}, len(node))
		for k, v := range node {
			clone[k] = DeepClone(v)
		}
		return clone
	case []interface{}:
		clone := make([]interface{}, len(node))
		for i, v := range node {
			clone[i] = DeepClone(v)
		}
		return clone
	default:
		return node
	}
}
