package jsonpatch

import (
	"sort"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"household-engine/internal/model"
)

// DiffValues computes the patch between two values by diffing their JSON
// representations.
func DiffValues(a, b any) ([]model.Change, error) {
	ga, err := generic(a)
	if err != nil {
		return nil, err
	}
	gb, err := generic(b)
	if err != nil {
		return nil, err
	}
	return Diff(ga, gb, ""), nil
}

func generic(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Diff computes an RFC 6902 JSON Patch that transforms a into b.
// Both a and b should be the result of json.Unmarshal into interface{}.
// Path should be "" for the root document. Object keys are visited in
// sorted order so the patch is deterministic.
func Diff(a, b any, path string) []model.Change {
	// both nil, no change
	if a == nil && b == nil {
		return nil
	}
	// one side nil, replace
	if a == nil || b == nil {
		return []model.Change{replaceOp(path, b)}
	}

	aMap, aIsMap := a.(map[string]any)
	bMap, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		return diffObjects(aMap, bMap, path)
	}

	aArr, aIsArr := a.([]any)
	bArr, bIsArr := b.([]any)
	if aIsArr && bIsArr {
		return diffArrays(aArr, bArr, path)
	}

	// Different types or different primitive values
	if aIsMap || bIsMap || aIsArr || bIsArr || a != b {
		return []model.Change{replaceOp(path, b)}
	}

	return nil
}

func diffObjects(a, b map[string]any, path string) []model.Change {
	var ops []model.Change

	// Removed keys (in a but not in b)
	for _, k := range sortedKeys(a) {
		if _, ok := b[k]; !ok {
			ops = append(ops, removeOp(path+"/"+escapeKey(k)))
		}
	}

	// Added and changed keys
	for _, k := range sortedKeys(b) {
		childPath := path + "/" + escapeKey(k)
		av, inA := a[k]
		if !inA {
			ops = append(ops, addOp(childPath, b[k]))
		} else {
			ops = append(ops, Diff(av, b[k], childPath)...)
		}
	}

	return ops
}

func diffArrays(a, b []any, path string) []model.Change {
	var ops []model.Change

	minLen := min(len(a), len(b))

	for i := 0; i < minLen; i++ {
		ops = append(ops, Diff(a[i], b[i], path+"/"+strconv.Itoa(i))...)
	}

	// Elements removed (reverse order to keep indices valid)
	for i := len(a) - 1; i >= minLen; i-- {
		ops = append(ops, removeOp(path+"/"+strconv.Itoa(i)))
	}

	for i := minLen; i < len(b); i++ {
		ops = append(ops, addOp(path+"/"+strconv.Itoa(i), b[i]))
	}

	return ops
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func replaceOp(path string, value any) model.Change {
	return model.Change{Op: "replace", Path: path, Value: value}
}

func addOp(path string, value any) model.Change {
	return model.Change{Op: "add", Path: path, Value: value}
}

func removeOp(path string) model.Change {
	return model.Change{Op: "remove", Path: path}
}

// escapeKey escapes a JSON Pointer token per RFC 6901.
func escapeKey(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}
