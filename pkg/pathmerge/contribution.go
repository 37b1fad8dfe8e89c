// Package pathmerge merges the search paths a repository declares into
// the user configuration.
//
// A repository contributes paths under "path.append" and "path.prepend".
// Merging keeps every path the user already has, in its current order,
// adds contributed paths that are missing (appended paths at the end,
// prepended paths at the front) and never duplicates an entry. Empty
// lists are dropped, so a merge that adds nothing compares equal to the
// stored configuration and leaves the file alone.
package pathmerge

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Keys of the path section
const (
	AppendKey  = "append"
	PrependKey = "prepend"
)

// Contribution is a path section: paths to append and paths to prepend
type Contribution struct {
	Append  []string `mapstructure:"append" yaml:"append,omitempty"`
	Prepend []string `mapstructure:"prepend" yaml:"prepend,omitempty"`
}

// Empty reports whether the contribution has no path at all
func (c Contribution) Empty() bool {
	return len(c.Append) == 0 && len(c.Prepend) == 0
}

// Merge folds contribution into existing.
// Appended paths are pushed when absent; prepended paths are unshifted one
// after the other when absent, so the last one ends up first.
func Merge(existing, contribution Contribution) Contribution {
	merged := Contribution{
		Append:  append([]string(nil), existing.Append...),
		Prepend: append([]string(nil), existing.Prepend...),
	}

	for _, p := range contribution.Append {
		if !contains(merged.Append, p) {
			merged.Append = append(merged.Append, p)
		}
	}
	for _, p := range contribution.Prepend {
		if !contains(merged.Prepend, p) {
			merged.Prepend = append([]string{p}, merged.Prepend...)
		}
	}

	merged.Append = unique(merged.Append)
	merged.Prepend = unique(merged.Prepend)
	return merged
}

// ToMap renders the contribution as a configuration value.
// Empty lists are omitted.
func (c Contribution) ToMap() map[string]interface{} {
	m := map[string]interface{}{}
	if len(c.Append) > 0 {
		m[AppendKey] = toList(c.Append)
	}
	if len(c.Prepend) > 0 {
		m[PrependKey] = toList(c.Prepend)
	}
	return m
}

// FromValue decodes a stored path section; nil is an empty contribution
func FromValue(raw interface{}) (Contribution, error) {
	var c Contribution
	if raw == nil {
		return c, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &c,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return c, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Contribution{}, fmt.Errorf("invalid path configuration: %w", err)
	}
	return c, nil
}

// Equal reports whether merged is structurally equal to the stored path
// section raw. A missing section counts as an empty mapping.
func Equal(merged Contribution, raw interface{}) bool {
	if raw == nil {
		raw = map[string]interface{}{}
	}
	return reflect.DeepEqual(normalize(merged.ToMap()), normalize(raw))
}

// normalize converts decoded YAML/TOML values to comparable shapes.
// Any map or slice kind is accepted so named types such as a decoded
// document compare equal to plain maps with the same content.
func normalize(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = normalize(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	default:
		return v
	}
}

func toList(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// unique removes repeated entries, keeping the first occurrence
func unique(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := list[:0]
	for _, v := range list {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
