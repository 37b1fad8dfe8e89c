package up

import (
	"fmt"

	"github.com/arthur-debert/omni/pkg/errors"
	"github.com/arthur-debert/omni/pkg/registry"
	"github.com/arthur-debert/omni/pkg/types"
)

// ParseDescriptors validates the raw up configuration value.
//
// The value must be a list. Each entry is either a bare operation type
// name, or a mapping with exactly one key naming the type whose value is
// the operation configuration.
func ParseDescriptors(raw interface{}) ([]types.Descriptor, error) {
	entries, ok := asList(raw)
	if !ok {
		return nil, errors.New(errors.ErrConfigType, "invalid up configuration, it should be a list").
			WithDetail("type", fmt.Sprintf("%T", raw))
	}

	descriptors := make([]types.Descriptor, 0, len(entries))
	for idx, entry := range entries {
		desc, err := parseEntry(entry, idx)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, desc)
	}

	return descriptors, nil
}

func parseEntry(entry interface{}, idx int) (types.Descriptor, error) {
	if name, ok := entry.(string); ok {
		if registry.Normalize(name) == "" {
			return types.Descriptor{}, invalidEntry(idx)
		}
		return types.Descriptor{
			Type:   registry.Normalize(name),
			Config: map[string]interface{}{},
			Index:  idx,
		}, nil
	}

	mapping, ok := asMap(entry)
	if !ok || len(mapping) != 1 {
		return types.Descriptor{}, invalidEntry(idx)
	}

	for name, value := range mapping {
		if registry.Normalize(name) == "" {
			return types.Descriptor{}, invalidEntry(idx)
		}

		config := map[string]interface{}{}
		if value != nil {
			config, ok = asMap(value)
			if !ok {
				return types.Descriptor{}, invalidEntry(idx).
					WithDetail("type", name)
			}
		}

		return types.Descriptor{
			Type:   registry.Normalize(name),
			Config: config,
			Index:  idx,
		}, nil
	}

	// unreachable: the mapping has exactly one key
	return types.Descriptor{}, invalidEntry(idx)
}

func invalidEntry(idx int) *errors.OmniError {
	return errors.Newf(errors.ErrInvalidOperation, "invalid up configuration for operation %d", idx).
		WithDetail("index", idx)
}

func asList(raw interface{}) ([]interface{}, bool) {
	switch v := raw.(type) {
	case []interface{}:
		return v, true
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []map[string]interface{}:
		out := make([]interface{}, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

// asMap accepts both decoder flavours: string-keyed maps (yaml.v3, koanf)
// and interface-keyed maps with string keys.
func asMap(raw interface{}) (map[string]interface{}, bool) {
	switch v := raw.(type) {
	case map[string]interface{}:
		return v, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, value := range v {
			s, ok := key.(string)
			if !ok {
				return nil, false
			}
			out[s] = value
		}
		return out, true
	default:
		return nil, false
	}
}
