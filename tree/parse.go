package tree

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Keys recognised by ParseOptions.
const (
	keyIDField       = "id_field"
	keyParentField   = "parent_field"
	keyAliasField    = "alias_field"
	keyChildrenField = "children_field"
)

// ParseOptions decodes a YAML mapping (JSON is valid YAML) into options for
// [Build]:
//
//	id_field: uuid
//	parent_field: meta.parent
//	alias_field: null     # append positionally
//
// A missing key keeps its default. null or "" disables id_field and
// alias_field; parent_field and children_field cannot be disabled. Unknown
// keys are rejected. An empty document yields no options.
func ParseOptions(data []byte) ([]Option, error) {
	var raw map[string]*string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	var unknown []string
	for k := range raw {
		switch k {
		case keyIDField, keyParentField, keyAliasField, keyChildrenField:
		default:
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidOptions, strings.Join(unknown, ", "))
	}

	var opts []Option
	if v, ok := raw[keyIDField]; ok {
		if v == nil || *v == "" {
			opts = append(opts, WithoutIDField())
		} else {
			opts = append(opts, WithIDField(*v))
		}
	}
	if v, ok := raw[keyParentField]; ok {
		if v == nil || *v == "" {
			return nil, fmt.Errorf("%w: %s must not be empty", ErrInvalidOptions, keyParentField)
		}
		opts = append(opts, WithParentField(*v))
	}
	if v, ok := raw[keyAliasField]; ok {
		if v == nil || *v == "" {
			opts = append(opts, WithoutAlias())
		} else {
			opts = append(opts, WithAliasField(*v))
		}
	}
	if v, ok := raw[keyChildrenField]; ok {
		if v == nil || *v == "" {
			return nil, fmt.Errorf("%w: %s must not be empty", ErrInvalidOptions, keyChildrenField)
		}
		opts = append(opts, WithChildrenField(*v))
	}
	return opts, nil
}
