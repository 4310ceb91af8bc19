package profile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/localsite/internal/foundation/errors"
)

// LoadFile reads a profile from a YAML or JSON document whose top level is a
// mapping of field names. Sequence values are joined with newlines, so
// services may be written either as a block string or as a list.
func LoadFile(path string) (Fields, error) {
	// #nosec G304 -- the path is supplied by the operator.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError("profile file not found").WithContext("path", path).Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read profile").
			WithContext("path", path).Build()
	}
	fields, err := ParseFields(data)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryValidation, "failed to parse profile").
			WithContext("path", path).Build()
	}
	return fields, nil
}

// ParseFields decodes a YAML or JSON mapping into Fields.
func ParseFields(data []byte) (Fields, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	fields := make(Fields, len(raw))
	for key, value := range raw {
		s, err := flatten(value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		fields[key] = s
	}
	return fields, nil
}

func flatten(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			s, err := flatten(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, "\n"), nil
	case map[string]any:
		return "", fmt.Errorf("nested mappings are not supported")
	default:
		return fmt.Sprint(val), nil
	}
}
