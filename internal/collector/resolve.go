package collector

import (
	"errors"
	"strings"

	ferrors "git.home.luguber.info/inful/localsite/internal/foundation/errors"
	"git.home.luguber.info/inful/localsite/internal/profile"
)

// Prompter collects a value for a single field.
//
// Implementations typically read from a terminal, but a form front-end or a
// test stub works the same way. An empty string means the user skipped the
// field.
type Prompter interface {
	Prompt(field Field) (string, error)
}

// Resolve merges defaults, overrides and prompted answers into Fields.
//
// The resolution order is:
//  1. Apply defaults (for example a profile file)
//  2. Apply overrides (from --set flags, highest precedence)
//  3. If useDefaults is true, validate required fields and return
//  4. Otherwise, prompt for every field still empty
//  5. Validate required fields
func Resolve(schema Schema, defaults, overrides profile.Fields, useDefaults bool, prompter Prompter) (profile.Fields, error) {
	result := make(profile.Fields, len(defaults)+len(overrides))
	for key, value := range defaults {
		if strings.TrimSpace(value) != "" {
			result[key] = value
		}
	}
	for key, value := range overrides {
		result[key] = value
	}

	if !useDefaults {
		if prompter == nil {
			return nil, errors.New("prompter is required when defaults are not used")
		}
		for _, field := range schema.Fields {
			if strings.TrimSpace(result[field.Key]) != "" {
				continue
			}
			answer, err := prompter.Prompt(field)
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(answer) != "" {
				result[field.Key] = answer
			}
		}
	}

	if err := validateRequired(schema, result); err != nil {
		return nil, err
	}
	return result, nil
}

func validateRequired(schema Schema, values profile.Fields) error {
	var missing []string
	for _, field := range schema.Fields {
		if field.Required && strings.TrimSpace(values[field.Key]) == "" {
			missing = append(missing, field.Key)
		}
	}
	if len(missing) > 0 {
		return ferrors.MissingRequiredField(missing...)
	}
	return nil
}
