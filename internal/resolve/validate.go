// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"strconv"
	"strings"

	"shargs-cli/pkg/argdef"
)

// Validate converts every explicitly supplied raw value per its declared
// type, filling in the final Values of each ResolvedValue. Default-origin
// values are skipped entirely. Validation stops at the first failure, in
// definition declaration order and then value order.
func Validate(values []*ResolvedValue) error {
	for _, rv := range values {
		if rv.FromDefault || !rv.supplied() {
			continue
		}

		rv.Values = make([]string, 0, len(rv.Raw))
		for _, raw := range rv.Raw {
			typed, err := convertValue(rv.Def, raw)
			if err != nil {
				return err
			}
			rv.Values = append(rv.Values, typed)
		}
	}
	return nil
}

// convertValue applies the per-type conversion rule to one raw value. The
// conversion is pure: identical input always yields identical output.
func convertValue(def *argdef.Definition, raw string) (string, error) {
	switch def.Type {
	case argdef.TypeString:
		return raw, nil

	case argdef.TypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "", argdef.Userf("non-integer value \"%s\" provided for argument %s", raw, def.Name)
		}
		return strconv.FormatInt(n, 10), nil

	case argdef.TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", argdef.Userf("non-numeric value \"%s\" provided for argument %s", raw, def.Name)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil

	case argdef.TypeBool:
		// Already constrained to true/false by the matcher.
		return raw, nil

	case argdef.TypeChoice:
		mapped, ok := def.MapValue(raw)
		if !ok {
			return "", argdef.Userf("value \"%s\" not recognized for argument %s (valid values: %s)",
				raw, def.Name, strings.Join(validChoices(def), ", "))
		}
		return mapped, nil

	default:
		return "", argdef.Definitionf("argument %s has unknown type %q", def.Name, def.Type)
	}
}

// validChoices lists the accepted inputs of a choice argument: declared
// option names followed by mapping aliases, in declaration order.
func validChoices(def *argdef.Definition) []string {
	choices := def.OptionNames()
	for _, m := range def.Mappings {
		choices = append(choices, m.From)
	}
	return choices
}
