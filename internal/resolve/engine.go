// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"shargs-cli/pkg/argdef"
)

// Run executes the full resolution pipeline against one user-argument
// vector: match, resolve, validate. When the help trigger fires, the result
// carries HelpRequested and nothing else; the caller renders help instead of
// emitting assignments.
func Run(set *argdef.Set, userArgs []string) (*Result, error) {
	out, err := MatchTokens(set, userArgs)
	if err != nil {
		return nil, err
	}
	if out.HelpRequested {
		return &Result{HelpRequested: true}, nil
	}

	values, err := Resolve(set, out)
	if err != nil {
		return nil, err
	}
	if err := Validate(values); err != nil {
		return nil, err
	}

	result := &Result{Values: values}
	for _, rv := range values {
		if len(rv.Values) == 0 {
			continue
		}
		result.Bindings = append(result.Bindings, Binding{
			Name:     rv.Def.Name,
			Values:   rv.Values,
			Repeated: rv.Def.Repeated,
		})
	}
	return result, nil
}
