// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"log/slog"
	"strings"

	"shargs-cli/pkg/argdef"
)

// helpTrigger is the user token that short-circuits resolution and renders
// help when the set's help mode is active.
const helpTrigger = "--help"

// MatchTokens walks the user-argument tokens and recognizes flag syntax:
// `--flag value`, `--flag=value`, bare boolean flags, and boolean negative
// flags. Tokens matching no declared flag are collected as residual tokens
// for positional resolution, except the help trigger, which ends processing
// early when help is enabled.
func MatchTokens(set *argdef.Set, tokens []string) (*MatchOutcome, error) {
	out := &MatchOutcome{}
	settings := set.Settings()

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		base, value, hasValue := strings.Cut(tok, "=")

		def := set.Lookup(base)
		if def == nil {
			if settings.HelpEnabled() && tok == helpTrigger {
				out.HelpRequested = true
				return out, nil
			}
			out.Residual = append(out.Residual, tok)
			continue
		}

		if def.Type == argdef.TypeBool {
			raw, err := matchBool(def, base, value, hasValue)
			if err != nil {
				return nil, err
			}
			out.Matches = append(out.Matches, Match{Def: def, Flag: base, Raw: raw})
			continue
		}

		if !hasValue {
			// The value is the next token, whatever it looks like.
			if i+1 >= len(tokens) {
				return nil, argdef.Userf("no value provided for argument %s", def.Name)
			}
			i++
			value = tokens[i]
		}

		slog.Debug("matched flag", "name", def.Name, "flag", base, "value", value)
		out.Matches = append(out.Matches, Match{Def: def, Flag: base, Raw: value})
	}

	return out, nil
}

// matchBool applies the boolean flag rules: a bare positive flag yields
// "true", a bare negative flag yields "false", `flag=value` requires a true
// or false literal, and a negative flag never accepts an explicit value.
func matchBool(def *argdef.Definition, flag, value string, hasValue bool) (string, error) {
	if def.IsNegativeFlag(flag) {
		if hasValue {
			return "", argdef.Userf("negative flag %s for argument %s does not accept a value", flag, def.Name)
		}
		return "false", nil
	}

	if !hasValue {
		return "true", nil
	}
	if value != "true" && value != "false" {
		return "", argdef.Userf("non-boolean value '%s' provided for argument %s", value, def.Name)
	}
	return value, nil
}
