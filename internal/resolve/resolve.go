// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"fmt"
	"log/slog"

	"shargs-cli/pkg/argdef"
)

// Resolve turns the matcher output into one ResolvedValue per definition, in
// declaration order. Explicit flag matches are grouped first, then the
// residual tokens are assigned positionally: unfilled ordinal definitions in
// ascending ordinal order each take exactly one token, then catch-all
// definitions in declaration order absorb the rest. Defaults and the
// required constraint are applied last.
func Resolve(set *argdef.Set, out *MatchOutcome) ([]*ResolvedValue, error) {
	values := make([]*ResolvedValue, 0, len(set.Definitions()))
	byDef := make(map[*argdef.Definition]*ResolvedValue)
	for _, def := range set.Definitions() {
		rv := &ResolvedValue{Def: def}
		values = append(values, rv)
		byDef[def] = rv
	}

	for _, m := range out.Matches {
		rv := byDef[m.Def]
		rv.Raw = append(rv.Raw, m.Raw)
		rv.Origins = append(rv.Origins, fmt.Sprintf("flag: %s", m.Flag))
	}

	for _, rv := range values {
		if !rv.Def.Repeated && len(rv.Raw) > 1 {
			return nil, argdef.Userf("multiple values found for argument %s", rv.Def.Name)
		}
	}

	if err := assignResidual(set, byDef, out.Residual); err != nil {
		return nil, err
	}

	for _, rv := range values {
		if rv.supplied() {
			continue
		}
		switch {
		case rv.Def.HasDefault:
			// Defaults are recorded verbatim: never validated, never mapped.
			rv.FromDefault = true
			rv.Values = []string{rv.Def.Default}
			slog.Debug("applied default", "name", rv.Def.Name, "value", rv.Def.Default)
		case rv.Def.Required:
			return nil, argdef.Userf("value for argument %s is missing", rv.Def.Name)
		}
	}

	return values, nil
}

// assignResidual walks the residual tokens left to right with two ordered
// consumer lists: ordinals first (each bounded to a single token), then
// catch-alls. A token never skips an unfilled lower ordinal to reach a
// higher one.
func assignResidual(set *argdef.Set, byDef map[*argdef.Definition]*ResolvedValue, residual []string) error {
	ordinals := set.Ordinals()
	catchAlls := set.CatchAlls()

	for _, tok := range residual {
		if consumeOrdinal(ordinals, byDef, tok) {
			continue
		}
		if consumeCatchAll(catchAlls, byDef, tok) {
			continue
		}
		return argdef.Userf("extra argument \"%s\" passed and no catch-all argument found", tok)
	}
	return nil
}

// consumeOrdinal hands the token to the first ordinal definition that has
// not received any value yet, explicit or positional.
func consumeOrdinal(ordinals []*argdef.Definition, byDef map[*argdef.Definition]*ResolvedValue, tok string) bool {
	for _, def := range ordinals {
		rv := byDef[def]
		if rv.supplied() {
			continue
		}
		rv.Raw = append(rv.Raw, tok)
		rv.Origins = append(rv.Origins, fmt.Sprintf("ordinal: %d", def.Ordinal))
		slog.Debug("assigned ordinal token", "name", def.Name, "ordinal", def.Ordinal, "value", tok)
		return true
	}
	return false
}

// consumeCatchAll hands the token to the first eligible catch-all: a
// repeated catch-all always accepts, a non-repeated one accepts at most one
// value and is skipped once filled.
func consumeCatchAll(catchAlls []*argdef.Definition, byDef map[*argdef.Definition]*ResolvedValue, tok string) bool {
	for _, def := range catchAlls {
		rv := byDef[def]
		if !def.Repeated && rv.supplied() {
			continue
		}
		rv.Raw = append(rv.Raw, tok)
		rv.Origins = append(rv.Origins, "catch-all")
		slog.Debug("assigned catch-all token", "name", def.Name, "value", tok)
		return true
	}
	return false
}
