// SPDX-License-Identifier: MPL-2.0

package argdef

import (
	"regexp"
	"strconv"
	"strings"
)

// nameRunRegex extracts the alphanumeric runs of a flag when deriving a
// variable name: runs are joined with underscores and uppercased, so a flag
// like "dry-run" becomes DRY_RUN.
var nameRunRegex = regexp.MustCompile(`[a-zA-Z0-9]+`)

type (
	// ChoiceOption is one declared option of a choice argument, with optional
	// help text. Declaration order is preserved for help rendering.
	ChoiceOption struct {
		Name        string
		Description string
	}

	// ChoiceMapping declares an alias that resolves to a target option name.
	// Mappings resolve in a single step; they never chain through each other.
	ChoiceMapping struct {
		From string
		To   string
	}

	// Definition is the declared shape of one argument. Definitions are built
	// once from the definition-argument stream and never mutated after the Set
	// that owns them is sealed.
	Definition struct {
		// Type determines which type-specific fields are legal and which
		// validation rule applies.
		Type ArgumentType
		// Name is the environment-variable identifier, either given explicitly
		// or derived from the first declared flag.
		Name string
		// Flags are the full flag tokens (including the leading dashes), in
		// declaration order.
		Flags []string
		// Default is the raw default value; it is never validated or mapped.
		Default string
		// HasDefault distinguishes an empty-string default from no default.
		HasDefault bool
		// Description is the help text for this argument.
		Description string

		Required bool
		Repeated bool
		Secret   bool
		CatchAll bool

		// Ordinal is the positional priority; lower ordinals consume residual
		// tokens first. Only meaningful when HasOrdinal is set.
		Ordinal    int
		HasOrdinal bool

		// Options and Mappings are only legal for choice arguments.
		Options  []ChoiceOption
		Mappings []ChoiceMapping

		// NegativeFlags are only legal for boolean arguments; matching one
		// yields the value "false".
		NegativeFlags []string
	}
)

// DeriveName normalizes a flag token into an environment-variable identifier:
// leading/trailing non-alphanumerics are stripped, internal non-alphanumeric
// runs collapse to a single underscore, and the result is uppercased.
func DeriveName(flag string) string {
	runs := nameRunRegex.FindAllString(flag, -1)
	return strings.ToUpper(strings.Join(runs, "_"))
}

// HasFlag reports whether token exactly matches one of the definition's flags
// (positive or negative).
func (d *Definition) HasFlag(token string) bool {
	for _, f := range d.Flags {
		if f == token {
			return true
		}
	}
	for _, f := range d.NegativeFlags {
		if f == token {
			return true
		}
	}
	return false
}

// IsNegativeFlag reports whether token is one of the boolean negative flags.
func (d *Definition) IsNegativeFlag(token string) bool {
	for _, f := range d.NegativeFlags {
		if f == token {
			return true
		}
	}
	return false
}

// IsPositional reports whether the definition is eligible to consume residual
// (unflagged) tokens, either through an ordinal slot or as a catch-all.
func (d *Definition) IsPositional() bool {
	return d.HasOrdinal || d.CatchAll
}

// OptionNames returns the declared option names of a choice argument in
// declaration order.
func (d *Definition) OptionNames() []string {
	names := make([]string, 0, len(d.Options))
	for _, opt := range d.Options {
		names = append(names, opt.Name)
	}
	return names
}

// MapValue resolves a raw choice value against the declared options and
// mappings. It returns the final option name and true when the value is
// recognized. Mappings resolve exactly one step: if "a" maps to "b" and "b"
// maps to "c", input "a" yields "b".
func (d *Definition) MapValue(raw string) (string, bool) {
	for _, opt := range d.Options {
		if opt.Name == raw {
			return raw, true
		}
	}
	for _, m := range d.Mappings {
		if m.From == raw {
			return m.To, true
		}
	}
	return "", false
}

// DebugInfo returns a terse one-line representation of the definition,
// suitable for trace output.
func (d *Definition) DebugInfo() string {
	var b strings.Builder
	b.WriteString("type: ")
	b.WriteString(string(d.Type))
	b.WriteString("; name: ")
	b.WriteString(d.Name)
	b.WriteString("; flags: ")
	b.WriteString(strings.Join(d.Flags, ", "))
	if len(d.NegativeFlags) > 0 {
		b.WriteString("; negative flags: ")
		b.WriteString(strings.Join(d.NegativeFlags, ", "))
	}
	if d.Required {
		b.WriteString("; required")
	}
	if d.Repeated {
		b.WriteString("; repeated")
	}
	if d.Secret {
		b.WriteString("; secret")
	}
	if d.CatchAll {
		b.WriteString("; catch-all")
	}
	if d.HasOrdinal {
		b.WriteString("; ordinal: ")
		b.WriteString(strconv.Itoa(d.Ordinal))
	}
	if d.HasDefault {
		b.WriteString("; default: ")
		b.WriteString(d.Default)
	}
	if d.Description != "" {
		b.WriteString("; description: ")
		b.WriteString(d.Description)
	}
	if len(d.Options) > 0 || len(d.Mappings) > 0 {
		b.WriteString("; options: ")
		parts := d.OptionNames()
		for _, m := range d.Mappings {
			parts = append(parts, m.From+" -> "+m.To)
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	return b.String()
}

// Validate checks the per-definition invariants. It is called by NewSet before
// the Set is sealed; cross-definition invariants (name and flag uniqueness)
// live in NewSet.
func (d *Definition) Validate() error {
	if ok, errs := d.Type.IsValid(); !ok {
		return Definitionf("argument %s: %s", d.Name, errs[0].Error())
	}

	if d.Name == "" {
		return Definitionf("no name or flags provided for argument")
	}

	if len(d.Flags) == 0 && !d.CatchAll && !d.HasOrdinal {
		return Definitionf("%s argument can not be set - no flags, no ordinal, and not a catch-all argument", d.Name)
	}

	if d.Type == TypeBool {
		switch {
		case d.HasDefault:
			return Definitionf("boolean argument %s can not have a default value", d.Name)
		case d.Required:
			return Definitionf("boolean argument %s can not be required", d.Name)
		case d.Repeated:
			return Definitionf("boolean argument %s can not be repeated", d.Name)
		case d.CatchAll:
			return Definitionf("boolean argument %s can not be a catch-all argument", d.Name)
		case d.HasOrdinal:
			return Definitionf("boolean argument %s can not have an ordinal position", d.Name)
		}
	} else if len(d.NegativeFlags) > 0 {
		return Definitionf("argument %s can not have negative flags - only boolean arguments can", d.Name)
	}

	if d.Type != TypeChoice && (len(d.Options) > 0 || len(d.Mappings) > 0) {
		return Definitionf("argument %s can not have options or mappings - only choice arguments can", d.Name)
	}

	if d.Type == TypeChoice {
		if err := d.validateChoices(); err != nil {
			return err
		}
	}

	return nil
}

// validateChoices enforces option name uniqueness and that mapping sources do
// not collide with option or alias names.
func (d *Definition) validateChoices() error {
	if len(d.Options) == 0 {
		return Definitionf("choice argument %s has no options", d.Name)
	}

	seen := make(map[string]bool, len(d.Options)+len(d.Mappings))
	for _, opt := range d.Options {
		if seen[opt.Name] {
			return Definitionf("choice argument %s declares option %q more than once", d.Name, opt.Name)
		}
		seen[opt.Name] = true
	}

	for _, m := range d.Mappings {
		if seen[m.From] {
			return Definitionf("choice argument %s maps %q which is already an option or mapping", d.Name, m.From)
		}
		seen[m.From] = true
	}

	return nil
}
