// SPDX-License-Identifier: MPL-2.0

package help

import (
	"strings"

	"shargs-cli/pkg/argdef"
)

// Indentation levels mirroring man-page layout: sections at 7 columns,
// detail text at 11, bullet items hanging at 15.
const (
	sectionIndent = "       "
	detailIndent  = "           "
	bulletInitial = "           •   "
	bulletHanging = "               "
)

// noDetails is the placeholder for arguments and options declared without a
// description.
const noDetails = "No details available."

// Options configure one help rendering pass. The renderer is pure: the same
// set and options always produce the same lines.
type Options struct {
	// Columns is the wrap width; when 0 the set's configured width is used.
	Columns int
	// Bold decorates section headers. When nil, headers render plain. The
	// script emitter passes a decorator that expands to tput sequences.
	Bold func(string) string
}

// Render produces the help document for a definition set as an ordered list
// of lines: optional NAME/SUMMARY and DESCRIPTION sections, then an OPTIONS
// section listing every non-secret definition.
func Render(set *argdef.Set, opts Options) []string {
	settings := set.Settings()
	columns := opts.Columns
	if columns <= 0 {
		columns = settings.Columns
	}
	if columns <= 0 {
		columns = argdef.DefaultColumns
	}
	bold := opts.Bold
	if bold == nil {
		bold = func(s string) string { return s }
	}

	var lines []string
	section := func(header, text string) {
		lines = append(lines, bold(header))
		lines = append(lines, Fill(text, columns, sectionIndent, sectionIndent)...)
		lines = append(lines, "")
	}

	switch {
	case settings.ProgramName != "" && settings.ProgramSummary != "":
		section("NAME", settings.ProgramName+" - "+settings.ProgramSummary)
	case settings.ProgramName != "":
		section("NAME", settings.ProgramName)
	case settings.ProgramSummary != "":
		section("SUMMARY", settings.ProgramSummary)
	}

	if settings.ProgramDescription != "" {
		section("DESCRIPTION", settings.ProgramDescription)
	}

	visible := visibleDefinitions(set)
	if len(visible) > 0 {
		lines = append(lines, bold("OPTIONS"))
		for _, def := range visible {
			lines = append(lines, renderDefinition(def, columns)...)
		}
	}

	return lines
}

// visibleDefinitions filters out secret definitions, declaration order kept.
func visibleDefinitions(set *argdef.Set) []*argdef.Definition {
	var visible []*argdef.Definition
	for _, def := range set.Definitions() {
		if !def.Secret {
			visible = append(visible, def)
		}
	}
	return visible
}

// renderDefinition produces the OPTIONS block of one definition: the folded
// flags line, the description, the enumerated choice options, and the
// default note.
func renderDefinition(def *argdef.Definition, columns int) []string {
	lines := foldFlagForms(flagForms(def), columns)

	description := def.Description
	if description == "" {
		description = noDetails
	}
	lines = append(lines, Fill(description, columns, detailIndent, detailIndent)...)
	lines = append(lines, "")

	if def.Type == argdef.TypeChoice {
		lines = append(lines, Fill("The possible options are:", columns, detailIndent, detailIndent)...)
		lines = append(lines, "")
		for _, opt := range def.Options {
			text := opt.Description
			if text == "" {
				text = noDetails
			}
			lines = append(lines, Fill(opt.Name+" - "+text, columns, bulletInitial, bulletHanging)...)
			lines = append(lines, "")
		}
		for _, m := range def.Mappings {
			lines = append(lines, Fill(m.From+" - Identical to '"+m.To+"'", columns, bulletInitial, bulletHanging)...)
			lines = append(lines, "")
		}
	}

	if note := defaultNote(def); note != "" {
		lines = append(lines, Fill(note, columns, detailIndent, detailIndent)...)
		lines = append(lines, "")
	}

	return lines
}

// flagForms renders each flag in its value-carrying form: booleans show the
// optional =true|false suffix and list their negative flags bare, everything
// else shows a value placeholder named after the argument. A definition with
// no flags at all (ordinal- or catch-all-only) gets the bare placeholder as
// its header line.
func flagForms(def *argdef.Definition) []string {
	var forms []string
	if def.Type == argdef.TypeBool {
		for _, flag := range def.Flags {
			forms = append(forms, flag+"[=<true|false>]")
		}
		forms = append(forms, def.NegativeFlags...)
		return forms
	}

	placeholder := "<" + strings.ToLower(def.Name) + ">"
	if len(def.Flags) == 0 {
		return []string{placeholder}
	}
	for _, flag := range def.Flags {
		forms = append(forms, flag+" "+placeholder)
	}
	return forms
}

// foldFlagForms joins the flag forms with commas, starting a fresh indented
// line whenever the next form would overflow the column width.
func foldFlagForms(forms []string, columns int) []string {
	var lines []string
	line := ""

	for _, form := range forms {
		switch {
		case line == "":
			line = sectionIndent + form
		case len(line)+len(form)+4 > columns:
			lines = append(lines, line+", ")
			line = sectionIndent + form
		default:
			line += ", " + form
		}
	}
	if line != "" {
		lines = append(lines, line)
	}

	return lines
}

// defaultNote renders the trailing default-value sentence. Booleans carry a
// fixed note since they never have a declared default.
func defaultNote(def *argdef.Definition) string {
	if def.Type == argdef.TypeBool {
		return "When this option is not provided it will default to false. " +
			"If provided without a value it will be set to true."
	}
	if def.HasDefault {
		return "When this option is not provided it will default to '" + def.Default + "'."
	}
	return ""
}
