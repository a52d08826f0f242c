// SPDX-License-Identifier: MPL-2.0

package argdef

import (
	"strconv"
	"strings"
)

// Parse consumes the definition-argument stream up to the literal "--"
// separator and returns the sealed Set plus the remaining user-argument
// tokens. base supplies the ambient defaults (column width, prefix, debug)
// that the stream may override.
func Parse(tokens []string, base Settings) (*Set, []string, error) {
	p := &parser{tokens: tokens}
	settings := base
	if settings.Columns <= 0 {
		settings.Columns = DefaultColumns
	}
	if settings.HelpMode == "" {
		settings.HelpMode = HelpModeNone
	}

	var defs []*Definition

	for {
		tok, ok := p.next()
		if !ok || tok == "--" {
			break
		}

		switch tok {
		case "--string", "--str":
			def, err := p.parseDefinition(TypeString)
			if err != nil {
				return nil, nil, err
			}
			defs = append(defs, def)
		case "--integer", "--int":
			def, err := p.parseDefinition(TypeInt)
			if err != nil {
				return nil, nil, err
			}
			defs = append(defs, def)
		case "--float", "--number":
			def, err := p.parseDefinition(TypeFloat)
			if err != nil {
				return nil, nil, err
			}
			defs = append(defs, def)
		case "--boolean", "--bool":
			def, err := p.parseDefinition(TypeBool)
			if err != nil {
				return nil, nil, err
			}
			defs = append(defs, def)
		case "--choice", "--pick":
			def, err := p.parseDefinition(TypeChoice)
			if err != nil {
				return nil, nil, err
			}
			defs = append(defs, def)
		case "--autohelp", "--auto-help":
			if settings.HelpMode != HelpModeFunction {
				settings.HelpMode = HelpModeAuto
			}
		case "--help-function":
			name, err := p.take("help function name must be provided after --help-function")
			if err != nil {
				return nil, nil, err
			}
			settings.HelpMode = HelpModeFunction
			settings.HelpFunction = name
		case "--columns", "--cols":
			value, err := p.take("number of columns must be provided after --columns or --cols")
			if err != nil {
				return nil, nil, err
			}
			cols, convErr := strconv.Atoi(value)
			if convErr != nil || cols <= 0 {
				return nil, nil, Definitionf("non-numeric value '%s' provided for number of columns", value)
			}
			settings.Columns = cols
		case "--program-name":
			value, err := p.take("program name must be provided after --program-name")
			if err != nil {
				return nil, nil, err
			}
			settings.ProgramName = value
		case "--program-summary":
			value, err := p.take("program summary must be provided after --program-summary")
			if err != nil {
				return nil, nil, err
			}
			settings.ProgramSummary = value
		case "--program-description":
			value, err := p.take("program description must be provided after --program-description")
			if err != nil {
				return nil, nil, err
			}
			settings.ProgramDescription = value
		case "--prefix":
			value, err := p.take("argument name prefix must be provided after --prefix")
			if err != nil {
				return nil, nil, err
			}
			settings.Prefix = value
		case "--export":
			settings.Export = true
		case "--debug":
			settings.Debug = true
		default:
			return nil, nil, Definitionf("unrecognized option: %s", tok)
		}
	}

	set, err := NewSet(defs, settings)
	if err != nil {
		return nil, nil, err
	}
	return set, p.rest(), nil
}

// parser is a single cursor over the definition stream.
type parser struct {
	tokens []string
	pos    int
}

func (p *parser) next() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *parser) back() {
	p.pos--
}

func (p *parser) rest() []string {
	return p.tokens[p.pos:]
}

// take returns the next token or a definition error with the given message
// when the stream ends early.
func (p *parser) take(missing string) (string, error) {
	tok, ok := p.next()
	if !ok {
		return "", Definitionf("%s", missing)
	}
	return tok, nil
}

// parseDefinition consumes one definition's parameters. Bare words are flag
// tokens ("verbose" declares --verbose); the first one seeds the derived name.
// Any token starting with a dash that is not a recognized parameter ends the
// definition and is handed back to the main loop.
func (p *parser) parseDefinition(t ArgumentType) (*Definition, error) {
	def := &Definition{Type: t}
	explicitName := ""

	for {
		tok, ok := p.next()
		if !ok {
			break
		}

		switch tok {
		case "--name":
			value, err := p.take("name must be provided after --name")
			if err != nil {
				return nil, err
			}
			explicitName = value
		case "--flag":
			value, err := p.take("flag name must be provided after --flag")
			if err != nil {
				return nil, err
			}
			// --flag accepts either a bare word or a token that already
			// carries its dashes (for single-dash forms like -v).
			if !strings.HasPrefix(value, "-") {
				value = "--" + value
			}
			def.Flags = append(def.Flags, value)
		case "--required":
			def.Required = true
		case "--secret":
			def.Secret = true
		case "--repeated", "--repeat":
			def.Repeated = true
		case "--catch-all":
			def.CatchAll = true
		case "--ordinal", "--order", "--ord":
			value, err := p.take("ordinal position must be provided after --ordinal or --order or --ord")
			if err != nil {
				return nil, err
			}
			ord, convErr := strconv.Atoi(value)
			if convErr != nil || ord < 0 {
				return nil, Definitionf("ordinal position must be a non-negative integer, got '%s'", value)
			}
			if def.HasOrdinal {
				return nil, Definitionf("more than one ordinal position provided for one argument")
			}
			def.Ordinal = ord
			def.HasOrdinal = true
		case "--default":
			value, err := p.take("default value must be provided after --default")
			if err != nil {
				return nil, err
			}
			def.Default = value
			def.HasDefault = true
		case "--description", "--desc":
			value, err := p.take("description must be provided after --desc or --description")
			if err != nil {
				return nil, err
			}
			def.Description = value
		case "--negative-flag":
			if t != TypeBool {
				p.back()
				return p.finishDefinition(def, explicitName)
			}
			value, err := p.take("flag name must be provided after --negative-flag")
			if err != nil {
				return nil, err
			}
			def.NegativeFlags = append(def.NegativeFlags, "--"+strings.TrimLeft(value, "-"))
		case "--option":
			if t != TypeChoice {
				p.back()
				return p.finishDefinition(def, explicitName)
			}
			if err := p.parseOption(def); err != nil {
				return nil, err
			}
		case "--map":
			if t != TypeChoice {
				p.back()
				return p.finishDefinition(def, explicitName)
			}
			if err := p.parseMapping(def); err != nil {
				return nil, err
			}
		default:
			if strings.HasPrefix(tok, "-") {
				p.back()
				return p.finishDefinition(def, explicitName)
			}
			def.Flags = append(def.Flags, "--"+tok)
		}
	}

	return p.finishDefinition(def, explicitName)
}

// finishDefinition settles the name: an explicit --name wins, otherwise the
// first declared flag is normalized into one.
func (p *parser) finishDefinition(def *Definition, explicitName string) (*Definition, error) {
	switch {
	case explicitName != "":
		def.Name = explicitName
	case len(def.Flags) > 0:
		def.Name = DeriveName(def.Flags[0])
	default:
		return nil, Definitionf("no name or flags provided for argument")
	}
	return def, nil
}

// parseOption consumes `--option NAME [HELP]`. The help text is optional: a
// following token that starts with a dash belongs to the next parameter.
func (p *parser) parseOption(def *Definition) error {
	name, err := p.take("option must be provided after --option")
	if err != nil {
		return err
	}

	opt := ChoiceOption{Name: name}
	if desc, ok := p.next(); ok {
		if strings.HasPrefix(desc, "-") {
			p.back()
		} else {
			opt.Description = desc
		}
	}
	def.Options = append(def.Options, opt)
	return nil
}

// parseMapping consumes `--map FROM TO`.
func (p *parser) parseMapping(def *Definition) error {
	from, err := p.take("pair of values ({from} {to}) must be provided after --map")
	if err != nil {
		return err
	}
	to, err := p.take("pair of values ({from} {to}) must be provided after --map")
	if err != nil {
		return err
	}
	def.Mappings = append(def.Mappings, ChoiceMapping{From: from, To: to})
	return nil
}
