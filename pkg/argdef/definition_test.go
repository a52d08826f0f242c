// SPDX-License-Identifier: MPL-2.0

package argdef

import (
	"errors"
	"testing"
)

func TestDeriveName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		flag string
		want string
	}{
		{name: "plain word", flag: "verbose", want: "VERBOSE"},
		{name: "leading dashes stripped", flag: "--dry-run", want: "DRY_RUN"},
		{name: "underscores kept as separator", flag: "first_name", want: "FIRST_NAME"},
		{name: "internal runs collapse", flag: "a--b..c", want: "A_B_C"},
		{name: "trailing junk stripped", flag: "name!!", want: "NAME"},
		{name: "digits survive", flag: "level2", want: "LEVEL2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DeriveName(tt.flag); got != tt.want {
				t.Errorf("DeriveName(%q) = %q, want %q", tt.flag, got, tt.want)
			}
		})
	}
}

func TestDefinitionValidateBooleanRestrictions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		def  Definition
	}{
		{name: "default", def: Definition{Type: TypeBool, Name: "V", Flags: []string{"--v"}, Default: "true", HasDefault: true}},
		{name: "required", def: Definition{Type: TypeBool, Name: "V", Flags: []string{"--v"}, Required: true}},
		{name: "repeated", def: Definition{Type: TypeBool, Name: "V", Flags: []string{"--v"}, Repeated: true}},
		{name: "catch-all", def: Definition{Type: TypeBool, Name: "V", Flags: []string{"--v"}, CatchAll: true}},
		{name: "ordinal", def: Definition{Type: TypeBool, Name: "V", Flags: []string{"--v"}, Ordinal: 1, HasOrdinal: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.def.Validate()
			if err == nil {
				t.Fatal("Validate() accepted a boolean definition with a forbidden parameter")
			}
			if !errors.Is(err, ErrDefinition) {
				t.Errorf("error does not wrap ErrDefinition: %v", err)
			}
		})
	}
}

func TestDefinitionValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		def     Definition
		wantErr bool
	}{
		{
			name: "plain string flag",
			def:  Definition{Type: TypeString, Name: "NAME", Flags: []string{"--name"}},
		},
		{
			name: "boolean with negative flags",
			def:  Definition{Type: TypeBool, Name: "VERBOSE", Flags: []string{"--verbose"}, NegativeFlags: []string{"--quiet"}},
		},
		{
			name:    "negative flags on a string argument",
			def:     Definition{Type: TypeString, Name: "NAME", Flags: []string{"--name"}, NegativeFlags: []string{"--no-name"}},
			wantErr: true,
		},
		{
			name: "catch-all without flags but with explicit name",
			def:  Definition{Type: TypeString, Name: "REST", CatchAll: true},
		},
		{
			name: "ordinal without flags but with explicit name",
			def:  Definition{Type: TypeString, Name: "FIRST", Ordinal: 1, HasOrdinal: true},
		},
		{
			name:    "no flags and not positional",
			def:     Definition{Type: TypeString, Name: "NAME"},
			wantErr: true,
		},
		{
			name:    "options on a non-choice argument",
			def:     Definition{Type: TypeInt, Name: "N", Flags: []string{"--n"}, Options: []ChoiceOption{{Name: "one"}}},
			wantErr: true,
		},
		{
			name: "choice with options and mappings",
			def: Definition{
				Type: TypeChoice, Name: "UNITS", Flags: []string{"--units"},
				Options:  []ChoiceOption{{Name: "imperial"}, {Name: "metric"}},
				Mappings: []ChoiceMapping{{From: "si", To: "metric"}},
			},
		},
		{
			name:    "choice without options",
			def:     Definition{Type: TypeChoice, Name: "UNITS", Flags: []string{"--units"}},
			wantErr: true,
		},
		{
			name: "duplicate option names",
			def: Definition{
				Type: TypeChoice, Name: "UNITS", Flags: []string{"--units"},
				Options: []ChoiceOption{{Name: "metric"}, {Name: "metric"}},
			},
			wantErr: true,
		},
		{
			name: "mapping source collides with option",
			def: Definition{
				Type: TypeChoice, Name: "UNITS", Flags: []string{"--units"},
				Options:  []ChoiceOption{{Name: "metric"}},
				Mappings: []ChoiceMapping{{From: "metric", To: "metric"}},
			},
			wantErr: true,
		},
		{
			name: "mapping source collides with another mapping",
			def: Definition{
				Type: TypeChoice, Name: "UNITS", Flags: []string{"--units"},
				Options:  []ChoiceOption{{Name: "metric"}},
				Mappings: []ChoiceMapping{{From: "si", To: "metric"}, {From: "si", To: "metric"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.def.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, ErrDefinition) {
					t.Errorf("error does not wrap ErrDefinition: %v", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestDefinitionMapValueSingleStep(t *testing.T) {
	t.Parallel()

	// a maps to b, and b itself maps to c: input "a" must stop at "b".
	def := Definition{
		Type: TypeChoice, Name: "STAGE", Flags: []string{"--stage"},
		Options: []ChoiceOption{{Name: "c"}},
		Mappings: []ChoiceMapping{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
		},
	}

	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "option resolves to itself", raw: "c", want: "c", wantOK: true},
		{name: "alias resolves one step, never chains", raw: "a", want: "b", wantOK: true},
		{name: "aliased alias still resolves one step", raw: "b", want: "c", wantOK: true},
		{name: "unknown value", raw: "z", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := def.MapValue(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("MapValue(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("MapValue(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
