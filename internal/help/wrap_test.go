// SPDX-License-Identifier: MPL-2.0

package help

import (
	"reflect"
	"testing"
)

func TestReflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single line",
			text: "hello world",
			want: []string{"hello world"},
		},
		{
			name: "line breaks collapse",
			text: "first\nsecond\nthird",
			want: []string{"first second third"},
		},
		{
			name: "blank line splits paragraphs",
			text: "first paragraph\n\nsecond paragraph",
			want: []string{"first paragraph", "second paragraph"},
		},
		{
			name: "blank runs and edge whitespace",
			text: "\n  first  \n\n\n\nsecond\n\n",
			want: []string{"first", "second"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Reflow(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Reflow(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		width      int
		initial    string
		subsequent string
		want       []string
	}{
		{
			name:  "greedy wrap at word boundary",
			text:  "This is a really neat program I wrote.",
			width: 25,
			want: []string{
				"This is a really neat",
				"program I wrote.",
			},
		},
		{
			name:  "exact fit stays on one line",
			text:  "twelve chars",
			width: 12,
			want:  []string{"twelve chars"},
		},
		{
			name:  "long word emitted unbroken",
			text:  "see https://example.com/an/extremely/long/path/segment now",
			width: 20,
			want: []string{
				"see",
				"https://example.com/an/extremely/long/path/segment",
				"now",
			},
		},
		{
			name:       "indents count against the width",
			text:       "alpha beta gamma",
			width:      13,
			initial:    "  ",
			subsequent: "    ",
			want: []string{
				"  alpha beta",
				"    gamma",
			},
		},
		{
			name:  "paragraphs separated by a blank line",
			text:  "first part\n\nsecond part",
			width: 40,
			want: []string{
				"first part",
				"",
				"second part",
			},
		},
		{
			name:       "subsequent indent applies to later paragraphs",
			text:       "one\n\ntwo",
			width:      40,
			initial:    ">> ",
			subsequent: ".. ",
			want: []string{
				">> one",
				"",
				".. two",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Fill(tt.text, tt.width, tt.initial, tt.subsequent)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fill(%q, %d) = %#v, want %#v", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
