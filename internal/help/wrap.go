// SPDX-License-Identifier: MPL-2.0

package help

import (
	"strings"
)

// Reflow normalizes author-written help text: single line breaks collapse
// into spaces, runs of blank lines become one paragraph break, and trailing
// whitespace is dropped. The result is a list of paragraphs ready for Fill.
func Reflow(text string) []string {
	var paragraphs []string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}

	return paragraphs
}

// Fill greedily wraps text at word boundaries so no line exceeds width,
// counting the indent. A single word longer than the remaining room is
// emitted unbroken, never split mid-word. Paragraphs are separated by one
// empty line. initial indents the first line, subsequent all later ones.
func Fill(text string, width int, initial, subsequent string) []string {
	var lines []string

	for i, paragraph := range Reflow(text) {
		if i > 0 {
			lines = append(lines, "")
		}
		indent := initial
		if i > 0 {
			indent = subsequent
		}
		lines = append(lines, fillParagraph(paragraph, width, indent, subsequent)...)
	}

	return lines
}

// fillParagraph wraps a single reflowed paragraph.
func fillParagraph(paragraph string, width int, initial, subsequent string) []string {
	var lines []string
	indent := initial
	line := ""

	for _, word := range strings.Fields(paragraph) {
		switch {
		case line == "":
			line = indent + word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			indent = subsequent
			line = indent + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}

	return lines
}
