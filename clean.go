package scrapedocs

import (
	"regexp"
	"slices"
	"strings"
)

// sourceMarkerRe matches an API signature followed by Sphinx's "[source]"
// link text, e.g. "def f(x): [source]".
var sourceMarkerRe = regexp.MustCompile(`^(.*?\)?:?)\s+\[source\]$`)

// Line endings that close a sentence or introduce a block.
var lineTerminators = []string{".", ",", ":"}

// Line prefixes that start docstring metadata or an interactive example.
// A line followed by one of these is never joined with it.
var blockPrefixes = []string{"Return type", ":rtype", "Parameters", ">>>", "..."}

// CleanPageText normalizes text extracted from a documentation page.
//
// Characters outside printable ASCII are dropped, consecutive duplicate
// lines collapse, trailing whitespace and blank lines are removed,
// "[source]" markers are stripped from signatures, and soft-wrapped lines
// are joined into paragraphs. Lines ending in '.', ',' or ':' and lines
// followed by docstring metadata or a REPL prompt keep their line break.
//
// The line passes repeat until nothing changes, so the result is a fixed
// point: CleanPageText(CleanPageText(s)) == CleanPageText(s).
func CleanPageText(text string) string {
	lines := strings.Split(filterPrintable(text), "\n")
	for {
		cleaned := cleanLines(lines)
		if slices.Equal(cleaned, lines) {
			return strings.Join(cleaned, "\n")
		}
		lines = cleaned
	}
}

// cleanLines applies one round of the line passes. It does not modify lines.
// No pass grows the joined text, so repeated rounds converge.
func cleanLines(lines []string) []string {
	lines = collapseDuplicates(lines)
	lines = trimLines(lines)
	lines = stripSourceMarkers(lines)
	return joinSoftWraps(lines)
}

// filterPrintable keeps ASCII letters, digits, punctuation and whitespace.
func filterPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if isPrintable(r) {
			return r
		}
		return -1
	}, s)
}

func isPrintable(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return r >= '!' && r <= '~'
}

// collapseDuplicates drops lines equal to the line right before them.
func collapseDuplicates(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i > 0 && line == lines[i-1] {
			continue
		}
		out = append(out, line)
	}
	return out
}

func trimLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, strings.TrimRight(line, " \t\r\n\v\f"))
	}
	return out
}

func stripSourceMarkers(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if m := sourceMarkerRe.FindStringSubmatch(line); m != nil {
			line = strings.TrimRight(m[1], " \t\r\n\v\f")
		}
		out[i] = line
	}
	return out
}

// joinSoftWraps merges each line that does not end a sentence with the
// line after it. The merged line is examined again against its new
// successor, so a paragraph wrapped over many lines becomes one line.
func joinSoftWraps(lines []string) []string {
	out := slices.Clone(lines)
	i := 0
	for i < len(out)-1 {
		if endsSentence(out[i]) || startsBlock(out[i+1]) {
			i++
			continue
		}
		out[i] = out[i] + " " + out[i+1]
		out = slices.Delete(out, i+1, i+2)
	}
	return out
}

func endsSentence(line string) bool {
	for _, t := range lineTerminators {
		if strings.HasSuffix(line, t) {
			return true
		}
	}
	return false
}

func startsBlock(line string) bool {
	line = strings.TrimLeft(line, " \t")
	for _, p := range blockPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
