package fsutil

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DeltaType is the kind of change a Delta describes.
type DeltaType int

const (
	DeltaChange DeltaType = iota
	DeltaDelete
	DeltaInsert
)

func (t DeltaType) String() string {
	switch t {
	case DeltaChange:
		return "ChangeDelta"
	case DeltaDelete:
		return "DeleteDelta"
	case DeltaInsert:
		return "InsertDelta"
	default:
		return fmt.Sprintf("DeltaType(%d)", int(t))
	}
}

func parseDeltaType(s string) (DeltaType, bool) {
	for _, t := range []DeltaType{DeltaChange, DeltaDelete, DeltaInsert} {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// Chunk is a run of lines starting at a zero-based line position.
type Chunk struct {
	Position int
	Lines    []string
}

// End returns the position just past the chunk.
func (c Chunk) End() int {
	return c.Position + len(c.Lines)
}

// Delta is one contiguous difference between an original and a revised
// line sequence. Original covers the replaced lines [Position, End()) of the
// original; Revised holds the lines that take their place.
type Delta struct {
	Type     DeltaType
	Original Chunk
	Revised  Chunk
}

// String renders the delta in its stable text form:
//
//	[ChangeDelta, position: 1, lines: ["b"] to ["x"]]
//	[DeleteDelta, position: 1, lines: ["b"]]
//	[InsertDelta, position: 1, lines: ["x"]]
//
// Position is the original position and lines are Go quoted.
func (d Delta) String() string {
	switch d.Type {
	case DeltaChange:
		return fmt.Sprintf("[%s, position: %d, lines: %s to %s]", d.Type, d.Original.Position, formatLines(d.Original.Lines), formatLines(d.Revised.Lines))
	case DeltaDelete:
		return fmt.Sprintf("[%s, position: %d, lines: %s]", d.Type, d.Original.Position, formatLines(d.Original.Lines))
	default:
		return fmt.Sprintf("[%s, position: %d, lines: %s]", d.Type, d.Original.Position, formatLines(d.Revised.Lines))
	}
}

func formatLines(lines []string) string {
	quoted := make([]string, len(lines))
	for i, line := range lines {
		quoted[i] = strconv.Quote(line)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Diff computes a minimal set of deltas that turn original into revised,
// ordered by position in original. Identical inputs yield no deltas.
//
// Lines are mapped to runes and diffed with Myers' algorithm; adjacent
// deletions and insertions are reported as a single change.
func Diff(original, revised []string) []Delta {
	a, b := linesToRunes(original, revised)

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // no deadline, so the result stays minimal

	var (
		deltas            []Delta
		i, j              int
		deleted, inserted int
	)
	flush := func() {
		if deleted == 0 && inserted == 0 {
			return
		}
		d := Delta{
			Original: Chunk{Position: i - deleted, Lines: cloneLines(original[i-deleted : i])},
			Revised:  Chunk{Position: j - inserted, Lines: cloneLines(revised[j-inserted : j])},
		}
		switch {
		case deleted > 0 && inserted > 0:
			d.Type = DeltaChange
		case deleted > 0:
			d.Type = DeltaDelete
		default:
			d.Type = DeltaInsert
		}
		deltas = append(deltas, d)
		deleted, inserted = 0, 0
	}

	for _, op := range dmp.DiffMainRunes(a, b, false) {
		n := utf8.RuneCountInString(op.Text)
		switch op.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			i += n
			j += n
		case diffmatchpatch.DiffDelete:
			deleted += n
			i += n
		case diffmatchpatch.DiffInsert:
			inserted += n
			j += n
		}
	}
	flush()
	return deltas
}

// linesToRunes encodes each distinct line as one rune, skipping the
// surrogate range so every rune survives conversion to a string.
func linesToRunes(original, revised []string) ([]rune, []rune) {
	index := make(map[string]rune)
	next := rune(1)
	encode := func(lines []string) []rune {
		out := make([]rune, len(lines))
		for k, line := range lines {
			r, ok := index[line]
			if !ok {
				if next == 0xD800 {
					next = 0xE000
				}
				r = next
				index[line] = r
				next++
			}
			out[k] = r
		}
		return out
	}
	return encode(original), encode(revised)
}

func cloneLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	return slices.Clone(lines)
}

// GetPatchDeltas reads both files untrimmed and diffs their lines.
func GetPatchDeltas(original, revised string) ([]Delta, error) {
	originalLines, err := ReadLines(original)
	if err != nil {
		return nil, err
	}
	revisedLines, err := ReadLines(revised)
	if err != nil {
		return nil, err
	}
	return Diff(originalLines, revisedLines), nil
}

// GetPatch reads both files and returns every delta between them rendered
// with Delta.String, in original order.
func GetPatch(original, revised string) ([]string, error) {
	deltas, err := GetPatchDeltas(original, revised)
	if err != nil {
		return nil, err
	}

	rendered := make([]string, 0, len(deltas))
	for _, d := range deltas {
		rendered = append(rendered, d.String())
	}
	return rendered, nil
}

// UnifiedPatch reads both files and returns a unified diff with the given
// number of context lines. Identical files yield an empty string.
func UnifiedPatch(original, revised string, context int) (string, error) {
	originalLines, err := ReadLines(original)
	if err != nil {
		return "", err
	}
	revisedLines, err := ReadLines(revised)
	if err != nil {
		return "", err
	}

	ud := difflib.UnifiedDiff{
		A:        terminateLines(originalLines),
		B:        terminateLines(revisedLines),
		FromFile: original,
		ToFile:   revised,
		Context:  context,
	}
	return difflib.GetUnifiedDiffString(ud)
}

func terminateLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + "\n"
	}
	return out
}

// ParseDelta parses the text form produced by Delta.String. The revised
// position is not part of that form; it is set to the original position.
// Use ParsePatch to recover revised positions for a whole patch.
func ParseDelta(s string) (Delta, error) {
	var d Delta

	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return d, fmt.Errorf("%w: delta must be enclosed in brackets: %q", ErrConfiguration, s)
	}
	inner := s[1 : len(s)-1]

	kind, rest, ok := strings.Cut(inner, ", position: ")
	if !ok {
		return d, fmt.Errorf("%w: missing position in delta: %q", ErrConfiguration, s)
	}
	t, ok := parseDeltaType(kind)
	if !ok {
		return d, fmt.Errorf("%w: unknown delta type %q", ErrConfiguration, kind)
	}
	d.Type = t

	posText, rest, ok := strings.Cut(rest, ", lines: ")
	if !ok {
		return d, fmt.Errorf("%w: missing lines in delta: %q", ErrConfiguration, s)
	}
	pos, err := strconv.Atoi(posText)
	if err != nil || pos < 0 {
		return d, fmt.Errorf("%w: invalid position %q", ErrConfiguration, posText)
	}
	d.Original.Position = pos
	d.Revised.Position = pos

	first, rest, err := parseLines(rest)
	if err != nil {
		return d, fmt.Errorf("%w: %q: %w", ErrConfiguration, s, err)
	}

	switch t {
	case DeltaChange:
		after, found := strings.CutPrefix(rest, " to ")
		if !found {
			return d, fmt.Errorf("%w: change delta without revised lines: %q", ErrConfiguration, s)
		}
		second, tail, err := parseLines(after)
		if err != nil {
			return d, fmt.Errorf("%w: %q: %w", ErrConfiguration, s, err)
		}
		d.Original.Lines, d.Revised.Lines, rest = first, second, tail
	case DeltaDelete:
		d.Original.Lines = first
	case DeltaInsert:
		d.Revised.Lines = first
	}

	if rest != "" {
		return d, fmt.Errorf("%w: trailing text %q in delta", ErrConfiguration, rest)
	}
	return d, nil
}

// parseLines reads a bracketed list of quoted strings and returns the rest of s.
func parseLines(s string) ([]string, string, error) {
	rest, ok := strings.CutPrefix(s, "[")
	if !ok {
		return nil, s, fmt.Errorf("expected '[' at %q", s)
	}

	var lines []string
	for {
		if after, done := strings.CutPrefix(rest, "]"); done {
			return lines, after, nil
		}
		if len(lines) > 0 {
			after, found := strings.CutPrefix(rest, ", ")
			if !found {
				return nil, rest, fmt.Errorf("expected ', ' at %q", rest)
			}
			rest = after
		}
		quoted, err := strconv.QuotedPrefix(rest)
		if err != nil {
			return nil, rest, fmt.Errorf("expected quoted line at %q", rest)
		}
		line, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, rest, err
		}
		lines = append(lines, line)
		rest = rest[len(quoted):]
	}
}

// ParsePatch parses rendered deltas in order and fills in the revised
// position of each from the deltas before it.
func ParsePatch(rendered []string) ([]Delta, error) {
	deltas := make([]Delta, 0, len(rendered))
	offset := 0
	for _, s := range rendered {
		d, err := ParseDelta(s)
		if err != nil {
			return nil, err
		}
		d.Revised.Position = d.Original.Position + offset
		offset += len(d.Revised.Lines) - len(d.Original.Lines)
		deltas = append(deltas, d)
	}
	return deltas, nil
}

// ApplyPatch replays deltas over lines and returns the revised sequence.
// Deltas must be ordered by original position and must not overlap. Every
// delta's original lines are checked against lines; a mismatch fails with
// ErrPatchConflict.
func ApplyPatch(lines []string, deltas []Delta) ([]string, error) {
	result := make([]string, 0, len(lines))
	last := 0
	for _, d := range deltas {
		start, end := d.Original.Position, d.Original.End()
		if start < last || end > len(lines) {
			return nil, fmt.Errorf("%w: %s is out of range for %d lines", ErrPatchConflict, d, len(lines))
		}
		if !slices.Equal(lines[start:end], d.Original.Lines) {
			return nil, fmt.Errorf("%w: original lines do not match %s", ErrPatchConflict, d)
		}
		result = append(result, lines[last:start]...)
		result = append(result, d.Revised.Lines...)
		last = end
	}
	return append(result, lines[last:]...), nil
}
