package pattern

import "strings"

// StateKind names the lexical construct a line starts inside.
type StateKind uint8

const (
	StateNone StateKind = iota
	StateInComment
	StateInString
)

func (k StateKind) String() string {
	switch k {
	case StateInComment:
		return "comment"
	case StateInString:
		return "string"
	default:
		return "none"
	}
}

// LineState is the carried lexical state at the start of a line. Delim and
// Esc describe the open string construct so the next line knows how to
// close it. The zero value means "top level".
type LineState struct {
	Kind  StateKind
	Delim string
	Esc   byte
}

// StringRule describes one string construct for the scanner. Esc is the
// in-string escape byte, 0 for none. Multi marks constructs that may span
// lines; an unterminated single-line string never carries state.
type StringRule struct {
	Open  string
	Close string
	Esc   byte
	Multi bool
}

// Rules is the per-language input to the scanner: which comment and
// string delimiters exist and which constructs cross line boundaries.
// String rules are checked in order, so longer delimiters (''' before ')
// must come first.
type Rules struct {
	LineComments []string
	CommentOpen  string
	CommentClose string
	Strings      []StringRule
}

// ScanStates computes the start state of every line in one forward sweep.
// Line i's state is recorded before the scanner advances over line i, so
// states[0] is always the zero state. Lines at or beyond maxLines (when
// positive) are not scanned and keep the zero state.
func ScanStates(lines []string, r Rules, maxLines int) []LineState {
	states := make([]LineState, len(lines))
	var cur LineState
	for i, line := range lines {
		if maxLines > 0 && i >= maxLines {
			break
		}
		states[i] = cur
		cur = advanceLine(line, cur, r)
	}
	return states
}

// advanceLine feeds one line through the scanner and returns the state
// carried into the next line.
func advanceLine(line string, st LineState, r Rules) LineState {
	i := 0

	// Close the construct carried in from the previous line first.
	if st.Kind != StateNone {
		end, closed := closeOpenConstruct(line, st, r)
		if !closed {
			return st
		}
		i = end
		st = LineState{}
	}

	for i < len(line) {
		rest := line[i:]
		if hasAnyPrefix(rest, r.LineComments) {
			return LineState{}
		}
		if r.CommentOpen != "" && strings.HasPrefix(rest, r.CommentOpen) {
			rel := strings.Index(line[i+len(r.CommentOpen):], r.CommentClose)
			if rel < 0 {
				return LineState{Kind: StateInComment}
			}
			i += len(r.CommentOpen) + rel + len(r.CommentClose)
			continue
		}
		opened := false
		for _, sr := range r.Strings {
			if !strings.HasPrefix(rest, sr.Open) {
				continue
			}
			end, closed := scanStringFrom(line, i+len(sr.Open), sr.Close, sr.Esc)
			if !closed {
				if sr.Multi {
					return LineState{Kind: StateInString, Delim: sr.Close, Esc: sr.Esc}
				}
				return LineState{}
			}
			i = end
			opened = true
			break
		}
		if opened {
			continue
		}
		i++
	}
	return st
}

// closeOpenConstruct finds where the carried construct ends on this line.
// Returns the byte offset just past the closing delimiter, or len(line)
// and false when the construct stays open.
func closeOpenConstruct(line string, st LineState, r Rules) (int, bool) {
	if st.Kind == StateInComment {
		if r.CommentClose == "" {
			return len(line), false
		}
		idx := strings.Index(line, r.CommentClose)
		if idx < 0 {
			return len(line), false
		}
		return idx + len(r.CommentClose), true
	}
	return scanStringFrom(line, 0, st.Delim, st.Esc)
}

// scanStringFrom walks string content from byte i until the closing
// delimiter, honoring the escape byte. An escape consumes the byte after
// it, so an escape just before end of line leaves the string open.
func scanStringFrom(line string, i int, delim string, esc byte) (int, bool) {
	for i < len(line) {
		if esc != 0 && line[i] == esc {
			i += 2
			continue
		}
		if delim != "" && strings.HasPrefix(line[i:], delim) {
			return i + len(delim), true
		}
		i++
	}
	return len(line), false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
