package glint

import (
	"strings"

	"github.com/google/uuid"

	"glint/internal/lang"
	"glint/internal/log"
	"glint/internal/pattern"
	"glint/internal/structural"
)

// Session holds the highlight state for one open document: the last known
// content, the bound language, the resolved strategy, and the per-line
// token cache. Sessions are single-threaded; every method runs to
// completion on the caller's goroutine and nothing is shared between
// sessions.
type Session struct {
	id       string
	language lang.ID
	selected Strategy
	active   Strategy

	content string
	lines   []string

	adapter *structural.Adapter
	tok     *pattern.Tokenizer
	states  []pattern.LineState

	cache map[int][]Token

	maxScanLines int
	maxTreeBytes int
}

// NewSession creates an empty session with no language bound.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:           uuid.NewString(),
		selected:     Unsupported,
		active:       Unsupported,
		cache:        make(map[int][]Token),
		maxScanLines: defaultMaxScanLines,
		maxTreeBytes: defaultMaxTreeBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetLanguage binds the session to a language and resolves its strategy,
// reporting whether the language is supported. Setting the current
// language again is a no-op. Any actual change clears the line cache; the
// parse tree survives only when the new language resolves to the
// identical grammar.
func (s *Session) SetLanguage(id string) bool {
	lid := normalizeID(id)
	if lid != "" && lid == s.language {
		return s.selected != Unsupported
	}

	s.cache = make(map[int][]Token)
	s.states = nil

	strat, adapter, tok := s.resolve(lid)
	if strat == Unsupported {
		s.setActive(Unsupported)
		s.dropAdapter()
		s.tok = nil
		s.language = ""
		s.selected = Unsupported
		log.Debug(log.CatSession, "language not supported", "session", shortID(s.id), "lang", string(lid))
		return false
	}

	if adapter != s.adapter {
		s.dropAdapter()
		s.adapter = adapter
	}
	s.tok = tok
	s.language = lid
	s.selected = strat
	s.setActive(s.activeFor(strat, len(s.content)))
	log.Debug(log.CatSession, "language set", "session", shortID(s.id), "lang", string(lid), "strategy", s.active.String())
	return true
}

// resolve maps a language to a strategy plus the machinery it needs. The
// pattern tokenizer rides along even under the structural strategy so an
// oversized document has somewhere to degrade to.
func (s *Session) resolve(lid lang.ID) (Strategy, *structural.Adapter, *pattern.Tokenizer) {
	if lid == "" || lid == lang.Plain || !lang.Known(lid) {
		return Unsupported, nil, nil
	}
	tok, hasTok := pattern.ForLanguage(lid)
	if g := structural.GrammarFor(lid); g != nil {
		if s.adapter != nil && s.adapter.Grammar() == g {
			s.adapter.Retarget(lid)
			return Structural, s.adapter, tok
		}
		if a, err := structural.New(lid); err == nil {
			return Structural, a, tok
		}
	}
	if hasTok {
		return Pattern, nil, tok
	}
	return Unsupported, nil, nil
}

// Parse (re)initializes highlight state from full document content.
// Structural parse failures degrade to the pattern strategy when the
// language has one; nothing ever propagates as an error.
func (s *Session) Parse(content string) {
	s.content = normalizeNewlines(content)
	s.lines = strings.Split(s.content, "\n")
	s.cache = make(map[int][]Token)
	s.states = nil
	s.setActive(s.activeFor(s.selected, len(s.content)))

	switch s.active {
	case Structural:
		if err := s.adapter.Parse(s.content); err != nil {
			log.ErrorErr(log.CatSession, "full parse failed", err, "session", shortID(s.id), "lang", string(s.language))
			s.degrade()
		}
	case Pattern:
		s.scan()
	}
}

// UpdateIncremental patches highlight state after one edit. The edit's
// old coordinates address the previous content, its new coordinates and
// newContent the post-edit text. Cache entries below StartLine stay,
// entries past the edited range shift by the line-count delta, and only
// [StartLine, max(OldEndLine, NewEndLine)] recomputes, plus any line
// whose carried scanner state changed.
func (s *Session) UpdateIncremental(e Edit, newContent string) {
	newContent = normalizeNewlines(newContent)

	next := s.activeFor(s.selected, len(newContent))
	if next != s.active {
		// Crossing the size threshold swaps strategies; patching across
		// strategies is meaningless, so rebuild.
		s.Parse(newContent)
		return
	}

	newLines := strings.Split(newContent, "\n")
	delta := len(newLines) - len(s.lines)
	hi := e.OldEndLine
	if e.NewEndLine > hi {
		hi = e.NewEndLine
	}

	switch s.active {
	case Structural:
		if err := s.adapter.Update(e, newContent); err != nil {
			s.content = newContent
			s.lines = newLines
			s.cache = make(map[int][]Token)
			log.ErrorErr(log.CatSession, "incremental update failed", err, "session", shortID(s.id))
			s.degrade()
			return
		}
		s.content = newContent
		s.lines = newLines
		s.remapCache(e.StartLine, e.OldEndLine, delta)
		s.invalidateRange(e.StartLine, hi)
	case Pattern:
		oldStates := s.states
		s.content = newContent
		s.lines = newLines
		s.scan()
		s.remapCache(e.StartLine, e.OldEndLine, delta)
		s.invalidateRange(e.StartLine, hi)
		s.invalidateShifted(oldStates, hi, delta)
	default:
		s.content = newContent
		s.lines = newLines
	}
}

// HighlightLine returns the tokens for line n, computing and caching them
// on a miss. Lines outside the document yield an empty list, never an
// error.
func (s *Session) HighlightLine(n int) []Token {
	if n < 0 || n >= len(s.lines) || s.active == Unsupported {
		return nil
	}
	if toks, ok := s.cache[n]; ok {
		return toks
	}

	var toks []Token
	switch s.active {
	case Structural:
		if !s.adapter.HasTree() && s.content != "" {
			if err := s.adapter.Parse(s.content); err != nil {
				log.ErrorErr(log.CatSession, "deferred parse failed", err, "session", shortID(s.id))
				s.degrade()
				return s.HighlightLine(n)
			}
		}
		toks = s.adapter.LineTokens(n)
	case Pattern:
		if s.states == nil {
			s.scan()
		}
		var st pattern.LineState
		if n < len(s.states) {
			st = s.states[n]
		}
		toks = s.tok.LineTokens(s.lines[n], st)
	}

	s.cache[n] = toks
	return toks
}

// ClearCache drops all cached line tokens without touching parse or scan
// state; used to force re-highlighting.
func (s *Session) ClearCache() {
	s.cache = make(map[int][]Token)
}

// Language returns the bound language ID, or "" when none is bound.
func (s *Session) Language() string { return string(s.language) }

// Strategy returns the strategy the bound language resolved to.
func (s *Session) Strategy() Strategy { return s.selected }

// Active returns the strategy currently producing tokens. It differs from
// Strategy when an oversized document degrades structural highlighting.
func (s *Session) Active() Strategy { return s.active }

// Content returns the last known full text.
func (s *Session) Content() string { return s.content }

// LineCount returns the number of lines in the current content.
func (s *Session) LineCount() int { return len(s.lines) }

// Line returns the text of line n, or "" outside the document.
func (s *Session) Line(n int) string {
	if n < 0 || n >= len(s.lines) {
		return ""
	}
	return s.lines[n]
}

// Close releases parser resources. The session must not be used after.
func (s *Session) Close() {
	s.dropAdapter()
	s.cache = nil
	s.states = nil
}

func (s *Session) scan() {
	if s.tok == nil {
		s.states = nil
		return
	}
	s.states = pattern.ScanStates(s.lines, s.tok.Rules, s.maxScanLines)
}

// degrade switches an ailing structural session to the pattern strategy,
// or to no output when the language has no pattern family.
func (s *Session) degrade() {
	if s.tok != nil {
		s.setActive(Pattern)
		s.scan()
		return
	}
	s.setActive(Unsupported)
}

// activeFor applies the document-size safety valve to the selected
// strategy.
func (s *Session) activeFor(strat Strategy, contentLen int) Strategy {
	if strat != Structural {
		return strat
	}
	if s.maxTreeBytes > 0 && contentLen > s.maxTreeBytes {
		if s.tok != nil {
			return Pattern
		}
		return Unsupported
	}
	return Structural
}

// setActive records the producing strategy, releasing the tree when
// structural highlighting stops so a stale tree never serves tokens.
func (s *Session) setActive(next Strategy) {
	if s.active == Structural && next != Structural && s.adapter != nil {
		s.adapter.DropTree()
	}
	s.active = next
}

// remapCache shifts cache keys past the edited range by the line-count
// delta and drops keys inside it; keys before the edit keep their lines.
func (s *Session) remapCache(startLine, oldEndLine, delta int) {
	if delta == 0 {
		return
	}
	next := make(map[int][]Token, len(s.cache))
	for k, v := range s.cache {
		switch {
		case k < startLine:
			next[k] = v
		case k > oldEndLine:
			next[k+delta] = v
		}
	}
	s.cache = next
}

func (s *Session) invalidateRange(lo, hi int) {
	if lo < 0 {
		lo = 0
	}
	for k := lo; k <= hi; k++ {
		delete(s.cache, k)
	}
}

// invalidateShifted drops cached lines past the edit whose carried
// scanner state changed, comparing against the pre-edit states through
// the line-count delta.
func (s *Session) invalidateShifted(oldStates []pattern.LineState, hi, delta int) {
	for j := hi + 1; j < len(s.states); j++ {
		oldIdx := j - delta
		if oldIdx < 0 || oldIdx >= len(oldStates) || oldStates[oldIdx] != s.states[j] {
			delete(s.cache, j)
		}
	}
}

func (s *Session) dropAdapter() {
	if s.adapter != nil {
		s.adapter.Close()
		s.adapter = nil
	}
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
