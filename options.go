package glint

const (
	defaultMaxScanLines = 100_000
	defaultMaxTreeBytes = 4 << 20
)

// Option configures a Session at construction time.
type Option func(*Session)

// WithMaxScanLines caps how many lines one multi-line state scan
// processes under the pattern strategy. Lines past the cap highlight
// from a clean starting state. Zero or negative removes the cap.
func WithMaxScanLines(n int) Option {
	return func(s *Session) { s.maxScanLines = n }
}

// WithMaxStructuralBytes caps the document size the structural strategy
// accepts. Larger documents degrade to the pattern strategy when the
// language has one, and to no output otherwise. Zero or negative removes
// the cap.
func WithMaxStructuralBytes(n int) Option {
	return func(s *Session) { s.maxTreeBytes = n }
}
