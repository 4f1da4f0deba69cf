package ledger

// Session is the caller-held login attempt budget. It is ephemeral state
// owned by the calling context, not the account: a locked session stays
// locked for its own lifetime only, and a fresh session starts with a full
// budget. Sessions are not safe for concurrent use; each caller owns its
// own.
type Session struct {
	budget    int
	remaining int
}

// NewSession returns a session with the given attempt budget.
func NewSession(budget int) *Session {
	if budget < 1 {
		budget = 1
	}
	return &Session{budget: budget, remaining: budget}
}

// Locked reports whether the attempt budget is exhausted. Locked is
// terminal for the session.
func (s *Session) Locked() bool { return s.remaining <= 0 }

// Remaining returns the attempts left before the session locks.
func (s *Session) Remaining() int { return s.remaining }

// fail consumes one attempt and reports whether the session is now locked.
func (s *Session) fail() bool {
	if s.remaining > 0 {
		s.remaining--
	}
	return s.remaining <= 0
}

// reset restores the full attempt budget after a successful login.
func (s *Session) reset() { s.remaining = s.budget }
