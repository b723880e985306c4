package lexer

// Diagnostic is a non-fatal issue recorded during lexing or editing
// UnexpectedToken is suppressed while inside a peek span, otherwise
// recorded as a diagnostic.
type Diagnostic struct {
	Err error
}

func (lx *Lexer) recordDiag(err error) {
	lx.diags = append(lx.diags, Diagnostic{Err: err})
}

// Diagnostics returns every non-fatal diagnostic recorded so far. The
// caller (orchestrator) may flush these to its own sink.
func (lx *Lexer) Diagnostics() []Diagnostic { return lx.diags }
