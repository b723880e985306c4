package lexer

import "github.com/jcorbin/knfmt/internal/knfmt/token"

type punctEntry struct {
	text  string
	kind  token.Kind
	flags token.Flags
}

// punctTable is ordered longest-first so scanPunct's maximal-munch
// scan (greedily match the longest punctuator
// whose prefix is a recognized punctuator") never needs backtracking.
var punctTable = buildPunctTable()

func buildPunctTable() []punctEntry {
	amb := token.FlagAmbiguous
	bin := token.FlagBinary
	asn := token.FlagAssign
	entries := []punctEntry{
		{"...", token.ELLIPSIS, token.FlagType},
		{"<<=", token.LESSLESSEQUAL, asn},
		{">>=", token.GREATERGREATEREQUAL, asn},
		{"->", token.ARROW, 0},
		{"++", token.PLUSPLUS, 0},
		{"--", token.MINUSMINUS, 0},
		{"&&", token.AMPAMP, bin},
		{"&=", token.AMPEQUAL, asn},
		{"*=", token.STAREQUAL, asn},
		{"+=", token.PLUSEQUAL, asn},
		{"-=", token.MINUSEQUAL, asn},
		{"!=", token.EXCLAIMEQUAL, bin},
		{"/=", token.SLASHEQUAL, asn},
		{"%=", token.PERCENTEQUAL, asn},
		{"<<", token.LESSLESS, amb | bin},
		{"<=", token.LESSEQUAL, bin},
		{">>", token.GREATERGREATER, amb | bin},
		{">=", token.GREATEREQUAL, bin},
		{"^=", token.CARETEQUAL, asn},
		{"|=", token.PIPEEQUAL, asn},
		{"||", token.PIPEPIPE, bin},
		{"==", token.EQUALEQUAL, bin},
		{"[", token.LSQUARE, 0},
		{"]", token.RSQUARE, 0},
		{"(", token.LPAREN, 0},
		{")", token.RPAREN, 0},
		{"{", token.LBRACE, 0},
		{"}", token.RBRACE, 0},
		{".", token.PERIOD, amb},
		{"&", token.AMP, amb | bin},
		{"*", token.STAR, amb | bin | token.FlagSpace},
		{"+", token.PLUS, amb | bin},
		{"-", token.MINUS, amb | bin},
		{"~", token.TILDE, 0},
		{"!", token.EXCLAIM, amb},
		{"/", token.SLASH, amb | bin | token.FlagSpace},
		{"%", token.PERCENT, amb | bin},
		{"<", token.LESS, amb | bin},
		{">", token.GREATER, amb | bin},
		{"^", token.CARET, amb},
		{"|", token.PIPE, amb | bin | token.FlagSpace},
		{"?", token.QUESTION, 0},
		{":", token.COLON, 0},
		{";", token.SEMI, 0},
		{"=", token.EQUAL, amb | asn},
		{",", token.COMMA, 0},
		{"\\", token.BACKSLASH, token.FlagDiscard},
	}
	return entries
}

// scanPunct matches the longest punctuator starting at the current
// position, advances past it, and returns its Kind (or token.NONE if
// nothing matched).
func (s *scanner) scanPunct() token.Kind {
	remaining := s.src[s.off:]
	bestLen := 0
	var best punctEntry
	for _, e := range punctTable {
		if len(e.text) <= len(remaining) && string(remaining[:len(e.text)]) == e.text {
			if len(e.text) > bestLen {
				bestLen = len(e.text)
				best = e
			}
		}
	}
	if bestLen == 0 {
		return token.NONE
	}
	for i := 0; i < bestLen; i++ {
		s.getc()
	}
	return best.kind
}

// punctFlags returns the flag bitset associated with a punctuator
// Kind, used by emit to stamp AMBIGUOUS/BINARY/ASSIGN/SPACE.
func punctFlags(kind token.Kind) token.Flags {
	for _, e := range punctTable {
		if e.kind == kind {
			return e.flags
		}
	}
	return 0
}
