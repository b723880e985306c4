package lexer

import "github.com/jcorbin/knfmt/internal/knfmt/token"

// tryComment consumes one `//`-style or `/* */`-style comment at the
// current position, if present, returning it as a trivia token. When
// leading is true (scanning prefix trivia) it may also skip leading
// horizontal+newline whitespace before the comment, matching
// lexer_comment's block-mode behavior.
func (s *scanner) tryComment(leading bool) *token.Token {
	before := s.save()

	s.eatSpace(leading)

	st := s.save()
	c, ok := s.getc()
	if !ok || c != '/' {
		s.restore(before)
		return nil
	}
	c2, ok := s.getc()
	if !ok || (c2 != '/' && c2 != '*') {
		s.restore(before)
		return nil
	}
	cstyle := c2 == '*'

	var prev byte
	for {
		peek, ok := s.getc()
		if !ok {
			break
		}
		if cstyle {
			if prev == '*' && peek == '/' {
				break
			}
			prev = peek
		} else if peek == '\n' {
			s.ungetc()
			break
		}
	}

	tk := s.emit(st, token.COMMENT)
	if !cstyle {
		tk.Flags |= token.FlagCommentC99
	}
	if leading {
		s.eatSpace(false)
		s.eatLines()
	}
	return tk
}
