package lexer

import (
	"strings"

	"github.com/jcorbin/knfmt/internal/knfmt/token"
)

// cppState tracks nested `#if 0`/`#ifdef notyet` regions across
// calls to tryCpp: such regions are absorbed verbatim, line by line,
// until the matching `#endif`, so that a parser downstream never sees
// the (possibly broken) disabled code.
type cppState struct {
	disabledDepth int
}

func (s *scanner) tryCpp() *token.Token {
	before := s.save()
	st := s.save()
	n := 0

	for {
		oldst := s.save()
		s.eatSpace(true)
		cppst := s.save()

		c, ok := s.peekByte()
		if !ok || (c != '#' && s.cpp.disabledDepth == 0) {
			s.restore(oldst)
			break
		}
		if ok && c == '#' {
			s.getc()
		}

		var prev byte
		inComment := false
		for {
			peek, ok := s.getc()
			if !ok {
				break
			}
			if prev == '/' && peek == '*' {
				inComment = true
			} else if inComment && prev == '*' && peek == '/' {
				inComment = false
			} else if !inComment && prev != '\\' && peek == '\n' {
				s.ungetc()
				break
			}
			prev = peek
		}

		line := string(s.src[cppst.off:s.off])
		trimmed := strings.TrimRight(line, "\n")
		if s.cpp.disabledDepth > 0 {
			if hasDirectivePrefix(trimmed, "#if") {
				s.cpp.disabledDepth++
			} else if hasDirectivePrefix(trimmed, "#endif") {
				s.cpp.disabledDepth--
			}
		} else if matchesDisabled(trimmed) {
			s.cpp.disabledDepth++
		}

		n++
		if c, ok := s.peekByte(); ok && c == '\n' {
			s.getc()
		}
	}

	if n == 0 {
		s.restore(before)
		return nil
	}

	s.eatLines()
	tk := s.emit(st, classifyCpp(string(s.src[st.off:s.off])))
	tk.Flags |= token.FlagCPP
	return tk
}

func hasDirectivePrefix(line, prefix string) bool {
	line = strings.TrimLeft(line, " \t")
	return strings.HasPrefix(line, prefix)
}

func matchesDisabled(line string) bool {
	line = strings.TrimSpace(line)
	return line == "#if 0" || strings.HasPrefix(line, "#if 0 ") ||
		line == "#ifdef notyet" || strings.HasPrefix(line, "#ifdef notyet ")
}

func classifyCpp(text string) token.Kind {
	t := strings.TrimLeft(text, " \t")
	switch {
	case strings.HasPrefix(t, "#ifndef"):
		return token.CPP_IFNDEF
	case strings.HasPrefix(t, "#ifdef"), strings.HasPrefix(t, "#if"):
		return token.CPP_IF
	case strings.HasPrefix(t, "#else"), strings.HasPrefix(t, "#elif"):
		return token.CPP_ELSE
	case strings.HasPrefix(t, "#endif"):
		return token.CPP_ENDIF
	case strings.HasPrefix(t, "#define"):
		return token.CPP_DEFINE
	case strings.HasPrefix(t, "#include"):
		return token.CPP_INCLUDE
	default:
		return token.CPP
	}
}
