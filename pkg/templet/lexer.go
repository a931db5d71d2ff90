package templet

// The lexer scans template source as bytes. Tags are delimited by a single
// '{' and '}'; everything between tags is literal text. The parser asks for
// text runs and tag bodies alternately.

type lexer struct {
	src []byte
	i   int
	n   int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, n: len(src)}
}

// textUntilOpen returns the literal text before the next '{' and reports
// whether an opener was found. The opener itself is consumed.
func (l *lexer) textUntilOpen() (string, bool) {
	start := l.i
	for l.i < l.n {
		if l.src[l.i] == '{' {
			s := string(l.src[start:l.i])
			l.i++
			return s, true
		}
		l.i++
	}
	return string(l.src[start:]), false
}

// tagBody returns the tag content between the already-consumed '{' and the
// next '}', consuming the closer. If no closer exists before end of input,
// it returns the remainder and false; the template may end mid-tag.
func (l *lexer) tagBody() (string, bool) {
	start := l.i
	for l.i < l.n {
		if l.src[l.i] == '}' {
			s := string(l.src[start:l.i])
			l.i++
			return s, true
		}
		l.i++
	}
	return string(l.src[start:]), false
}
