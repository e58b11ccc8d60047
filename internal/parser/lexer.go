package parser

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Lexer tokenizes move script input one line at a time.
type Lexer struct {
	scanner *bufio.Scanner
	tokens  []Token
	raw     string
	lineNum int
	eof     bool
}

// NewLexer creates a lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{scanner: bufio.NewScanner(r)}
}

// LineNumber returns the current 1-based line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}

// Err returns the first read error, if any.
func (l *Lexer) Err() error {
	return l.scanner.Err()
}

// NextToken returns the next token. Every non-empty line ends with an
// EOLToken; blank and comment-only lines produce nothing.
func (l *Lexer) NextToken() Token {
	for len(l.tokens) == 0 {
		if l.eof || !l.scanner.Scan() {
			l.eof = true
			return Token{Type: EOFToken, Line: l.lineNum + 1, Column: 1}
		}
		l.lineNum++
		l.raw = stripComment(l.scanner.Text())
		l.tokens = scanLine(l.raw, l.lineNum)
	}
	tok := l.tokens[0]
	l.tokens = l.tokens[1:]
	return tok
}

// RestOfLine consumes the remaining tokens on the current line and returns
// their source text with inner spacing intact.
func (l *Lexer) RestOfLine() string {
	if len(l.tokens) == 0 || l.tokens[0].Type == EOLToken {
		return ""
	}
	start := l.tokens[0].Column - 1
	for len(l.tokens) > 0 && l.tokens[0].Type != EOLToken {
		l.tokens = l.tokens[1:]
	}
	return strings.TrimSpace(l.raw[start:])
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, CommentChar); i >= 0 {
		return line[:i]
	}
	return line
}

// scanLine splits a line into word tokens followed by an EOL token.
func scanLine(line string, lineNum int) []Token {
	var tokens []Token
	start := -1
	for i, r := range line {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, Token{Type: WordToken, Text: line[start:i], Line: lineNum, Column: start + 1})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Type: WordToken, Text: line[start:], Line: lineNum, Column: start + 1})
	}
	if len(tokens) == 0 {
		return nil
	}
	return append(tokens, Token{Type: EOLToken, Line: lineNum, Column: len(line) + 1})
}
