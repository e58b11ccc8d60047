// Package parser reads move scripts: plain text files that name a game, its
// two players and the moves to replay through a room.
package parser

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	WordToken
	EOLToken
)

var tokenTypeNames = [...]string{
	EOFToken:  "EOF",
	WordToken: "WORD",
	EOLToken:  "EOL",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical unit with its 1-based source position.
type Token struct {
	Type   TokenType
	Text   string
	Line   int
	Column int
}

// Keywords recognised at the start of a line.
const (
	KeywordGame   = "game"
	KeywordWhite  = "white"
	KeywordBlack  = "black"
	KeywordResign = "resign"
)

// CommentChar starts a comment that runs to the end of the line.
const CommentChar = '#'
