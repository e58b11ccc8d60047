package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/duel-chess-go/internal/chess"
	"github.com/lgbarn/duel-chess-go/internal/errors"
)

// StepKind distinguishes script actions.
type StepKind int

const (
	MoveStep StepKind = iota
	ResignStep
)

// Step is one scripted action.
type Step struct {
	Kind      StepKind
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
	// Colour names the resigning side; nil means the side to move.
	Colour *chess.Colour
	Line   int
	Column int
}

// String renders the step in script syntax.
func (s Step) String() string {
	switch s.Kind {
	case ResignStep:
		if s.Colour != nil {
			return KeywordResign + " " + s.Colour.String()
		}
		return KeywordResign
	default:
		if s.Promotion != chess.NoKind {
			return fmt.Sprintf("%s %s %s", s.From, s.To, s.Promotion)
		}
		return fmt.Sprintf("%s %s", s.From, s.To)
	}
}

// Script is one game read from a move script.
type Script struct {
	Name      string
	White     string
	Black     string
	Steps     []Step
	File      string
	StartLine int
	EndLine   int
}

// Default nicknames for scripts that do not name their players.
const (
	DefaultWhite = "white"
	DefaultBlack = "black"
)

// Parser parses move scripts into Script values.
type Parser struct {
	lexer        *Lexer
	currentToken Token
	started      bool
	file         string
	count        int
}

// NewParser creates a new parser for the given reader. file is used only
// for naming scripts and in error messages.
func NewParser(r io.Reader, file string) *Parser {
	return &Parser{
		lexer: NewLexer(r),
		file:  file,
	}
}

func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseScript parses a single game from the input.
// Returns nil, nil if no more games are available.
func (p *Parser) ParseScript() (*Script, error) {
	if !p.started {
		p.nextToken()
		p.started = true
	}
	if p.currentToken.Type == EOFToken {
		if err := p.lexer.Err(); err != nil {
			return nil, errors.Wrapf(err, "reading %s", p.file)
		}
		return nil, nil
	}

	p.count++
	script := &Script{
		Name:      fmt.Sprintf("%s#%d", p.file, p.count),
		White:     DefaultWhite,
		Black:     DefaultBlack,
		File:      p.file,
		StartLine: p.currentToken.Line,
	}

	for first := true; p.currentToken.Type != EOFToken; first = false {
		if strings.EqualFold(p.currentToken.Text, KeywordGame) && !first {
			break
		}
		script.EndLine = p.currentToken.Line
		if strings.EqualFold(p.currentToken.Text, KeywordGame) {
			if name := p.lexer.RestOfLine(); name != "" {
				script.Name = name
			}
			p.nextToken()
			if err := p.expectEOL(); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.parseLine(script); err != nil {
			return nil, err
		}
	}

	return script, nil
}

// ParseAll parses every game in the input.
func (p *Parser) ParseAll() ([]*Script, error) {
	var scripts []*Script
	for {
		s, err := p.ParseScript()
		if err != nil {
			return scripts, err
		}
		if s == nil {
			return scripts, nil
		}
		scripts = append(scripts, s)
	}
}

// parseLine handles one non-game line.
func (p *Parser) parseLine(script *Script) error {
	tok := p.currentToken
	switch strings.ToLower(tok.Text) {
	case KeywordWhite, KeywordBlack:
		p.nextToken()
		if p.currentToken.Type != WordToken {
			return p.errorf(p.currentToken, "nickname", describe(p.currentToken))
		}
		if strings.ToLower(tok.Text) == KeywordWhite {
			script.White = p.currentToken.Text
		} else {
			script.Black = p.currentToken.Text
		}
		p.nextToken()
	case KeywordResign:
		step := Step{Kind: ResignStep, Line: tok.Line, Column: tok.Column}
		p.nextToken()
		if p.currentToken.Type == WordToken {
			c, ok := chess.ParseColour(p.currentToken.Text)
			if !ok {
				return p.errorf(p.currentToken, "colour", p.currentToken.Text)
			}
			step.Colour = &c
			p.nextToken()
		}
		script.Steps = append(script.Steps, step)
	default:
		step, err := p.parseMove()
		if err != nil {
			return err
		}
		script.Steps = append(script.Steps, step)
	}
	return p.expectEOL()
}

// parseMove reads "e2 e4", "e7 e8 knight" or the compact "e7e8n".
func (p *Parser) parseMove() (Step, error) {
	tok := p.currentToken
	step := Step{Kind: MoveStep, Line: tok.Line, Column: tok.Column}

	if len(tok.Text) == 4 || len(tok.Text) == 5 {
		if from, ok := chess.ParseSquare(tok.Text[:2]); ok {
			to, ok := chess.ParseSquare(tok.Text[2:4])
			if !ok {
				return step, p.errorf(tok, "destination square", tok.Text[2:4])
			}
			step.From, step.To = from, to
			if len(tok.Text) == 5 {
				kind, ok := chess.ParseKind(tok.Text[4:])
				if !ok {
					return step, p.errorf(tok, "promotion piece", tok.Text[4:])
				}
				step.Promotion = kind
			}
			p.nextToken()
			return step, nil
		}
	}

	from, ok := chess.ParseSquare(tok.Text)
	if !ok {
		return step, p.errorf(tok, "square or keyword", tok.Text)
	}
	p.nextToken()
	if p.currentToken.Type != WordToken {
		return step, p.errorf(p.currentToken, "destination square", describe(p.currentToken))
	}
	to, ok := chess.ParseSquare(p.currentToken.Text)
	if !ok {
		return step, p.errorf(p.currentToken, "destination square", p.currentToken.Text)
	}
	step.From, step.To = from, to
	p.nextToken()

	if p.currentToken.Type == WordToken {
		kind, ok := chess.ParseKind(p.currentToken.Text)
		if !ok {
			return step, p.errorf(p.currentToken, "promotion piece", p.currentToken.Text)
		}
		step.Promotion = kind
		p.nextToken()
	}
	return step, nil
}

func (p *Parser) expectEOL() error {
	switch p.currentToken.Type {
	case EOLToken:
		p.nextToken()
		return nil
	case EOFToken:
		return nil
	default:
		return p.errorf(p.currentToken, "end of line", p.currentToken.Text)
	}
}

func (p *Parser) errorf(tok Token, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		File:     p.file,
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: expected,
		Got:      got,
	}
}

func describe(tok Token) string {
	if tok.Type == WordToken {
		return tok.Text
	}
	return strings.ToLower(tok.Type.String())
}
