// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// MarshalText implements encoding.TextMarshaler.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Colour) UnmarshalText(text []byte) error {
	colour, ok := ParseColour(string(text))
	if !ok {
		return fmt.Errorf("unknown colour %q", text)
	}
	*c = colour
	return nil
}

// ParseColour converts "white"/"black" (or "w"/"b") to a colour.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return Black, false
}

// Kind is the closed set of piece kinds.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

var kindNames = [...]string{"", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the lower-case name of a kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsMinor reports whether the kind is a bishop or a knight.
func (k Kind) IsMinor() bool {
	return k == Bishop || k == Knight
}

// IsPromotion reports whether a pawn may promote to this kind.
func (k Kind) IsPromotion() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = NoKind
		return nil
	}
	kind, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown piece kind %q", text)
	}
	*k = kind
	return nil
}

// ParseKind converts a kind name or letter ("queen", "Q", "n") to a Kind.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "p", "pawn":
		return Pawn, true
	case "n", "knight":
		return Knight, true
	case "b", "bishop":
		return Bishop, true
	case "r", "rook":
		return Rook, true
	case "q", "queen":
		return Queen, true
	case "k", "king":
		return King, true
	}
	return NoKind, false
}

// Constants for board dimensions.
const (
	BoardSize = 8
	LastIndex = BoardSize - 1
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PawnStartRank returns the rank pawns of the colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return LastIndex - 1
}

// PromotionRank returns the far rank for the colour's pawns.
func PromotionRank(colour Colour) int {
	if colour == White {
		return LastIndex
	}
	return 0
}
