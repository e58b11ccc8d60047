package matching

import "strings"

// soundexDigits maps letters to their Soundex digit. Vowels, H, W and Y
// map to zero and are not coded.
var soundexDigits = [26]byte{
	// A  B    C    D    E  F    G    H  I  J    K    L    M    N    O  P    Q    R    S    T    U  V    W  X    Y  Z
	0, '1', '2', '3', 0, '1', '2', 0, 0, '2', '2', '4', '5', '5', 0, '1', '2', '6', '2', '3', 0, '1', 0, '2', 0, '2',
}

// Soundex returns the four-character American Soundex code for name, or ""
// when name holds no letters. Non-letters are ignored.
func Soundex(name string) string {
	var code []byte
	var last byte
	for i := 0; i < len(name) && len(code) < 4; i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			continue
		}
		digit := soundexDigits[c-'A']
		if len(code) == 0 {
			code = append(code, c)
			last = digit
			continue
		}
		switch {
		case digit == 0:
			// H and W do not separate letters with the same code.
			if c != 'H' && c != 'W' {
				last = 0
			}
		case digit != last:
			code = append(code, digit)
			last = digit
		}
	}
	if len(code) == 0 {
		return ""
	}
	return string(code) + strings.Repeat("0", 4-len(code))
}

// SoundexMatch reports whether two names share a Soundex code.
func SoundexMatch(a, b string) bool {
	sa := Soundex(a)
	return sa != "" && sa == Soundex(b)
}
