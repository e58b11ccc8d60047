package matching

import "testing"

func TestSoundex(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Robert", "R163"},
		{"Rupert", "R163"},
		{"Ashcraft", "A261"},
		{"Tymczak", "T522"},
		{"Pfister", "P236"},
		{"Lee", "L000"},
		{"o'hara", "O600"},
		{"1234", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Soundex(tt.name); got != tt.want {
				t.Errorf("Soundex(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestSoundexMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Robert", "rupert", true},
		{"Smith", "Smyth", true},
		{"Smith", "Jones", false},
		{"", "", false},
		{"42", "42", false},
	}

	for _, tt := range tests {
		if got := SoundexMatch(tt.a, tt.b); got != tt.want {
			t.Errorf("SoundexMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
