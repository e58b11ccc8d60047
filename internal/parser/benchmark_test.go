package parser

import (
	"strings"
	"testing"
)

const benchScript = `game Scholar's mate
white Alice
black Bob
e2 e4
e7 e5
f1 c4
b8 c6
d1 h5
g8 f6
h5 f7
`

func BenchmarkParseScript(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := NewParser(strings.NewReader(benchScript), "bench")
		if _, err := p.ParseAll(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseManyScripts(b *testing.B) {
	src := strings.Repeat(benchScript+"\n", 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := NewParser(strings.NewReader(src), "bench")
		scripts, err := p.ParseAll()
		if err != nil || len(scripts) != 100 {
			b.Fatalf("ParseAll() = %d scripts, %v", len(scripts), err)
		}
	}
}
