package renderer

import "testing"

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"pdf":  FormatPDF,
		"SVG":  FormatSVG,
		" pdf": FormatPDF,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseFormat("png"); err == nil {
		t.Fatal("expected error for png")
	}
	if FormatSVG.Extension() != ".svg" {
		t.Fatalf("Extension() = %q", FormatSVG.Extension())
	}
}
