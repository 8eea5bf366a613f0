package textutil

import "testing"

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "main.go", 7},
		{"cjk", "你好", 4},
		{"combining mark", "café", 4},
		{"mixed", "a你b", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"pads ascii", "ab", 4, "ab  "},
		{"pads wide runes by cells", "你", 4, "你  "},
		{"exact width untouched", "abcd", 4, "abcd"},
		{"wider text untouched", "abcdef", 4, "abcdef"},
		{"zero width", "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadRight(tt.text, tt.width); got != tt.want {
				t.Fatalf("PadRight(%q, %d)=%q want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
