package sheet

import "testing"

func TestFillKey(t *testing.T) {
	tests := []struct {
		r, g, b  uint8
		expected string
	}{
		{255, 0, 0, "ff0000"},
		{0, 255, 0, "00ff00"},
		{0, 0, 255, "0000ff"},
		{255, 255, 255, "ffffff"},
		{0, 0, 0, "000000"},
		{1, 2, 3, "010203"},
		{0x0a, 0xbc, 0xde, "0abcde"},
	}

	for _, tt := range tests {
		result := FillKey(tt.r, tt.g, tt.b)
		if result != tt.expected {
			t.Errorf("FillKey(%d, %d, %d) = %q, expected %q",
				tt.r, tt.g, tt.b, result, tt.expected)
		}
	}
}

func TestParseFillColor(t *testing.T) {
	tests := []struct {
		input   string
		r, g, b uint8
		wantErr bool
	}{
		{"FFFF0000", 255, 0, 0, false},
		{"FF00FF00", 0, 255, 0, false},
		{"00ABCDEF", 0xab, 0xcd, 0xef, false}, // alpha discarded even when zero
		{"ff0000", 255, 0, 0, false},
		{"FFFFFF", 255, 255, 255, false},
		{"010203", 1, 2, 3, false},
		{"", 0, 0, 0, true},
		{"fff", 0, 0, 0, true},
		{"ff00001", 0, 0, 0, true},
		{"ff0000123", 0, 0, 0, true},
		{"zzzzzz", 0, 0, 0, true},
	}

	for _, tt := range tests {
		r, g, b, err := ParseFillColor(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFillColor(%q) expected error, got (%d, %d, %d)",
					tt.input, r, g, b)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFillColor(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("ParseFillColor(%q) = (%d, %d, %d), expected (%d, %d, %d)",
				tt.input, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestFillColorRoundTrip(t *testing.T) {
	triples := [][3]uint8{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
		{1, 2, 3},
		{127, 128, 129},
		{0x12, 0x34, 0x56},
	}

	for _, c := range triples {
		key := FillKey(c[0], c[1], c[2])

		r, g, b, err := ParseFillColor(key)
		if err != nil {
			t.Errorf("ParseFillColor(%q) unexpected error: %v", key, err)
			continue
		}
		if r != c[0] || g != c[1] || b != c[2] {
			t.Errorf("round trip of (%d, %d, %d) via %q = (%d, %d, %d)",
				c[0], c[1], c[2], key, r, g, b)
		}

		// Same triple through the stored ARGB form.
		r, g, b, err = ParseFillColor("FF" + key)
		if err != nil {
			t.Errorf("ParseFillColor(%q) unexpected error: %v", "FF"+key, err)
			continue
		}
		if r != c[0] || g != c[1] || b != c[2] {
			t.Errorf("ARGB round trip of (%d, %d, %d) = (%d, %d, %d)",
				c[0], c[1], c[2], r, g, b)
		}
	}
}
