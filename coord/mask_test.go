package coord

import (
	"strings"
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name   string
		mode   Mode
		input  string
		expect string
	}{
		{"utm plain", ModeUTM, "500000464977623S", "500000,4649776,23,S"},
		{"gms early close", ModeGMS, "15300S", "15,30,0,S"},
		{"utm invalid chars", ModeUTM, "50a0000b,4649c776,2d3,S", "500000,4649776,23,S"},
		{"gms invalid chars", ModeGMS, "15a,30b,0c,S", "15,30,0,S"},
		{"utm incomplete", ModeUTM, "500000,4649776,23", "500000,4649776,23"},
		{"gms incomplete", ModeGMS, "15,30,0", "15,30,0"},
		{"lower case letter", ModeGMS, "15300s", "15,30,0,S"},
		{"full gms", ModeGMS, "153000S475520W", "15,30,00,S,47,55,20,W"},
		{"full gms symbolic", ModeGMS, `15° 30' 00" S 47° 55' 20" W`, "15,30,00,S,47,55,20,W"},
		{"empty", ModeGMS, "", ""},
		{"only junk", ModeUTM, "abc;-.", ""},
		{"leading letter dropped", ModeGMS, "S15", "15"},
		{"letter in first block dropped", ModeGMS, "1N5", "15"},
		{"letter after full minutes dropped", ModeGMS, "1530S", "15,30"},
		{"digits in letter block dropped", ModeGMS, "153000123S", "15,30,00,S"},
		{"no clamping", ModeGMS, "95", "95"},
		{"no clamping minutes", ModeGMS, "1599", "15,99"},
		{"wrong axis letter passes through", ModeGMS, "153000E", "15,30,00,E"},
		{"oeste is not accepted", ModeGMS, "15300S475520O", "15,30,0,S,47,55,20"},
		{"east west not accepted for utm", ModeUTM, "500000464977623E", "500000,4649776,23"},
		{"single digit zone", ModeUTM, "50000046497765n", "500000,4649776,5,N"},
		{"overflow ignored", ModeUTM, "500000464977623SN99", "500000,4649776,23,S"},
		{"non-ascii digits dropped", ModeUTM, "１２34", "34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mask(tt.mode, tt.input); got != tt.expect {
				t.Errorf("Mask(%s, %q) = %q; expected %q", tt.mode, tt.input, got, tt.expect)
			}
		})
	}
}

func TestMaskIdempotent(t *testing.T) {
	inputs := []string{
		"500000,4649776,23,S",
		"15,30,0,S,47,55,20,W",
		"15,30,00,S,47,55,20,W",
		"15,30,0,S",
		"15,3",
		"5",
		"",
		"500000,4649776,5,N",
		"99,99,99,E,99,99,99,N",
	}
	for _, m := range Modes {
		for _, in := range inputs {
			once := Mask(m, in)
			if twice := Mask(m, once); twice != once {
				t.Errorf("%s: Mask(Mask(%q)) = %q; expected %q", m, in, twice, once)
			}
		}
	}
}

func TestMaskFieldWidths(t *testing.T) {
	long := strings.Repeat("1234567890NSEW", 5)
	for _, m := range Modes {
		masked := Mask(m, long)
		parts := strings.Split(masked, Delimiter)
		layout := Layout(m)
		if len(parts) > len(layout) {
			t.Fatalf("%s: got %d fields, max is %d", m, len(parts), len(layout))
		}
		for i, p := range parts {
			if len(p) > layout[i].MaxWidth {
				t.Errorf("%s: field %s is %q, wider than %d", m, layout[i].Field, p, layout[i].MaxWidth)
			}
		}
	}
}

func TestSymbolic(t *testing.T) {
	tests := []struct {
		mode   Mode
		masked string
		expect string
	}{
		{ModeGMS, "15,30,0,S,47,55,20,W", `15° 30' 0" S 47° 55' 20" W`},
		{ModeGMS, "15,30", `15° 30'`},
		{ModeGMS, "", ""},
		{ModeUTM, "500000,4649776,23,S", "500000,4649776,23,S"},
	}
	for _, tt := range tests {
		if got := Symbolic(tt.mode, tt.masked); got != tt.expect {
			t.Errorf("Symbolic(%s, %q) = %q; expected %q", tt.mode, tt.masked, got, tt.expect)
		}
	}
}
