package vecdev

import (
	"image/color"
	"testing"
)

func TestARGB(t *testing.T) {
	c := ARGB(0x80, 0x10, 0x20, 0x30)
	if c.A() != 0x80 || c.R() != 0x10 || c.G() != 0x20 || c.B() != 0x30 {
		t.Errorf("ARGB() components = %d %d %d %d, want 128 16 32 48", c.A(), c.R(), c.G(), c.B())
	}
	if c != 0x80102030 {
		t.Errorf("ARGB() = %#x, want 0x80102030", uint32(c))
	}
}

func TestColorFloat(t *testing.T) {
	r, g, b, a := ARGB(255, 0, 255, 0).Float()
	if r != 0 || g != 1 || b != 0 || a != 1 {
		t.Errorf("Float() = %v %v %v %v, want 0 1 0 1", r, g, b, a)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	if want := ARGB(255, 1, 2, 3); got != want {
		t.Errorf("FromColor() = %v, want %v", got, want)
	}
}

func TestWithAlpha(t *testing.T) {
	if got := Red.WithAlpha(0x40); got != ARGB(0x40, 255, 0, 0) {
		t.Errorf("Red.WithAlpha(0x40) = %v", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#fff", White, false},
		{"000", Black, false},
		{"#f008", ARGB(0x88, 0xff, 0, 0), false},
		{"#00ff00", Green, false},
		{"0000ff80", ARGB(0x80, 0, 0, 0xff), false},
		{"#12345", 0, true},
		{"#zzzzzz", 0, true},
		{"", 0, true},
		{"#123456789", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	if got := ARGB(0x80, 0x10, 0x20, 0x30).String(); got != "#10203080" {
		t.Errorf("String() = %q, want #10203080", got)
	}
}
