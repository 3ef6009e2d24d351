package framebuffer

import "testing"

func TestColorHex(t *testing.T) {
	c := NewColor(0x12, 0x34, 0x56)
	if got := c.ToHex(); got != 0x123456 {
		t.Fatalf("ToHex() = %#x, want 0x123456", got)
	}
	if got := FromHex(0xff123456); got != c {
		t.Errorf("FromHex ignored-top-byte = %v, want %v", got, c)
	}
	if got := c.String(); got != "#123456" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{255, 0, 0}, false},
		{"00ff7f", Color{0, 255, 127}, false},
		{" #FFFFFF ", White, false},
		{"#fff", Color{}, true},
		{"#gg0000", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
