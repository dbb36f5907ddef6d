package style

import "testing"

func TestGenerateHexColor(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    string
	}{
		{0, 0, 0, "#000000"},
		{255, 255, 255, "#FFFFFF"},
		{255, 160, 32, "#FFA020"},
	}
	for _, tt := range tests {
		if got := GenerateHexColor(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("GenerateHexColor(%d, %d, %d) = %s; want %s", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestBrightDim(t *testing.T) {
	tests := []struct {
		name   string
		in     int
		bright int
		dim    int
	}{
		{"zero stays zero", 0, 0, 0},
		{"full channel", 255, 255, 159},
		{"low channel lifted", 40, 128, 32},
		{"overflow clamped", 300, 255, 159},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bright, dim := BrightDim(tt.in)
			if bright != tt.bright || dim != tt.dim {
				t.Errorf("BrightDim(%d) = %d, %d; want %d, %d", tt.in, bright, dim, tt.bright, tt.dim)
			}
		})
	}
}
