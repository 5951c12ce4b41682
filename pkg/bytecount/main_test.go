package bytecount

import (
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		bytes uint64
		want  string
	}{
		{0, "0.00K"},
		{512, "0.50K"},
		{1024, "1.00K"},
		{1536, "1.50K"},
		{1 << 20, "1.00M"},
		{5 * (1 << 30), "5.00G"},
		{3 * (1 << 40), "3.00T"},
	}

	for _, tt := range tests {
		if got := Format(tt.bytes); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
