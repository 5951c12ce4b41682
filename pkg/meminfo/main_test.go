package meminfo

import (
	"strings"
	"testing"
)

const sample = `MemTotal:       16282548 kB
MemFree:         1445632 kB
MemAvailable:    8765432 kB
Buffers:          123456 kB
SwapTotal:       8388604 kB
SwapFree:        4194302 kB
`

func TestParse(t *testing.T) {
	info, err := parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if want := uint64(8765432) * 1024; info.Available != want {
		t.Fatalf("Available = %d, want %d", info.Available, want)
	}
	if want := uint64(4194302) * 1024; info.SwapFree != want {
		t.Fatalf("SwapFree = %d, want %d", info.SwapFree, want)
	}
}

func TestParseNoSwapLine(t *testing.T) {
	info, err := parse(strings.NewReader("MemAvailable: 1024 kB\n"))
	if err != nil {
		t.Fatal(err)
	}
	if info.SwapFree != 0 {
		t.Fatalf("SwapFree = %d, want 0", info.SwapFree)
	}
	if info.Available != 1024*1024 {
		t.Fatalf("Available = %d", info.Available)
	}
}

func TestParseMissingMemAvailable(t *testing.T) {
	if _, err := parse(strings.NewReader("MemFree: 10 kB\n")); err == nil {
		t.Fatal("expected an error when MemAvailable is absent")
	}
}

func TestParseGarbageLines(t *testing.T) {
	input := "short\nMemAvailable: notanumber kB\nMemAvailable: 2048 kB\n"
	info, err := parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if info.Available != 2048*1024 {
		t.Fatalf("Available = %d", info.Available)
	}
}
