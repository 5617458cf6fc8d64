package specimen

import (
	"math"
	"testing"
)

// TestPtMmRoundTrip 验证 pt↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPtMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 12, 14.4, 72, 96, 144, 1000}
	for _, pt := range samples {
		back := Length{Value: pt, Unit: UnitPT}.ToMM() * MmToPt
		if diff := math.Abs(back - pt); diff > 1e-9 {
			t.Fatalf("pt→mm→pt 往返误差过大: in=%gpt back=%g diff=%g", pt, back, diff)
		}
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in     string
		wantMM float64
		wantPT float64
	}{
		{in: "1in", wantMM: 25.4, wantPT: 25.4 * MmToPt},
		{in: "2.54cm", wantMM: 25.4, wantPT: 25.4 * MmToPt},
		{in: "12pt", wantMM: 12 * PtToMm, wantPT: 12},
		{in: " 10MM ", wantMM: 10, wantPT: 10 * MmToPt},
		{in: "14", wantMM: 14, wantPT: 14},
	}
	for _, tt := range tests {
		l, err := ParseLength(tt.in)
		if err != nil {
			t.Fatalf("ParseLength(%q) error: %v", tt.in, err)
		}
		if got := l.ToMM(); math.Abs(got-tt.wantMM) > 1e-9 {
			t.Fatalf("%s 转 mm 期望 %g，实际 %g", tt.in, tt.wantMM, got)
		}
		if got := l.ToPT(); math.Abs(got-tt.wantPT) > 1e-9 {
			t.Fatalf("%s 转 pt 期望 %g，实际 %g", tt.in, tt.wantPT, got)
		}
	}
	if _, err := ParseLength("large"); err == nil {
		t.Fatalf("expected error for non-numeric length")
	}
}
