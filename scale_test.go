package fixedpoint

import (
	"errors"
	"math"
	"testing"
)

func TestMetricsOf(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		want := int64(1)
		for s := 0; s <= MaxScale; s++ {
			m, err := MetricsOf(s)
			if err != nil {
				t.Errorf("MetricsOf(%v) failed: %v", s, err)
				continue
			}
			if m.Scale() != s {
				t.Errorf("MetricsOf(%v).Scale() = %v, want %v", s, m.Scale(), s)
			}
			if m.ScaleFactor() != want {
				t.Errorf("MetricsOf(%v).ScaleFactor() = %v, want %v", s, m.ScaleFactor(), want)
			}
			want *= 10
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []int{-1, -100, MaxScale + 1, 100}
		for _, scale := range tests {
			_, err := MetricsOf(scale)
			if !errors.Is(err, ErrScaleRange) {
				t.Errorf("MetricsOf(%v) = %v, want %v", scale, err, ErrScaleRange)
			}
		}
	})
}

func TestScaleMetrics_IntegerParts(t *testing.T) {
	tests := []struct {
		scale  int
		maxInt int64
		minInt int64
	}{
		{0, math.MaxInt64, math.MinInt64},
		{1, 922_337_203_685_477_580, -922_337_203_685_477_580},
		{2, 92_233_720_368_547_758, -92_233_720_368_547_758},
		{9, 9_223_372_036, -9_223_372_036},
		{18, 9, -9},
	}
	for _, tt := range tests {
		m := &scaleMetrics[tt.scale]
		if got := m.MaxIntegerPart(); got != tt.maxInt {
			t.Errorf("MetricsOf(%v).MaxIntegerPart() = %v, want %v", tt.scale, got, tt.maxInt)
		}
		if got := m.MinIntegerPart(); got != tt.minInt {
			t.Errorf("MetricsOf(%v).MinIntegerPart() = %v, want %v", tt.scale, got, tt.minInt)
		}
	}
}

func TestScaleMetrics_DivModMul(t *testing.T) {
	tests := []struct {
		x        int64
		scale    int
		div      int64
		mod      int64
		mulOfDiv int64
	}{
		{0, 0, 0, 0, 0},
		{107, 0, 107, 0, 107},
		{-107, 0, -107, 0, -107},
		{107, 1, 10, 7, 100},
		{-107, 1, -10, -7, -100},
		{12_345, 4, 1, 2_345, 10_000},
		{-12_345, 4, -1, -2_345, -10_000},
		{999, 4, 0, 999, 0},
		{math.MaxInt64, 18, 9, 223_372_036_854_775_807, 9_000_000_000_000_000_000},
		{math.MinInt64, 18, -9, -223_372_036_854_775_808, -9_000_000_000_000_000_000},
	}
	for _, tt := range tests {
		m := &scaleMetrics[tt.scale]
		if got := m.DivByScaleFactor(tt.x); got != tt.div {
			t.Errorf("MetricsOf(%v).DivByScaleFactor(%v) = %v, want %v", tt.scale, tt.x, got, tt.div)
		}
		if got := m.ModByScaleFactor(tt.x); got != tt.mod {
			t.Errorf("MetricsOf(%v).ModByScaleFactor(%v) = %v, want %v", tt.scale, tt.x, got, tt.mod)
		}
		if got := m.MulByScaleFactor(tt.div); got != tt.mulOfDiv {
			t.Errorf("MetricsOf(%v).MulByScaleFactor(%v) = %v, want %v", tt.scale, tt.div, got, tt.mulOfDiv)
		}
	}
}

func TestScaleMetrics_MulByScaleFactorChecked(t *testing.T) {
	tests := []struct {
		x      int64
		scale  int
		want   int64
		wantOK bool
	}{
		{0, 18, 0, true},
		{math.MaxInt64, 0, math.MaxInt64, true},
		{math.MinInt64, 0, math.MinInt64, true},
		{922_337_203_685_477_580, 1, 9_223_372_036_854_775_800, true},
		{922_337_203_685_477_581, 1, 0, false},
		{-922_337_203_685_477_580, 1, -9_223_372_036_854_775_800, true},
		{-922_337_203_685_477_581, 1, 0, false},
		{9, 18, 9_000_000_000_000_000_000, true},
		{10, 18, 0, false},
		{-9, 18, -9_000_000_000_000_000_000, true},
		{-10, 18, 0, false},
	}
	for _, tt := range tests {
		m := &scaleMetrics[tt.scale]
		got, ok := m.mulByScaleFactorChecked(tt.x)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("MetricsOf(%v).mulByScaleFactorChecked(%v) = %v, %v, want %v, %v", tt.scale, tt.x, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFactorOf(t *testing.T) {
	tests := []struct {
		x    int64
		want int
	}{
		{1, 0},
		{-1, 0},
		{10, 1},
		{-10, 1},
		{100, 2},
		{1_000_000_000, 9},
		{1_000_000_000_000_000_000, 18},
		{-1_000_000_000_000_000_000, 18},
		{0, -1},
		{2, -1},
		{-3, -1},
		{11, -1},
		{99, -1},
		{101, -1},
		{999_999_999_999_999_999, -1},
		{1_000_000_000_000_000_001, -1},
		{math.MaxInt64, -1},
		{math.MinInt64, -1},
	}
	for _, tt := range tests {
		if got := factorOf(tt.x); got != tt.want {
			t.Errorf("factorOf(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
