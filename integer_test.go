package wheel

import (
	"math"
	"testing"
)

func TestAddInt(t *testing.T) {
	tests := []struct {
		x, y   int8
		want   int8
		wantOk bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{-1, -2, -3, true},
		{100, 27, 127, true},
		{-100, -28, -128, true},
		{50, -100, -50, true},
		{127, 1, 0, false},
		{1, 127, 0, false},
		{-128, -1, 0, false},
		{-1, -128, 0, false},
		{127, -128, -1, true},
	}
	for _, tt := range tests {
		got, ok := addInt(tt.x, tt.y)
		if ok != tt.wantOk || got != tt.want {
			t.Errorf("addInt(%v, %v) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestNegInt(t *testing.T) {
	tests := []struct {
		x      int8
		want   int8
		wantOk bool
	}{
		{0, 0, true},
		{1, -1, true},
		{-1, 1, true},
		{127, -127, true},
		{-127, 127, true},
		{-128, 0, false},
	}
	for _, tt := range tests {
		got, ok := negInt(tt.x)
		if ok != tt.wantOk || got != tt.want {
			t.Errorf("negInt(%v) = %v, %v, want %v, %v", tt.x, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestMulInt(t *testing.T) {
	tests := []struct {
		x, y   int8
		want   int8
		wantOk bool
	}{
		{0, 0, 0, true},
		{0, -128, 0, true},
		{-128, 0, 0, true},
		{2, 60, 120, true},
		{12, -10, -120, true},
		{-1, 127, -127, true},
		{-1, -127, 127, true},
		{16, 8, 0, false},
		{-128, -1, 0, false},
		{-1, -128, 0, false},
		{-128, 1, -128, true},
		{64, 2, -128, false}, // 128 wraps to -128; must not pass as exact
	}
	for _, tt := range tests {
		got, ok := mulInt(tt.x, tt.y)
		if ok != tt.wantOk {
			t.Errorf("mulInt(%v, %v) = %v, %v, want ok %v", tt.x, tt.y, got, ok, tt.wantOk)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("mulInt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMulInt_Wide(t *testing.T) {
	tests := []struct {
		x, y   int64
		want   int64
		wantOk bool
	}{
		{math.MaxInt64, 1, math.MaxInt64, true},
		{math.MinInt64, 1, math.MinInt64, true},
		{math.MinInt64, -1, 0, false},
		{math.MaxInt64, 2, 0, false},
		{1 << 32, 1 << 31, 0, false},
		{1 << 32, 1 << 30, 1 << 62, true},
	}
	for _, tt := range tests {
		got, ok := mulInt(tt.x, tt.y)
		if ok != tt.wantOk || (ok && got != tt.want) {
			t.Errorf("mulInt(%v, %v) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestQuoInt(t *testing.T) {
	tests := []struct {
		x, y   int8
		want   int8
		wantOk bool
	}{
		{-128, 2, -64, true},
		{-128, -2, 64, true},
		{127, -1, -127, true},
		{-128, -1, 0, false},
		{6, 3, 2, true},
	}
	for _, tt := range tests {
		got, ok := quoInt(tt.x, tt.y)
		if ok != tt.wantOk || (ok && got != tt.want) {
			t.Errorf("quoInt(%v, %v) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestGcdInt(t *testing.T) {
	tests := []struct {
		x, y int8
		want int8
	}{
		{4, 8, 4},
		{8, 4, 4},
		{-3, -9, -3},
		{6, -4, -2},
		{-6, 4, 2},
		{1, 127, 1},
		{-128, 2, 2},
		{-128, -128, -128},
		{-128, -1, -1},
		{0, 5, 5},
		{0, -5, -5},
	}
	for _, tt := range tests {
		got := gcdInt(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("gcdInt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		// The defining property used by normalization: y / gcd > 0.
		if q := tt.y / got; q <= 0 && tt.y != 0 {
			t.Errorf("gcdInt(%v, %v) = %v: %v / %v = %v, want positive", tt.x, tt.y, got, tt.y, got, q)
		}
	}
}
