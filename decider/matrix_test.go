package decider

import (
	"math"
	"testing"
)

func TestMatrixBuilderInit(t *testing.T) {
	b := NewMatrixBuilder(3, 2, 100)
	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			if got := b.Get(r, c); got != 100 {
				t.Fatalf("Get(%d,%d) = %g, want 100", r, c, got)
			}
		}
	}
}

func TestMatrixBuilderAnchorRow(t *testing.T) {
	b := NewMatrixBuilder(2, 2, 100)
	if b.Set(0, 0, 500) {
		t.Fatal("Set on row 0 must be a no-op")
	}
	if got := b.Get(0, 0); got != 100 {
		t.Fatalf("Get(0,0) = %g after anchor write attempt, want 100", got)
	}
	if b.SetString(0, 1, "500") {
		t.Fatal("SetString on row 0 must be a no-op")
	}
}

func TestMatrixBuilderClamp(t *testing.T) {
	tests := []struct {
		name string
		val  float64
		want float64
	}{
		{"in range", 250, 250},
		{"negative clamps to zero", -5, 0},
		{"above max clamps to max", 5000, 1000},
		{"lower bound exact", 0, 0},
		{"upper bound exact", 1000, 1000},
		{"NaN coerces to standard", math.NaN(), 100},
		{"positive infinity clamps to max", math.Inf(1), 1000},
		{"negative infinity clamps to zero", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMatrixBuilder(2, 1, 100)
			b.Set(1, 0, tt.val)
			if got := b.Get(1, 0); got != tt.want {
				t.Fatalf("Set(1,0,%g) stored %g, want %g", tt.val, got, tt.want)
			}
			// Clamping is idempotent: re-writing the stored value
			// stores the same value.
			b.Set(1, 0, b.Get(1, 0))
			if got := b.Get(1, 0); got != tt.want {
				t.Fatalf("re-write stored %g, want %g", got, tt.want)
			}
		})
	}
}

func TestMatrixBuilderSetString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"numeric", "250", 250},
		{"numeric with whitespace", " 300 ", 300},
		{"float", "12.5", 12.5},
		{"non-numeric coerces to standard", "abc", 100},
		{"empty coerces to standard", "", 100},
		{"negative clamps", "-5", 0},
		{"too large clamps", "5000", 1000},
		{"NaN text coerces to standard", "NaN", 100},
		{"infinity text coerces to standard", "Inf", 100},
		{"negative infinity text coerces to standard", "-Inf", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMatrixBuilder(2, 1, 100)
			b.SetString(1, 0, tt.raw)
			if got := b.Get(1, 0); got != tt.want {
				t.Fatalf("SetString(1,0,%q) stored %g, want %g", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMatrixBuilderOutOfRange(t *testing.T) {
	b := NewMatrixBuilder(2, 2, 100)
	for _, w := range []struct{ r, c int }{{-1, 0}, {2, 0}, {1, -1}, {1, 2}} {
		if b.Set(w.r, w.c, 500) {
			t.Fatalf("Set(%d,%d) out of range must be a no-op", w.r, w.c)
		}
	}
	if got := b.Get(-1, 5); got != 100 {
		t.Fatalf("out-of-range Get = %g, want standard", got)
	}
}

func TestMatrixBuilderConfirmDeepCopy(t *testing.T) {
	b := NewMatrixBuilder(2, 2, 100)
	b.Set(1, 0, 200)
	out := b.Confirm()
	b.Set(1, 0, 900)
	if out[1][0] != 200 {
		t.Fatalf("confirmed copy changed to %g after builder mutation", out[1][0])
	}
	out[1][1] = 777
	if got := b.Get(1, 1); got != 100 {
		t.Fatalf("builder changed to %g after copy mutation", got)
	}
}

func TestMatrixBuilderAbandon(t *testing.T) {
	b := NewMatrixBuilder(3, 2, 100)
	b.Set(1, 0, 40)
	b.Set(2, 1, 900)
	out := b.Abandon()
	for r := range out {
		for c := range out[r] {
			if out[r][c] != 100 {
				t.Fatalf("Abandon()[%d][%d] = %g, want 100", r, c, out[r][c])
			}
		}
	}
}

func TestMatrixBuilderSeed(t *testing.T) {
	b := NewMatrixBuilder(3, 2, 100)
	b.Seed([][]float64{
		{500, 500}, // anchor row ignored
		{0, 2000},  // zero is unset, 2000 clamps
		{250, -3},  // -3 clamps to 0
	})
	if got := b.Get(0, 0); got != 100 {
		t.Fatalf("Get(0,0) = %g after seed, want 100", got)
	}
	if got := b.Get(1, 0); got != 100 {
		t.Fatalf("Get(1,0) = %g, want 100 for zero seed", got)
	}
	if got := b.Get(1, 1); got != 1000 {
		t.Fatalf("Get(1,1) = %g, want 1000", got)
	}
	if got := b.Get(2, 0); got != 250 {
		t.Fatalf("Get(2,0) = %g, want 250", got)
	}
	if got := b.Get(2, 1); got != 0 {
		t.Fatalf("Get(2,1) = %g, want 0", got)
	}
}

func TestCoerceCell(t *testing.T) {
	if got := CoerceCell("x", 100); got != 100 {
		t.Fatalf("CoerceCell(x) = %g, want 100", got)
	}
	// The fallback standard itself is clamped.
	if got := CoerceCell("x", 5000); got != 1000 {
		t.Fatalf("CoerceCell(x, 5000) = %g, want 1000", got)
	}
}
