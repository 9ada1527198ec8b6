package coord

import (
	"math"
	"testing"
)

func TestPackRoundTrip(t *testing.T) {
	values := []int{math.MinInt32, math.MinInt32 + 1, -65536, -32, -1, 0, 1, 31, 32, 65535, math.MaxInt32 - 1, math.MaxInt32}
	for _, x := range values {
		for _, y := range values {
			v := New(x, y)
			if got := Unpack(v.Pack()); got != v {
				t.Fatalf("Unpack(Pack(%v)) = %v", v, got)
			}
		}
	}
}

func TestPackDistinctKeys(t *testing.T) {
	seen := map[int64]Vec{}
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			v := New(x, y)
			if prev, ok := seen[v.Pack()]; ok {
				t.Fatalf("%v and %v pack to the same key", prev, v)
			}
			seen[v.Pack()] = v
		}
	}
}

func TestDivFloorsNegatives(t *testing.T) {
	cases := []struct {
		in, want Vec
	}{
		{New(0, 0), New(0, 0)},
		{New(31, 31), New(0, 0)},
		{New(32, 64), New(1, 2)},
		{New(-1, -32), New(-1, -1)},
		{New(-33, -64), New(-2, -2)},
	}
	for _, tc := range cases {
		if got := tc.in.Div(Splat(32)); got != tc.want {
			t.Fatalf("%v.Div(32) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFloorDivNegativeDivisor(t *testing.T) {
	if got := FloorDiv(7, -2); got != -4 {
		t.Fatalf("FloorDiv(7,-2) = %d, want -4", got)
	}
	if got := FloorDiv(-7, -2); got != 3 {
		t.Fatalf("FloorDiv(-7,-2) = %d, want 3", got)
	}
}

func TestArithmeticIsPure(t *testing.T) {
	a := New(3, -4)
	b := New(2, 5)
	if got := a.Add(b); got != New(5, 1) {
		t.Fatalf("Add = %v", got)
	}
	if got := a.Sub(b); got != New(1, -9) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Mul(Splat(2)); got != New(6, -8) {
		t.Fatalf("Mul = %v", got)
	}
	if a != New(3, -4) || b != New(2, 5) {
		t.Fatal("operands were modified")
	}
}

func TestMapDefaultsSecondFunction(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if got := New(3, 4).Map(double, nil); got != New(6, 8) {
		t.Fatalf("Map(double, nil) = %v", got)
	}
	neg := func(n int) int { return -n }
	if got := New(3, 4).Map(double, neg); got != New(6, -4) {
		t.Fatalf("Map(double, neg) = %v", got)
	}
	if got := New(-3, 4).Abs(); got != New(3, 4) {
		t.Fatalf("Abs = %v", got)
	}
}
