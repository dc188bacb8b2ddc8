package core

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != 2 {
		t.Errorf("Add() = %+v, expected {4 2}", sum)
	}

	diff := a.Sub(b)
	if diff.X != 2 || diff.Y != 6 {
		t.Errorf("Sub() = %+v, expected {2 6}", diff)
	}

	scaled := a.Scale(2)
	if scaled.X != 6 || scaled.Y != 8 {
		t.Errorf("Scale(2) = %+v, expected {6 8}", scaled)
	}
}

func TestVec2Len(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected float64
	}{
		{"3-4-5 triangle", Vec2{3, 4}, 5},
		{"zero vector", Vec2{0, 0}, 0},
		{"negative components", Vec2{-3, -4}, 5},
		{"axis aligned", Vec2{0, 7}, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Len(); got != tc.expected {
				t.Errorf("Len() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestDist(t *testing.T) {
	if d := Dist(0, 0, 3, 4); d != 5 {
		t.Errorf("Dist(0,0,3,4) = %f, expected 5", d)
	}
	if d := Dist(10, 10, 10, 10); d != 0 {
		t.Errorf("Dist of identical points = %f, expected 0", d)
	}
	// Symmetry
	if Dist(1, 2, 7, 9) != Dist(7, 9, 1, 2) {
		t.Error("Dist should be symmetric")
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		f        float64
		expected bool
	}{
		{"regular value", 1.5, true},
		{"zero", 0, true},
		{"NaN", math.NaN(), false},
		{"+Inf", math.Inf(1), false},
		{"-Inf", math.Inf(-1), false},
		{"max float", math.MaxFloat64, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsFinite(tc.f); got != tc.expected {
				t.Errorf("IsFinite(%f) = %v, expected %v", tc.f, got, tc.expected)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize(2.5, -1); got != 2.5 {
		t.Errorf("Sanitize(2.5, -1) = %f, expected 2.5", got)
	}
	if got := Sanitize(math.NaN(), -1); got != -1 {
		t.Errorf("Sanitize(NaN, -1) = %f, expected -1", got)
	}
	if got := Sanitize(math.Inf(1), 0); got != 0 {
		t.Errorf("Sanitize(+Inf, 0) = %f, expected 0", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
