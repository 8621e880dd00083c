package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Midpoint(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(2, 4, 6)
	mid := v1.Midpoint(v2)

	expected := NewVector3(1, 2, 3)
	if mid != expected {
		t.Errorf("Midpoint failed: expected %v, got %v", expected, mid)
	}
}

func TestVector3MidpointIsSymmetric(t *testing.T) {
	v1 := NewVector3(-1, 0.5, 3)
	v2 := NewVector3(7, -2, 1)

	if v1.Midpoint(v2) != v2.Midpoint(v1) {
		t.Errorf("Midpoint not symmetric: %v vs %v", v1.Midpoint(v2), v2.Midpoint(v1))
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	expectedLength := 1.0
	actualLength := normalized.Length()

	if math.Abs(actualLength-expectedLength) > 1e-10 {
		t.Errorf("Normalize failed: expected length %v, got %v", expectedLength, actualLength)
	}
}

func TestVector3NormalizeZero(t *testing.T) {
	v := NewVector3(0, 0, 0)
	normalized := v.Normalize()

	if normalized != (Vector3{}) {
		t.Errorf("Normalize of zero vector failed: got %v", normalized)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3MinMax(t *testing.T) {
	v1 := NewVector3(1, 5, 3)
	v2 := NewVector3(4, 2, 6)

	expectedMin := NewVector3(1, 2, 3)
	expectedMax := NewVector3(4, 5, 6)

	if v1.Min(v2) != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, v1.Min(v2))
	}
	if v1.Max(v2) != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, v1.Max(v2))
	}
}
