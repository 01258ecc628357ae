//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"math"
	"testing"
)

func TestAngleOf(t *testing.T) {
	tests := []struct {
		value float64
		label Angle
	}{
		{math.Pi, AnglePi},
		{math.Pi / 2, AngleHalfPi},
		{-math.Pi / 2, AngleNegHalfPi},
		{math.Pi / 4, AngleQuarterPi},
		{-math.Pi / 4, AngleNegQuarterPi},
		{math.Pi / 10, AngleOther},
		{0.3, AngleOther},
	}
	for _, test := range tests {
		label := AngleOf(test.value)
		if label != test.label {
			t.Errorf("AngleOf(%v)=%v, expected %v",
				test.value, label, test.label)
		}
	}
}

func TestAngleString(t *testing.T) {
	tests := []struct {
		label Angle
		str   string
	}{
		{AngleNone, ""},
		{AnglePi, "π"},
		{AngleHalfPi, "π/2"},
		{AngleNegHalfPi, "-π/2"},
		{AngleQuarterPi, "π/4"},
		{AngleNegQuarterPi, "-π/4"},
		{AngleOther, "?"},
	}
	for _, test := range tests {
		if test.label.String() != test.str {
			t.Errorf("%d.String()=%q, expected %q",
				byte(test.label), test.label, test.str)
		}
	}
}

func TestAngleNeg(t *testing.T) {
	for _, a := range []Angle{
		AngleHalfPi, AngleNegHalfPi, AngleQuarterPi, AngleNegQuarterPi,
	} {
		if a.Neg().Neg() != a {
			t.Errorf("%v.Neg().Neg() != %v", a, a)
		}
	}
}

func TestStats(t *testing.T) {
	c := New(3)
	c.AddGate(CNOT, []int{1}, []int{0})
	c.AddGate(CNOT, []int{2}, []int{1})
	c.AddGate(SNOT, []int{0}, nil)
	c.AddRotation(RZ, 2, math.Pi/2)

	stats := c.Stats()
	if stats[CNOT] != 2 {
		t.Errorf("stats[CNOT]=%d, expected 2", stats[CNOT])
	}
	if stats[SNOT] != 1 {
		t.Errorf("stats[SNOT]=%d, expected 1", stats[SNOT])
	}
	if stats[RZ] != 1 {
		t.Errorf("stats[RZ]=%d, expected 1", stats[RZ])
	}
	if stats.Count() != 4 {
		t.Errorf("stats.Count()=%d, expected 4", stats.Count())
	}
}

func TestClone(t *testing.T) {
	c := New(2)
	c.AddGate(CNOT, []int{1}, []int{0})

	clone := c.Clone()
	clone.Gates[0].Targets[0] = 99

	if c.Gates[0].Targets[0] != 1 {
		t.Errorf("clone aliases the original gate targets")
	}
}

func TestFingerprint(t *testing.T) {
	a := New(2)
	a.AddGate(CNOT, []int{1}, []int{0})
	a.AddRotation(RZ, 0, math.Pi/2)

	b := New(2)
	b.AddGate(CNOT, []int{1}, []int{0})
	b.AddRotation(RZ, 0, math.Pi/2)

	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("identical circuits have different fingerprints")
	}

	b.AddGate(SNOT, []int{0}, nil)
	if a.Fingerprint() == b.Fingerprint() {
		t.Errorf("different circuits have equal fingerprints")
	}
}
