package backend

import (
	"errors"
	"testing"
)

var errFactory = errors.New("factory failure")

func TestRegisterAndUnregister(t *testing.T) {
	const name = "test-failing"
	Register(name, func(int, int) (Surface, error) { return nil, errFactory })
	t.Cleanup(func() { Unregister(name) })

	if !IsRegistered(name) {
		t.Fatalf("IsRegistered(%q) = false after Register", name)
	}
	if _, err := New(name, 1, 1); !errors.Is(err, errFactory) {
		t.Errorf("New() error = %v, want factory error", err)
	}

	Unregister(name)
	if IsRegistered(name) {
		t.Errorf("IsRegistered(%q) = true after Unregister", name)
	}
	Unregister("never-registered")
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name    string
		factory Factory
		dup     bool
	}{
		{"nil factory", nil, false},
		{"duplicate", func(int, int) (Surface, error) { return nil, nil }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const name = "test-panics"
			t.Cleanup(func() { Unregister(name) })
			if tt.dup {
				Register(name, tt.factory)
			}
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
			}()
			Register(name, tt.factory)
		})
	}
}

func TestMatrixMultiplyInvert(t *testing.T) {
	m := Matrix{XX: 2, YY: 4, X0: 5, Y0: -3}
	x, y := m.TransformPoint(1, 1)
	if x != 7 || y != 1 {
		t.Errorf("TransformPoint(1, 1) = (%v, %v), want (7, 1)", x, y)
	}

	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() ok = false")
	}
	if x, y := inv.TransformPoint(7, 1); x != 1 || y != 1 {
		t.Errorf("inverse maps (7, 1) to (%v, %v), want (1, 1)", x, y)
	}

	// other applies first
	shift := Matrix{XX: 1, YY: 1, X0: 1}
	if x, _ := m.Multiply(shift).TransformPoint(0, 0); x != 7 {
		t.Errorf("m*shift maps x=0 to %v, want 7", x)
	}
	if x, _ := shift.Multiply(m).TransformPoint(0, 0); x != 6 {
		t.Errorf("shift*m maps x=0 to %v, want 6", x)
	}
}

func TestEnumStrings(t *testing.T) {
	if got := FillRuleEvenOdd.String(); got != "even-odd" {
		t.Errorf("FillRuleEvenOdd.String() = %q", got)
	}
	if got := LineCapRound.String(); got != "round" {
		t.Errorf("LineCapRound.String() = %q", got)
	}
	if got := FillRule(9).String(); got != "unknown" {
		t.Errorf("FillRule(9).String() = %q", got)
	}
}
