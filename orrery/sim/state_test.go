package sim

import (
	"testing"

	"orrery/orrery/model"
)

func newDefault() *State { return New(model.Default().Speed) }

func TestInitialState(t *testing.T) {
	s := newDefault()
	if s.Time() != 0 || s.Multiplier() != 1.0 || s.Paused() {
		t.Fatalf("initial time=%v speed=%v paused=%v", s.Time(), s.Multiplier(), s.Paused())
	}
}

func TestAdvanceThreeSeconds(t *testing.T) {
	s := newDefault()
	for i := 0; i < 3; i++ {
		s.Advance(1.0)
	}
	if s.Time() != 3.0 {
		t.Fatalf("time = %v, want 3", s.Time())
	}
}

func TestAdvanceIgnoresNonPositiveDelta(t *testing.T) {
	s := newDefault()
	s.Advance(-1)
	s.Advance(0)
	if s.Time() != 0 {
		t.Fatalf("time = %v", s.Time())
	}
}

func TestDecreaseSpeedClampsAtMinimum(t *testing.T) {
	s := newDefault()
	for i := 0; i < 9; i++ {
		s.DecreaseSpeed()
	}
	if s.Multiplier() != 0.1 {
		t.Fatalf("after 9 decreases speed = %v, want exactly 0.1", s.Multiplier())
	}
	s.DecreaseSpeed()
	if s.Multiplier() != 0.1 {
		t.Fatalf("after 10 decreases speed = %v, want 0.1", s.Multiplier())
	}
}

func TestIncreaseSpeedClampsAtMaximum(t *testing.T) {
	s := newDefault()
	for i := 0; i < 100; i++ {
		s.IncreaseSpeed()
		if m := s.Multiplier(); m < 0.1 || m > 5.0 {
			t.Fatalf("speed %v out of bounds", m)
		}
	}
	if s.Multiplier() != 5.0 {
		t.Fatalf("speed = %v, want 5", s.Multiplier())
	}
	s.IncreaseSpeed()
	if s.Multiplier() != 5.0 {
		t.Fatalf("speed = %v after extra increase", s.Multiplier())
	}
}

func TestSpeedStepsAreExactTenths(t *testing.T) {
	s := newDefault()
	s.IncreaseSpeed()
	s.IncreaseSpeed()
	if s.Multiplier() != 1.2 {
		t.Fatalf("speed = %v, want 1.2", s.Multiplier())
	}
}

func TestPauseResumesAtFullSpeed(t *testing.T) {
	s := newDefault()
	s.TogglePause()
	if s.Multiplier() != 0 || !s.Paused() {
		t.Fatalf("paused speed = %v", s.Multiplier())
	}
	s.Advance(0.5)
	s.Advance(2)
	if s.Time() != 0 {
		t.Fatalf("time advanced while paused: %v", s.Time())
	}
	s.TogglePause()
	if s.Multiplier() != 1.0 {
		t.Fatalf("resumed speed = %v, want 1", s.Multiplier())
	}
}

func TestPauseForgetsPreviousSpeed(t *testing.T) {
	for _, presses := range []int{-5, 3, 40} {
		s := newDefault()
		for i := 0; i < presses; i++ {
			s.IncreaseSpeed()
		}
		for i := 0; i > presses; i-- {
			s.DecreaseSpeed()
		}
		s.TogglePause()
		s.TogglePause()
		if s.Multiplier() != 1.0 {
			t.Fatalf("presses=%d: resumed at %v, want 1", presses, s.Multiplier())
		}
	}
}

func TestSpeedChangeWhilePausedResumesAtMinimum(t *testing.T) {
	s := newDefault()
	s.TogglePause()
	s.IncreaseSpeed()
	if s.Multiplier() != 0.1 {
		t.Fatalf("increase from pause = %v", s.Multiplier())
	}

	s.TogglePause()
	s.DecreaseSpeed()
	if s.Multiplier() != 0.1 {
		t.Fatalf("decrease from pause = %v", s.Multiplier())
	}
}
