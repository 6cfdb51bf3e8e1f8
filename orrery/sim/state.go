package sim

import (
	"math"

	"orrery/orrery/model"
)

// State owns simulated time and the speed multiplier.
//
// The multiplier is kept as an integer number of speed steps so that
// repeated increments land exactly on the bounds; 0 steps means paused.
type State struct {
	time  float64
	steps int

	perUnit  float64 // steps per 1.0x
	minSteps int
	maxSteps int
}

// New returns a state at time 0 running at 1.0x.
func New(s model.Speed) *State {
	perUnit := math.Round(1 / s.Step)
	st := &State{
		perUnit:  perUnit,
		minSteps: int(math.Round(s.Min * perUnit)),
		maxSteps: int(math.Round(s.Max * perUnit)),
	}
	if st.minSteps < 1 {
		st.minSteps = 1
	}
	if st.maxSteps < st.minSteps {
		st.maxSteps = st.minSteps
	}
	st.steps = st.resumeSteps()
	return st
}

func (s *State) Time() float64 { return s.time }

// Multiplier returns the current speed multiplier, 0 while paused.
func (s *State) Multiplier() float64 { return float64(s.steps) / s.perUnit }

func (s *State) Paused() bool { return s.steps == 0 }

// Advance moves simulated time forward by dt scaled by the multiplier.
func (s *State) Advance(dt float64) {
	if s.steps == 0 || dt <= 0 {
		return
	}
	s.time += dt * s.Multiplier()
}

// IncreaseSpeed raises the multiplier by one step. From pause it resumes at
// the minimum speed.
func (s *State) IncreaseSpeed() { s.steps = s.clamp(s.steps + 1) }

// DecreaseSpeed lowers the multiplier by one step, never below the minimum.
// From pause it resumes at the minimum speed.
func (s *State) DecreaseSpeed() { s.steps = s.clamp(s.steps - 1) }

// TogglePause pauses a running simulation, or resumes a paused one at 1.0x
// regardless of the speed it was paused at.
func (s *State) TogglePause() {
	if s.steps != 0 {
		s.steps = 0
		return
	}
	s.steps = s.resumeSteps()
}

func (s *State) resumeSteps() int { return s.clamp(int(s.perUnit)) }

func (s *State) clamp(steps int) int {
	if steps < s.minSteps {
		return s.minSteps
	}
	if steps > s.maxSteps {
		return s.maxSteps
	}
	return steps
}
