// This file is part of LegacyVideo.
//
// LegacyVideo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// LegacyVideo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with LegacyVideo.  If not, see <https://www.gnu.org/licenses/>.

package pacer

import (
	"fmt"
	"math"
)

// TickSource is implemented by anything that provides a free running tick.
// Tick() may be called from a different goroutine to the one incrementing the
// tick and so should be read atomically.
type TickSource interface {
	Tick() uint32
}

// State of the Pacer.
type State int

// List of valid State values.
const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	}
	return "unknown state"
}

// MaxBudget is the largest frameskip budget. Larger values passed to
// SetBudget() are reduced to this value.
const MaxBudget = math.MaxInt32

// Pacer is the frame pacing state machine.
type Pacer struct {
	src   TickSource
	state State

	// the tick value at the end of the most recent call to Pace()
	last uint32

	// frameskip budget. the number of extra iterations that render when
	// catching up
	budget int

	// whether the most recent iteration was flagged for rendering
	rendering bool

	// iterations run and iterations rendered since creation
	iterations uint64
	renders    uint64
}

// NewPacer is the preferred method of initialisation for the Pacer type.
func NewPacer(src TickSource, budget int) *Pacer {
	p := &Pacer{
		src:       src,
		rendering: true,
	}
	p.SetBudget(budget)
	return p
}

func (p *Pacer) String() string {
	return fmt.Sprintf("%s (frameskip %d)", p.state, p.budget)
}

// SetBudget sets the frameskip budget. Negative values are treated as zero
// and values above MaxBudget are treated as MaxBudget.
func (p *Pacer) SetBudget(budget int) {
	p.budget = min(MaxBudget, max(0, budget))
}

// Budget returns the current frameskip budget.
func (p *Pacer) Budget() int {
	return p.budget
}

// Start the Pacer. The current tick becomes the baseline for the next call
// to Pace().
func (p *Pacer) Start() {
	p.last = p.src.Tick()
	p.state = Running
}

// Stop the Pacer. It will need to be started again before Pace() will run
// any iterations.
func (p *Pacer) Stop() {
	p.state = Idle
}

// State returns the current state of the Pacer.
func (p *Pacer) State() State {
	return p.state
}

// Pace runs the iteration function once for every tick that has elapsed since
// the previous call. The render argument is true for the final
// min(elapsed, 1+budget) iterations. Returns the number of iterations run.
//
// An Idle Pacer records the baseline tick and moves to the Running state
// without running any iterations.
func (p *Pacer) Pace(iter func(render bool)) int {
	if p.state == Idle {
		p.Start()
		return 0
	}

	tick := p.src.Tick()

	// subtraction of unsigned values handles the tick wrapping around
	n := int(tick - p.last)
	p.last = tick

	renders := n
	if p.budget < n {
		renders = p.budget + 1
	}
	for i := 0; i < n; i++ {
		p.rendering = i >= n-renders
		p.iterations++
		if p.rendering {
			p.renders++
		}
		iter(p.rendering)
	}

	return n
}

// Rendering returns true if the most recent iteration was flagged for
// rendering. It returns true if no iteration has yet been run.
func (p *Pacer) Rendering() bool {
	return p.rendering
}

// Stats returns the number of iterations run and the number of those that
// were flagged for rendering.
func (p *Pacer) Stats() (iterations uint64, renders uint64) {
	return p.iterations, p.renders
}
