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

package pacer_test

import (
	"math"
	"testing"
	"time"

	"github.com/jetsetilly/legacyvideo/display/pacer"
	"github.com/jetsetilly/legacyvideo/test"
)

type ticks struct {
	v uint32
}

func (t *ticks) Tick() uint32 {
	return t.v
}

// record collects the render flag of every iteration.
type record []bool

func (r *record) iter(render bool) {
	*r = append(*r, render)
}

func TestIdle(t *testing.T) {
	src := &ticks{v: 10}
	pcr := pacer.NewPacer(src, 0)
	test.ExpectEquality(t, pcr.State(), pacer.Idle)

	// first call records the baseline
	var r record
	src.v = 20
	test.ExpectEquality(t, pcr.Pace(r.iter), 0)
	test.ExpectEquality(t, len(r), 0)
	test.ExpectEquality(t, pcr.State(), pacer.Running)

	src.v = 21
	test.ExpectEquality(t, pcr.Pace(r.iter), 1)
	test.ExpectEquality(t, len(r), 1)
}

func TestCatchUp(t *testing.T) {
	src := &ticks{v: 10}
	pcr := pacer.NewPacer(src, 1)
	pcr.Start()

	var r record
	src.v = 13
	test.ExpectEquality(t, pcr.Pace(r.iter), 3)
	test.DemandEquality(t, len(r), 3)
	test.ExpectEquality(t, r[0], false)
	test.ExpectEquality(t, r[1], true)
	test.ExpectEquality(t, r[2], true)
	test.ExpectEquality(t, pcr.Rendering(), true)
}

func TestNoAdvance(t *testing.T) {
	src := &ticks{v: 10}
	pcr := pacer.NewPacer(src, 1)
	pcr.Start()

	var r record
	test.ExpectEquality(t, pcr.Pace(r.iter), 0)
	test.ExpectEquality(t, pcr.Pace(r.iter), 0)
	test.ExpectEquality(t, len(r), 0)
}

func TestLargeJump(t *testing.T) {
	src := &ticks{v: 0}
	pcr := pacer.NewPacer(src, 0)
	pcr.Start()

	var r record
	src.v = 100
	test.ExpectEquality(t, pcr.Pace(r.iter), 100)
	test.DemandEquality(t, len(r), 100)
	for i := 0; i < 99; i++ {
		test.ExpectEquality(t, r[i], false, i)
	}
	test.ExpectEquality(t, r[99], true)

	iterations, renders := pcr.Stats()
	test.ExpectEquality(t, iterations, uint64(100))
	test.ExpectEquality(t, renders, uint64(1))
}

func TestBudgetLargerThanElapsed(t *testing.T) {
	src := &ticks{v: 5}
	pcr := pacer.NewPacer(src, 4)
	pcr.Start()

	var r record
	src.v = 7
	test.ExpectEquality(t, pcr.Pace(r.iter), 2)
	test.ExpectEquality(t, r[0], true)
	test.ExpectEquality(t, r[1], true)
}

func TestNegativeBudget(t *testing.T) {
	pcr := pacer.NewPacer(&ticks{}, -3)
	test.ExpectEquality(t, pcr.Budget(), 0)
}

func TestHugeBudget(t *testing.T) {
	src := &ticks{v: 10}
	pcr := pacer.NewPacer(src, math.MaxInt)
	test.ExpectEquality(t, pcr.Budget(), pacer.MaxBudget)

	pcr.SetBudget(math.MaxInt - 1)
	test.ExpectEquality(t, pcr.Budget(), pacer.MaxBudget)
	pcr.Start()

	var r record
	src.v = 13
	test.ExpectEquality(t, pcr.Pace(r.iter), 3)
	test.DemandEquality(t, len(r), 3)
	for i := range r {
		test.ExpectEquality(t, r[i], true, i)
	}

	_, renders := pcr.Stats()
	test.ExpectEquality(t, renders, uint64(3))
}

func TestWrap(t *testing.T) {
	src := &ticks{v: 0xfffffffe}
	pcr := pacer.NewPacer(src, 0)
	pcr.Start()

	var r record
	src.v = 1
	test.ExpectEquality(t, pcr.Pace(r.iter), 3)
	test.ExpectEquality(t, r[2], true)
}

func TestStop(t *testing.T) {
	src := &ticks{v: 0}
	pcr := pacer.NewPacer(src, 0)
	pcr.Start()
	pcr.Stop()

	var r record
	src.v = 50
	test.ExpectEquality(t, pcr.Pace(r.iter), 0)
	src.v = 51
	test.ExpectEquality(t, pcr.Pace(r.iter), 1)
}

func TestPeriod(t *testing.T) {
	p, err := pacer.Period(30)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, pacer.NTSCPeriod)

	p, err = pacer.Period(25)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, pacer.PALPeriod)

	_, err = pacer.Period(60)
	test.ExpectFailure(t, err)
}

func TestTimer(t *testing.T) {
	tmr := pacer.NewTimer(time.Millisecond)

	deadline := time.Now().Add(5 * time.Second)
	for tmr.Tick() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	test.ExpectEquality(t, tmr.Tick() >= 3, true)

	tmr.Stop()
	v := tmr.Tick()
	time.Sleep(5 * time.Millisecond)
	test.ExpectEquality(t, tmr.Tick(), v)

	// stopping twice is fine
	tmr.Stop()
}
