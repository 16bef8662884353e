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
	"sync"
	"sync/atomic"
	"time"
)

// Tick periods of the original timer interrupt.
const (
	NTSCPeriod = 33 * time.Millisecond
	PALPeriod  = 40 * time.Millisecond
)

// Period returns the tick period for a rate in hertz. Only 25Hz and 30Hz are
// supported.
func Period(hz int) (time.Duration, error) {
	switch hz {
	case 30:
		return NTSCPeriod, nil
	case 25:
		return PALPeriod, nil
	}
	return 0, fmt.Errorf("unsupported tick rate: %dHz", hz)
}

// Timer is a TickSource that increments at a fixed period.
type Timer struct {
	tick atomic.Uint32

	quit chan struct{}
	done chan struct{}
	stop sync.Once
}

// NewTimer creates and starts a new Timer.
func NewTimer(period time.Duration) *Timer {
	tmr := &Timer{
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(tmr.done)

		t := time.NewTicker(period)
		defer t.Stop()

		for {
			select {
			case <-tmr.quit:
				return
			case <-t.C:
				tmr.tick.Add(1)
			}
		}
	}()

	return tmr
}

// Tick implements the TickSource interface.
func (tmr *Timer) Tick() uint32 {
	return tmr.tick.Load()
}

// Stop the timer. The tick value no longer changes once Stop() has returned.
// Safe to call more than once.
func (tmr *Timer) Stop() {
	tmr.stop.Do(func() {
		close(tmr.quit)
	})
	<-tmr.done
}
