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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/dustin/go-humanize"

	"github.com/jetsetilly/legacyvideo/display"
	"github.com/jetsetilly/legacyvideo/display/pacer"
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/logger"
	"github.com/jetsetilly/legacyvideo/testcard"
)

// Result of a Check().
type Result struct {
	Presents   int
	Iterations int
	Bytes      int
	Duration   time.Duration
	FPS        float64
	Accuracy   float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%% [%d iterations, %s/s written]",
		r.FPS, r.Presents, r.Duration.Seconds(), r.Accuracy, r.Iterations,
		humanize.Bytes(uint64(float64(r.Bytes)/max(r.Duration.Seconds(), 0.001))))
}

// number of log entries written after the result of a Check()
const logTail = 5

// Check the performance of the display backend. The test card is presented
// repeatedly for the duration using the supplied Config. If uncapped is true
// frames are presented as quickly as possible. Otherwise the pacer is driven
// by a timer at the given period.
func Check(output io.Writer, profile Profile, cfg display.Config, period time.Duration, uncapped bool, duration time.Duration) (Result, error) {
	var clock platform.Clock
	if !uncapped {
		tmr := pacer.NewTimer(period)
		defer tmr.Stop()
		clock = tmr
	}

	mem := platform.NewMemory(clock)

	m, err := display.Activate(mem, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("performance: %w", err)
	}
	defer m.Close()

	var res Result
	var frameNum int

	runner := func() error {
		start := time.Now()
		end := start.Add(duration)

		for time.Now().Before(end) {
			if uncapped {
				frameNum++
				res.Iterations++
				testcard.Draw(m.Frame(), frameNum)
				m.Present()
				res.Presents++
				continue
			}

			n := m.Pace(func(render bool) {
				frameNum++
				if render {
					testcard.Draw(m.Frame(), frameNum)
				}
			})
			res.Iterations += n
			if n == 0 {
				time.Sleep(time.Millisecond)
				continue
			}
			m.Present()
			res.Presents++
		}

		res.Duration = time.Since(start)
		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return Result{}, err
	}

	res.Bytes = mem.Stats().Bytes
	expected := 0.0
	if !uncapped && period > 0 {
		expected = float64(time.Second) / float64(period)
	}
	res.FPS, res.Accuracy = CalcFPS(res.Presents, res.Duration.Seconds(), expected)

	if output != nil {
		fmt.Fprintln(output, res)
		logger.Tail(output, logTail)
	}

	return res, nil
}

// DumpMode writes a graphviz description of the state of the active mode.
func DumpMode(output io.Writer, m *display.ActiveMode) {
	snapshot := m.Snapshot()
	memviz.Map(output, &snapshot)
}
