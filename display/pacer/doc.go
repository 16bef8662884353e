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

// Package pacer converts a free running hardware tick into game logic
// iterations. The host calls Pace() once per pass of its main loop. Pace()
// runs one iteration for every tick that has elapsed since the previous call.
// Only the final iterations are flagged for rendering. The number of skipped
// renders is bounded by the frameskip budget.
//
// Pace() never sleeps. If no ticks have elapsed it returns immediately
// without running any iterations.
package pacer
