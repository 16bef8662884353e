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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/jetsetilly/legacyvideo/display"
	"github.com/jetsetilly/legacyvideo/display/pacer"
	"github.com/jetsetilly/legacyvideo/display/platform"
	"github.com/jetsetilly/legacyvideo/logger"
	"github.com/jetsetilly/legacyvideo/modalflag"
	"github.com/jetsetilly/legacyvideo/performance"
	"github.com/jetsetilly/legacyvideo/prefs"
	"github.com/jetsetilly/legacyvideo/statsview"
	"github.com/jetsetilly/legacyvideo/testcard"
	"github.com/jetsetilly/legacyvideo/version"
	"github.com/jetsetilly/legacyvideo/viewer"
	"github.com/jetsetilly/legacyvideo/viewer/digest"
	"github.com/jetsetilly/legacyvideo/viewer/glview"
	"github.com/jetsetilly/legacyvideo/viewer/sdlview"
	"github.com/jetsetilly/legacyvideo/viewer/termview"
)

// SDL and OpenGL calls must all be made from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DIGEST", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DIGEST":
		err = digestMode(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// displayFlags are the flags shared by every mode that activates a display.
type displayFlags struct {
	mode       *string
	dither     *bool
	native     *bool
	frameskip  *int
	ditherBits *int
	gamma      *float64
	tickRate   *int
	log        *bool
}

func addDisplayFlags(md *modalflag.Modes) displayFlags {
	return displayFlags{
		mode:       md.AddString("mode", "", "video mode: Mode13h, ModeX, VESA8, VESA15, VESA16, VESA24, VESA32, Hercules"),
		dither:     md.AddBool("dither", false, "dither colours in palettised modes"),
		native:     md.AddBool("native", false, "double resolution with 2x2 pixel replication (VESA modes only)"),
		frameskip:  md.AddInt("frameskip", 1, "number of renders allowed while catching up"),
		ditherBits: md.AddInt("ditherbits", 6, "dithering strength (1 to 6)"),
		gamma:      md.AddFloat64("gamma", 1.5, "palette gamma"),
		tickRate:   md.AddInt("tickrate", 30, "hardware tick rate in hertz (25 or 30)"),
		log:        md.AddBool("log", false, "echo log to stdout"),
	}
}

// map of flag names to preference keys.
var flagPrefs = map[string]string{
	"mode":       "display.mode",
	"dither":     "display.dither",
	"native":     "display.native",
	"frameskip":  "display.frameskip",
	"ditherbits": "display.ditherbits",
	"gamma":      "display.palettegamma",
	"tickrate":   "display.tickrate",
}

// preferences loads the display preferences with any display flags that were
// set on the command line taking priority.
func preferences(md *modalflag.Modes, flgs displayFlags) (*display.Preferences, error) {
	if *flgs.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	var cmdline []string
	md.Visit(func(name string, value string) {
		if key, ok := flagPrefs[name]; ok {
			cmdline = append(cmdline, fmt.Sprintf("%s::%s", key, value))
		}
	})
	prefs.PushCommandLineStack(strings.Join(cmdline, ";"))
	defer prefs.PopCommandLineStack()

	return display.NewPreferences()
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addDisplayFlags(md)
	view := md.AddString("viewer", "sdl", "viewer: sdl, gl, term")
	scale := md.AddInt("scale", 1, "window scaling (sdl and gl viewers)")
	columns := md.AddInt("columns", 80, "number of columns (term viewer)")
	duration := md.AddDuration("duration", 0, "run for a fixed duration. zero runs until quit")
	savePrefs := md.AddBool("saveprefs", false, "save display preferences")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := preferences(md, flgs)
	if err != nil {
		return err
	}
	if *savePrefs {
		if err := pref.Save(); err != nil {
			return err
		}
	}

	cfg, err := pref.Config()
	if err != nil {
		return err
	}
	period, err := pref.Period()
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	tmr := pacer.NewTimer(period)
	defer tmr.Stop()
	mem := platform.NewMemory(tmr)

	var vw viewer.Viewer
	switch strings.ToLower(*view) {
	case "sdl":
		vw, err = sdlview.NewViewer(mem, *scale)
	case "gl":
		vw, err = glview.NewViewer(mem, *scale)
	case "term":
		vw, err = termview.NewViewer(mem, *columns)
	default:
		err = fmt.Errorf("unknown viewer: %s", *view)
	}
	if err != nil {
		return err
	}
	defer vw.Destroy()

	bck := display.NewBackend(vw)
	err = bck.Initialise(cfg)
	if err != nil {
		return err
	}
	defer bck.Shutdown()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var end <-chan time.Time
	if *duration > 0 {
		end = time.After(*duration)
	}

	var frameNum int
	for vw.Service() {
		select {
		case <-intChan:
			return nil
		case <-end:
			return nil
		default:
		}

		n := bck.Pace(func(render bool) {
			frameNum++
			if render && bck.StartFrame() {
				testcard.Draw(bck.Active().Frame(), frameNum)
				bck.PresentFrame()
			}
		})

		if n == 0 {
			time.Sleep(time.Millisecond)
		}
	}

	return nil
}

func digestMode(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addDisplayFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to present")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := preferences(md, flgs)
	if err != nil {
		return err
	}
	cfg, err := pref.Config()
	if err != nil {
		return err
	}

	mem := platform.NewMemory(nil)
	dig := digest.NewVideo(mem)

	bck := display.NewBackend(dig)
	err = bck.Initialise(cfg)
	if err != nil {
		return err
	}
	defer bck.Shutdown()

	// one tick per frame. every tick renders
	var frameNum int
	for dig.Frames() < *frames {
		mem.Advance(1)
		bck.Pace(func(render bool) {
			frameNum++
			if render {
				testcard.Draw(bck.Active().Frame(), frameNum)
				bck.PresentFrame()
			}
		})
	}

	fmt.Println(dig.Hash())

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addDisplayFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	uncapped := md.AddBool("uncapped", false, "present frames as quickly as possible")
	profile := md.AddString("profile", "none", "create profile for emulator: CPU, MEM, TRACE, ALL (comma separated)")
	dump := md.AddString("dump", "", "write a graphviz description of the active mode to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := preferences(md, flgs)
	if err != nil {
		return err
	}
	cfg, err := pref.Config()
	if err != nil {
		return err
	}
	period, err := pref.Period()
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *dump != "" {
		f, err := os.Create(*dump)
		if err != nil {
			return err
		}
		defer f.Close()

		m, err := display.Activate(platform.NewMemory(nil), cfg)
		if err != nil {
			return err
		}
		performance.DumpMode(f, m)
		m.Close()
	}

	_, err = performance.Check(os.Stdout, prf, cfg, period, *uncapped, *duration)
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Println(r)
	} else {
		fmt.Printf("%s %s\n", version.ApplicationName, v)
	}

	return nil
}
