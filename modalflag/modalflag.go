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

package modalflag

import (
	"flag"
	"io"
	"strings"
	"time"
)

// the string used to join modes in the Path() string.
const pathSeparator = "/"

// Modes parses a command line in layers. The Output field should be set
// before calling Parse() otherwise help messages will be lost.
type Modes struct {
	Output io.Writer

	// flags for the current layer. replaced on every call to NewMode()
	flags *flag.FlagSet

	// arguments from NewArgs() and the index of the first argument not yet
	// consumed by a previous layer
	args []string
	idx  int

	// sub-modes for the current layer. the first entry is the default
	subModes []string

	// every mode selected so far, in the order they were selected
	path []string

	// free-form text to print after the flag summary on a help request
	extendedHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far.
func (md *Modes) Path() string {
	return strings.Join(md.path, pathSeparator)
}

// NewArgs resets the Modes with a new list of arguments.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode starts a new layer. Flags and sub-modes added after this call apply
// to the next call to Parse().
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.extendedHelp = ""
}

// ExtendedHelp is printed after the regular flag summary when help is
// requested for the current layer.
func (md *Modes) ExtendedHelp(help string) {
	md.extendedHelp = help
}

// AddSubModes for the current layer. The first sub-mode in the list is the
// default mode.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded. if sub-modes were specified then the selected mode
	// is available with Mode()
	ParseContinue ParseResult = iota

	// help was requested and has been written to the Output writer
	ParseHelp

	// parsing failed. the error is returned alongside the ParseResult
	ParseError
)

// Parse the current layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.idx:])
	if err != nil {
		if err == flag.ErrHelp {
			if md.Output != nil {
				hw.help(md.Output, md.Path(), md.subModes, md.extendedHelp)
			}
			return ParseHelp, nil
		}

		// an unrecognised flag is not an error if there are sub-modes. it is
		// assumed to belong to the default mode
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	// skip any flags that were consumed by this layer
	md.idx = len(md.args) - md.flags.NArg()

	mode := md.subModes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			mode = m
			md.idx++
			break
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that were not flags or a selected
// sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the empty
// string if the argument does not exist.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for the current layer.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the current layer.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for the current layer.
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddString flag for the current layer.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for the current layer.
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// Visit calls fn for every flag in the current layer that was set on the
// command line.
func (md *Modes) Visit(fn func(name string, value string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name, f.Value.String())
	})
}
