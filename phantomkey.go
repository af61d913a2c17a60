// This file is part of PhantomKey.
//
// PhantomKey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PhantomKey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PhantomKey.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/tebeka/atexit"

	"github.com/phantomkey/phantomkey/compiler"
	"github.com/phantomkey/phantomkey/hid"
	"github.com/phantomkey/phantomkey/listing"
	"github.com/phantomkey/phantomkey/logger"
	"github.com/phantomkey/phantomkey/modalflag"
	"github.com/phantomkey/phantomkey/performance"
	"github.com/phantomkey/phantomkey/prefs"
	"github.com/phantomkey/phantomkey/script"
	"github.com/phantomkey/phantomkey/version"
)

// exit status values. invocation errors and script errors are not
// distinguished from success. only a failure to read or write a file is
const (
	exitOK     = 0
	exitFailed = 1
)

const (
	usageCompile = "usage: phantomkey <input_script.pk> <output_script.bin>"
	usageCheck   = "usage: phantomkey CHECK <input_script.pk>"
	usageList    = "usage: phantomkey LIST <input_script.pk>"
	usageVersion = "usage: phantomkey VERSION [-revision]"
)

// usageError is returned by a mode when the command line cannot be used. the
// usage string is printed
type usageError struct {
	usage  string
	detail error
}

func (e usageError) Error() string {
	if e.detail != nil {
		return e.detail.Error()
	}
	return e.usage
}

// stageError is returned when the script cannot be compiled
type stageError struct {
	stage string
	err   error
}

func (e stageError) Error() string {
	return fmt.Sprintf("%s error: %v", e.stage, e.err)
}

func (e stageError) Unwrap() error {
	return e.err
}

// driver runs a single invocation of the program
type driver struct {
	stdout io.Writer
	stderr io.Writer

	// destination for encoder diagnostics
	log *logger.Logger

	// log entries are being echoed as they are created
	echo bool
}

func main() {
	drv := &driver{
		stdout: os.Stdout,
		stderr: os.Stderr,
		log:    logger.Central(),
	}
	atexit.Register(drv.flushLog)
	atexit.Exit(drv.launch(os.Args[1:]))
}

// flushLog writes any log entries that have not already been echoed
func (drv *driver) flushLog() {
	if !drv.echo {
		drv.log.Write(drv.stderr)
	}
}

// launch processes the command line and returns the exit status
func (drv *driver) launch(args []string) int {
	md := &modalflag.Modes{Output: drv.stdout}
	md.NewArgs(args)
	md.AddSubModes("COMPILE", "CHECK", "LIST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		err = usageError{usage: usageCompile, detail: err}
	default:
		switch md.Mode() {
		case "COMPILE":
			err = drv.compile(md)
		case "CHECK":
			err = drv.check(md)
		case "LIST":
			err = drv.list(md)
		case "VERSION":
			err = drv.version(md)
		}
	}

	if err == nil {
		return exitOK
	}

	var usage usageError
	if errors.As(err, &usage) {
		if usage.detail != nil {
			fmt.Fprintf(drv.stderr, "* %v\n", usage.detail)
		}
		fmt.Fprintln(drv.stdout, usage.usage)
		return exitOK
	}

	var stage stageError
	if errors.As(err, &stage) {
		fmt.Fprintln(drv.stderr, stage.Error())
		return exitOK
	}

	fmt.Fprintf(drv.stderr, "* error in %s mode: %v\n", md, err)
	return exitFailed
}

// options common to the modes that read a script
type common struct {
	prefs *string
	log   *bool
}

func addCommon(md *modalflag.Modes) common {
	return common{
		prefs: md.AddString("prefs", "", "preferences (eg. \"hid.warnings::false\")"),
		log:   md.AddBool("log", false, "echo log entries to stderr as they are created"),
	}
}

// apply the common options. the -log flag overrides the log.echo preference
func (drv *driver) applyCommon(md *modalflag.Modes, c common, usage string) (*prefs.Preferences, error) {
	pr := prefs.NewPreferences()
	if err := pr.ApplyCommandLine(*c.prefs); err != nil {
		return nil, usageError{usage: usage, detail: err}
	}

	if md.IsSet("log") {
		pr.LogEcho.Set(*c.log)
	}

	if pr.LogEcho.Get().(bool) {
		drv.log.SetEcho(drv.stderr)
		drv.echo = true
	}

	return pr, nil
}

// sink returns the diagnostic sink for the encoder. nil if warnings have been
// turned off
func (drv *driver) sink(pr *prefs.Preferences) hid.Logger {
	if !pr.HIDWarnings.Get().(bool) {
		return nil
	}
	return drv.log
}

// load reads, tokenises and parses the script file
func load(filename string) (compiler.Program, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return compiler.Program{}, err
	}

	if !utf8.Valid(data) {
		return compiler.Program{}, fmt.Errorf("%s: not a valid UTF-8 text file", filename)
	}

	prog, err := compiler.Parse(string(data))
	if err != nil {
		var lex script.LexError
		if errors.As(err, &lex) {
			return compiler.Program{}, stageError{stage: "lexer", err: err}
		}
		return compiler.Program{}, stageError{stage: "parser", err: err}
	}

	return prog, nil
}

func (drv *driver) compile(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(usageCompile)

	c := addCommon(md)
	profile := md.AddString("profile", "none", "create profiles of the compilation: none, cpu, mem, all")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		if err != nil {
			return usageError{usage: usageCompile, detail: err}
		}
		return nil
	}

	if len(md.RemainingArgs()) != 2 {
		return usageError{usage: usageCompile}
	}

	pr, err := drv.applyCommon(md, c, usageCompile)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return usageError{usage: usageCompile, detail: err}
	}

	input := md.GetArg(0)
	output := md.GetArg(1)

	return performance.RunProfiler(prf, "compile", func() error {
		prog, err := load(input)
		if err != nil {
			return err
		}

		data := compiler.Compile(prog.Instructions, drv.sink(pr))

		err = os.WriteFile(output, data, 0o644)
		if err != nil {
			return err
		}

		fmt.Fprintf(drv.stdout, "successfully compiled to: %s\n", output)
		return nil
	})
}

func (drv *driver) check(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(usageCheck)

	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		if err != nil {
			return usageError{usage: usageCheck, detail: err}
		}
		return nil
	}

	if len(md.RemainingArgs()) != 1 {
		return usageError{usage: usageCheck}
	}

	pr, err := drv.applyCommon(md, c, usageCheck)
	if err != nil {
		return err
	}

	prog, err := load(md.GetArg(0))
	if err != nil {
		return err
	}

	// encoding the program finds any untypeable characters
	_ = compiler.Compile(prog.Instructions, drv.sink(pr))

	fmt.Fprintf(drv.stdout, "%d instructions ok\n", len(prog.Instructions))
	return nil
}

func (drv *driver) list(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp(usageList)

	c := addCommon(md)
	bytecode := md.AddBool("bytecode", true, "show the report bytes for each instruction")
	graph := md.AddString("memviz", "", "write a graphviz document of the parsed program to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		if err != nil {
			return usageError{usage: usageList, detail: err}
		}
		return nil
	}

	if len(md.RemainingArgs()) != 1 {
		return usageError{usage: usageList}
	}

	pr, err := drv.applyCommon(md, c, usageList)
	if err != nil {
		return err
	}

	if md.IsSet("bytecode") {
		pr.ListingBytecode.Set(*bytecode)
	}

	input := md.GetArg(0)
	prog, err := load(input)
	if err != nil {
		return err
	}

	err = listing.Write(drv.stdout, prog, listing.WriteAttr{
		ByteCode: pr.ListingBytecode.Get().(bool),
		Title:    input,
	})
	if err != nil {
		return err
	}

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return err
		}
		defer f.Close()
		listing.Graph(f, prog)
	}

	return nil
}

func (drv *driver) version(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		if err != nil {
			return usageError{usage: usageVersion, detail: err}
		}
		return nil
	}

	v, r, _ := version.Version()
	fmt.Fprintf(drv.stdout, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(drv.stdout, r)
	}

	return nil
}
