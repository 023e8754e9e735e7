package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/djherbis/atime"
	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/jsi"
	"github.com/tdewolff/parse/v2/buffer"
)

// Version is the current jsi version.
var Version = "built from source"

var (
	quiet              bool
	verbose            int
	version            bool
	watch              bool
	preserve           []string
	preserveMode       bool
	preserveOwnership  bool
	preserveTimestamps bool
	compiler           jsi.Compiler
)

// Task is a compile task.
type Task struct {
	src string
	dst string
}

// Loggers.
var (
	Error   = log.New(io.Discard, "", 0)
	Warning = log.New(io.Discard, "", 0)
	Info    = log.New(io.Discard, "", 0)
)

func main() {
	// os.Exit doesn't execute pending defer calls, this is fixed by encapsulating run()
	os.Exit(run())
}

func run() int {
	var input, output string
	var rest []string

	f := argp.New("jsi compiles jsi source to minified JavaScript")
	f.AddArg(&input, "input_file", "Input file")
	f.AddArg(&output, "output_file", "Output file")
	f.AddRest(&rest, "rest", "")
	f.AddOpt(&quiet, "q", "quiet", "Quiet mode to suppress all output")
	f.AddOpt(argp.Count{I: &verbose}, "v", "verbose", "Verbose mode, set twice for more verbosity")
	f.AddOpt(&watch, "w", "watch", "Watch the input file and compile upon changes")
	f.AddOpt(&preserve, "p", "preserve", "Preserve options (mode, ownership, timestamps, all)")
	f.AddOpt(&compiler.KeepComments, "", "keep-comments", "Preserve all comments")
	f.AddOpt(&version, "", "version", "Version")
	f.Parse()

	if version {
		if !quiet {
			fmt.Printf("jsi %s\n", Version)
		}
		return 0
	}

	if !quiet {
		if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			color.NoColor = true
		}
		Error = log.New(os.Stderr, color.New(color.FgRed, color.Bold).Sprint("ERROR: "), 0)
		if 0 < verbose {
			Warning = log.New(os.Stderr, color.YellowString("WARNING: "), 0)
		}
		if 1 < verbose {
			Info = log.New(os.Stderr, "INFO: ", 0)
		}
	}

	if err := checkArgs(input, output, rest); err != nil {
		Error.Println(err)
		return 1
	}

	for _, option := range preserve {
		switch option {
		case "all":
			preserveMode = true
			preserveOwnership = true
			preserveTimestamps = true
		case "mode":
			preserveMode = true
		case "ownership":
			preserveOwnership = true
		case "timestamps":
			preserveTimestamps = true
		default:
			Error.Println("unknown preserve option", option)
			return 1
		}
	}
	if preserveOwnership && !supportsGetOwnership {
		Warning.Println(fmt.Errorf("preserve ownership not supported on platform"))
	}

	task := Task{input, output}
	if err := compile(task, 1); err != nil {
		Error.Println(err)
		return 1
	}
	if !watch {
		return 0
	}

	watcher, err := NewWatcher(input)
	if err != nil {
		Error.Println(err)
		return 1
	}
	defer watcher.Close()
	changes := watcher.Run()
	Info.Println("watching", input)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	for changes != nil {
		select {
		case <-c:
			watcher.Close()
		case _, ok := <-changes:
			if !ok {
				changes = nil
				break
			}
			// keep watching after a failed compile
			if err := compile(task, 5); err != nil {
				Error.Println(err)
			}
		}
	}
	return 0
}

// checkArgs requires exactly the two positional arguments.
func checkArgs(input, output string, rest []string) error {
	if input == "" || output == "" {
		return fmt.Errorf("must specify input_file and output_file")
	} else if len(rest) != 0 {
		return fmt.Errorf("too many arguments: %v", strings.Join(rest, " "))
	}
	return nil
}

// compile deletes an existing output file and then compiles the input into it.
// Input reads are tried up to attempts times.
func compile(t Task, attempts int) error {
	if err := removeOutput(t.dst); err != nil {
		return err
	}

	b, err := readInput(t.src, attempts)
	if err != nil {
		return err
	}

	startTime := time.Now()
	w := buffer.NewWriter(make([]byte, 0, len(b)))
	if err := compiler.Compile(w, buffer.NewReader(b)); err != nil {
		return fmt.Errorf("%w %q: %v", ErrCompile, t.src, err)
	}
	dur := time.Since(startTime)

	if err := writeOutput(t.dst, w.Bytes()); err != nil {
		return err
	}
	preserveAttributes(t.src, t.dst)

	if !quiet && 0 < verbose {
		rLen, wLen := len(b), w.Len()
		speed := "Inf MB"
		if 0 < dur {
			speed = humanize.Bytes(uint64(float64(rLen) / dur.Seconds()))
		}
		ratio := 1.0
		if 0 < rLen {
			ratio = float64(wLen) / float64(rLen)
		}
		fmt.Printf("(%9v, %6v, %6v, %5.1f%%, %6v/s) - %v to %v\n", dur, humanize.Bytes(uint64(rLen)), humanize.Bytes(uint64(wLen)), ratio*100, speed, t.src, t.dst)
	}
	Info.Println("compile", t.src, "to", t.dst)
	return nil
}

func preserveAttributes(src, dst string) {
	if !preserveMode && !preserveOwnership && !preserveTimestamps {
		return
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		Warning.Println(err)
		return
	}

	if preserveMode {
		if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
			Warning.Println(err)
		}
	}
	if preserveOwnership {
		if uid, gid, ok := getOwnership(srcInfo); ok {
			if err := os.Chown(dst, uid, gid); err != nil {
				Warning.Println(err)
			}
		}
	}
	if preserveTimestamps {
		if err := os.Chtimes(dst, atime.Get(srcInfo), srcInfo.ModTime()); err != nil {
			Warning.Println(err)
		}
	}
}
