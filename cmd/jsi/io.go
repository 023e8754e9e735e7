package main

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/matryer/try"
)

// Errors reported for the failed operation, wrapping the cause.
var (
	ErrReadInput    = errors.New("failed to read input file")
	ErrWriteOutput  = errors.New("failed to write output file")
	ErrDeleteOutput = errors.New("failed to delete output file")
	ErrCompile      = errors.New("compilation failed")
)

// IsDir returns true if the passed string looks like it specifies a directory, false otherwise.
func IsDir(dir string) bool {
	if 0 < len(dir) && dir[len(dir)-1] == os.PathSeparator {
		return true
	}
	info, err := os.Lstat(dir)
	return err == nil && info.Mode().IsDir() && info.Mode()&os.ModeSymlink == 0
}

// removeOutput deletes the output file if it exists. Directories are never removed.
func removeOutput(output string) error {
	if _, err := os.Stat(output); err != nil {
		return nil
	} else if IsDir(output) {
		return fmt.Errorf("%w %q: is a directory", ErrDeleteOutput, output)
	} else if err := os.Remove(output); err != nil {
		return fmt.Errorf("%w %q: %v", ErrDeleteOutput, output, err)
	}
	return nil
}

// readInput reads the UTF-8 encoded input file, trying up to attempts times.
func readInput(input string, attempts int) ([]byte, error) {
	var b []byte
	err := try.Do(func(attempt int) (bool, error) {
		var ferr error
		b, ferr = os.ReadFile(input)
		if ferr != nil && attempt < attempts {
			time.Sleep(50 * time.Millisecond) // file may be halfway replaced by an editor
		}
		return attempt < attempts, ferr
	})
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrReadInput, input, err)
	} else if !utf8.Valid(b) {
		return nil, fmt.Errorf("%w %q: invalid UTF-8", ErrReadInput, input)
	}
	return b, nil
}

func writeOutput(output string, b []byte) error {
	if err := os.WriteFile(output, b, 0666); err != nil {
		return fmt.Errorf("%w %q: %v", ErrWriteOutput, output, err)
	}
	return nil
}
