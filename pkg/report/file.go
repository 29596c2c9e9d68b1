// 19 Oct 2026

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
)

// SnappySuffix is added to the filename of compressed reports.
const SnappySuffix = ".sz"

// FileMode is the permission a committed report gets.
const FileMode os.FileMode = 0o644

// An OutFile is a report that only appears under its real name once it
// is complete. Until Commit, everything goes to a temporary file in the
// same directory. If anything goes wrong, call Abort and the temporary
// file disappears. There is never a half written report with the
// real name.
type OutFile struct {
	fname  string
	tmp    *os.File
	sw     *snappy.Writer // nil unless compressing
	w      io.Writer
	stdout bool
}

// Create starts a report that will be called fname. If compress is set,
// the output is snappy framed and fname gets SnappySuffix. A fname of
// "-" means standard output, which cannot be made atomic.
func Create(fname string, compress bool) (*OutFile, error) {
	of := new(OutFile)
	if fname == "-" {
		of.stdout = true
		of.w = os.Stdout
	} else {
		if compress {
			fname += SnappySuffix
		}
		of.fname = fname
		dir, base := filepath.Split(fname)
		if dir == "" {
			dir = "."
		}
		tmp, err := os.CreateTemp(dir, "."+base+".*")
		if err != nil {
			return nil, fmt.Errorf("output file %v: %w", fname, err)
		}
		of.tmp = tmp
		of.w = tmp
	}
	if compress {
		of.sw = snappy.NewBufferedWriter(of.w)
		of.w = of.sw
	}
	return of, nil
}

// Name returns the name the report will have after Commit.
func (of *OutFile) Name() string {
	if of.stdout {
		return "-"
	}
	return of.fname
}

// Write lets an OutFile be used as an io.Writer.
func (of *OutFile) Write(p []byte) (int, error) { return of.w.Write(p) }

// Commit flushes and closes everything and moves the file into place.
// Any old file of the same name is replaced.
func (of *OutFile) Commit() error {
	if of.sw != nil {
		if err := of.sw.Close(); err != nil {
			of.Abort()
			return fmt.Errorf("compressing %v: %w", of.Name(), err)
		}
	}
	if of.stdout {
		return nil
	}
	// CreateTemp makes 0600 files. Other people should be able to read
	// the report, as with os.Create.
	if err := of.tmp.Chmod(FileMode); err != nil {
		of.Abort()
		return fmt.Errorf("chmod %v: %w", of.fname, err)
	}
	if err := of.tmp.Close(); err != nil {
		os.Remove(of.tmp.Name())
		return fmt.Errorf("closing %v: %w", of.fname, err)
	}
	if err := os.Rename(of.tmp.Name(), of.fname); err != nil {
		os.Remove(of.tmp.Name())
		return fmt.Errorf("renaming to %v: %w", of.fname, err)
	}
	return nil
}

// Abort throws away the temporary file. It is safe to call after
// Commit or more than once.
func (of *OutFile) Abort() {
	if of.stdout || of.tmp == nil {
		return
	}
	of.tmp.Close() // may already be closed
	os.Remove(of.tmp.Name())
}
