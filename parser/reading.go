package parser

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// maxLineBytes bounds a single log line. Kernel LOG lines are a few hundred bytes.
const maxLineBytes = 1024 * 1024

// StdinPath selects standard input when given as an input path
const StdinPath = "-"

//lineScanner reads newline delimited lines like bufio.Scanner, but a line
//longer than maxLineBytes is consumed and flagged instead of ending the scan
type lineScanner struct {
	reader  *bufio.Reader
	line    string
	tooLong bool
	err     error
}

//newLineScanner returns a buffered line scanner over the given stream
func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{reader: bufio.NewReaderSize(r, 64*1024)}
}

//Scan advances to the next line. It returns false at the end of the
//stream or on a read error.
func (s *lineScanner) Scan() bool {
	s.line, s.tooLong = "", false
	if s.err != nil {
		return false
	}

	chunk, isPrefix, err := s.reader.ReadLine()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return false
	}
	if !isPrefix {
		s.line = string(chunk)
		return true
	}

	// the line did not fit in the buffer, gather or drain the rest
	buf := append([]byte(nil), chunk...)
	for isPrefix {
		chunk, isPrefix, err = s.reader.ReadLine()
		if err != nil {
			if err != io.EOF {
				s.err = err
				return false
			}
			break
		}
		if s.tooLong {
			continue
		}
		buf = append(buf, chunk...)
		if len(buf) > maxLineBytes {
			s.tooLong = true
			buf = nil
		}
	}
	s.line = string(buf)
	return true
}

//Text returns the current line. It is empty when the line was too long.
func (s *lineScanner) Text() string {
	return s.line
}

//TooLong reports whether the current line exceeded maxLineBytes
func (s *lineScanner) TooLong() bool {
	return s.tooLong
}

//Err returns the first read error, io.EOF is not an error
func (s *lineScanner) Err() error {
	return s.err
}

//openInput opens a path for reading. Gzip compressed files are decompressed
//on the fly. The returned closer releases the file and any helper process.
func openInput(path string) (reader io.Reader, size int64, closer func() error, err error) {
	if path == StdinPath {
		return os.Stdin, -1, func() error { return nil }, nil
	}

	fileHandle, err := os.Open(path)
	if err != nil {
		return nil, 0, nil, err
	}
	closer = fileHandle.Close

	size = -1
	if info, err := fileHandle.Stat(); err == nil && info.Mode().IsRegular() {
		size = info.Size()
	}

	if strings.HasSuffix(path, ".gz") {
		reader, closer, err = newGzipReader(fileHandle)
		if err != nil {
			closer()
			return nil, 0, nil, err
		}
		return reader, size, closer, nil
	}
	return fileHandle, size, closer, nil
}

//newGzipReader returns an un-gzipped byte stream given a gzip compressed byte stream.
//This method tries to use the system's pigz or gzip implementation before relying on
//Golang's gzip package (as it is quite slow). Returns stream to read from, a function to
//close the underlying stream, and any err that may occur when opening the stream.
func newGzipReader(fileHandle io.ReadCloser) (reader io.Reader, closer func() error, err error) {
	// by default just close out the underlying file handle
	// works for built in gzip library and error cases
	closer = fileHandle.Close

	var gzipPath string
	if path, err := exec.LookPath("pigz"); err == nil {
		gzipPath = path
	} else if path, err := exec.LookPath("gzip"); err == nil {
		gzipPath = path
	} else {
		reader, err = gzip.NewReader(fileHandle)
		return reader, closer, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	gzipCommand := exec.CommandContext(ctx, gzipPath, "-d", "-c")
	gzipCommand.Stdin = fileHandle

	pipeR, err := gzipCommand.StdoutPipe()
	if err != nil {
		cancel()
		return reader, fileHandle.Close, err
	}

	var cmdStdErr bytes.Buffer
	gzipCommand.Stderr = &cmdStdErr

	if err := gzipCommand.Start(); err != nil {
		cancel()
		return reader, fileHandle.Close, err
	}

	// reap the subprocess in addition to closing the file descriptor.
	// closing the pipe first unblocks a decompressor that was not fully drained.
	closer = func() error {
		pipeR.Close()
		errProc := gzipCommand.Wait()
		cancel()
		errFile := fileHandle.Close()

		if errProc != nil && cmdStdErr.Len() > 0 {
			errProc = fmt.Errorf("%s: %s", errProc.Error(), cmdStdErr.String())
		}

		if errProc != nil && errFile != nil {
			return fmt.Errorf("%s; %s", errProc.Error(), errFile.Error())
		}
		if errProc != nil {
			return errProc
		}
		return errFile
	}

	return pipeR, closer, nil
}
