// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

//Package fileutil contains small file helpers shared by the provisioning
//flow: header sniffing, config file reading, waiting on files written by
//other processes.
package fileutil

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/log"
)

var (
	xzId  = [6]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00} // fd 37 7a 58 5a 00 -> xz archive
	zipId = [4]byte{0x50, 0x4b, 0x03, 0x04}             // PK.. -> zip archive
)

//return n bytes from beginning of file
func ReadHeader(fname string, n int64) (head []byte, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return
	}
	defer f.Close()
	head, err = io.ReadAll(io.LimitReader(f, n))
	if int64(len(head)) < n {
		return nil, io.ErrUnexpectedEOF
	}
	return
}

//checks for XZ header
func IsXZ(fname string) bool {
	head, err := ReadHeader(fname, int64(len(xzId)))
	if err != nil {
		log.Logf("failed to read head bytes from %s: %s", fname, err)
		return false
	}
	return bytes.Equal(head, xzId[:])
}

//checks for zip header
func IsZip(fname string) bool {
	head, err := ReadHeader(fname, int64(len(zipId)))
	if err != nil {
		log.Logf("failed to read head bytes from %s: %s", fname, err)
		return false
	}
	return bytes.Equal(head, zipId[:])
}

// WaitFor waits for a file to appear or times out. Returns true if file appears,
// false otherwise. Sleeps .1s between checks.
func WaitFor(path string, timeout time.Duration) (found bool) {
	stop := make(chan struct{})
	go func() {
		time.Sleep(timeout)
		close(stop)
	}()
	return WaitForChan(path, stop)
}

// WaitForChan is like WaitFor, but returns no later than when stop chan is closed
func WaitForChan(path string, stop chan struct{}) (found bool) {
	for {
		select {
		case <-stop:
			return
		case <-time.After(100 * time.Millisecond):
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			found = true
			break
		}
	}
	return
}

// ReadConfigLines reads a config file at the given path. Whitespace is
// stripped, as are comments (anything between an unquoted # and \n; a #
// inside a quoted value is data). Individual lines are returned, up to
// maxLines.
func ReadConfigLines(path string, maxLines int) ([]string, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		l := stripComment(strings.TrimSpace(scanner.Text()))
		if len(l) == 0 {
			continue
		}
		lines = append(lines, l)
		if len(lines) == maxLines {
			log.Logf("ReadConfigLines: max lines (%d) read from %s", maxLines, path)
			break
		}
	}
	err = scanner.Err()
	if err != nil {
		return nil, err
	}
	return lines, nil
}

//drop everything from the first # onward, unless the # is inside quotes
func stripComment(l string) string {
	var quote byte
	for i := 0; i < len(l); i++ {
		c := l[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return strings.TrimSpace(l[:i])
		}
	}
	return l
}

// ShowProgress periodically logs the size of the file at path, until done
// is closed. Useful for long downloads.
func ShowProgress(done chan struct{}, verb, path string) {
	tick := time.NewTicker(5 * time.Second)
	defer tick.Stop()
	for {
		select {
		case <-done:
			return
		case <-tick.C:
		}
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		log.Msgf("%s %s: %d KiB", verb, path, fi.Size()/1024)
	}
}
