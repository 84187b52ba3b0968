// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package log

import (
	"fmt"
	"os"
	fp "path/filepath"

	"github.com/devetry/internal-iot-embedded/pkg/log/flags"
)

// Writes entries to a file in a given dir. File name is derived from the
// log prefix and a timestamp, so a rerun cannot clobber an earlier log.
type fileLog struct {
	f    *os.File
	next StackableLogger
}

var _ StackableLogger = (*fileLog)(nil)

const FileLogIdent = "fileLog"

// AddFileLog creates a log file in dir and adds it to the stack. Entries
// with flags.NotFile set are skipped. Returns the path of the log file.
func AddFileLog(dir string) (path string, err error) {
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return
	}
	name := GetPrefix()
	if name == "" {
		name = fp.Base(os.Args[0])
	}
	path = fp.Join(dir, fmt.Sprintf("%s.%s.log", name, Timestamp()))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return
	}
	fl := &fileLog{f: f}
	err = AddLogger(fl, false)
	if err != nil {
		f.Close()
		return
	}
	//replay anything buffered so far, so the file has the full history
	for _, e := range StoredEntries() {
		fl.write(e)
	}
	return
}

func (fl *fileLog) write(e LogEntry) {
	if e.Flags&flags.NotFile != 0 {
		return
	}
	fmt.Fprintln(fl.f, e.String())
}

func (fl *fileLog) AddEntry(e LogEntry) {
	fl.write(e)
	if fl.next != nil {
		fl.next.AddEntry(e)
	}
}

func (fl *fileLog) ForwardTo(sl StackableLogger) {
	if fl.next == nil || sl == nil {
		fl.next = sl
	} else {
		panic("next already set")
	}
}

func (fl *fileLog) Ident() string         { return FileLogIdent }
func (fl *fileLog) Next() StackableLogger { return fl.next }

func (fl *fileLog) Finalize() {
	if fl.f != nil {
		fl.f.Sync()
		fl.f.Close()
		fl.f = nil
	}
	if fl.next != nil {
		fl.next.Finalize()
	}
}
