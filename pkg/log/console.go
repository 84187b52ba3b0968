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

	"github.com/devetry/internal-iot-embedded/pkg/log/flags"
)

// Writes entries to stderr. If mask is nonzero, only entries with at least
// one mask bit set are written - i.e. pass flags.EndUser to only show
// messages meant for the end user.
type consoleLog struct {
	mask flags.Flag
	next StackableLogger
}

var _ StackableLogger = (*consoleLog)(nil)

const ConsoleLogIdent = "consoleLog"

// AddConsoleLog adds a stderr logger to the stack. See consoleLog for the
// meaning of mask.
func AddConsoleLog(mask flags.Flag) error {
	return AddLogger(&consoleLog{mask: mask}, false)
}

func (cl *consoleLog) AddEntry(e LogEntry) {
	if cl.mask == flags.NA || e.Flags&cl.mask != 0 {
		fmt.Fprintf(os.Stderr, e.Msg+"\n", e.Args...)
	}
	if cl.next != nil {
		cl.next.AddEntry(e)
	}
}

func (cl *consoleLog) ForwardTo(sl StackableLogger) {
	if cl.next == nil || sl == nil {
		cl.next = sl
	} else {
		panic("next already set")
	}
}

func (cl *consoleLog) Ident() string         { return ConsoleLogIdent }
func (cl *consoleLog) Next() StackableLogger { return cl.next }

func (cl *consoleLog) Finalize() {
	if cl.next != nil {
		cl.next.Finalize()
	}
}
