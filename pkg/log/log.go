// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Package log implements a stack of loggers. Entries pass from the top of
// the stack to the bottom, with each logger free to display, persist, or
// forward them. A memLog at the bottom of the stack retains entries logged
// before any real sink (console, file, remote) has been added; once such a
// sink exists, FlushMemLog discards the buffer.
package log

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/log/flags"
)

// A single log event. Msg is a format string when Args is non-empty.
type LogEntry struct {
	Time  time.Time
	Msg   string
	Args  []interface{}
	Flags flags.Flag
}

func (e LogEntry) String() string {
	return "@" + e.Time.Format(TimestampLayout) + ": " + fmt.Sprintf(e.Msg, e.Args...)
}

// StackableLogger is implemented by everything that can sit in the log
// stack. AddEntry must pass the entry on to Next(), if any.
type StackableLogger interface {
	AddEntry(e LogEntry)
	//sets the next logger in the stack; panics if already set and sl non-nil
	ForwardTo(sl StackableLogger)
	//identifies this type of logger, for FindInStack et al
	Ident() string
	Next() StackableLogger
	//flush/close resources before removal from stack
	Finalize()
}

var (
	logStackMtx sync.Mutex
	logStack    StackableLogger = &memLog{}
	prefix      string
)

const TimestampLayout = "2006-01-02T15:04:05.000"

// Timestamp returns the current time in the format used throughout the
// logs, suitable for use in file names and ids.
func Timestamp() string { return time.Now().Format(TimestampLayout) }

// SetPrefix sets a string identifying the running process, reported with
// remote log entries and used in log file names.
func SetPrefix(p string) {
	logStackMtx.Lock()
	defer logStackMtx.Unlock()
	prefix = p
}

func GetPrefix() string {
	logStackMtx.Lock()
	defer logStackMtx.Unlock()
	return prefix
}

// AddLogger inserts sl into the stack. If atEnd, sl goes at the bottom of
// the stack, otherwise at the top. Returns an error if a logger with the
// same ident is already present.
func AddLogger(sl StackableLogger, atEnd bool) error {
	logStackMtx.Lock()
	defer logStackMtx.Unlock()
	if findInStack(sl.Ident()) != nil {
		return fmt.Errorf("logger %s already in stack", sl.Ident())
	}
	if logStack == nil {
		logStack = sl
		return nil
	}
	if !atEnd {
		sl.ForwardTo(logStack)
		logStack = sl
		return nil
	}
	last := logStack
	for last.Next() != nil {
		last = last.Next()
	}
	last.ForwardTo(sl)
	return nil
}

// RemoveLogger removes the logger with the given ident from the stack,
// finalizing it. No-op if absent.
func RemoveLogger(ident string) {
	logStackMtx.Lock()
	defer logStackMtx.Unlock()
	var prev StackableLogger
	for sl := logStack; sl != nil; sl = sl.Next() {
		if sl.Ident() == ident {
			next := sl.Next()
			//detach before finalizing so Finalize can't recurse into the stack
			sl.ForwardTo(nil)
			if prev == nil {
				logStack = next
			} else {
				prev.ForwardTo(nil)
				prev.ForwardTo(next)
			}
			finalizeOne(sl)
			return
		}
		prev = sl
	}
}

// finalizeOne calls Finalize on a detached logger. Detached, so Finalize's
// habit of forwarding down the stack is harmless.
func finalizeOne(sl StackableLogger) { sl.Finalize() }

// FindInStack returns the logger with the given ident, or nil. Caller must
// hold no locks; for use by log packages, see findInStack.
func FindInStack(ident string) StackableLogger {
	logStackMtx.Lock()
	defer logStackMtx.Unlock()
	return findInStack(ident)
}

func findInStack(ident string) StackableLogger {
	for sl := logStack; sl != nil; sl = sl.Next() {
		if sl.Ident() == ident {
			return sl
		}
	}
	return nil
}

// InStack returns true if a logger with the given ident is in the stack.
func InStack(ident string) bool { return FindInStack(ident) != nil }

// NewLogStack replaces the entire stack with sl, finalizing the old stack.
// Used by testlog.
func NewLogStack(sl StackableLogger) {
	logStackMtx.Lock()
	defer logStackMtx.Unlock()
	if logStack != nil {
		logStack.Finalize()
	}
	logStack = sl
}

// DefaultLogStack resets the stack to a lone memLog.
func DefaultLogStack() { NewLogStack(&memLog{}) }

func addEntry(e LogEntry) {
	if traceHelper != nil {
		traceHelper.Helper()
	}
	logStackMtx.Lock()
	defer logStackMtx.Unlock()
	if logStack == nil {
		logStack = &memLog{}
	}
	logStack.AddEntry(e)
}

//log a preformatted string, not shown to end user
func Log(msg string) {
	addEntry(LogEntry{Time: time.Now(), Msg: "%s", Args: []interface{}{msg}})
}

//like fmt.Println, but to the log stack
func Logln(va ...interface{}) {
	addEntry(LogEntry{Time: time.Now(), Msg: "%s", Args: []interface{}{fmt.Sprintln(va...)}})
}

//log a formatted message, not shown to end user
func Logf(f string, va ...interface{}) {
	addEntry(LogEntry{Time: time.Now(), Msg: f, Args: va})
}

//log a formatted message with explicit flags, e.g. to keep a message
//about a broken remote logger off the wire
func FlaggedLogf(fl flags.Flag, f string, va ...interface{}) {
	addEntry(LogEntry{Time: time.Now(), Msg: f, Args: va, Flags: fl})
}

//log a preformatted message that is also suitable for the end user
func Msg(msg string) {
	addEntry(LogEntry{Time: time.Now(), Msg: "%s", Args: []interface{}{msg}, Flags: flags.EndUser})
}

//log a formatted message that is also suitable for the end user
func Msgf(f string, va ...interface{}) {
	addEntry(LogEntry{Time: time.Now(), Msg: f, Args: va, Flags: flags.EndUser})
}

// FailAction determines what happens on Fatalf. Pre (if set) runs before
// the entry is logged; Terminator runs after, and must not return in
// production use.
type FailAction struct {
	MsgPfx     string
	Pre        func(f string, va ...interface{})
	Terminator func()
}

// DefaultFatal exits the process with status 1.
var DefaultFatal = FailAction{
	MsgPfx:     "FATAL: ",
	Terminator: func() { os.Exit(1) },
}

var (
	fatalMtx    sync.Mutex
	fatalAction = DefaultFatal
)

// SetFatalAction overrides what Fatalf does after logging. See FailAction.
func SetFatalAction(fa FailAction) {
	fatalMtx.Lock()
	defer fatalMtx.Unlock()
	fatalAction = fa
}

// Fatalf logs with the Fatal flag, runs the fail action, and does not
// return unless the configured Terminator does (tests).
func Fatalf(f string, va ...interface{}) {
	fatalMtx.Lock()
	fa := fatalAction
	fatalMtx.Unlock()
	if fa.Pre != nil {
		fa.Pre(f, va...)
	}
	addEntry(LogEntry{Time: time.Now(), Msg: fa.MsgPfx + f, Args: va, Flags: flags.Fatal})
	if fa.Terminator != nil {
		fa.Terminator()
	}
}

//testing.TB subset used by TraceHelper
type Helperer interface {
	Helper()
}

var traceHelper Helperer

// TraceHelper marks log package functions as test helpers so failures
// point at the caller. Only useful from tests.
func TraceHelper(h Helperer) { traceHelper = h }
