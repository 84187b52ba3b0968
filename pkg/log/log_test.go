// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package log

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestEntryString(t *testing.T) {
	e := LogEntry{
		Time: time.Date(2022, 5, 4, 13, 2, 1, 0, time.UTC),
		Msg:  "step %d of %d",
		Args: []interface{}{2, 7},
	}
	want := "@2022-05-04T13:02:01.000: step 2 of 7"
	if e.String() != want {
		t.Errorf("got %q, want %q", e.String(), want)
	}
}

//minimal logger that records entries and forwards them
type recorder struct {
	id      string
	next    StackableLogger
	mu      sync.Mutex
	entries []LogEntry
}

func (r *recorder) AddEntry(e LogEntry) {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
	if r.next != nil {
		r.next.AddEntry(e)
	}
}
func (r *recorder) ForwardTo(sl StackableLogger) {
	if r.next != nil && sl != nil {
		panic("already set")
	}
	r.next = sl
}
func (r *recorder) Ident() string         { return r.id }
func (r *recorder) Next() StackableLogger { return r.next }
func (r *recorder) Finalize()             {}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func TestStack(t *testing.T) {
	defer DefaultLogStack()
	top := &recorder{id: "top"}
	bottom := &recorder{id: "bottom"}
	NewLogStack(bottom)
	if err := AddLogger(top, false); err != nil {
		t.Fatal(err)
	}

	if !InStack("top") || !InStack("bottom") {
		t.Fatal("loggers missing from stack")
	}
	if err := AddLogger(&recorder{id: "top"}, true); err == nil {
		t.Error("want error for duplicate ident")
	}

	Logf("hello %s", "world")
	if top.count() != 1 || bottom.count() != 1 {
		t.Errorf("entry did not traverse stack: top=%d bottom=%d", top.count(), bottom.count())
	}

	RemoveLogger("top")
	if InStack("top") {
		t.Error("top still in stack after removal")
	}
	Log("second")
	if bottom.count() != 2 {
		t.Errorf("want 2 entries at bottom, got %d", bottom.count())
	}
	if top.count() != 1 {
		t.Errorf("removed logger still receiving entries")
	}
	got := bottom.entries[1].String()
	if !strings.HasSuffix(got, "second") {
		t.Errorf("unexpected entry %q", got)
	}
}

func TestPrefix(t *testing.T) {
	defer SetPrefix("")
	SetPrefix("provision")
	if GetPrefix() != "provision" {
		t.Error(GetPrefix())
	}
}

func TestFatalAction(t *testing.T) {
	defer DefaultLogStack()
	defer SetFatalAction(DefaultFatal)
	rec := &recorder{id: "rec"}
	NewLogStack(rec)

	fired := false
	SetFatalAction(FailAction{MsgPfx: "FATAL: ", Terminator: func() { fired = true }})
	Fatalf("no such key %s", "EDGE_USER")
	if !fired {
		t.Error("terminator did not run")
	}
	if rec.count() != 1 {
		t.Fatalf("want 1 entry, got %d", rec.count())
	}
	if !strings.Contains(rec.entries[0].String(), "FATAL: no such key EDGE_USER") {
		t.Errorf("unexpected entry %q", rec.entries[0].String())
	}
}
