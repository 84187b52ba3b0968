// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package server

import (
	fp "path/filepath"
	"sort"
	"testing"

	"github.com/devetry/internal-iot-embedded/pkg/oss/flog/pb"
)

// Thing names may contain underscores; Ids must return them intact.
func TestDbaseIds(t *testing.T) {
	db := OpenDB(fp.Join(t.TempDir(), "flog.db"))
	defer db.Close()

	things := []string{"office_edge_01", "bench-02"}
	for _, thing := range things {
		err := db.StoreLog(thing, &pb.LogEvents{Evt: []*pb.LogEvent{{
			Thing:     thing,
			EventType: pb.EvtType_LOG,
			Payload:   "hello",
		}}})
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := db.StoreGroup(things[0], "office"); err != nil {
		t.Fatal(err)
	}

	ids := db.Ids()
	sort.Strings(ids)
	want := []string{"bench-02", "office_edge_01"}
	if len(ids) != len(want) {
		t.Fatalf("got ids %q, want %q", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("id %d: got %q, want %q", i, ids[i], want[i])
		}
	}

	g, err := db.RetrieveGroup(things[0])
	if err != nil {
		t.Fatal(err)
	}
	if g != "office" {
		t.Errorf("group: got %q", g)
	}
	evts, err := db.RetrieveLog(things[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(evts.Evt) != 1 || evts.Evt[0].Payload != "hello" {
		t.Errorf("log roundtrip: %v", evts.Evt)
	}
}
