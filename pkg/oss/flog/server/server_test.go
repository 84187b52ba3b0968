// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package server

import (
	"fmt"
	"net/http"
	"os"
	fp "path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/common"
	"github.com/devetry/internal-iot-embedded/pkg/common/rkeep"
	"github.com/devetry/internal-iot-embedded/pkg/common/rlog"
	"github.com/devetry/internal-iot-embedded/pkg/log"
	"github.com/devetry/internal-iot-embedded/pkg/log/testlog"
	"github.com/devetry/internal-iot-embedded/pkg/oss/flog"
	"github.com/devetry/internal-iot-embedded/pkg/oss/flog/pb"
)

func TestServer(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	tmpDir := t.TempDir()

	UseMockImpl()

	lSrvr := rlog.MockServer(t, tmpDir)
	t.Logf("listening at %d", lSrvr.Port())
	host := fmt.Sprintf("localhost:%d", lSrvr.Port())
	flog.UseRLoggerSetup()
	flog.UseRKeeper()
	err := rlog.Setup(host, "office-edge-01")
	if err != nil {
		t.Fatal(err)
	}

	rkeep.SetDevice(common.Device{ThingName: "office-edge-01", ThingGroup: "office"})

	//make sure http access works
	resp, err := http.Get("http://" + host + "/recent/")
	if err != nil {
		t.Error(err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("http status %s", resp.Status)
	}

	log.Log("test")
	tm := rkeep.GetTime()
	if len(tm) < 19 {
		t.Errorf("reported time too short: %d (%s)", len(tm), tm)
	}
	rkeep.ReportGroup("office")
	rkeep.ReportStage("cloud cli configured")

	//now check what the server stored
	msrv := lSrvr.(*MockSrvr)
	ms := msrv.store.(*mockStore)
	t.Logf("m=%d, g=%d, l=%d", len(ms.macs), len(ms.groups), len(ms.logs))
	e := lSrvr.Entries("office-edge-01")

	if strings.Count(e, "\n") < 4 {
		t.Error("undersize log")
		t.Logf("entries:\n%s", e)
	}
	e = lSrvr.Entries("")
	if len(e) != 0 {
		t.Errorf("entries with no thing name:\n%s", e)
	}

	if lSrvr.CheckFinished("office-edge-01", "provision") {
		t.Error("not finished yet")
	}
	rkeep.ReportFinished("all done")
	if !lSrvr.CheckFinished("office-edge-01", "provision") {
		t.Error("finish not recorded")
	}
	tlog.Freeze()
	if t.Failed() {
		t.Log(tlog.Buf.String())
	}
}

func TestHoldDoc(t *testing.T) {
	rawDir := t.TempDir()

	PrintDir = fp.Join(rawDir, "print")
	err := os.Mkdir(PrintDir, 0777)
	if err != nil {
		t.Error(err)
	}
	a := &allInOneSrvr{store: newMockStore()}
	SummaryHold = time.Second
	done := make(chan struct{})
	defer close(done)
	a.MonitorHolds(done)
	d := PrintableDoc{
		Document: &pb.Document{
			Name:  "testdoc",
			Body:  []byte("testdoc"),
			Thing: "office-edge-01",
		},
	}
	//held docs expire after SummaryHold; patrol runs at half that interval
	HoldForPrinting <- d
	time.Sleep(2 * time.Second)
	ReleaseForPrinting <- "office-edge-01"
	entries, err := os.ReadDir(PrintDir)
	if err != nil {
		t.Error(err)
	}
	if len(entries) != 0 {
		t.Errorf("doc should have expired but was printed\n%v", entries)
	}
	HoldForPrinting <- d
	time.Sleep(time.Second / 2)
	ReleaseForPrinting <- "office-edge-01"
	time.Sleep(time.Second / 2)
	entries, err = os.ReadDir(PrintDir)
	if err != nil {
		t.Error(err)
	}
	if len(entries) != 1 {
		t.Errorf("doc should have printed but didn't\n%v", entries)
	}
}
