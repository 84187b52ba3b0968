// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package provision

import (
	"os"
	fp "path/filepath"
	"strings"
	"testing"

	"github.com/devetry/internal-iot-embedded/pkg/log"
	"github.com/devetry/internal-iot-embedded/pkg/log/testlog"
	"github.com/devetry/internal-iot-embedded/pkg/provision/edgecfg"
	"github.com/devetry/internal-iot-embedded/pkg/provision/steps"
)

func writeCfg(t *testing.T, content string) string {
	t.Helper()
	p := fp.Join(t.TempDir(), "edge.conf")
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

const goodCfg = `EDGE_USER=ggc_user
AWS_ACCESS_KEY_ID=AKIAEXAMPLE
AWS_SECRET_ACCESS_KEY=secret
AWS_DEFAULT_REGION=us-west-2
THING_NAME=office-edge-01
THING_GROUP=office
`

// A missing key must abort before any external command, naming the key.
func TestMissingKeyAborts(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	//no commands are expected at all
	testlog.FakeCmds(t, nil)
	log.SetPrefix("test")

	p := writeCfg(t, strings.Replace(goodCfg, "THING_GROUP=office\n", "", 1))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected abort")
		}
		if exitStatus() != 1 {
			t.Errorf("exit status %d, want 1", exitStatus())
		}
	}()
	Main(p, false)
}

func TestFatalNamesAllMissingKeys(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()

	cfg, err := edgecfg.Load(writeCfg(t, "EDGE_USER=ggc_user\n"))
	if err != nil {
		t.Fatal(err)
	}
	err = cfg.Validate()
	if err == nil {
		t.Fatal("want error")
	}
	for _, k := range []string{
		edgecfg.KeyAccessKey, edgecfg.KeySecretKey, edgecfg.KeyRegion,
		edgecfg.KeyThing, edgecfg.KeyGroup,
	} {
		if !strings.Contains(err.Error(), k) {
			t.Errorf("error does not name %s: %s", k, err)
		}
	}
	if strings.Contains(err.Error(), edgecfg.KeyUser) {
		t.Errorf("error names a key that is present: %s", err)
	}
}

func TestPackageSteps(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	testlog.FakeCmds(t, []testlog.FakeCmd{
		{Match: "apt-get update", Out: "Reading package lists..."},
		{Match: "apt-get install", Out: "Setting up default-jdk..."},
		{Match: "useradd", Status: 9}, //already exists
	})
	steps.CommonTemplateData = steps.CommonData{User: "ggc_user"}

	ok, err := PackageSteps().RunAll()
	if !ok {
		t.Fatalf("steps failed: %s", err)
	}
}

// A failing external command's status must become our exit status.
func TestExitStatusPropagates(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	tlog.FatalIsNotErr = true
	defer tlog.Freeze()
	testlog.FakeCmds(t, []testlog.FakeCmd{
		{Match: "apt-get update", Status: 100},
	})
	steps.CommonTemplateData = steps.CommonData{User: "ggc_user"}

	ok, err := PackageSteps().RunAll()
	if ok {
		t.Fatal("steps should have failed")
	}
	failCmd("package install", err)
	tlog.Freeze() //sync the background log thread before reading FatalCount
	if exitStatus() != 100 {
		t.Errorf("exit status %d, want 100", exitStatus())
	}
	if tlog.FatalCount == 0 {
		t.Error("no fatal logged")
	}
}

func TestDryRun(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	//dry run must not run anything
	testlog.FakeCmds(t, nil)

	Main(writeCfg(t, goodCfg), true)
}
