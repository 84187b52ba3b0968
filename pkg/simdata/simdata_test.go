// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package simdata

import (
	"encoding/json"
	fp "path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/log/testlog"
)

func testParams() Params {
	return Params{
		Beacons:     2,
		Controllers: 6,
		Weeks:       0, //sensor volume tested separately
		Start:       time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
		Seed:        42,
	}
}

func TestGenerate(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	db, err := Open(fp.Join(t.TempDir(), "iot.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	p := testParams()
	g := New(db, p)
	if err := g.Init(); err != nil {
		t.Fatal(err)
	}
	if err := g.Generate(); err != nil {
		t.Fatal(err)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM beacons").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != p.Beacons {
		t.Errorf("beacons: got %d want %d", n, p.Beacons)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM controllers").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != p.Controllers {
		t.Errorf("controllers: got %d want %d", n, p.Controllers)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM controller_types").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != len(ControllerTypes) {
		t.Errorf("controller types: got %d want %d", n, len(ControllerTypes))
	}

	//macs must be unique and carry the right prefix
	rows, err := db.Query("SELECT controller, beacon FROM controllers")
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()
	seen := make(map[string]bool)
	for rows.Next() {
		var c, b string
		if err := rows.Scan(&c, &b); err != nil {
			t.Fatal(err)
		}
		if seen[c] {
			t.Errorf("duplicate controller mac %s", c)
		}
		seen[c] = true
		if !strings.HasPrefix(c, "01:00:00:") {
			t.Errorf("controller mac prefix: %s", c)
		}
		if !strings.HasPrefix(b, "02:00:00:") {
			t.Errorf("beacon mac prefix: %s", b)
		}
	}

	//regenerating must not accumulate rows
	if err := g.Generate(); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM beacons").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != p.Beacons {
		t.Errorf("beacons after regenerate: got %d want %d", n, p.Beacons)
	}
}

func TestSensorData(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	db, err := Open(fp.Join(t.TempDir(), "iot.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	p := testParams()
	p.Controllers = 3
	p.Beacons = 1
	p.Weeks = 1
	g := New(db, p)
	if err := g.Init(); err != nil {
		t.Fatal(err)
	}
	if err := g.Generate(); err != nil {
		t.Fatal(err)
	}

	minutes := p.Weeks * 7 * 24 * 60
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM sensor_data").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != minutes*p.Controllers {
		t.Errorf("sensor rows: got %d want %d", n, minutes*p.Controllers)
	}

	//every row's JSON must match its controller's family
	rows, err := db.Query(`SELECT c.controller_type, s.raw_data
		FROM sensor_data s JOIN controllers c ON s.controller = c.controller LIMIT 500`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()
	for rows.Next() {
		var family, raw string
		if err := rows.Scan(&family, &raw); err != nil {
			t.Fatal(err)
		}
		var m map[string]int
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			t.Fatalf("bad json %q: %s", raw, err)
		}
		var want []string
		switch family {
		case "C02":
			want = []string{"C02", "Temp", "Humidity"}
		case "ELECTRICITY":
			want = []string{"Power", "KwH", "Current"}
		case "MOTION":
			want = []string{"Density"}
		default:
			t.Fatalf("unknown family %q", family)
		}
		if len(m) != len(want) {
			t.Errorf("family %s: keys %v", family, m)
		}
		for _, k := range want {
			if _, ok := m[k]; !ok {
				t.Errorf("family %s: missing key %s in %s", family, k, raw)
			}
		}
	}
}

func TestReadingRanges(t *testing.T) {
	g := New(nil, Params{Seed: 1})
	for i := 0; i < 1000; i++ {
		raw, err := g.reading("C02")
		if err != nil {
			t.Fatal(err)
		}
		var m map[string]int
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			t.Fatal(err)
		}
		if m["C02"] < 400 || m["C02"] > 10000 {
			t.Fatalf("co2 out of range: %d", m["C02"])
		}
		if m["Temp"] < 0 || m["Temp"] > 100 {
			t.Fatalf("temp out of range: %d", m["Temp"])
		}
	}
	if _, err := g.reading("GEIGER"); err == nil {
		t.Error("want error for unknown family")
	}
}
