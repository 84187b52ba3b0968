// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Package simdata populates a database with plausible sensor readings for
// an office full of beacons and sensor microcontrollers, for exercising
// dashboards and queries before real devices exist. Readings are JSON, one
// row per controller per minute.
package simdata

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/log"

	_ "modernc.org/sqlite"
)

// Controller families and the shape of the JSON they produce. C02 is not a
// typo here; it is the key consumers already match on.
var ControllerTypes = []string{"C02", "ELECTRICITY", "MOTION"}

type Params struct {
	Beacons     int
	Controllers int
	Weeks       int
	//readings start here and advance one minute per row
	Start time.Time
	Seed  int64
}

// DefaultParams matches the volume the office deployment was sized for.
func DefaultParams() Params {
	return Params{
		Beacons:     10,
		Controllers: 100,
		Weeks:       4,
		Start:       time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
		Seed:        time.Now().UnixNano(),
	}
}

type Generator struct {
	db  *sql.DB
	p   Params
	rnd *rand.Rand
}

// Open opens (creating if necessary) the database file at path.
func Open(path string) (*sql.DB, error) {
	return sql.Open("sqlite", path)
}

func New(db *sql.DB, p Params) *Generator {
	return &Generator{db: db, p: p, rnd: rand.New(rand.NewSource(p.Seed))}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS beacons(
		beacon TEXT PRIMARY KEY)`,
	`CREATE TABLE IF NOT EXISTS controller_types(
		controller_type TEXT PRIMARY KEY)`,
	`CREATE TABLE IF NOT EXISTS controllers(
		controller TEXT PRIMARY KEY,
		beacon TEXT REFERENCES beacons(beacon),
		controller_type TEXT REFERENCES controller_types(controller_type))`,
	`CREATE TABLE IF NOT EXISTS sensor_data(
		controller TEXT REFERENCES controllers(controller),
		raw_data TEXT,
		time_recv TIMESTAMP)`,
}

// Init creates the schema if it does not exist.
func (g *Generator) Init() error {
	for _, s := range schema {
		if _, err := g.db.Exec(s); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

//wipe old rows so repeated runs don't accumulate
func (g *Generator) reset(tx *sql.Tx) error {
	for _, tbl := range []string{"sensor_data", "controllers", "controller_types", "beacons"} {
		if _, err := tx.Exec("DELETE FROM " + tbl); err != nil {
			return err
		}
	}
	return nil
}

// Generate wipes any previous rows and fills all four tables. One
// transaction; either everything lands or nothing does.
func (g *Generator) Generate() error {
	tx, err := g.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := g.reset(tx); err != nil {
		return err
	}
	beacons := g.macs("02:00:00", g.p.Beacons)
	for _, b := range beacons {
		if _, err := tx.Exec("INSERT INTO beacons VALUES(?)", b); err != nil {
			return err
		}
	}
	for _, ct := range ControllerTypes {
		if _, err := tx.Exec("INSERT INTO controller_types VALUES(?)", ct); err != nil {
			return err
		}
	}
	ctrls, err := g.generateControllers(tx, beacons)
	if err != nil {
		return err
	}
	if err := g.generateSensorData(tx, ctrls); err != nil {
		return err
	}
	return tx.Commit()
}

//locally administered, unique within the run
func (g *Generator) macs(prefix string, n int) []string {
	seen := make(map[string]bool)
	var out []string
	for len(out) < n {
		mac := fmt.Sprintf("%s:%02x:%02x:%02x", prefix,
			g.rnd.Intn(256), g.rnd.Intn(256), g.rnd.Intn(256))
		if seen[mac] {
			continue
		}
		seen[mac] = true
		out = append(out, mac)
	}
	return out
}

type controller struct {
	mac, family string
}

// Controllers are spread evenly across beacons; each gets a random family.
func (g *Generator) generateControllers(tx *sql.Tx, beacons []string) ([]controller, error) {
	macs := g.macs("01:00:00", g.p.Controllers)
	perBeacon := g.p.Controllers / len(beacons)
	var out []controller
	i := 0
	for _, b := range beacons {
		for j := 0; j < perBeacon && i < len(macs); j++ {
			c := controller{
				mac:    macs[i],
				family: ControllerTypes[g.rnd.Intn(len(ControllerTypes))],
			}
			i++
			if _, err := tx.Exec("INSERT INTO controllers VALUES(?,?,?)", c.mac, b, c.family); err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	return out, nil
}

func (g *Generator) generateSensorData(tx *sql.Tx, ctrls []controller) error {
	stmt, err := tx.Prepare("INSERT INTO sensor_data VALUES(?,?,?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	minutes := g.p.Weeks * 7 * 24 * 60
	for _, c := range ctrls {
		for m := 0; m < minutes; m++ {
			data, err := g.reading(c.family)
			if err != nil {
				return err
			}
			ts := g.p.Start.Add(time.Duration(m) * time.Minute)
			if _, err := stmt.Exec(c.mac, data, ts.Format("2006-01-02 15:04:05")); err != nil {
				return err
			}
		}
		log.Logf("generated %d readings for %s (%s)", minutes, c.mac, c.family)
	}
	return nil
}

func (g *Generator) reading(family string) (string, error) {
	var v interface{}
	switch family {
	case "C02":
		v = map[string]int{
			"C02":      400 + g.rnd.Intn(9601),
			"Temp":     g.rnd.Intn(101),
			"Humidity": g.rnd.Intn(101),
		}
	case "ELECTRICITY":
		v = map[string]int{
			"Power":   g.rnd.Intn(101),
			"KwH":     g.rnd.Intn(21),
			"Current": g.rnd.Intn(4),
		}
	case "MOTION":
		v = map[string]int{
			"Density": g.rnd.Intn(51),
		}
	default:
		return "", fmt.Errorf("unknown controller family %q", family)
	}
	b, err := json.Marshal(v)
	return string(b), err
}
