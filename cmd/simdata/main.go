// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Simdata fills a database with random sensor readings, standing in for a
// fleet that hasn't shipped yet.
package main

import (
	"flag"

	"github.com/devetry/internal-iot-embedded/pkg/log"
	"github.com/devetry/internal-iot-embedded/pkg/simdata"
)

func main() {
	log.AddConsoleLog(0)
	log.FlushMemLog()
	p := simdata.DefaultParams()
	dbfile := flag.String("db", "./iot.db", "path to database")
	flag.IntVar(&p.Beacons, "beacons", p.Beacons, "number of beacons")
	flag.IntVar(&p.Controllers, "controllers", p.Controllers, "number of controllers")
	flag.IntVar(&p.Weeks, "weeks", p.Weeks, "weeks of per-minute readings")
	flag.Int64Var(&p.Seed, "seed", p.Seed, "rng seed (default: time-based)")
	flag.Parse()

	db, err := simdata.Open(*dbfile)
	if err != nil {
		log.Fatalf("opening %s: %s", *dbfile, err)
	}
	defer db.Close()
	g := simdata.New(db, p)
	if err := g.Init(); err != nil {
		log.Fatalf("%s", err)
	}
	if err := g.Generate(); err != nil {
		log.Fatalf("%s", err)
	}
	log.Msgf("generated data for %d controllers over %d weeks", p.Controllers, p.Weeks)
}
