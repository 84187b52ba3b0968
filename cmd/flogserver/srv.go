// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package main

import (
	"flag"

	"github.com/devetry/internal-iot-embedded/pkg/log"
	"github.com/devetry/internal-iot-embedded/pkg/oss/flog/server"
)

var dbfile string

func main() {
	log.AddConsoleLog(0)
	log.FlushMemLog()
	flag.StringVar(&dbfile, "db", "./flog.db", "path to database")
	server.Flags()
	srvr := server.NewServer(dbfile)
	srvr.MonitorHolds(nil)
	log.Logf("starting server on %s...", server.Port)

	srvr.Serve()
}
