// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Provision sets up this machine as a registered edge device, driven by a
// flat key=value config file. Must run as root.
package main

import (
	"flag"

	"github.com/devetry/internal-iot-embedded/pkg/provision"
)

func main() {
	cfgPath := flag.String("config", "/etc/edge-device.conf", "device config file")
	dryRun := flag.Bool("dry-run", false, "print what would run, without running it")
	flag.Parse()
	provision.Main(*cfgPath, *dryRun)
}
