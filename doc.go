// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Subpackages contain code to turn a freshly-imaged single-board computer
// into a registered edge device, plus supporting fleet-side services.
//
// Binaries:
//
//    - provision: runs on the device. Installs packages, writes cloud CLI
//      credentials, performs an interactive MFA session, fetches and runs
//      the vendor's edge-runtime installer. A config problem exits 1 before
//      anything external runs; a failed external command aborts the run and
//      the process exits with that command's status.
//
//    - flogserver: grpc+http all-in-one service that devices log to while
//      provisioning. Stores events, MACs, and group membership per thing
//      name; serves an activity page for the lab bench.
//
//    - simdata: fills a database with random per-minute sensor readings,
//      standing in for a fleet that hasn't shipped yet.
//
//    - config-schema: json schema for the device config file keys.
//
package iot
