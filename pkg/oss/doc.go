// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Sub-packages of oss contain open implementations of services a fleet
// operator would normally have in-house.
//
// flog
//
// flog implements a client for protobuf-based remote logging and record
// keeping. The server package is at flog/server, while the server command
// is located at ../../cmd/flogserver.
//
package oss
