// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package server

import (
	"github.com/devetry/internal-iot-embedded/pkg/oss/flog/pb"
)

type Persister interface {
	//StoreLog actually appends. All other store operations overwrite.
	StoreLog(id string, les *pb.LogEvents) error
	RetrieveLog(id string) (m pb.LogEvents, err error)
	StoreMacs(id string, m pb.MACs) error
	RetrieveMacs(id string) (m pb.MACs, err error)
	StoreGroup(id, group string) error
	RetrieveGroup(id string) (string, error)
	Ids() []string
	Close() error
}

type Backender interface {
	OpenDB(path string) Persister
}
