// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

//Some sort of external mechanism recording details about devices
//provisioned. Could be part of your remote logger, or separate.
package rkeep

import (
	"github.com/devetry/internal-iot-embedded/pkg/common"
	"github.com/devetry/internal-iot-embedded/pkg/log"
)

//Some sort of external mechanism recording details about devices
//provisioned. Could be part of your remote logger, or separate.
type RecordKeeper interface {
	//called once the thing name (etc) is known
	SetDevice(d common.Device)

	//Store MACs of the device's interfaces
	StoreMACs([]string)

	//current stage of the provisioning process
	ReportStage(string)

	//current process finished
	ReportFinished(string)

	//current process failed
	ReportFailure(string)

	//report thing group of current device
	ReportGroup(string)

	// Gets time from an external source that has drift correction, unlike
	// the RTC in an unpowered board. Format 2006-01-02 15:04:05
	GetTime() string

	StoreDocument(name string, doctype PrintedDocType, doc []byte)
}

type PrintedDocType string

const (
	PrintedDocUnknown PrintedDocType = "unknown"
	PrintedDocSummary PrintedDocType = "Provisioning Summary"
)

var rkeeper RecordKeeper

//Sets the underlying RecordKeeper impl for this package
func SetImpl(r RecordKeeper) {
	if rkeeper != nil {
		log.Log("RecordKeeper: overwriting non-nil impl")
	}
	rkeeper = r
}

//Return true if an impl is set
func HaveRKeeper() bool { return rkeeper != nil }

//called once the thing name (etc) is known
func SetDevice(d common.Device) {
	if rkeeper != nil {
		rkeeper.SetDevice(d)
		return
	}
	log.Log("RecordKeeper impl unset")
}

//Store MACs
func StoreMACs(m []string) {
	if rkeeper != nil {
		rkeeper.StoreMACs(m)
		return
	}
	log.Log("RecordKeeper impl unset")
}

//current stage of the provisioning process
func ReportStage(s string) {
	if rkeeper != nil {
		rkeeper.ReportStage(s)
		return
	}
	log.Log("RecordKeeper impl unset")
}

//current process finished
func ReportFinished(f string) {
	if rkeeper != nil {
		rkeeper.ReportFinished(f)
		return
	}
	log.Log("RecordKeeper impl unset")
}

//current process failed
func ReportFailure(f string) {
	if rkeeper != nil {
		rkeeper.ReportFailure(f)
		return
	}
	log.Log("RecordKeeper impl unset")
}

//report thing group of current device
func ReportGroup(g string) {
	if rkeeper != nil {
		rkeeper.ReportGroup(g)
		return
	}
	log.Log("RecordKeeper impl unset")
}

// Gets time from an external source that has drift correction, unlike the
// RTC in an unpowered board. Format 2006-01-02 15:04:05
func GetTime() string {
	if rkeeper != nil {
		return rkeeper.GetTime()
	}
	log.Log("RecordKeeper impl unset")
	return ""
}

func StoreDocument(name string, doctype PrintedDocType, doc []byte) {
	if rkeeper != nil {
		rkeeper.StoreDocument(name, doctype, doc)
		return
	}
	log.Log("RecordKeeper impl unset")
}
