// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package provision

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/devetry/internal-iot-embedded/pkg/common/rkeep"
	"github.com/devetry/internal-iot-embedded/pkg/log"
	"github.com/devetry/internal-iot-embedded/pkg/provision/steps"
)

// ProvFatal reports the failure to the record keeper and exits. The exit
// status defaults to 1 (local errors like a bad config file); when an
// external command failed, the status it exited with is used instead.
var ProvFatal = log.FailAction{
	MsgPfx: "ERROR: ",
	Pre: func(f string, va ...interface{}) {
		if log.GetPrefix() == "test" {
			panic("Fatalf called from 'go test'")
		}
		rkeep.ReportFailure(fmt.Sprintf(f, va...))
	},
	Terminator: func() {
		os.Exit(exitStatus())
	},
}

var (
	statusMtx sync.Mutex
	status    = 1
)

func setExitStatus(s int) {
	statusMtx.Lock()
	defer statusMtx.Unlock()
	if s != 0 {
		status = s
	}
}
func exitStatus() int {
	statusMtx.Lock()
	defer statusMtx.Unlock()
	return status
}

// failCmd aborts the run after an external command failed, preserving that
// command's exit status for our own exit. Does not return.
func failCmd(what string, err error) {
	ese := &steps.ExitStatusError{}
	if errors.As(err, &ese) {
		setExitStatus(ese.Status)
	}
	log.Fatalf("%s: %s", what, err)
}
