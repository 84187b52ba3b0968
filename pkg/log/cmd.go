// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package log

import (
	"os/exec"
	"strings"
)

// CmdHijacker intercepts Cmd/CmdStatus. Used in tests to fake external
// commands that cannot feasibly run locally. Returned status is the fake
// exit status; err non-nil for a fake start failure.
type CmdHijacker func(c *exec.Cmd) (out string, status int, err error)

var hijacker CmdHijacker

// HijackCmd installs (or, with nil, removes) a CmdHijacker.
func HijackCmd(h CmdHijacker) { hijacker = h }

// Cmd runs c, logging its combined output. Returns output and whether the
// command succeeded.
func Cmd(c *exec.Cmd) (string, bool) {
	out, status, err := CmdStatus(c)
	return out, err == nil && status == 0
}

// CmdStatus runs c, logging its combined output. Returns the output, the
// exit status, and an error if the command could not be run at all. A
// nonzero exit status is not itself an error.
func CmdStatus(c *exec.Cmd) (out string, status int, err error) {
	if hijacker != nil {
		return hijacker(c)
	}
	b, err := c.CombinedOutput()
	out = strings.TrimRight(string(b), "\n")
	if len(out) > 0 {
		Logf("command output: %s", out)
	}
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			status = ee.ExitCode()
			err = nil
			if status != 0 {
				Logf("command %v exited with status %d", c.Args, status)
			}
			return
		}
		Logf("error running %v: %s", c.Args, err)
		status = -1
	}
	return
}
