// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package nucleus

import (
	"os"
	fp "path/filepath"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/fileutil"
	"github.com/devetry/internal-iot-embedded/pkg/log"

	"github.com/rjeczalik/notify"
)

// AwaitInstalled waits for the runtime's effective config to appear,
// which is how we know the installer not only exited 0 but produced a
// running configuration. Uses inotify when available, polling otherwise.
func (n Installer) AwaitInstalled(timeout time.Duration) bool {
	path := n.EffectiveConfig()
	eventChan := make(chan notify.EventInfo, 4)
	err := notify.Watch(fp.Dir(path)+"/...", eventChan, notify.Create, notify.Write, notify.Rename)
	if err != nil {
		//config dir may not exist yet; fall back to polling
		log.Logf("watch %s: %s; polling instead", fp.Dir(path), err)
		return fileutil.WaitFor(path, timeout)
	}
	defer notify.Stop(eventChan)

	//the file may already exist by the time the watch is in place
	if _, err := os.Stat(path); err == nil {
		return true
	}
	deadline := time.After(timeout)
	for {
		select {
		case <-eventChan:
			//any event in the dir: recheck rather than trusting event paths,
			//which differ between rename and create
			if _, err := os.Stat(path); err == nil {
				return true
			}
		case <-deadline:
			return false
		}
	}
}
