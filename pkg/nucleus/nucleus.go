// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Package nucleus fetches and runs the vendor's edge-runtime installer
// ("Nucleus"). The installer itself does the cloud-side thing
// registration; our job is to hand it the right flags and propagate its
// exit status faithfully.
package nucleus

import (
	fp "path/filepath"

	"github.com/devetry/internal-iot-embedded/pkg/provision/steps"
)

// Installer describes one invocation of the vendor installer.
type Installer struct {
	//where the runtime gets installed
	RootDir string
	//path of the installer jar, see Fetch
	JarPath string

	Region     string
	ThingName  string
	ThingGroup string
	//local account the runtime components run as
	User string
}

// DefaultRootDir is where the vendor documents installing the runtime.
const DefaultRootDir = "/greengrass/v2"

// Step returns the installer invocation as a provisioning step. The flags
// are fixed; only their values come from the device config.
func (n Installer) Step() steps.Step {
	if n.RootDir == "" {
		n.RootDir = DefaultRootDir
	}
	cmd := "java -Droot=" + n.RootDir + " -Dlog.store=FILE" +
		" -jar " + n.JarPath +
		" --aws-region " + n.Region +
		" --thing-name " + n.ThingName +
		" --thing-group-name " + n.ThingGroup +
		" --component-default-user " + n.User + ":" + n.User +
		" --provision true" +
		" --setup-system-service true"
	return steps.Step{
		Name:     "nucleus installer",
		Verbose:  true,
		Commands: []steps.StepCmd{{Command: cmd, ExitStatus: steps.ESMustSucceed}},
	}
}

// EffectiveConfig is the artifact the runtime writes once it has started
// with a usable configuration; its appearance is our install-success
// signal.
func (n Installer) EffectiveConfig() string {
	root := n.RootDir
	if root == "" {
		root = DefaultRootDir
	}
	return fp.Join(root, "config", "effectiveConfig.yaml")
}
