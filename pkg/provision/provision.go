// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

//Package provision turns a freshly-imaged single-board computer into a
//registered edge device: packages installed, cloud credentials in place,
//MFA session established, vendor runtime installed and running.
//
//Errors come in two flavors. A config problem is local and exits 1 before
//any external command runs. A failed external command aborts the run and
//the process exits with that command's status.
package provision

import (
	"fmt"
	"os"
	fp "path/filepath"
	"strings"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/cloud/awscfg"
	"github.com/devetry/internal-iot-embedded/pkg/cloud/mfa"
	"github.com/devetry/internal-iot-embedded/pkg/common"
	"github.com/devetry/internal-iot-embedded/pkg/common/rkeep"
	"github.com/devetry/internal-iot-embedded/pkg/common/rlog"
	"github.com/devetry/internal-iot-embedded/pkg/log"
	"github.com/devetry/internal-iot-embedded/pkg/net"
	"github.com/devetry/internal-iot-embedded/pkg/nucleus"
	"github.com/devetry/internal-iot-embedded/pkg/provision/edgecfg"
	"github.com/devetry/internal-iot-embedded/pkg/provision/steps"
)

// Where the installer archive comes from if INSTALLER_URL doesn't say otherwise.
const defaultInstallerURL = "https://d2s8p88vqu9w66.cloudfront.net/releases/greengrass-nucleus-latest.zip"

const netWait = 2 * time.Minute

func Main(cfgPath string, dryRun bool) {
	log.AddConsoleLog(0)
	log.SetFatalAction(ProvFatal)

	cfg, err := edgecfg.Load(cfgPath)
	if err != nil {
		log.Fatalf("reading config: %s", err)
	}
	// Every missing key must be named before anything external runs; a
	// half-provisioned device is worse than an unprovisioned one.
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%s", err)
	}
	log.SetPrefix("provision")

	// The component user may not exist yet (useradd runs as a step), so
	// guess the dir for templates and resolve ownership after the steps.
	steps.CommonTemplateData = cfg.TemplateData(fp.Join("/home", cfg.User, ".aws"))

	if dryRun {
		dump(cfg)
		return
	}

	if cfg.StaticIP != "" {
		if err := net.AssignStatic(cfg.StaticIface, cfg.StaticIP); err != nil {
			log.Fatalf("static ip %s on %s: %s", cfg.StaticIP, cfg.StaticIface, err)
		}
	}
	if !net.WaitForIpv4(netWait) {
		log.Fatalf("no ipv4 address after %s", netWait)
	}

	if cfg.LogEndpoint != "" {
		if !rlog.HaveRLogSetup() {
			log.Fatalf("RLoggerSetup is required but nil")
		}
		if err := rlog.Setup(cfg.LogEndpoint, cfg.ThingName); err != nil {
			log.Logf("add remote log: %s", err)
		}
	}
	rkeep.SetDevice(common.Device{
		ThingName:  cfg.ThingName,
		ThingGroup: cfg.ThingGroup,
		User:       cfg.User,
		Region:     cfg.Region,
	})
	log.Msgf("provisioning %s (group %s, region %s)", cfg.ThingName, cfg.ThingGroup, cfg.Region)
	rkeep.ReportGroup(cfg.ThingGroup)
	rkeep.StoreMACs(net.MACs())

	rkeep.ReportStage("install packages")
	if ok, err := PackageSteps().RunAll(); !ok {
		failCmd("package install", err)
	}

	rkeep.ReportStage("cloud CLI configuration")
	awsFiles, err := awscfg.ForUser(cfg.User)
	if err != nil {
		log.Fatalf("locating cloud CLI dir for %s: %s", cfg.User, err)
	}
	if err := awsFiles.WriteDefault(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.Region); err != nil {
		log.Fatalf("writing cloud CLI config: %s", err)
	}

	rkeep.ReportStage("MFA session")
	creds := mfaSession(cfg)
	if err := awsFiles.WriteSessionProfile("mfa", creds); err != nil {
		log.Fatalf("writing mfa profile: %s", err)
	}

	rkeep.ReportStage("vendor installer")
	inst := installNucleus(cfg)

	summary(cfg, inst)
	rkeep.ReportFinished("provisioning complete")
	log.Msg("provisioning complete")
}

// PackageSteps returns the package-manager invocations that precede any
// cloud interaction. The component user may already exist, hence DontCare.
func PackageSteps() steps.List {
	return steps.List{
		{
			Name:    "system packages",
			Verbose: true,
			Commands: []steps.StepCmd{
				{Command: "apt-get update", ExitStatus: steps.ESMustSucceed},
				{Command: "apt-get install -y default-jdk unzip curl", ExitStatus: steps.ESMustSucceed},
			},
		},
		{
			Name: "component user",
			Commands: []steps.StepCmd{
				{Command: "useradd --system --create-home {{.User}}", ExitStatus: steps.ESDontCare},
			},
		},
	}
}

//prompt for ARN (unless configured) and one-time code, get session token
func mfaSession(cfg *edgecfg.Config) common.Credentials {
	api, err := mfa.NewSTS(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.Region)
	if err != nil {
		log.Fatalf("sts session: %s", err)
	}
	p := &mfa.Prompt{In: os.Stdin, Out: os.Stdout}
	creds, err := mfa.Interactive(p, api, cfg.MFASerial)
	if err != nil {
		log.Fatalf("mfa session: %s", err)
	}
	return creds
}

func installNucleus(cfg *edgecfg.Config) nucleus.Installer {
	url := cfg.InstallerURL
	if url == "" {
		url = defaultInstallerURL
	}
	dlDir := fp.Join(os.TempDir(), "nucleus-dl")
	jar, err := nucleus.Fetch(url, cfg.InstallerSHA1, dlDir)
	if err != nil {
		log.Fatalf("fetching installer: %s", err)
	}
	inst := nucleus.Installer{
		JarPath:    jar,
		Region:     cfg.Region,
		ThingName:  cfg.ThingName,
		ThingGroup: cfg.ThingGroup,
		User:       cfg.User,
	}
	step := inst.Step()
	if err := step.Run(); err != nil {
		failCmd("vendor installer", err)
	}
	if !inst.AwaitInstalled(2 * time.Minute) {
		log.Logf("runtime config %s not seen yet; continuing", inst.EffectiveConfig())
	}
	return inst
}

//store a human-readable record of what was done, via the record keeper
func summary(cfg *edgecfg.Config, inst nucleus.Installer) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Provisioning summary for %s\n", cfg.ThingName)
	fmt.Fprintf(&sb, "group:  %s\n", cfg.ThingGroup)
	fmt.Fprintf(&sb, "region: %s\n", cfg.Region)
	fmt.Fprintf(&sb, "user:   %s\n", cfg.User)
	fmt.Fprintf(&sb, "macs:   %s\n", strings.Join(net.MACs(), ", "))
	fmt.Fprintf(&sb, "config: %s\n", inst.EffectiveConfig())
	if t := rkeep.GetTime(); t != "" {
		fmt.Fprintf(&sb, "time:   %s\n", t)
	}
	rkeep.StoreDocument(cfg.ThingName+"-summary.txt", rkeep.PrintedDocSummary, []byte(sb.String()))
}

//print what would run, without running it
func dump(cfg *edgecfg.Config) {
	fmt.Printf("device %s, group %s, region %s, user %s\n",
		cfg.ThingName, cfg.ThingGroup, cfg.Region, cfg.User)
	for _, s := range PackageSteps() {
		for _, c := range s.Commands {
			fmt.Printf("  [%s] %s\n", s.Name, c.Command)
		}
	}
	url := cfg.InstallerURL
	if url == "" {
		url = defaultInstallerURL
	}
	fmt.Printf("  [installer] fetch %s\n", url)
	inst := nucleus.Installer{
		JarPath:    "<downloaded jar>",
		Region:     cfg.Region,
		ThingName:  cfg.ThingName,
		ThingGroup: cfg.ThingGroup,
		User:       cfg.User,
	}
	fmt.Printf("  [installer] %s\n", inst.Step().Commands[0].Command)
}
