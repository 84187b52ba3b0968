// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Package steps runs the external commands making up the provisioning
// sequence: package installs, the vendor installer, and anything else that
// is best left to an existing CLI. Commands are template-expanded against
// device data before being run. There is no retry: the first command whose
// exit status violates its expectation aborts the sequence.
package steps

import (
	"fmt"
	"os/exec"
	"strings"
	"text/template"

	"github.com/devetry/internal-iot-embedded/pkg/log"

	"github.com/google/shlex"
)

type ExitStatus int

const (
	//command must exit 0
	ESMustSucceed ExitStatus = iota
	//command must exit nonzero
	ESMustFail
	//exit status is ignored
	ESDontCare
)

// Data available to command templates in every step.
type CommonData struct {
	ThingName  string
	ThingGroup string
	Region     string
	User       string
	//dir holding cloud CLI config for User
	AwsDir string
}

// CommonTemplateData is filled in by the provisioning flow before any step
// runs.
var CommonTemplateData CommonData

// Per-step template data; embeds the common data so templates can refer to
// either without qualification.
type StepData struct {
	*CommonData
	//dir the installer archive was downloaded to
	DLDir string
}

// One external command plus the expectation on its exit status. Input, if
// set, is template-expanded and fed to the command's stdin - this is how
// prompt sequences are answered.
type StepCmd struct {
	Command    string
	Input      string
	ExitStatus ExitStatus
}

// An ordered group of commands run as a unit.
type Step struct {
	Name     string
	Commands []StepCmd
	Verbose  bool
	tmplData StepData
}

// A sequence of steps. Run order is slice order.
type List []Step

// ExitStatusError reports a command whose exit status violated its step's
// expectation. Status is what the command actually returned.
type ExitStatusError struct {
	Cmd    string
	Status int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Cmd, e.Status)
}

// SetData overrides the step's template data. Rarely needed outside tests;
// Run populates it from CommonTemplateData when unset.
func (s *Step) SetData(d StepData) { s.tmplData = d }

//expand one template string against the step's data
func (s *Step) applyTmpl(in string) (out string, err error) {
	tmpl, err := template.New("step").Parse(in)
	if err != nil {
		return
	}
	var sb strings.Builder
	err = tmpl.Execute(&sb, s.tmplData)
	if err != nil {
		return
	}
	return sb.String(), nil
}

// Run executes the step's commands in order, stopping at the first
// violated expectation. The returned error is an *ExitStatusError when a
// command ran but its status was unacceptable.
func (s *Step) Run() (err error) {
	if s.tmplData.CommonData == nil {
		s.tmplData.CommonData = &CommonTemplateData
	}
	for _, sc := range s.Commands {
		err = s.runOne(sc)
		if err != nil {
			return
		}
	}
	return
}

func (s *Step) runOne(sc StepCmd) error {
	line, err := s.applyTmpl(sc.Command)
	if err != nil {
		return err
	}
	args, err := shlex.Split(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("step %s: empty command", s.Name)
	}
	cmd := exec.Command(args[0], args[1:]...)
	if sc.Input != "" {
		in, err := s.applyTmpl(sc.Input)
		if err != nil {
			return err
		}
		cmd.Stdin = strings.NewReader(in)
	}
	if s.Verbose {
		log.Logf("Running %v...", args)
	}
	_, status, err := log.CmdStatus(cmd)
	if err != nil {
		return err
	}
	switch sc.ExitStatus {
	case ESMustSucceed:
		if status != 0 {
			return &ExitStatusError{Cmd: line, Status: status}
		}
	case ESMustFail:
		if status == 0 {
			return &ExitStatusError{Cmd: line, Status: status}
		}
	case ESDontCare:
	}
	return nil
}

// RunAll runs every step in order. Returns false after logging if any step
// fails; remaining steps do not run. The failing step's error is returned
// for exit status propagation.
func (l List) RunAll() (bool, error) {
	for i := range l {
		step := &l[i]
		if step.Name != "" {
			log.Msgf("step: %s", step.Name)
		}
		if err := step.Run(); err != nil {
			log.Logf("step %s: %s", step.Name, err)
			return false, err
		}
	}
	return true, nil
}
