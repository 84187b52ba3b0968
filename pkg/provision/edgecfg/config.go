// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Package edgecfg reads the flat key=value file describing the device to
// be provisioned. Validation happens before anything else in the flow, so
// a bad file can never cause a half-provisioned device: every required key
// that is absent or empty is named in the error.
package edgecfg

import (
	"fmt"
	"strings"

	"github.com/devetry/internal-iot-embedded/pkg/fileutil"
	"github.com/devetry/internal-iot-embedded/pkg/provision/steps"
)

//required keys
const (
	KeyUser      = "EDGE_USER"
	KeyAccessKey = "AWS_ACCESS_KEY_ID"
	KeySecretKey = "AWS_SECRET_ACCESS_KEY"
	KeyRegion    = "AWS_DEFAULT_REGION"
	KeyThing     = "THING_NAME"
	KeyGroup     = "THING_GROUP"
)

//optional keys
const (
	KeyInstallerURL  = "INSTALLER_URL"
	KeyInstallerSHA1 = "INSTALLER_SHA1"
	KeyStaticIP      = "STATIC_IP"
	KeyStaticIface   = "STATIC_IFACE"
	KeyLogEndpoint   = "LOG_ENDPOINT"
	KeyMFASerial     = "MFA_SERIAL"
)

// Config is the parsed device configuration file.
type Config struct {
	User            string `json:"EDGE_USER"`
	AccessKeyID     string `json:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `json:"AWS_SECRET_ACCESS_KEY"`
	Region          string `json:"AWS_DEFAULT_REGION"`
	ThingName       string `json:"THING_NAME"`
	ThingGroup      string `json:"THING_GROUP"`

	InstallerURL  string `json:"INSTALLER_URL,omitempty"`
	InstallerSHA1 string `json:"INSTALLER_SHA1,omitempty"`
	StaticIP      string `json:"STATIC_IP,omitempty"`
	StaticIface   string `json:"STATIC_IFACE,omitempty"`
	LogEndpoint   string `json:"LOG_ENDPOINT,omitempty"`
	MFASerial     string `json:"MFA_SERIAL,omitempty"`
}

const maxConfigLines = 64

// Load reads and parses the config file at path. Parse errors (a line with
// no '=') are fatal; validation of key presence is separate, see Validate.
func Load(path string) (*Config, error) {
	lines, err := fileutil.ReadConfigLines(path, maxConfigLines)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	for _, l := range lines {
		k, v, found := strings.Cut(l, "=")
		if !found {
			return nil, fmt.Errorf("%s: cannot parse line %q", path, l)
		}
		c.set(strings.TrimSpace(k), unquote(strings.TrimSpace(v)))
	}
	return c, nil
}

//strip one level of matched quotes, as a shell would
func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

func (c *Config) set(k, v string) {
	switch k {
	case KeyUser:
		c.User = v
	case KeyAccessKey:
		c.AccessKeyID = v
	case KeySecretKey:
		c.SecretAccessKey = v
	case KeyRegion:
		c.Region = v
	case KeyThing:
		c.ThingName = v
	case KeyGroup:
		c.ThingGroup = v
	case KeyInstallerURL:
		c.InstallerURL = v
	case KeyInstallerSHA1:
		c.InstallerSHA1 = v
	case KeyStaticIP:
		c.StaticIP = v
	case KeyStaticIface:
		c.StaticIface = v
	case KeyLogEndpoint:
		c.LogEndpoint = v
	case KeyMFASerial:
		c.MFASerial = v
		//unknown keys are ignored so the same file can feed other tools
	}
}

// MissingError names every required key that is absent or empty.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return "missing required configuration: " + strings.Join(e.Keys, ", ")
}

// Validate checks that all six required keys have nonempty values. The
// returned error is a *MissingError naming each offender, or nil.
func (c *Config) Validate() error {
	var missing []string
	for _, kv := range []struct{ k, v string }{
		{KeyUser, c.User},
		{KeyAccessKey, c.AccessKeyID},
		{KeySecretKey, c.SecretAccessKey},
		{KeyRegion, c.Region},
		{KeyThing, c.ThingName},
		{KeyGroup, c.ThingGroup},
	} {
		if kv.v == "" {
			missing = append(missing, kv.k)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}
	return nil
}

// TemplateData shapes the config for command templates. awsDir is where
// the cloud CLI config for User ends up.
func (c *Config) TemplateData(awsDir string) steps.CommonData {
	return steps.CommonData{
		ThingName:  c.ThingName,
		ThingGroup: c.ThingGroup,
		Region:     c.Region,
		User:       c.User,
		AwsDir:     awsDir,
	}
}
