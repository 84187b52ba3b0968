// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Package awscfg writes the cloud CLI's credential and config files for a
// local user. This replaces piping a prompt sequence into the CLI's
// interactive configure command: the artifacts on disk are identical and
// there is no prompt ordering to break.
package awscfg

import (
	"fmt"
	"os"
	"os/user"
	fp "path/filepath"
	"strconv"
	"strings"

	"github.com/devetry/internal-iot-embedded/pkg/common"
	"github.com/devetry/internal-iot-embedded/pkg/log"
)

// Files locates one user's cloud CLI configuration.
type Files struct {
	//the .aws dir
	Dir string
	//chown written files to this uid/gid when >= 0
	Uid, Gid int
}

// ForUser resolves the .aws dir of a local account.
func ForUser(username string) (Files, error) {
	u, err := user.Lookup(username)
	if err != nil {
		return Files{}, fmt.Errorf("lookup user %s: %w", username, err)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return Files{}, err
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return Files{}, err
	}
	return Files{Dir: fp.Join(u.HomeDir, ".aws"), Uid: uid, Gid: gid}, nil
}

// At returns Files rooted at dir, leaving file ownership alone. Used when
// already running as the target user, and in tests.
func At(dir string) Files { return Files{Dir: dir, Uid: -1, Gid: -1} }

func (f Files) credentialsPath() string { return fp.Join(f.Dir, "credentials") }
func (f Files) configPath() string      { return fp.Join(f.Dir, "config") }

// WriteDefault writes the default profile: long-lived key in credentials,
// region and output format in config. Overwrites both files.
func (f Files) WriteDefault(keyID, secret, region string) error {
	creds := fmt.Sprintf(
		"[default]\naws_access_key_id = %s\naws_secret_access_key = %s\n",
		keyID, secret)
	conf := fmt.Sprintf("[default]\nregion = %s\noutput = json\n", region)
	if err := f.write(f.credentialsPath(), creds); err != nil {
		return err
	}
	return f.write(f.configPath(), conf)
}

// WriteSessionProfile appends a named profile holding temporary
// credentials to the credentials file. An existing section with the same
// name is replaced.
func (f Files) WriteSessionProfile(profile string, c common.Credentials) error {
	existing, err := os.ReadFile(f.credentialsPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	section := fmt.Sprintf(
		"[%s]\naws_access_key_id = %s\naws_secret_access_key = %s\naws_session_token = %s\n",
		profile, c.AccessKeyID, c.SecretAccessKey, c.SessionToken)
	out := dropSection(string(existing), profile)
	if len(out) > 0 && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if len(out) > 0 {
		out += "\n"
	}
	return f.write(f.credentialsPath(), out+section)
}

//remove a [name] section, leaving others intact
func dropSection(content, name string) string {
	var keep []string
	skipping := false
	for _, l := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(l)
		if strings.HasPrefix(trimmed, "[") {
			skipping = trimmed == "["+name+"]"
		}
		if !skipping {
			keep = append(keep, l)
		}
	}
	return strings.TrimRight(strings.Join(keep, "\n"), "\n")
}

func (f Files) write(path, content string) error {
	if err := os.MkdirAll(f.Dir, 0700); err != nil {
		return err
	}
	if err := f.chown(f.Dir); err != nil {
		return err
	}
	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		return err
	}
	log.Logf("wrote %s", path)
	return f.chown(path)
}

func (f Files) chown(path string) error {
	if f.Uid < 0 && f.Gid < 0 {
		return nil
	}
	return os.Chown(path, f.Uid, f.Gid)
}
