// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package nucleus

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"os"
	fp "path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/log/testlog"

	"github.com/ulikunitz/xz"
)

func TestStepFlags(t *testing.T) {
	n := Installer{
		JarPath:    "/tmp/dl/Greengrass.jar",
		Region:     "us-west-2",
		ThingName:  "office-edge-01",
		ThingGroup: "office",
		User:       "ggc_user",
	}
	s := n.Step()
	if len(s.Commands) != 1 {
		t.Fatalf("want 1 command, got %d", len(s.Commands))
	}
	cmd := s.Commands[0].Command
	for _, want := range []string{
		"-Droot=" + DefaultRootDir,
		"--aws-region us-west-2",
		"--thing-name office-edge-01",
		"--thing-group-name office",
		"--component-default-user ggc_user:ggc_user",
		"--provision true",
		"--setup-system-service true",
	} {
		if !strings.Contains(cmd, want) {
			t.Errorf("command missing %q:\n%s", want, cmd)
		}
	}
	if s.Commands[0].ExitStatus != 0 { //ESMustSucceed
		t.Error("installer exit status must be checked")
	}
}

func TestFetchLocal(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	srcDir, dlDir := t.TempDir(), t.TempDir()
	content := []byte("not really a jar")
	src := fp.Join(srcDir, "Greengrass.jar")
	if err := os.WriteFile(src, content, 0644); err != nil {
		t.Fatal(err)
	}
	sum := fmt.Sprintf("%x", sha1.Sum(content))

	jar, err := Fetch(src, sum, dlDir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(jar)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Error("content mismatch after fetch")
	}

	//and with a bad checksum
	_, err = Fetch(src, strings.Repeat("0", 40), t.TempDir())
	if err == nil {
		t.Error("want checksum error")
	}
}

func TestFetchXZ(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	srcDir, dlDir := t.TempDir(), t.TempDir()
	content := []byte("jar bytes, compressed")
	src := fp.Join(srcDir, "Greengrass.jar.xz")
	f, err := os.Create(src)
	if err != nil {
		t.Fatal(err)
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	jar, err := Fetch(src, "", dlDir)
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasSuffix(jar, ".xz") {
		t.Errorf("jar path still compressed: %s", jar)
	}
	got, err := os.ReadFile(jar)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Errorf("decompressed content mismatch: %q", got)
	}
}

// The vendor's default download is a zip with the jar under lib/. Fetch
// must extract it; java -jar on the zip itself cannot work.
func TestFetchZip(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	srcDir, dlDir := t.TempDir(), t.TempDir()
	content := []byte("jar bytes, zipped")
	src := fp.Join(srcDir, "greengrass-nucleus-latest.zip")
	f, err := os.Create(src)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, body := range map[string]string{
		"README.md":          "read me",
		"lib/Greengrass.jar": string(content),
		"conf/recipe.yaml":   "recipe",
		"bin/loader":         "loader",
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	jar, err := Fetch(src, "", dlDir)
	if err != nil {
		t.Fatal(err)
	}
	if strings.HasSuffix(jar, ".zip") {
		t.Errorf("jar path is still the archive: %s", jar)
	}
	if !strings.HasSuffix(jar, fp.Join("lib", "Greengrass.jar")) {
		t.Errorf("unexpected jar path %s", jar)
	}
	got, err := os.ReadFile(jar)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Errorf("extracted content mismatch: %q", got)
	}
	//siblings the jar locates relative to itself must be extracted too
	if _, err := os.Stat(fp.Join(fp.Dir(jar), "..", "conf", "recipe.yaml")); err != nil {
		t.Errorf("archive layout not preserved: %s", err)
	}

	//an archive with no jar is an error, not a silent fallthrough
	bad := fp.Join(srcDir, "empty.zip")
	f, err = os.Create(bad)
	if err != nil {
		t.Fatal(err)
	}
	zw = zip.NewWriter(f)
	w, err := zw.Create("README.md")
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte("nothing runnable here"))
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()
	if _, err := Fetch(bad, "", t.TempDir()); err == nil {
		t.Error("want error for jarless archive")
	}
}

func TestAwaitInstalled(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	root := t.TempDir()
	n := Installer{RootDir: root}
	cfgDir := fp.Join(root, "config")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}

	//file appears while waiting
	go func() {
		time.Sleep(200 * time.Millisecond)
		os.WriteFile(n.EffectiveConfig(), []byte("services:\n"), 0644)
	}()
	if !n.AwaitInstalled(5 * time.Second) {
		t.Error("config file not noticed")
	}

	//missing file times out
	n2 := Installer{RootDir: t.TempDir()}
	start := time.Now()
	if n2.AwaitInstalled(300 * time.Millisecond) {
		t.Error("unexpected success")
	}
	if time.Since(start) > 3*time.Second {
		t.Error("timeout not honored")
	}
}
