// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package nucleus

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	fp "path/filepath"
	"strings"

	"github.com/devetry/internal-iot-embedded/pkg/fileutil"
	"github.com/devetry/internal-iot-embedded/pkg/log"
	"github.com/devetry/internal-iot-embedded/pkg/net/xfer"

	"github.com/ulikunitz/xz"
)

// Fetch retrieves the installer archive from url into dlDir, verifying the
// sha1 when given. The vendor ships the installer as a zip whose runnable
// jar sits under lib/; the archive is extracted and the jar path returned.
// A bare (or xz-compressed) jar is also accepted.
func Fetch(url, sha1, dlDir string) (string, error) {
	dest := fp.Join(dlDir, fp.Base(url))
	tvf := &xfer.TVFile{Src: url, Dest: dest, Sha1: sha1}
	if err := tvf.Get(); err != nil {
		return "", fmt.Errorf("fetching installer: %w", err)
	}
	if fileutil.IsZip(dest) {
		dir := strings.TrimSuffix(dest, ".zip")
		if dir == dest {
			dir = dest + ".d"
		}
		jar, err := unzip(dest, dir)
		if err != nil {
			return "", fmt.Errorf("extracting installer: %w", err)
		}
		log.Logf("extracted installer jar to %s", jar)
		return jar, nil
	}
	if !fileutil.IsXZ(dest) {
		return dest, nil
	}
	jar := strings.TrimSuffix(dest, ".xz")
	if jar == dest {
		jar = dest + ".jar"
	}
	if err := unxz(dest, jar); err != nil {
		return "", fmt.Errorf("decompressing installer: %w", err)
	}
	log.Logf("decompressed installer to %s", jar)
	return jar, nil
}

// unzip extracts the archive into destDir, keeping the entry layout the jar
// expects (it locates its own resources relative to itself). Returns the
// path of the first jar entry.
func unzip(src, destDir string) (jar string, err error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return "", err
	}
	defer r.Close()
	for _, f := range r.File {
		p := fp.Join(destDir, f.Name)
		//reject entries that would land outside destDir
		if !strings.HasPrefix(p, fp.Clean(destDir)+string(os.PathSeparator)) {
			return "", fmt.Errorf("entry %q escapes %s", f.Name, destDir)
		}
		if f.FileInfo().IsDir() {
			if err = os.MkdirAll(p, 0755); err != nil {
				return "", err
			}
			continue
		}
		if err = os.MkdirAll(fp.Dir(p), 0755); err != nil {
			return "", err
		}
		if err = extractOne(f, p); err != nil {
			return "", err
		}
		if jar == "" && strings.HasSuffix(f.Name, ".jar") {
			jar = p
		}
	}
	if jar == "" {
		return "", fmt.Errorf("no jar inside %s", src)
	}
	return jar, nil
}

func extractOne(f *zip.File, dest string) error {
	in, err := f.Open()
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}

func unxz(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	rdr, err := xz.NewReader(in)
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, rdr)
	return err
}
