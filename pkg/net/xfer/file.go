// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

//Package xfer handles file transfers for the provisioning process. There
//is deliberately no retry here: a failed transfer aborts the run, like any
//other failed external step.
package xfer

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"os"
	fp "path/filepath"
	"strings"
	"syscall"

	futil "github.com/devetry/internal-iot-embedded/pkg/fileutil"
	"github.com/devetry/internal-iot-embedded/pkg/log"
)

//retrieves file, either on local fs or via http/https
func GetFile(url string) (content []byte, err error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		log.Logf("downloading %s", url)
		var res *http.Response
		res, err = http.Get(url)
		if err == nil {
			defer res.Body.Close()
			content, err = io.ReadAll(res.Body)
		}
	} else {
		content, err = os.ReadFile(url)
	}
	return
}

type VerifiableFile interface {
	Verify() error
}
type TransferrableFile interface {
	Get() error
}

var _ TransferrableFile = &TVFile{}
var _ VerifiableFile = &TVFile{}

// TVFile is a transferrable, verifiable file. Sha1 may be empty, in which
// case Verify is a no-op beyond the fsync.
type TVFile struct {
	Dest string
	Src  string
	Sha1 string
	mode os.FileMode
}

func (tvf *TVFile) Basename() string {
	return fp.Base(tvf.Src)
}

//Verify SHA1 of the file at Dest
func (tvf *TVFile) Verify() (err error) {
	/* use fsync to ensure file is written to media */
	var f *os.File
	f, err = os.Open(tvf.Dest)
	if err != nil {
		return
	}
	defer f.Close()
	log.Logf("sync %s before verifying...", tvf.Dest)
	err = syscall.Fsync(int(f.Fd())) //convert Fd() (type uintptr) to int so Fsync() can convert it back. grr.
	if err != nil {
		return
	}
	return verify(tvf.Dest, tvf.Sha1)
}

func verify(fname, sha string) (err error) {
	if sha == "" {
		return nil
	}
	f, err := os.Open(fname)
	if err != nil {
		return
	}
	defer f.Close()

	hasher := sha1.New()
	_, err = io.Copy(hasher, f)
	if err != nil {
		return
	}

	computed := fmt.Sprintf("%x", hasher.Sum(nil))
	if sha != computed {
		err = fmt.Errorf("bad sha1.\nwant %s\ngot  %s\n", sha, computed)
	}
	return
}

//get a file from url (or copy from local path), verifying integrity with sha1
func (tvf *TVFile) Get() (err error) {
	err = os.MkdirAll(fp.Dir(tvf.Dest), 0777)
	if err != nil {
		log.Logf("failed to create dir: %s", err)
	}
	if tvf.mode == 0 {
		tvf.mode = 0666
	}

	if !strings.HasPrefix(tvf.Src, "http://") && !strings.HasPrefix(tvf.Src, "https://") {
		//local file
		err = futil.CopyFile(tvf.Src, tvf.Dest, 0)
		if err != nil {
			return
		}
		return verify(tvf.Dest, tvf.Sha1)
	}
	log.Logf("downloading %s", tvf.Basename())

	var res *http.Response
	res, err = http.Get(tvf.Src)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: %s", tvf.Src, res.Status)
	}
	dst, err := os.OpenFile(tvf.Dest, os.O_RDWR|os.O_CREATE|os.O_TRUNC, tvf.mode)
	if err != nil {
		return err
	}
	defer dst.Close()

	writeDone := make(chan struct{})
	go futil.ShowProgress(writeDone, "Downloading", tvf.Dest)
	defer close(writeDone)

	_, err = io.Copy(dst, res.Body)
	if err != nil {
		return
	}
	return verify(tvf.Dest, tvf.Sha1)
}

//set mode with which file is to be created
func (tvf *TVFile) Mode(m os.FileMode) {
	tvf.mode = m
}
