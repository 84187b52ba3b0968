// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package mfa

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/log/testlog"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
)

type fakeSTS struct {
	stsiface.STSAPI
	gotSerial, gotCode string
}

func (f *fakeSTS) GetSessionToken(in *sts.GetSessionTokenInput) (*sts.GetSessionTokenOutput, error) {
	f.gotSerial = aws.StringValue(in.SerialNumber)
	f.gotCode = aws.StringValue(in.TokenCode)
	exp := time.Now().Add(time.Hour)
	return &sts.GetSessionTokenOutput{
		Credentials: &sts.Credentials{
			AccessKeyId:     aws.String("ASIATEMP"),
			SecretAccessKey: aws.String("tempsecret"),
			SessionToken:    aws.String("tok"),
			Expiration:      aws.Time(exp),
		},
	}, nil
}

func TestInteractive(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	fake := &fakeSTS{}
	out := new(bytes.Buffer)
	p := &Prompt{
		In:  strings.NewReader("arn:aws:iam::123456789012:mfa/edge\n123456\n"),
		Out: out,
	}
	creds, err := Interactive(p, fake, "")
	if err != nil {
		t.Fatal(err)
	}
	if fake.gotSerial != "arn:aws:iam::123456789012:mfa/edge" {
		t.Errorf("serial: %q", fake.gotSerial)
	}
	if fake.gotCode != "123456" {
		t.Errorf("code: %q", fake.gotCode)
	}
	if creds.AccessKeyID != "ASIATEMP" || creds.SessionToken != "tok" {
		t.Errorf("unexpected creds %+v", creds)
	}
	if creds.Expired() {
		t.Error("fresh credentials reported expired")
	}
	if !strings.Contains(out.String(), "MFA device ARN") {
		t.Errorf("prompt text: %q", out.String())
	}
}

func TestInteractiveConfiguredSerial(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	fake := &fakeSTS{}
	out := new(bytes.Buffer)
	//only the code on stdin; ARN comes from config
	p := &Prompt{In: strings.NewReader("654321\n"), Out: out}
	_, err := Interactive(p, fake, "arn:aws:iam::123456789012:mfa/cfg")
	if err != nil {
		t.Fatal(err)
	}
	if fake.gotSerial != "arn:aws:iam::123456789012:mfa/cfg" {
		t.Errorf("serial: %q", fake.gotSerial)
	}
	if strings.Contains(out.String(), "ARN") {
		t.Error("should not prompt for ARN when configured")
	}
}

func TestInteractiveEmptyCode(t *testing.T) {
	tlog := testlog.NewTestLog(t, true, false)
	defer tlog.Freeze()
	p := &Prompt{In: strings.NewReader("\n"), Out: new(bytes.Buffer)}
	_, err := Interactive(p, &fakeSTS{}, "arn:aws:iam::123456789012:mfa/cfg")
	if err == nil {
		t.Error("want error for empty code")
	}
}
