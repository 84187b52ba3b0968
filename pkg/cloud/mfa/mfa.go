// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Package mfa performs the interactive multi-factor step: it reads the MFA
// device ARN and a one-time code, then trades the long-lived key for
// temporary session credentials via STS.
package mfa

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/common"
	"github.com/devetry/internal-iot-embedded/pkg/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sts"
	"github.com/aws/aws-sdk-go/service/sts/stsiface"
)

// Prompt reads answers from In and writes questions to Out. Answers are
// whitespace-trimmed single lines.
type Prompt struct {
	In  io.Reader
	Out io.Writer
	rdr *bufio.Reader
}

func (p *Prompt) Ask(q string) (string, error) {
	fmt.Fprintf(p.Out, "%s: ", q)
	if p.rdr == nil {
		p.rdr = bufio.NewReader(p.In)
	}
	line, err := p.rdr.ReadString('\n')
	if err != nil && len(line) == 0 {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// SessionDuration is how long the temporary credentials last. The vendor
// installer finishes well within an hour; anything longer just widens the
// exposure window.
const SessionDuration = time.Hour

// NewSTS returns an STS client using the given long-lived key. Split out
// so tests can substitute a stsiface.STSAPI fake.
func NewSTS(keyID, secret, region string) (stsiface.STSAPI, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(keyID, secret, ""),
	})
	if err != nil {
		return nil, err
	}
	return sts.New(sess), nil
}

// GetSessionToken exchanges serial + one-time code for temporary
// credentials.
func GetSessionToken(api stsiface.STSAPI, serial, code string) (common.Credentials, error) {
	out, err := api.GetSessionToken(&sts.GetSessionTokenInput{
		DurationSeconds: aws.Int64(int64(SessionDuration.Seconds())),
		SerialNumber:    aws.String(serial),
		TokenCode:       aws.String(code),
	})
	if err != nil {
		return common.Credentials{}, fmt.Errorf("get session token: %w", err)
	}
	c := out.Credentials
	if c == nil {
		return common.Credentials{}, fmt.Errorf("get session token: empty credentials in response")
	}
	return common.Credentials{
		AccessKeyID:     aws.StringValue(c.AccessKeyId),
		SecretAccessKey: aws.StringValue(c.SecretAccessKey),
		SessionToken:    aws.StringValue(c.SessionToken),
		Expiration:      aws.TimeValue(c.Expiration),
	}, nil
}

// Interactive runs the whole MFA exchange. serial may be preconfigured;
// when empty it is prompted for, as the one-time code always is.
func Interactive(p *Prompt, api stsiface.STSAPI, serial string) (common.Credentials, error) {
	var err error
	if serial == "" {
		serial, err = p.Ask("Enter the MFA device ARN")
		if err != nil {
			return common.Credentials{}, err
		}
	}
	if serial == "" {
		return common.Credentials{}, fmt.Errorf("no MFA device ARN given")
	}
	code, err := p.Ask("Enter the one-time code")
	if err != nil {
		return common.Credentials{}, err
	}
	if code == "" {
		return common.Credentials{}, fmt.Errorf("no one-time code given")
	}
	creds, err := GetSessionToken(api, serial, code)
	if err != nil {
		return common.Credentials{}, err
	}
	log.Logf("MFA session credentials issued, expire %s", creds.Expiration.Format(log.TimestampLayout))
	return creds, nil
}
