// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

//Package common holds small types shared between the provisioning flow and
//the pluggable record keeping / remote logging implementations. Keeping
//them here avoids import cycles between those packages.
package common

import "time"

// Device describes the unit being provisioned. ThingName doubles as the
// identifier under which logs and records are stored.
type Device struct {
	ThingName  string
	ThingGroup string
	//local account the edge runtime runs as
	User   string
	Region string
}

// Id returns the identifier used for record keeping.
func (d Device) Id() string { return d.ThingName }

// Credentials are temporary cloud credentials, e.g. from an MFA session.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
}

// Expired returns true once the credentials are no longer usable.
func (c Credentials) Expired() bool {
	return !c.Expiration.IsZero() && time.Now().After(c.Expiration)
}
