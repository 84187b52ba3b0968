// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package net

import (
	"encoding/json"
	"testing"
)

func TestIPNetFromCIDR(t *testing.T) {
	ipn, err := IPNetFromCIDR("192.168.7.20/24")
	if err != nil {
		t.Fatal(err)
	}
	if ipn.String() != "192.168.7.20/24" {
		t.Errorf("ip lost in parse: %s", ipn.String())
	}

	//bare addresses get a host mask
	ipn, err = IPNetFromCIDR("10.0.0.1")
	if err != nil {
		t.Fatal(err)
	}
	if ipn.String() != "10.0.0.1/32" {
		t.Errorf("want /32, got %s", ipn.String())
	}

	_, err = IPNetFromCIDR("not-an-address")
	if err == nil {
		t.Error("want parse error")
	}
}

func TestIPNetJson(t *testing.T) {
	ipn, err := IPNetFromCIDR("192.168.7.20/24")
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(&ipn)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"192.168.7.20/24"` {
		t.Errorf("marshal: %s", data)
	}
	var back IPNet
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(ipn) {
		t.Errorf("roundtrip: %s != %s", back.String(), ipn.String())
	}
}
