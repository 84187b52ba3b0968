// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package net

import (
	"net"

	"github.com/devetry/internal-iot-embedded/pkg/log"

	"github.com/vishvananda/netlink"
)

// Assign the given IP to the given device. Call multiple times to assign
// multiple addresses.
func AssignIP(device string, addr net.IPNet) {
	dev, err := netlink.LinkByName(device)
	if err != nil {
		log.Logf("addr add failed: %s", err)
		return
	}
	err = netlink.AddrAdd(dev, &netlink.Addr{IPNet: &addr})
	if err != nil {
		log.Logf("addr add failed: %s", err)
	}
}

// AssignStatic parses cidr and assigns it to device, bringing the link up
// first if needed. Used for the optional static address in the device
// config.
func AssignStatic(device, cidr string) error {
	ipn, err := IPNetFromCIDR(cidr)
	if err != nil {
		return err
	}
	dev, err := netlink.LinkByName(device)
	if err != nil {
		return err
	}
	if err := netlink.LinkSetUp(dev); err != nil {
		log.Logf("link up %s: %s", device, err)
	}
	return netlink.AddrAdd(dev, &netlink.Addr{IPNet: &ipn.IPNet})
}
