// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

//Package net checks and configures the device's network before any cloud
//interaction happens.
package net

import (
	"bytes"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/log"
)

// IPNet is a wrapper around net.IPNet allowing us to extend the functionality.
type IPNet struct {
	net.IPNet
}

func (ip *IPNet) MarshalJSON() (data []byte, err error) {
	data = []byte(fmt.Sprintf(`"%s"`, ip.String()))
	return
}

func (ip *IPNet) UnmarshalJSON(data []byte) error {
	i := strings.Trim(string(data), `"`)
	ipn, err := IPNetFromCIDR(i)
	if err == nil {
		ip.IPNet = ipn.IPNet
	}
	return err
}
func (l IPNet) Equal(r IPNet) bool {
	if !bytes.Equal(l.Mask, r.Mask) {
		return false
	}
	return l.IPNet.IP.Equal(r.IPNet.IP)
}

// IPNetFromCIDR converts an address string in CIDR notation into an IPNet.
// If you use net.ParseCIDR directly, the returned IPNet contains the subnet
// and mask, not the ip and mask.
func IPNetFromCIDR(cidr string) (IPNet, error) {
	if !strings.Contains(cidr, "/") {
		if strings.Contains(cidr, ":") {
			//ipv6
			cidr += "/128"
		} else {
			cidr += "/32"
		}
	}
	ip := IPNet{}
	addr, ipnet, err := net.ParseCIDR(cidr)
	if err == nil {
		ip.IP = addr
		ip.Mask = ipnet.Mask //ipnet.IP is the subnet
	}
	return ip, err
}

// HasIpv4 returns true if the given interface has an ipv4 address.
func HasIpv4(netif *net.Interface) bool {
	addrs, _ := netif.Addrs()
	for _, addr := range addrs {
		ip, _, err := net.ParseCIDR(addr.String())
		if err != nil {
			log.Logf("error %s parsing interface %s address %s", err, netif.Name, addr.String())
			continue
		}
		if ip.To4() != nil {
			return true
		}
	}
	return false
}

// AnyIpv4 returns true if any non-loopback interface has an ipv4 address.
func AnyIpv4() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Logf("listing interfaces: %s", err)
		return false
	}
	for i := range ifaces {
		if ifaces[i].Flags&net.FlagLoopback != 0 {
			continue
		}
		if HasIpv4(&ifaces[i]) {
			return true
		}
	}
	return false
}

// WaitForIpv4 waits for any non-loopback interface to gain an ipv4
// address, or until the wait time has expired.
func WaitForIpv4(wait time.Duration) (success bool) {
	stopTime := time.Now().Add(wait)
	for {
		if AnyIpv4() {
			return true
		}
		if !time.Now().Before(stopTime) {
			return false
		}
		time.Sleep(time.Second)
	}
}

// MACs returns the hardware addresses of all non-loopback interfaces, for
// record keeping.
func MACs() []string {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Logf("listing interfaces: %s", err)
		return nil
	}
	var macs []string
	for _, i := range ifaces {
		if i.Flags&net.FlagLoopback != 0 || len(i.HardwareAddr) == 0 {
			continue
		}
		macs = append(macs, i.HardwareAddr.String())
	}
	return macs
}
