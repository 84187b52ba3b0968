// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

//go:build !release
// +build !release

package server

import (
	"fmt"
	"net"
	"os"
	fp "path/filepath"
	"sync"

	"github.com/devetry/internal-iot-embedded/pkg/common/rlog"
	"github.com/devetry/internal-iot-embedded/pkg/oss/flog/pb"
)

var mockOnce sync.Once

//mock impl, stays in memory
func UseMockImpl() { mockOnce.Do(func() { rlog.SetMockImpl(&mocker{}) }) }

type mocker struct{}

func (m *mocker) MockServer(f rlog.Fataler, tmpDir string) rlog.MockSrvr {
	return m.MockServerAt(f, tmpDir, ":0")
}

func (*mocker) MockServerAt(f rlog.Fataler, tmpdir, port string) rlog.MockSrvr {
	PrintDir = fp.Join(tmpdir, "print")
	err := os.MkdirAll(PrintDir, 0755)
	if err != nil {
		f.Fatal(err)
	}
	ms := &MockSrvr{
		allInOneSrvr: allInOneSrvr{
			store: newMockStore(),
		},
	}
	ms.starting.Add(1)
	go ms.ServeAt(port)
	ms.starting.Wait()
	return ms
}

type MockSrvr struct {
	allInOneSrvr
}

func (ms *MockSrvr) CheckFinished(thing, stage string) bool {
	var ps pb.ProcessState
	switch stage {
	case "provision":
		ps = pb.ProcessState_PROV_SUCCEEDED
	default:
		fmt.Printf("unknown stage %s\n", stage)
		return false
	}

	ms.ah.Lock()
	defer ms.ah.Unlock()
	for _, e := range ms.ah.entries {
		if e.thing == thing {
			return e.state == ps
		}
	}
	return false
}

func (ms *MockSrvr) Port() int {
	return ms.lis.Addr().(*net.TCPAddr).Port
}

func (ms *MockSrvr) Ids() []string { return ms.allInOneSrvr.store.Ids() }

func (ms *MockSrvr) Entries(id string) string {
	entries, _ := ms.allInOneSrvr.store.RetrieveLog(id)
	var s string
	for _, le := range entries.Evt {
		s += fmt.Sprintf("%10s %s [%10s] %s\n", le.Thing, tsStr(le.Time), le.EventType.String(), le.Payload)
	}
	return s
}

//mockStore: an in-memory store for mocking
type mockStore struct {
	sync.Mutex
	macs   map[string]pb.MACs
	groups map[string]string
	logs   map[string]pb.LogEvents
}

func newMockStore() *mockStore {
	return &mockStore{
		macs:   make(map[string]pb.MACs),
		groups: make(map[string]string),
		logs:   make(map[string]pb.LogEvents),
	}
}

var _ Persister = (*mockStore)(nil)

//return all ids that have been used when logging or reporting macs/group
func (ms *mockStore) Ids() []string {
	//use a map to deduplicate
	ids := make(map[string]interface{})
	ms.Lock()
	defer ms.Unlock()
	for k := range ms.macs {
		ids[k] = nil
	}
	for k := range ms.groups {
		ids[k] = nil
	}
	for k := range ms.logs {
		ids[k] = nil
	}
	var idlist []string
	for k := range ids {
		idlist = append(idlist, k)
	}
	return idlist
}

func (ms *mockStore) Close() error {
	ms.Lock()
	defer ms.Unlock()
	ms.macs = nil
	ms.groups = nil
	ms.logs = nil
	return nil
}
func (ms *mockStore) RetrieveLog(id string) (pb.LogEvents, error) {
	ms.Lock()
	defer ms.Unlock()
	return ms.logs[id], nil
}
func (ms *mockStore) StoreLog(id string, le *pb.LogEvents) error {
	ms.Lock()
	defer ms.Unlock()
	l := ms.logs[id]
	l.Evt = append(l.Evt, le.Evt...)
	ms.logs[id] = l
	return nil
}
func (ms *mockStore) RetrieveMacs(id string) (m pb.MACs, err error) {
	ms.Lock()
	defer ms.Unlock()
	return ms.macs[id], nil
}
func (ms *mockStore) StoreMacs(id string, m pb.MACs) error {
	ms.Lock()
	defer ms.Unlock()
	ms.macs[id] = m
	return nil
}
func (ms *mockStore) RetrieveGroup(id string) (string, error) {
	ms.Lock()
	defer ms.Unlock()
	return ms.groups[id], nil
}
func (ms *mockStore) StoreGroup(id, group string) error {
	ms.Lock()
	defer ms.Unlock()
	ms.groups[id] = group
	return nil
}
