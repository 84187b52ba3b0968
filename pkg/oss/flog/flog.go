// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Package flog is a grpc-based remote logger and record keeper for the
// provisioning process. One connection serves both roles.
package flog

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/common"
	"github.com/devetry/internal-iot-embedded/pkg/common/rkeep"
	"github.com/devetry/internal-iot-embedded/pkg/common/rlog"
	"github.com/devetry/internal-iot-embedded/pkg/log"
	"github.com/devetry/internal-iot-embedded/pkg/log/flags"
	"github.com/devetry/internal-iot-embedded/pkg/oss/flog/pb"

	empty "github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
)

const LogIdent = "FLog"

var rlOnce sync.Once

func UseRLoggerSetup() { rlOnce.Do(func() { rlog.SetImpl(&RLogSetup{}) }) }

type RLogSetup struct{}

func (*RLogSetup) Setup(endpoint, id string) error {
	_, err := AddFLog(endpoint, id, 0)
	return err
}

// If UseRKeeper is called before flog is set up by AddFLog, can't actually
// set up as a recordkeeper because the same Flg is needed. Workaround by
// setting this bool, which will cause recordkeeper to be set up when
// AddFLog is called.
var initRKeep bool

func AddFLog(endpoint, thing string, flags flags.Flag) (AllInOne, error) {
	ctx := context.Background()
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(dialCtx, endpoint,
		grpc.WithInsecure(),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, err
	}

	f := &Flg{
		flags: flags,
		ctx:   ctx,
		conn:  conn,
		thing: thing,
		lc:    pb.NewLogServiceClient(conn),
		rc:    pb.NewRecordKeeperClient(conn),
		tc:    pb.NewTimekeeperClient(conn),
	}
	if initRKeep {
		rkeep.SetImpl(f)
	}
	return f, log.AddLogger(f, false)
}

type Flg struct {
	d        common.Device
	thing    string
	notfirst bool
	flags    flags.Flag
	next     log.StackableLogger
	ctx      context.Context
	conn     *grpc.ClientConn
	lc       pb.LogServiceClient
	rc       pb.RecordKeeperClient
	tc       pb.TimekeeperClient
}

// Must be callable even when conn is not open, as something may try to log
// after Finalize() at shutdown.
func (f *Flg) AddEntry(e log.LogEntry) {
	if f.conn != nil && f.lc != nil && e.Flags&flags.NotWire == 0 {
		if f.flags == 0 || e.Flags&f.flags > 0 {
			if !f.notfirst {
				f.notfirst = true
				f.reportState("start")
			}
			f.addEntry(e)
		}
	} else {
		if f.lc == nil {
			fmt.Fprintln(os.Stderr, "flog: nil lc")
		}
		if f.conn == nil {
			fmt.Fprintln(os.Stderr, "flog: nil conn")
		}
	}
	if f.next != nil {
		f.next.AddEntry(e)
	}
}
func (f *Flg) addEntry(e log.LogEntry) {
	in := &pb.LogEvent{
		Thing: f.thing,
		Time:  &pb.Timestamp{TS: e.Time.UnixNano()},
	}
	if len(e.Args) > 0 {
		in.Payload = fmt.Sprintf(e.Msg, e.Args...)
	} else {
		in.Payload = e.Msg
	}
	switch {
	case e.Flags&flags.Fatal > 0:
		in.EventType = pb.EvtType_ERROR
	case e.Flags&flags.EndUser > 0:
		in.EventType = pb.EvtType_MSG
	default:
		in.EventType = pb.EvtType_LOG
	}
	_, err := f.lc.Log(f.ctx, in)
	if err != nil {
		log.FlaggedLogf(flags.NotWire, "error logging: %s", err)
	}
}

func (f *Flg) Finalize() {
	if f.conn != nil {
		err := f.conn.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "flog conn close: err %s", err)
		}
		f.conn = nil
	}
	if f.next != nil {
		f.next.Finalize()
	}
}

func (f *Flg) ForwardTo(sl log.StackableLogger) {
	if f.next == nil || sl == nil {
		f.next = sl
	} else {
		panic("next already set")
	}
}

func (f *Flg) Ident() string             { return LogIdent }
func (f *Flg) Next() log.StackableLogger { return f.next }

var rkOnce sync.Once

func UseRKeeper() {
	rkOnce.Do(func() {
		flg := log.FindInStack(LogIdent)
		if flg != nil {
			rkeep.SetImpl(flg.(*Flg))
		} else {
			initRKeep = true
		}
	})
}

type AllInOne interface {
	log.StackableLogger
	rkeep.RecordKeeper
}

func (f *Flg) SetDevice(d common.Device) {
	f.d = d
	if f.thing == "" {
		f.thing = d.Id()
	}
}

func (f *Flg) GetTime() string {
	log.Logf("getting time")
	if f.tc == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil tc")
		return ""
	}
	if f.conn == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil conn")
		return ""
	}
	resp, err := f.tc.GetTime(f.ctx, &empty.Empty{})
	if err != nil {
		f.handleGrpcErr(nil, err)
		return ""
	}
	t := time.Unix(0, resp.TS)
	return t.Format("2006-01-02 15:04:05")
}

func (f *Flg) ReportGroup(g string) {
	if f.rc == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil rc")
		return
	}
	if f.conn == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil conn")
		return
	}
	resp, err := f.rc.ReportGroup(f.ctx, &pb.ThingGroup{Thing: f.thing, Group: g})
	f.handleGrpcErr(resp, err)
}

func pstate(state string) pb.ProcessState {
	switch state {
	case "start":
		return pb.ProcessState_PROV_STARTED
	case "fail":
		return pb.ProcessState_PROV_FAILED
	case "finish":
		return pb.ProcessState_PROV_SUCCEEDED
	}
	return pb.ProcessState_UNKNOWN
}

func (f *Flg) reportState(state string) {
	if f.rc == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil rc")
		return
	}
	if f.conn == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil conn")
		return
	}
	f.handleGrpcErr(f.rc.ReportState(f.ctx, &pb.ProcessStage{
		Thing: f.thing,
		State: pstate(state),
	}))
}

// ReportStage logs the named step of the process. Unlike start/fail/finish
// it carries no state transition, just an annotation in the device log.
func (f *Flg) ReportStage(stage string) {
	if f.lc == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil lc")
		return
	}
	if f.conn == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil conn")
		return
	}
	f.handleGrpcErr(f.lc.Log(f.ctx, &pb.LogEvent{
		Thing:     f.thing,
		Time:      &pb.Timestamp{TS: time.Now().UnixNano()},
		Payload:   stage,
		EventType: pb.EvtType_STATE,
	}))
}

func (f *Flg) ReportFailure(msg string) {
	if f.lc == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil lc")
		return
	}
	if f.conn == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil conn")
		return
	}
	f.handleGrpcErr(f.lc.Log(f.ctx, &pb.LogEvent{
		Thing:     f.thing,
		Time:      &pb.Timestamp{TS: time.Now().UnixNano()},
		Payload:   msg,
		EventType: pb.EvtType_ERROR,
	}))
	f.reportState("fail")
}
func (f *Flg) ReportFinished(msg string) {
	if f.lc == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil lc")
		return
	}
	if f.conn == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil conn")
		return
	}
	f.handleGrpcErr(f.lc.Log(f.ctx, &pb.LogEvent{
		Thing:     f.thing,
		Time:      &pb.Timestamp{TS: time.Now().UnixNano()},
		Payload:   msg,
		EventType: pb.EvtType_MSG,
	}))
	f.reportState("finish")
}

func (f *Flg) StoreMACs(m []string) {
	if f.rc == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil rc")
		return
	}
	if f.conn == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil conn")
		return
	}
	resp, err := f.rc.StoreMACs(f.ctx, &pb.MACs{Thing: f.thing, MAC: m})
	f.handleGrpcErr(resp, err)
}
func (f *Flg) StoreDocument(name string, doctype rkeep.PrintedDocType, body []byte) {
	if f.rc == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil rc")
		return
	}
	if f.conn == nil {
		log.FlaggedLogf(flags.NotWire, "flog: nil conn")
		return
	}
	resp, err := f.rc.StoreDocument(f.ctx, &pb.Document{
		Thing:   f.thing,
		Name:    name,
		Doctype: string(doctype),
		Body:    body,
	})
	f.handleGrpcErr(resp, err)
}

func (f *Flg) handleGrpcErr(resp *pb.GenericResponse, err error) {
	if err != nil {
		log.FlaggedLogf(flags.NotWire|flags.Fatal, "grpc: error %s, resp %#v", err, resp)
	}
}
