// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package server

import (
	"context"
	"net"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/log"
	"github.com/devetry/internal-iot-embedded/pkg/oss/flog/pb"

	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
)

// Grpc entry point. lis and gsrv may be nil, in which case defaults are used.
func (a *allInOneSrvr) ServeGrpcWith(lis net.Listener, gsrv *grpc.Server) error {
	if a.store == nil {
		log.Fatalf("nil store")
	}
	if lis != nil {
		a.glis = lis
	}
	if gsrv == nil {
		gsrv = grpc.NewServer()
	}

	pb.RegisterLogServiceServer(gsrv, a)
	pb.RegisterRecordKeeperServer(gsrv, a)
	pb.RegisterTimekeeperServer(gsrv, a)
	return gsrv.Serve(a.glis)
}

func pberr(err error) (*pb.GenericResponse, error) {
	if err != nil {
		return &pb.GenericResponse{EventType: pb.EvtType_ERROR}, err
	}
	return &pb.GenericResponse{EventType: pb.EvtType_SUCCESS}, nil
}

func ts(t time.Time) *pb.Timestamp {
	return &pb.Timestamp{TS: t.UnixNano()}
}
func tsStr(t *pb.Timestamp) string {
	if t == nil {
		return ""
	}
	return time.Unix(0, t.TS).Format(log.TimestampLayout)
}

//pb.LogServiceServer
func (a *allInOneSrvr) Log(ctx context.Context, evt *pb.LogEvent) (*pb.GenericResponse, error) {
	err := a.store.StoreLog(evt.Thing, &pb.LogEvents{Evt: []*pb.LogEvent{evt}})
	return pberr(err)
}

//pb.RecordKeeperServer
func (a *allInOneSrvr) ReportGroup(ctx context.Context, tg *pb.ThingGroup) (*pb.GenericResponse, error) {
	now := time.Now()
	err := a.addLogEvent(&pb.LogEvent{
		Thing:     tg.Thing,
		EventType: pb.EvtType_GROUP,
		Payload:   tg.Group,
		Time:      ts(now),
	})
	if err == nil {
		err = a.store.StoreGroup(tg.Thing, tg.Group)
	}
	if err == nil {
		a.ah.Lock()
		defer a.ah.Unlock()
		e := a.ah.getent(tg.Thing)
		e.setGroup(tg.Group, now)
	}
	return pberr(err)
}

func (a *allInOneSrvr) ReportState(ctx context.Context, s *pb.ProcessStage) (*pb.GenericResponse, error) {
	now := time.Now()
	err := a.addLogEvent(&pb.LogEvent{
		Thing:     s.Thing,
		EventType: pb.EvtType_STATE,
		Payload:   s.State.String(),
		Time:      ts(now),
	})
	if err == nil {
		a.ah.Lock()
		e := a.ah.getent(s.Thing)
		e.setStage(s.State, now)
		a.ah.Unlock()
	}
	if s.State == pb.ProcessState_PROV_SUCCEEDED && ReleaseForPrinting != nil {
		ReleaseForPrinting <- s.Thing
	}
	return pberr(err)
}

func (a *allInOneSrvr) StoreMACs(ctx context.Context, m *pb.MACs) (*pb.GenericResponse, error) {
	return pberr(a.store.StoreMacs(m.Thing, *m))
}

//pb.TimekeeperServer
func (a *allInOneSrvr) GetTime(ctx context.Context, _ *empty.Empty) (*pb.Timestamp, error) {
	return ts(time.Now()), nil
}
