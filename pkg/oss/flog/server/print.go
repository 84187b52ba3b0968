// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package server

import (
	"context"
	"fmt"
	"os"
	fp "path/filepath"
	"sync"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/common/rkeep"
	"github.com/devetry/internal-iot-embedded/pkg/oss/flog/pb"
)

func (a *allInOneSrvr) addLogEvent(le *pb.LogEvent) error {
	if a.store == nil {
		fmt.Printf("log with nil store: %s", le)
		return nil
	}
	return a.store.StoreLog(le.Thing, &pb.LogEvents{Evt: []*pb.LogEvent{le}})
}

func (a *allInOneSrvr) StoreDocument(ctx context.Context, doc *pb.Document) (*pb.GenericResponse, error) {
	now := time.Now()
	if len(doc.Name) == 0 || len(doc.Doctype) == 0 {
		err := fmt.Errorf("missing filename or doc type, got %s and %s", doc.Name, doc.Doctype)
		resp := &pb.GenericResponse{
			EventType: pb.EvtType_ERROR,
			ErrMsg:    err.Error(),
		}
		return resp, err
	}
	p := PrintableDoc{Document: doc}

	hold := (rkeep.PrintedDocType(doc.Doctype) == rkeep.PrintedDocSummary) && (SummaryHold > 0) && HoldForPrinting != nil
	if hold {
		HoldForPrinting <- p
	} else {
		err := p.print()
		if err != nil {
			err := fmt.Errorf("failed to print: %s", err)
			return &pb.GenericResponse{EventType: pb.EvtType_ERROR, ErrMsg: err.Error()}, err
		}
	}
	msg := fmt.Sprintf("received %d byte file %s for %s printing", len(doc.Body), doc.Name, doc.Doctype)
	if hold {
		msg += " (on hold for provisioning success; expires in " + SummaryHold.String() + ")"
	}
	le := &pb.LogEvent{
		Thing:     doc.Thing,
		EventType: pb.EvtType_DOC,
		Time:      &pb.Timestamp{TS: now.UnixNano()},
		Payload:   msg,
	}
	err := a.addLogEvent(le)
	if err != nil {
		fmt.Println(err)
		return &pb.GenericResponse{EventType: pb.EvtType_ERROR, ErrMsg: err.Error()}, err
	}
	return &pb.GenericResponse{EventType: pb.EvtType_SUCCESS}, nil
}

type PrintableDoc struct {
	Expires time.Time
	*pb.Document
}

func (p *PrintableDoc) print() error {
	return os.WriteFile(fp.Join(PrintDir, p.Name), p.Body, 0644)
}

type HeldDocs struct {
	a    *allInOneSrvr
	docs []*PrintableDoc
	mtx  sync.Mutex
	wg   *sync.WaitGroup
}

func (h *HeldDocs) patrol(done chan struct{}) {
	defer h.wg.Done()
	if SummaryHold == 0 {
		fmt.Println("Hold is 0 (indefinite). Docs will stick around in memory until service restart!")
		return
	}
loop:
	for {
		select {
		case <-done:
			break loop
		case <-time.After(SummaryHold / 2):
			h.patrolNow()
		}
	}
}
func (h *HeldDocs) patrolNow() {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	now := time.Now()
	l := len(h.docs)
	for i := 0; i < l; {
		if h.docs[i].Expires.Before(now) {
			msg := fmt.Sprintf("document %s has expired - discarding", h.docs[i].Name)
			err := h.a.addLogEvent(&pb.LogEvent{
				Thing:     h.docs[i].Thing,
				Time:      &pb.Timestamp{TS: now.Unix()},
				EventType: pb.EvtType_DOC_ERR,
				Payload:   msg,
			})
			if err != nil {
				fmt.Println(err)
			}
			h.docs = append(h.docs[:i], h.docs[i+1:]...)
			l--
			continue
		}
		i++
	}
}

func (h *HeldDocs) release(thing string) {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	l := len(h.docs)
	for i := 0; i < l; {
		if h.docs[i].Thing == thing {
			d := h.docs[i]
			err := d.print()
			if err != nil {
				fmt.Println("Releasing", d.Name, "for printing: error", err)
			}
			msg := fmt.Sprintf("Releasing %s for printing", d.Name)
			var msgType pb.EvtType = pb.EvtType_DOC
			if err != nil {
				msg += fmt.Sprintf(": error %s", err)
				msgType = pb.EvtType_DOC_ERR
			}
			now := time.Now().UnixNano()
			err = h.a.addLogEvent(&pb.LogEvent{
				Thing:     d.Thing,
				EventType: msgType,
				Time:      &pb.Timestamp{TS: now},
				Payload:   msg,
			})
			if err != nil {
				fmt.Println(err)
			}
			h.docs = append(h.docs[:i], h.docs[i+1:]...)
			l--
			continue
		}
		i++
	}
}
func (h *HeldDocs) add(doc *PrintableDoc) {
	doc.Expires = time.Now().Add(SummaryHold)
	h.mtx.Lock()
	defer h.mtx.Unlock()
	h.docs = append(h.docs, doc)
}

var ReleaseForPrinting chan string
var HoldForPrinting chan PrintableDoc

func (h *HeldDocs) manage(done chan struct{}) {
	defer h.wg.Done()
loop:
	for {
		select {
		case <-done:
			break loop
		case thing := <-ReleaseForPrinting:
			h.release(thing)
		case doc := <-HoldForPrinting:
			h.add(&doc)
		}
	}
}

// MonitorHolds starts background goroutines to process documents on hold. Set
// SummaryHold before calling.
func (a *allInOneSrvr) MonitorHolds(done chan struct{}) *sync.WaitGroup {
	if done == nil {
		done = make(chan struct{})
	}
	heldDocs := HeldDocs{a: a, wg: &sync.WaitGroup{}}
	heldDocs.wg.Add(2)
	ReleaseForPrinting = make(chan string)
	HoldForPrinting = make(chan PrintableDoc)
	go heldDocs.patrol(done)
	go heldDocs.manage(done)
	return heldDocs.wg
}
