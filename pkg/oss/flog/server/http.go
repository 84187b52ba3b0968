// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package server

import (
	"net"
	"net/http"

	"github.com/devetry/internal-iot-embedded/pkg/log"

	"github.com/bmizerany/pat"
)

// Http entry point. When used in integ tests, pass non-nil lis and/or srvr to
// specify port to be used and to allow graceful shutdown, respectively.
func (a *allInOneSrvr) ServeHttpWith(lis net.Listener, srvr *http.Server) error {
	if a.store == nil {
		log.Fatalf("nil store")
	}
	if lis != nil {
		a.hlis = lis
	}
	if srvr == nil {
		srvr = &http.Server{}
	}

	mux := pat.New()
	mux.Get("/view/:thing/", http.HandlerFunc(a.view)) //web server
	mux.Get("/recent/", http.HandlerFunc(a.recentHist))
	mux.Get("/thing-state/:thing", http.HandlerFunc(a.thingState))
	mux.Get("/bg", http.HandlerFunc(bg))
	mux.Get("/css", http.HandlerFunc(css))
	mux.Get("/", http.RedirectHandler("/recent/", http.StatusMovedPermanently))

	srvr.Handler = mux
	return srvr.Serve(a.hlis)
}
