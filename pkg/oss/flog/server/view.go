// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package server

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/devetry/internal-iot-embedded/pkg/oss/flog/pb"
)

type devStruct struct {
	Thing   string
	Group   string
	Macs    pb.MACs
	Entries pb.LogEvents
}

var viewTemplate *template.Template

func init() {
	funcMap := template.FuncMap{
		"tsStr": tsStr,
	}
	viewTemplate = template.Must(template.New("view").Funcs(funcMap).Parse(viewTmpl))
}

func css(w http.ResponseWriter, req *http.Request) {
	now := time.Now()
	w.Header().Set("Content-Type", "text/css")
	_, err := w.Write([]byte(mainCss))
	if err != nil {
		fmt.Println("error", err)
	}
	if now.Month() == 4 && (now.Day() == 1 || (now.Day() < 4 && now.Weekday() == time.Monday)) {
		//correct for foolish axial tilt in 4th month
		_, err = w.Write([]byte(`body{transform:rotate(.2deg);margin-left:15em;}`))
		if err != nil {
			fmt.Println("error", err)
		}
	}
}

func bg(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	_, err := w.Write([]byte(bgSvg))
	if err != nil {
		fmt.Println("error", err)
	}
}

func (a *allInOneSrvr) view(w http.ResponseWriter, req *http.Request) {
	var ds devStruct
	var err error
	ds.Thing = req.URL.Query().Get(":thing")
	ds.Macs, err = a.store.RetrieveMacs(ds.Thing)
	if err != nil {
		fmt.Fprintf(w, "<br>ERROR %s", err)
	}
	ds.Group, err = a.store.RetrieveGroup(ds.Thing)
	if err != nil {
		fmt.Fprintf(w, "<br>ERROR %s", err)
	}
	ds.Entries, err = a.store.RetrieveLog(ds.Thing)
	if err != nil {
		fmt.Fprintf(w, "<br>ERROR %s", err)
	}
	err = viewTemplate.Execute(w, ds)
	if err != nil {
		fmt.Fprintf(w, "<br>error: %s", err)
	}
}
