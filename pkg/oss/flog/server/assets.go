// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package server

// Static assets for the web pages. Small enough to live here as consts
// rather than dragging in an asset pipeline.

const mainCss = `body {
	font-family: sans-serif;
	background-image: url("/bg");
	background-repeat: no-repeat;
	background-attachment: fixed;
	background-position: right bottom;
}
table.history { border-collapse: collapse; }
table.history td, table.history th { border: 1px solid #aaa; padding: 2px 8px; }
time.today { font-weight: bold; }
td.unknown, .thing.unknown a { color: #a00; }
td.state { font-family: monospace; }
div.buildId { font-size: x-small; color: #888; }
table.evt td { padding: 1px 6px; vertical-align: top; }
table.evt td.payload { font-family: monospace; white-space: pre-wrap; }
`

const bgSvg = `<svg xmlns="http://www.w3.org/2000/svg" width="220" height="220" viewBox="0 0 220 220">
<g fill="none" stroke="#d8e4ee" stroke-width="6">
<circle cx="110" cy="110" r="30"/>
<circle cx="110" cy="110" r="60"/>
<circle cx="110" cy="110" r="90"/>
</g>
<circle cx="110" cy="110" r="8" fill="#c2d4e4"/>
</svg>
`

const viewTmpl = `<html><head><title>{{.Thing}}</title>
<link href="/css" rel="stylesheet" type="text/css"></head>
<body><h2>{{.Thing}}</h2>
{{with .Group}}<div>Group: {{.}}</div>{{end}}
{{with .Macs.MAC}}<div>MACs:
<ul>{{range .}}<li>{{.}}</li>{{end}}</ul>
</div>{{end}}
<table class=evt>
<tr><th>Time</th><th>Type</th><th>Payload</th></tr>
{{range .Entries.Evt}}<tr><td>{{tsStr .Time}}</td><td>{{.EventType}}</td><td class=payload>{{.Payload}}</td></tr>
{{end}}</table>
<a href="/recent/">Recent activity</a>
</body></html>
`
