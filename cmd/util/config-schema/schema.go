// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

// Config-schema generates a json schema describing the device config keys,
// for editor tooling and fleet-side validation.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/devetry/internal-iot-embedded/pkg/provision/edgecfg"

	"github.com/alecthomas/jsonschema"
)

const Warn = `WARNING:
	the config file itself is key=value, not json; this schema describes
	the keys and which are required, for tooling that works on the json
	rendition
`

func main() {
	fmt.Fprint(os.Stderr, Warn)
	schem := jsonschema.Reflect(&edgecfg.Config{})
	data, err := json.MarshalIndent(schem, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return
	}
	fmt.Printf("%s\n", data)
}
