// Copyright (C) 2021-2023 the Devetry IoT Authors. All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//
// SPDX-License-Identifier: BSD-3-Clause
//

package provision

import (
	"github.com/devetry/internal-iot-embedded/pkg/oss/flog"
)

func init() {
	flog.UseRLoggerSetup()
	flog.UseRKeeper()
}
