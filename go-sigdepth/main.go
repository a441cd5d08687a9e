// Copyright (C) The Sigdepth Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/seqstats/sigdepth"
)

func main() {
	sigdepth.Main()
}
