// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoAddressIsSet = errors.New("no HTTP address is set")
	errNoHandlerIsSet = errors.New("no HTTP handler is set")
)
