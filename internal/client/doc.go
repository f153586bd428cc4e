// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of go-house-bids.
//
// Each command maps to one call on [adapter.ServerAdapter]; results are
// printed to the configured writer as indented JSON.
package client
