// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-house-bids/internal/app"
	"github.com/MKhiriev/go-house-bids/internal/utils"
)

// notFound replaces chi's plain-text 404 so that unknown API routes answer
// with the same JSON shape as every other error.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
}

// methodNotAllowed is chi's 405 handler. chi sets the Allow header before
// calling it.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
