// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response messages of the go-house-bids API.
//
// Every Msg* constant is written as {"message": ...} by the HTTP handlers,
// and the command-line client prints the success ones after a command
// completes. Keeping them in one place keeps the wording identical on both
// sides.
package app

// Success acknowledgements.
const (
	MsgRegistered      = "Registered successfully"
	MsgHouseAdded      = "House added successfully"
	MsgBidPlaced       = "Bid placed successfully"
	MsgUsernameUpdated = "Username updated successfully"
)

// Error messages.
const (
	MsgNoTokenProvided     = "No token provided"
	MsgTokenIsExpired      = "Token is expired"
	MsgInvalidToken        = "Invalid token"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgInvalidJSON         = "Invalid JSON was passed"
	MsgInvalidForm         = "Invalid form data"
	MsgUploadTooLarge      = "Upload is too large"
	MsgInvalidDataProvided = "Invalid data provided"
	MsgUsernameExists      = "Username already exists"
	MsgUserNotFound        = "User not found"
	MsgHouseNotFound       = "House not found"
	MsgPhotoNotFound       = "Photo not found"
	MsgConfigNotFound      = "Config not found"
	MsgNotFound            = "Not found"
	MsgMethodNotAllowed    = "Method not allowed"

	// MsgInternalServerError replaces the text of every 5xx error.
	MsgInternalServerError = "Internal Server Error"
)
