// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kenryalonzo/eventdev/internal/platform/apperr"
	"github.com/kenryalonzo/eventdev/internal/platform/ctxutil"
	"github.com/kenryalonzo/eventdev/internal/platform/sec"
	"github.com/kenryalonzo/eventdev/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter (slug/key) from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Admin extracts the verified admin claims from the request context.

Returns nil if the request carries no admin token.
*/
func Admin(request *http.Request) *sec.AdminClaims {
	return ctxutil.GetAdmin(request.Context())
}

/*
RequiredAdmin ensures the request carries a verified admin token.

Returns:
  - *sec.AdminClaims: The verified admin claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredAdmin(request *http.Request) (*sec.AdminClaims, error) {

	// Get admin claims
	claims := ctxutil.GetAdmin(request.Context())

	// If no admin token was presented, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Admin authentication required")
	}

	return claims, nil
}
