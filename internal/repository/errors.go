// Package repository holds the in-memory catalogues behind each provider.
// The sentinel errors below let handlers map lookups that miss onto a
// uniform 404 response.
package repository

import "errors"

// ErrProductNotFound is returned when no listing has the requested id.
var ErrProductNotFound = errors.New("product not found")

// ErrSchemeNotFound is returned when no scheme has the requested id.
var ErrSchemeNotFound = errors.New("scheme not found")

// ErrSoilTypeUnknown is returned when a soil label is absent from the
// static soil table.
var ErrSoilTypeUnknown = errors.New("soil type not recognized")
