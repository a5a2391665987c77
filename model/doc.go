// Package model defines stable boundary types for API layers.
//
// The registry's internal fixed-width types (identities, labels, flat
// curves) are projected into plain strings and integers here. These structs
// are the only types intended for direct JSON serialization by consumers.
package model
