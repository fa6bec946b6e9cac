// Package fixtures embeds the demo data bundle: three business owners, seven
// hotels, fourteen rooms and a few months of bookings, reviews and settlements.
package fixtures

import _ "embed"

// Demo is the Extended JSON demo bundle. Its dates are relative to the
// bundle's anchor and are rebased when loaded.
//
//go:embed demo.json
var Demo []byte
