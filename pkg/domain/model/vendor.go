package model

// VendorRecord is one row of the vendor questionnaire table.
// Fields maps question keys to raw answers and is read-only to the engine.
type VendorRecord struct {
	Name   string
	Fields map[string]Answer
}
