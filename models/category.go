package models

// Category is one entry of the configured category table, keyed by a short
// client-facing name and resolving to the upstream category identifier.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
