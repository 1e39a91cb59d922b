package models

// RootResponse is the response for GET /.
type RootResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// SectionRoute describes one section endpoint in the GET /sections catalog.
type SectionRoute struct {
	Path    string `json:"path"`
	Site    string `json:"site"`
	Heading string `json:"heading"`
}

// SectionsResponse is the response for GET /sections.
type SectionsResponse struct {
	Sections []SectionRoute `json:"sections"`
}

// SectionStatus reports whether a section's content block could be located
// on the live page, along with a structural fingerprint of that block.
type SectionStatus struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`

	// Fingerprint is the hex SimHash of the block's tag/class structure.
	// Empty when the block was not found.
	Fingerprint string `json:"fingerprint,omitempty"`

	// Reason is the error sentinel text when Found is false.
	Reason string `json:"reason,omitempty"`
}

// StatusResponse is the response for GET /status/sections.
type StatusResponse struct {
	Sections []SectionStatus `json:"sections"`
}
