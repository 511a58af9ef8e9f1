// Package api holds the stable wire types for memcheck outputs.
package api

// ReportV1 is the stable JSON schema for one exerciser run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Register-sized values are rendered as 0x-prefixed hex strings so reports
// read like the address map they describe.
type ReportV1 struct {
	Seed       string  `json:"seed"`
	Polynomial string  `json:"polynomial"`
	Engine     string  `json:"engine"` // "table" | "bit-serial"
	Workers    int     `json:"workers"`
	Iterations int     `json:"iterations"` // 0 = ran until cancelled
	First      string  `json:"first"`
	Last       string  `json:"last"`
	Words      int     `json:"words"`
	BitErrors  uint64  `json:"bit_errors"`
	Status     string  `json:"status"` // "pass" | "fail"
	DurationMS float64 `json:"duration_ms"`
	Pattern    string  `json:"pattern,omitempty"` // xxhash64 of the expected stream
	Locked     bool    `json:"locked,omitempty"`
}
