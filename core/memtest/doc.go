// Package memtest runs the parallel self-checking memory exercise. It never
// imports cli, app, or output; keep it domain-only.
//
// Workers fill disjoint partitions of the region with an LFSR stream, meet
// at a full barrier, then each verifies the partition written by its mirror
// index (workers-1-i) against a freshly re-derived stream. Mismatches are
// counted as bit distance and aggregated under a lock into a single total.
// External outputs must not depend on the internal shape here — use pkg/api
// in the root module for stable wire types.
package memtest
