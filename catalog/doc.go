// SPDX-License-Identifier: MIT

// Package catalog is the load boundary for reference catalogs of strongly
// regular graph parameters.
//
// A catalog maps (v,k,λ,μ) to a verdict (exists, impossible, open) and a
// free-text comment. This package reads and writes it in three shapes:
//
//   - the Brouwer line format color|chr|v|k|lambda|mu|r^f|s^g|comments
//     (ParseBrouwer, WriteBrouwer);
//   - a YAML list of {v,k,lambda,mu,status,comments} (ReadYAML, WriteYAML);
//   - a SQLite database (Store), which also keeps registry snapshots.
//
// It also renders the fixed-width text dump (WriteText), the leftover report
// (WriteLeftovers) and status counts (Stats, WriteStats).
//
// Everything here converts at the edge: the rest of the module only sees
// srg.Catalog values.
package catalog
