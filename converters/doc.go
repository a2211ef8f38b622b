// SPDX-License-Identifier: MIT
// Package converters adapts a core.Graph roadmap to external graph libraries.
//
// Currently supported:
//   - gonum/graph: ToGonum exports a simple.WeightedUndirectedGraph whose node
//     IDs equal roadmap vertex IDs and whose weights are edge distances, so the
//     roadmap can be queried with gonum's path and topology packages.
//
// Exports are snapshots; later changes to the roadmap are not reflected.
package converters
