// SPDX-License-Identifier: MIT
// Package driver runs roadmap generators against a budget.
//
// Run drives a single generator: it initializes it when needed and calls
// Generate until the batch budget is met or the next batch would push the
// roadmap past the vertex budget. The context is checked between batches,
// never inside one, so a cancelled run always stops on a batch boundary.
//
// Ensemble builds and runs one independent roadmap per seed concurrently,
// bounded by a parallelism limit, and returns results in seed order. The
// first failure cancels the remaining runs.
package driver
