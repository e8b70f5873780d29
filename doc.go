// SPDX-License-Identifier: MIT

// Package rieszsel picks small, evenly spread representative subsets of
// ordered point sequences by minimizing the Riesz s-energy.
//
// 🚀 What is inside?
//
//	riesz/        — the solvers: order-based DP (fast heuristic),
//	                brute force (exact oracle) and their comparator
//	dataset/      — YAML point files and the built-in worked examples
//	report/       — plain-text rendering of results
//	cmd/rieszsel/ — CLI: solve, compare, demo
//
// ✨ Typical use: thin out a bi-objective Pareto front to k points for
// presentation, then check the DP pick against brute force while n is small.
//
//	go run ./cmd/rieszsel demo
package rieszsel
