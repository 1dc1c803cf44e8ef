// SPDX-License-Identifier: MIT

// Package builder generates reproducible assignment instances as
// bipartite.Input documents.
//
// CompleteBipartite(n) lists left nodes L0..L{n-1}, each linked to every
// right node R0..R{n-1}. WithDensity(p) keeps each cross edge with
// probability p but always keeps Li–Ri, so both sides stay complete and the
// document still splits into two sets of n; dropped pairs cost the
// matcher's default weight.
//
// Determinism:
//   - IDs are (prefix, index); edges are emitted i ascending, then j ascending.
//   - Every draw comes from one *rand.Rand (WithSeed / WithRand), in that
//     emission order, so a seed fixes the whole document.
//
// Option constructors panic on meaningless arguments (nil functions,
// p outside [0,1]); builders themselves only return sentinel errors.
package builder
