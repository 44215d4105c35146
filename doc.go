// Package sortition converts weighted (stake-style) threshold structures
// into equivalent unweighted ticket allocations — the sizing step behind
// committee sampling in stake-weighted consensus protocols.
//
// 🚀 What is sortition?
//
//	An exact-arithmetic solver for two dual allocation problems:
//		• Weight Restriction (WR): find the fewest tickets N such that no
//		  coalition holding less than tw of total weight can ever control
//		  tn of the tickets.
//		• Weight Qualification (WQ): find the fewest tickets N such that
//		  every coalition holding at least tw of total weight is always
//		  guaranteed tn of the tickets.
//
// ✨ Why choose sortition?
//
//   - Exact – every feasibility decision runs on big.Rat fractions;
//     no floating point ever touches a security threshold
//   - Minimal – the returned total N cannot be reduced by one
//   - Verifiable – every allocation can be independently re-checked,
//     including an exhaustive knapsack audit of all coalitions
//   - Pure – one solve is a deterministic function of its inputs;
//     batch runs parallelize trivially
//
// Under the hood, everything is organized under five subpackages:
//
//	rational/ — exact fraction parsing & floor/ceil helpers over big.Rat
//	weights/  — immutable sorted weight model with prefix-sum shares
//	tickets/  — constraint oracle, minimal-N allocator, verifier
//	dataset/  — line-oriented weight file loading
//	batch/    — bounded-parallel fan-out over independent solve jobs
//
// Quick example:
//
//	weights 0.5 0.3 0.2, tw=1/3, tn=1/2, WQ
//	→ N=4, tickets [2 1 1]
//
//	the 0.5-weight party alone crosses tw, so it must hold at least
//	half of all tickets.
//
// Dive into examples/ for full walkthroughs of committee sizing,
// verification, and threshold sweeps.
//
//	go get github.com/katalvlaran/sortition
package sortition
