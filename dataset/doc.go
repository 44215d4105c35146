// Package dataset reads weight lists for the sortition solver.
//
// The accepted format is deliberately loose: positive rationals separated
// by any whitespace, one or many per line, with '#' starting a comment.
// Integers, decimals and a/b fractions mix freely, so the same loader
// serves vote tallies ("40 25 20 15"), stake shares ("0.4 0.25 0.2 0.15")
// and exact fractions ("2/5 1/4 1/5 3/20").
//
// All values are parsed exactly into big.Rat; nothing is rounded.
//
// See Load for the format contract and LoadFile for the "-" stdin
// convention used by the command-line front end.
package dataset
