// Package batch runs many sortition solves concurrently.
//
// A Job names a problem and its options; Run fans the jobs out over a
// bounded worker pool and collects an Outcome per job, preserving job
// order regardless of completion order. A failing instance does not stop
// its siblings; cancelling the context does.
//
// Typical use is threshold sweeps: solve the same weight profile under a
// grid of (tw, tn) pairs and compare the resulting committee sizes.
package batch
