// Package lkhcore is an in-memory playground for building and improving
// Euclidean and TSPLIB-style traveling-salesman tours in Go.
//
// 🚀 What is lkhcore?
//
//	A library that brings together:
//
//	  • A distance repository: coordinate metrics (Euc2d/3d, Geo, Att,
//	    Ceil2d, Xray1/2, Max/Man) plus precomputed-matrix and graph ingestion
//	  • Two tour representations: a plain array oracle and a two-level
//	    doubly-linked list with O(√N) flip
//	  • A k-opt move composer: 2-opt, seven 3-opt cases, twenty sequential
//	    4-opt cases
//	  • A Held-Karp 1-tree lower bound with subgradient ascent
//	  • The outer Lin-Kernighan-Helsgaun driver: candidate generation,
//	    nearest-neighbor construction, and 2-opt local search
//
// Under the hood, the solver is organized under five subpackages (the graph
// support packages core, algorithms and prim_kruskal sit beside them):
//
//	repository/ — distance metrics, RepoBuilder, FromGraph conversion
//	tour/       — Array and TwoLevelList, both implementing Tour
//	kopt/       — the k-opt move composer
//	onetree/    — minimum 1-tree construction and the Held-Karp bound
//	lkh/        — the trial loop, active-node queue, and local search
package lkhcore
