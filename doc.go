// Package flubbles computes cycle-equivalence classes over bidirected
// pangenome variation graphs.
//
// 🚀 What is flubbles?
//
//	A deterministic, pure-Go engine that turns a bidirected sequence graph
//	into a partition of its edges into cycle-equivalence classes:
//		• bidirected — the graph itself: left/right-sided vertices,
//		  orientation-aware edges, weak-component splitting
//		• bracket    — the per-vertex bracket list tracking open cycles
//		  during the reverse traversal
//		• spantree   — the spanning tree, tree/back-edge classification
//		  and dfs numbering the engine walks in reverse
//		• cycleequiv — the single reverse-DFS pass computing hi-numbers,
//		  merging bracket lists, and assigning classes
//
// ✨ Why flubbles?
//
//   - Deterministic — identical input always yields identical class ids,
//     across runs and across machines
//   - Arena-and-index — every cross-reference is an integer index into a
//     flat slice, never a pointer, so a Tree or Graph can be copied or
//     inspected without chasing pointers
//   - Pure Go — no cgo
//
// Under the hood, everything is organized under four subpackages:
//
//	bidirected/ — the graph: vertices, edges, components
//	bracket/    — the per-vertex bracket list
//	spantree/   — spanning tree construction
//	cycleequiv/ — the cycle-equivalence engine
//
// Quick ASCII example, a triangle a-b-c-a:
//
//	    a───b
//	     \ /
//	      c
//
// All three edges belong to one cycle-equivalence class: removing any one
// of them still leaves the other two connecting all three vertices.
//
//	comps, _ := g.Componentize()
//	tree, _ := spantree.Build(comps[0])
//	result, _ := cycleequiv.New(tree).Run()
//
//	go get github.com/katalvlaran/flubbles
package flubbles
