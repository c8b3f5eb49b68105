package cycleequiv

// checkClose closes an open hairpin when the reverse walk reaches a
// non-root leaf or the root itself, marking the previously recorded
// boundary vertex's report as closed. Reports is indexed by dfs number and
// already holds an entry for e.boundary (boundary is always discovered
// before the vertex that closes it, deeper in the reverse walk).
func (e *Engine) checkClose(v int, isLeaf, isRoot bool, reports []VertexReport) {
	if e.hairpin != hairpinInside {
		return
	}
	if (isLeaf && !isRoot) || isRoot {
		e.hairpin = hairpinOutside
		if e.boundary >= 0 {
			reports[e.boundary].ClosedHairpin = true
		}
	}
}

// open records that v just opened a hairpin region (its bracket list was
// empty and v is not a dummy vertex), per spec's step (f).
func (e *Engine) open(v int, reports []VertexReport) {
	e.hairpin = hairpinInside
	e.boundary = v
	reports[v].OpenedHairpin = true
}

// trackBoundary is step (f-post): while inside a hairpin, if the current
// top-of-list bracket refers to a simplifying edge, v becomes the current
// boundary candidate.
func (e *Engine) trackBoundary(v int, topIsSimplifying bool) {
	if e.hairpin == hairpinInside && topIsSimplifying {
		e.boundary = v
	}
}
