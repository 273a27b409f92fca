// File: context.go
// Role: Nearest-tagged-ancestor (or descendant) search. Per independent
// branch of the ancestor tree, Context reports the first tagged vertex
// encountered, with its distance and tag value.

package dag

// ContextEntry is one result of a Context search: the nearest tagged vertex
// on some branch, at Distance edges from the queried vertex.
type ContextEntry struct {
	// Distance is the number of edges between the queried vertex and ID.
	Distance int

	// ID is the tagged vertex that terminated the branch.
	ID string

	// Tag is the value attached to ID via AddTag.
	Tag any
}

// ContextOption configures a Context search.
type ContextOption func(*contextOptions)

// contextOptions holds the search limits and direction.
type contextOptions struct {
	maxDistance int  // drop results beyond this distance; -1 = unlimited
	maxResults  int  // return as soon as this many entries are found; -1 = unlimited
	reverse     bool // follow successors instead of predecessors
}

// defaultContextOptions returns unlimited forward search.
func defaultContextOptions() contextOptions {
	return contextOptions{maxDistance: -1, maxResults: -1}
}

// WithMaxDistance limits the search to tagged vertices at most max edges
// away; partial results gathered so far are returned once exceeded.
func WithMaxDistance(max int) ContextOption {
	return func(o *contextOptions) { o.maxDistance = max }
}

// WithMaxResults returns as soon as max entries have been collected.
func WithMaxResults(max int) ContextOption {
	return func(o *contextOptions) { o.maxResults = max }
}

// WithReverse follows successor edges instead of predecessor edges,
// searching the descendant tree.
func WithReverse() ContextOption {
	return func(o *contextOptions) { o.reverse = true }
}

// Context returns, per independent branch of the ancestor tree of id
// (descendant tree with WithReverse), the nearest tagged vertex.
//
// It requires Check to succeed and propagates its failure. If id itself is
// tagged, a single zero-distance entry is returned immediately — a tag
// always short-circuits further search on its vertex. Otherwise the search
// is a level-synchronized BFS: a tagged frontier vertex is recorded and not
// expanded past; an untagged one contributes its own predecessors (or
// successors) to the next level. A visited set is shared across branches,
// so a vertex reachable via converging paths is inspected once only, at its
// minimal distance.
//
// A search that exhausts without finding any tag returns an empty,
// non-error result.
// Complexity: O(V+E) worst case, plus the cost of Check
func (g *Graph) Context(id string, opts ...ContextOption) ([]ContextEntry, error) {
	// 1) The search is only meaningful on a valid graph.
	if err := g.Check(); err != nil {
		return nil, err
	}

	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Pick the traversal direction once.
	next := g.Predecessors
	if o.reverse {
		next = g.Successors
	}

	entries := make([]ContextEntry, 0)

	// 3) A tag on the queried vertex short-circuits everything.
	if tag := g.Tag(id); tag != nil {
		return append(entries, ContextEntry{Distance: 0, ID: id, Tag: tag}), nil
	}

	// 4) Expanding BFS, one frontier level per distance step.
	visited := make(vertexSet)
	frontier := next(id)
	for distance := 1; len(frontier) > 0; distance++ {
		if o.maxDistance >= 0 && distance > o.maxDistance {
			return entries, nil // partial results
		}

		var expand []string
		for _, n := range frontier {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}

			if tag := g.Tag(n); tag != nil {
				entries = append(entries, ContextEntry{Distance: distance, ID: n, Tag: tag})
				if o.maxResults >= 0 && len(entries) >= o.maxResults {
					return entries, nil
				}

				continue // never expand past a tagged vertex
			}
			expand = append(expand, next(n)...)
		}
		frontier = expand
	}

	return entries, nil
}
