// Package graph implements the automatic conversion graph: colour
// representation names are nodes, registered transform functions are
// directed edges, and a conversion between two representations is the
// composition of the transforms along the shortest path between their
// nodes.
package graph

import (
	"fmt"
	"strings"
)

// Kwargs carries optional named arguments forwarded to the transforms
// along a conversion path. Each stage only receives the keys it
// declares in its edge's Params.
type Kwargs map[string]any

// TransformFunc converts a value between two adjacent representations.
type TransformFunc func(value []float64, kw Kwargs) ([]float64, error)

// Edge is a directed conversion between two representation nodes.
type Edge struct {
	Source, Target string
	Name           string // transform name used in path descriptions
	Fn             TransformFunc
	Params         []string // kwarg names the transform consumes
}

// ResolutionError reports a conversion request that cannot be
// resolved: an unregistered node or an unreachable target.
type ResolutionError struct {
	Node           string // offending node name as given by the caller
	Source, Target string // set for unreachable targets
}

func (e *ResolutionError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("graph: node %q is not registered", e.Node)
	}
	return fmt.Sprintf(
		"graph: no conversion path from %q to %q", e.Source, e.Target,
	)
}

type edge struct {
	target string // normalized
	name   string
	fn     TransformFunc
	params []string
}

// Graph is an immutable directed multigraph of conversion transforms.
// It is built once by New and is safe for concurrent reads afterwards.
type Graph struct {
	nodes   []string          // normalized, registration order
	display map[string]string // normalized -> first registered spelling
	adj     map[string][]edge // edges in registration order
}

// Normalize maps a representation name to its node key: lower case
// with runs of spaces, hyphens and underscores collapsed to single
// spaces.
func Normalize(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	return strings.Join(fields, " ")
}

// New builds a conversion graph from a static edge list. The edge
// order is preserved: when several shortest paths exist, the
// first-registered edges win.
func New(edges []Edge) (*Graph, error) {
	g := &Graph{
		display: map[string]string{},
		adj:     map[string][]edge{},
	}
	for i, e := range edges {
		if e.Source == "" || e.Target == "" {
			return nil, fmt.Errorf("graph: edge %d has an empty endpoint", i)
		}
		if e.Fn == nil {
			return nil, fmt.Errorf(
				"graph: edge %d (%s -> %s) has no transform",
				i, e.Source, e.Target,
			)
		}

		src, dst := Normalize(e.Source), Normalize(e.Target)
		g.addNode(src, e.Source)
		g.addNode(dst, e.Target)
		g.adj[src] = append(g.adj[src], edge{
			target: dst,
			name:   e.Name,
			fn:     e.Fn,
			params: e.Params,
		})
	}
	return g, nil
}

func (g *Graph) addNode(key, display string) {
	if _, ok := g.display[key]; ok {
		return
	}
	g.display[key] = display
	g.nodes = append(g.nodes, key)
}

// Nodes returns the registered representation names in registration
// order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	for i, key := range g.nodes {
		out[i] = g.display[key]
	}
	return out
}

// HasNode reports whether name resolves to a registered node.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.display[Normalize(name)]
	return ok
}

// path resolves the shortest edge chain from source to target by
// breadth-first search. Ties break towards earlier-registered edges. A
// nil chain with a nil error is the identity path.
func (g *Graph) path(source, target string) ([]edge, error) {
	src, dst := Normalize(source), Normalize(target)
	if _, ok := g.display[src]; !ok {
		return nil, &ResolutionError{Node: source}
	}
	if _, ok := g.display[dst]; !ok {
		return nil, &ResolutionError{Node: target}
	}
	if src == dst {
		return nil, nil
	}

	type hop struct {
		node string
		via  edge
		prev int
	}
	visited := map[string]bool{src: true}
	queue := []hop{{node: src, prev: -1}}

	for i := 0; i < len(queue); i++ {
		for _, e := range g.adj[queue[i].node] {
			if visited[e.target] {
				continue
			}
			visited[e.target] = true
			queue = append(queue, hop{node: e.target, via: e, prev: i})

			if e.target != dst {
				continue
			}
			var chain []edge
			for j := len(queue) - 1; j > 0; j = queue[j].prev {
				chain = append(chain, queue[j].via)
			}
			for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
				chain[l], chain[r] = chain[r], chain[l]
			}
			return chain, nil
		}
	}
	return nil, &ResolutionError{Source: source, Target: target}
}

// Convert converts value from the source representation to the target
// representation, composing the transforms along the resolved path.
// Each stage receives only the kwargs it declares; unmatched kwargs
// are ignored. Identical source and target return the value unchanged.
func (g *Graph) Convert(value []float64, source, target string, kw Kwargs) ([]float64, error) {
	chain, err := g.path(source, target)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(value))
	copy(out, value)
	node := source
	for _, e := range chain {
		out, err = e.fn(out, filterKwargs(kw, e.params))
		if err != nil {
			return nil, fmt.Errorf(
				"graph: converting %q to %q at stage %s: %w",
				source, target, g.stageName(node, e), err,
			)
		}
		node = g.display[e.target]
	}
	return out, nil
}

func filterKwargs(kw Kwargs, params []string) Kwargs {
	if len(kw) == 0 || len(params) == 0 {
		return nil
	}
	out := Kwargs{}
	for _, p := range params {
		if v, ok := kw[p]; ok {
			out[p] = v
		}
	}
	return out
}

func (g *Graph) stageName(from string, e edge) string {
	if e.name != "" {
		return e.name
	}
	return fmt.Sprintf("%s -> %s", from, g.display[e.target])
}

// DescribePath returns the textual conversion chain from source to
// target without executing it, e.g. "HSV -> RGB -> CIE XYZ".
func (g *Graph) DescribePath(source, target string) (string, error) {
	chain, err := g.path(source, target)
	if err != nil {
		return "", err
	}

	parts := []string{g.display[Normalize(source)]}
	for _, e := range chain {
		parts = append(parts, g.display[e.target])
	}
	return strings.Join(parts, " -> "), nil
}

// PathLength returns the number of conversion stages between source
// and target; zero means identity.
func (g *Graph) PathLength(source, target string) (int, error) {
	chain, err := g.path(source, target)
	if err != nil {
		return 0, err
	}
	return len(chain), nil
}
