package introspect

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/reductiongraph"
)

// nodeJSON and edgeJSON are the deterministic wire shapes for a full
// graph export (spec.md §4.9): nodes sorted by the descriptor total
// order, edges sorted by source name, source variant, target name,
// target variant, then module path.
type nodeJSON struct {
	Name     string            `json:"name"`
	Variant  map[string]string `json:"variant,omitempty"`
	Category string            `json:"category"`
	DocPath  string            `json:"doc_path"`
}

type edgeJSON struct {
	Source     nodeJSON `json:"source"`
	Target     nodeJSON `json:"target"`
	Overhead   []string `json:"overhead"`
	ModulePath string   `json:"module_path"`
}

func toNodeJSON(d problem.Descriptor) nodeJSON {
	var variant map[string]string
	if len(d.Variant) > 0 {
		variant = make(map[string]string, len(d.Variant))
		for _, e := range d.Variant {
			variant[e.Category] = e.Value
		}
	}
	return nodeJSON{
		Name:     d.Name,
		Variant:  variant,
		Category: problem.CategoryOf(d.Name),
		DocPath:  problem.DocPathOf(d.Name),
	}
}

// ToJSON renders the full materialised graph deterministically: nodes
// sorted by descriptor order, edges sorted by source name, source
// variant, target name, target variant, then module path (spec.md §4.9).
func ToJSON(g *reductiongraph.Graph) ([]byte, error) {
	nodes := make([]problem.Descriptor, 0)
	for _, n := range g.Nodes() {
		nodes = append(nodes, n.Descriptor)
	}
	problem.SortDescriptors(nodes)

	edges := g.Edges()
	outNodes := make([]nodeJSON, len(nodes))
	for i, d := range nodes {
		outNodes[i] = toNodeJSON(d)
	}

	outEdges := make([]edgeJSON, len(edges))
	for i, e := range edges {
		overhead := make([]string, len(e.Overhead))
		for j, f := range e.Overhead {
			overhead[j] = f.Field + "=" + f.Poly.String()
		}
		outEdges[i] = edgeJSON{
			Source:     toNodeJSON(g.Descriptor(e.From)),
			Target:     toNodeJSON(g.Descriptor(e.To)),
			Overhead:   overhead,
			ModulePath: e.ModulePath,
		}
	}
	sortEdgesJSON(outEdges)

	return json.Marshal(struct {
		Nodes []nodeJSON `json:"nodes"`
		Edges []edgeJSON `json:"edges"`
	}{Nodes: outNodes, Edges: outEdges})
}

func sortEdgesJSON(edges []edgeJSON) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Source.Name != b.Source.Name {
			return a.Source.Name < b.Source.Name
		}
		if sa, sb := fmt.Sprint(a.Source.Variant), fmt.Sprint(b.Source.Variant); sa != sb {
			return sa < sb
		}
		if a.Target.Name != b.Target.Name {
			return a.Target.Name < b.Target.Name
		}
		if ta, tb := fmt.Sprint(a.Target.Variant), fmt.Sprint(b.Target.Variant); ta != tb {
			return ta < tb
		}
		return a.ModulePath < b.ModulePath
	})
}
