package services

// spatialMaxLevel is the deepest WBS level that still describes a spatial
// (geographic/location) breakdown; levels beyond it describe organizational
// work categories.
const spatialMaxLevel = 5

// WbsRow is one raw row of a WBS listing as returned by the API.
type WbsRow struct {
	ID          string
	ParentID    string
	Code        string
	Description string
	Level       int
	Importo     float64
}

// WbsNode is a node of the assembled WBS forest. Importo is the stored total
// from the source, not a sum of the children: the tree displays what the
// computo metrico recorded at every level, and consumers that want derived
// additivity must recompute it (see SumImporti).
type WbsNode struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Description string     `json:"description"`
	Level       int        `json:"level"`
	Importo     float64    `json:"importo"`
	Children    []*WbsNode `json:"children"`
}

// IsLeaf reports whether the node has no children.
func (n *WbsNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsSpatial reports whether a WBS level belongs to the spatial breakdown
// (levels 0 through 5) rather than the organizational one.
func IsSpatial(level int) bool {
	return level <= spatialMaxLevel
}

// BuildWbsForest assembles raw rows into a rooted forest. Children keep the
// source row order; nothing is re-sorted. Rows with an empty ParentID are
// roots, and rows pointing at a parent that never appears in the input are
// kept as roots too rather than dropped.
func BuildWbsForest(rows []WbsRow) []*WbsNode {
	nodes := make(map[string]*WbsNode, len(rows))
	for _, r := range rows {
		nodes[r.ID] = &WbsNode{
			ID:          r.ID,
			Code:        r.Code,
			Description: r.Description,
			Level:       r.Level,
			Importo:     r.Importo,
		}
	}

	var roots []*WbsNode
	for _, r := range rows {
		node := nodes[r.ID]
		if r.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[r.ParentID]
		if !ok || r.ParentID == r.ID {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// SumImporti recomputes the additive total of a subtree from its leaves.
// This deliberately ignores the stored Importo of intermediate nodes.
func SumImporti(n *WbsNode) float64 {
	if n.IsLeaf() {
		return n.Importo
	}
	var sum float64
	for _, c := range n.Children {
		sum += SumImporti(c)
	}
	return sum
}

// CategoryBaseline is a per-category amount extracted from the WBS, used as
// the baseline axis for the waterfall and heatmap builders.
type CategoryBaseline struct {
	Category string  `json:"categoria"`
	Amount   float64 `json:"importo"`
}

// CategoriesAtLevel walks the forest in pre-order and collects every node at
// the given level as a category/amount pair, preserving tree order.
func CategoriesAtLevel(forest []*WbsNode, level int) []CategoryBaseline {
	var out []CategoryBaseline
	var walk func(n *WbsNode)
	walk = func(n *WbsNode) {
		if n.Level == level {
			out = append(out, CategoryBaseline{Category: n.Description, Amount: n.Importo})
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, root := range forest {
		walk(root)
	}
	return out
}
