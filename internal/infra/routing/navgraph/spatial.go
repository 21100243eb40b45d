package navgraph

import (
	"math"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/infra/routing/loader"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// GridIndex is a grid over the floor plane (X, Z) for nearest-node lookup.
// Height is filtered separately so a node on another floor is never chosen.
type GridIndex struct {
	nodes    []loader.Node
	grid     map[gridKey][]int
	cellSize float64
	bound    orb.Bound
}

type gridKey struct {
	xCell int
	zCell int
}

// NewGridIndex creates an empty index with square cells of cellSize meters
func NewGridIndex(cellSize float64) *GridIndex {
	if cellSize <= 0 {
		cellSize = 1
	}

	return &GridIndex{
		grid:     make(map[gridKey][]int),
		cellSize: cellSize,
	}
}

// Build indexes nodes by their horizontal position
func (g *GridIndex) Build(nodes []loader.Node) {
	g.nodes = nodes
	g.grid = make(map[gridKey][]int)

	if len(nodes) == 0 {
		return
	}

	g.bound = nodes[0].Position.Horizontal().Bound()
	for _, node := range nodes {
		g.bound = g.bound.Extend(node.Position.Horizontal())
	}

	for idx, node := range nodes {
		key := g.key(node.Position.Horizontal())
		g.grid[key] = append(g.grid[key], idx)
	}
}

// Size returns the number of indexed nodes
func (g *GridIndex) Size() int {
	return len(g.nodes)
}

// Node returns the node at idx, or nil when out of range
func (g *GridIndex) Node(idx int) *loader.Node {
	if idx < 0 || idx >= len(g.nodes) {
		return nil
	}

	return &g.nodes[idx]
}

// Nearest returns the horizontally closest node whose height differs from
// p by at most floorTolerance.
func (g *GridIndex) Nearest(p entity.Point, floorTolerance float64) (int, bool) {
	if len(g.nodes) == 0 {
		return -1, false
	}

	query := p.Horizontal()
	center := g.key(query)

	bestIdx := -1
	bestDistSq := math.MaxFloat64

	for ring := 0; ring <= g.maxSearchRing(center); ring++ {
		g.searchRing(p, query, center, ring, floorTolerance, &bestIdx, &bestDistSq)

		// Every cell of the next ring is at least ring cells away.
		if bestIdx >= 0 {
			reach := float64(ring) * g.cellSize
			if reach*reach >= bestDistSq {
				break
			}
		}
	}

	return bestIdx, bestIdx >= 0
}

func (g *GridIndex) key(p orb.Point) gridKey {
	return gridKey{
		xCell: int(math.Floor((p[0] - g.bound.Min[0]) / g.cellSize)),
		zCell: int(math.Floor((p[1] - g.bound.Min[1]) / g.cellSize)),
	}
}

func (g *GridIndex) searchRing(
	p entity.Point,
	query orb.Point,
	center gridKey,
	ring int,
	floorTolerance float64,
	bestIdx *int,
	bestDistSq *float64,
) {
	for dx := -ring; dx <= ring; dx++ {
		for dz := -ring; dz <= ring; dz++ {
			if abs(dx) != ring && abs(dz) != ring {
				continue
			}

			cell := gridKey{xCell: center.xCell + dx, zCell: center.zCell + dz}
			for _, idx := range g.grid[cell] {
				node := g.nodes[idx]
				if math.Abs(node.Position.Y-p.Y) > floorTolerance {
					continue
				}

				distSq := planar.DistanceSquared(query, node.Position.Horizontal())
				if distSq < *bestDistSq {
					*bestDistSq = distSq
					*bestIdx = idx
				}
			}
		}
	}
}

// maxSearchRing covers the whole bounding box from center, including
// queries that fall outside it.
func (g *GridIndex) maxSearchRing(center gridKey) int {
	corner := g.key(g.bound.Max)

	return max(
		abs(center.xCell), abs(corner.xCell-center.xCell),
		abs(center.zCell), abs(corner.zCell-center.zCell),
	)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
