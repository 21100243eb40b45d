// Package navgraph answers shortest-path queries over a building's walkable
// graph. It implements service.PathOracle.
package navgraph

import (
	"container/heap"
	"context"
	"log/slog"
	"math"
	"sync"

	"wayfinder/config"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
	"wayfinder/internal/infra/routing/loader"
)

// ErrSnapDistanceExceeded is returned when a position is too far from the graph
var ErrSnapDistanceExceeded = domainerrors.ErrPositionOffGraph

// ErrEngineNotReady is returned when the engine hasn't been loaded
var ErrEngineNotReady = errors.New("navigation graph not ready")

// ErrUnknownNode is returned when an edge references a node that does not exist
var ErrUnknownNode = errors.New("edge references unknown node")

// cancellation is checked every this many settled nodes
const contextCheckInterval = 256

// EngineConfig holds configuration for the graph engine
type EngineConfig struct {
	MaxSnapDistance float64 // Maximum horizontal distance in meters to snap onto the graph
	FloorTolerance  float64 // Maximum height difference in meters between a position and its snapped node
	GridCellSize    float64 // Grid cell size in meters for the spatial index
}

// EngineConfigFrom converts the routing section of the config
func EngineConfigFrom(cfg config.RoutingConfig) EngineConfig {
	return EngineConfig{
		MaxSnapDistance: cfg.MaxSnapDistance,
		FloorTolerance:  cfg.FloorTolerance,
		GridCellSize:    cfg.GridCellSize,
	}
}

// NearestNodeResult describes where a position snaps onto the graph
type NearestNodeResult struct {
	NodeID   int64        // Node ID as written in nodes.csv
	Index    int          // Internal node index
	Position entity.Point // Node position
	Distance float64      // Horizontal distance from the query position in meters
}

// Stats summarises the loaded graph
type Stats struct {
	Nodes      int
	Edges      int
	Components int
}

// Engine holds the navigation graph and answers path queries. It is safe for
// concurrent use; LoadData swaps the graph atomically.
type Engine struct {
	config   EngineConfig
	logger   *slog.Logger
	metadata *loader.BuildingMetadata

	mu      sync.RWMutex
	ready   bool
	spatial *GridIndex
	nodes   []loader.Node
	edges   int
	adjList [][]edgeEntry
}

type edgeEntry struct {
	to     int
	weight float64
}

// NewEngine creates an engine with no graph loaded
func NewEngine(cfg EngineConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		config: cfg,
		logger: logger,
	}
}

// LoadData loads the graph from the building data directory
func (e *Engine) LoadData(dataDir string) error {
	metadata, err := loader.LoadMetadata(dataDir)
	if err != nil {
		e.logger.Warn("Failed to load building metadata", slog.Any("error", err))
	} else if err := metadata.Validate(); err != nil {
		e.logger.Warn("Building metadata validation failed", slog.Any("error", err))
	}

	csvLoader := loader.NewCSVLoader(dataDir)
	nodes, err := csvLoader.LoadNodes()
	if err != nil {
		return errors.Wrap(err, "failed to load graph nodes")
	}

	edges, err := csvLoader.LoadEdges()
	if err != nil {
		return errors.Wrap(err, "failed to load graph edges")
	}

	if err := e.Load(nodes, edges); err != nil {
		return err
	}

	e.mu.Lock()
	e.metadata = metadata
	e.mu.Unlock()

	e.logMetadata(metadata)

	return nil
}

// Load builds the graph from in-memory nodes and edges
func (e *Engine) Load(nodes []loader.Node, edges []loader.Edge) error {
	index := make(map[int64]int, len(nodes))
	for idx, node := range nodes {
		if _, dup := index[node.ID]; dup {
			return errors.Errorf("duplicate node id %d", node.ID)
		}
		index[node.ID] = idx
	}

	adjList := make([][]edgeEntry, len(nodes))
	for _, edge := range edges {
		from, okFrom := index[edge.From]
		to, okTo := index[edge.To]
		if !okFrom || !okTo {
			return errors.Wrapf(ErrUnknownNode, "edge %d-%d", edge.From, edge.To)
		}

		weight := edge.Weight
		if weight == 0 {
			weight = nodes[from].Position.DistanceTo(nodes[to].Position)
		}

		adjList[from] = append(adjList[from], edgeEntry{to: to, weight: weight})
		adjList[to] = append(adjList[to], edgeEntry{to: from, weight: weight})
	}

	spatial := NewGridIndex(e.config.GridCellSize)
	spatial.Build(nodes)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.nodes = nodes
	e.edges = len(edges)
	e.adjList = adjList
	e.spatial = spatial
	e.ready = len(nodes) > 0

	e.logger.Info("Navigation graph loaded",
		slog.Int("nodes", len(nodes)),
		slog.Int("edges", len(edges)),
	)

	return nil
}

func (e *Engine) logMetadata(metadata *loader.BuildingMetadata) {
	if metadata == nil {
		e.logger.Info("Navigation graph initialized without metadata")

		return
	}

	attrs := make([]any, 0, 2*len(metadata.Summary()))
	for key, value := range metadata.Summary() {
		attrs = append(attrs, slog.Any(key, value))
	}
	e.logger.Info("Navigation graph metadata", attrs...)
}

// IsReady returns whether a graph is loaded
func (e *Engine) IsReady() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.ready
}

// GetMetadata returns the loaded metadata, nil when none was found
func (e *Engine) GetMetadata() *loader.BuildingMetadata {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.metadata
}

// FindNearestNode snaps p onto the graph
func (e *Engine) FindNearestNode(p entity.Point) (*NearestNodeResult, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.ready {
		return nil, ErrEngineNotReady
	}

	return e.snapLocked(p)
}

func (e *Engine) snapLocked(p entity.Point) (*NearestNodeResult, error) {
	idx, ok := e.spatial.Nearest(p, e.config.FloorTolerance)
	if !ok {
		return nil, errors.Wrapf(ErrSnapDistanceExceeded, "no node on the floor of %s", p)
	}

	node := e.nodes[idx]
	distance := p.HorizontalDistanceTo(node.Position)
	result := &NearestNodeResult{
		NodeID:   node.ID,
		Index:    idx,
		Position: node.Position,
		Distance: distance,
	}

	if distance > e.config.MaxSnapDistance {
		return result, errors.Wrapf(ErrSnapDistanceExceeded, "%.2fm from %s", distance, p)
	}

	return result, nil
}

// Solve returns the walkable path from origin to destination: the origin,
// the graph nodes in between, then the destination. A destination that is
// disconnected from the origin, or too far from the graph, is unreachable.
func (e *Engine) Solve(ctx context.Context, origin, destination entity.Point) (entity.Path, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.ready {
		return nil, ErrEngineNotReady
	}

	src, err := e.snapLocked(origin)
	if err != nil {
		return nil, errors.Wrap(err, "snap origin")
	}

	dst, err := e.snapLocked(destination)
	if err != nil {
		return nil, errors.Wrapf(service.ErrUnreachable, "snap destination: %v", err)
	}

	// Both ends share a node: walk straight there.
	if src.Index == dst.Index {
		return appendDistinct(entity.Path{origin}, destination), nil
	}

	route, err := e.dijkstra(ctx, src.Index, dst.Index)
	if err != nil {
		return nil, err
	}

	path := make(entity.Path, 0, len(route)+2)
	path = appendDistinct(path, origin)
	for _, idx := range route {
		path = appendDistinct(path, e.nodes[idx].Position)
	}
	path = appendDistinct(path, destination)

	return path, nil
}

func appendDistinct(path entity.Path, p entity.Point) entity.Path {
	if len(path) > 0 && path[len(path)-1] == p {
		return path
	}

	return append(path, p)
}

// Stats reports graph size and connectivity
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Stats{
		Nodes:      len(e.nodes),
		Edges:      e.edges,
		Components: e.componentsLocked(),
	}
}

func (e *Engine) componentsLocked() int {
	seen := make([]bool, len(e.nodes))
	components := 0

	for start := range e.nodes {
		if seen[start] {
			continue
		}
		components++

		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, edge := range e.adjList[current] {
				if !seen[edge.to] {
					seen[edge.to] = true
					stack = append(stack, edge.to)
				}
			}
		}
	}

	return components
}

// dijkstra returns the node indices from source to target inclusive
func (e *Engine) dijkstra(ctx context.Context, source, target int) ([]int, error) {
	distances := make([]float64, len(e.nodes))
	previous := make([]int, len(e.nodes))
	for idx := range distances {
		distances[idx] = math.Inf(1)
		previous[idx] = -1
	}
	distances[source] = 0

	queue := &priorityQueue{{node: source, dist: 0}}
	settled := 0

	for queue.Len() > 0 {
		current := heap.Pop(queue).(pqItem)
		if current.dist > distances[current.node] {
			continue
		}

		if current.node == target {
			return reconstruct(previous, source, target), nil
		}

		settled++
		if settled%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "path search canceled")
			}
		}

		for _, edge := range e.adjList[current.node] {
			newDist := distances[current.node] + edge.weight
			if newDist < distances[edge.to] {
				distances[edge.to] = newDist
				previous[edge.to] = current.node
				heap.Push(queue, pqItem{node: edge.to, dist: newDist})
			}
		}
	}

	return nil, service.ErrUnreachable
}

func reconstruct(previous []int, source, target int) []int {
	var route []int
	for node := target; node != -1; node = previous[node] {
		route = append(route, node)
		if node == source {
			break
		}
	}

	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}

type pqItem struct {
	node int
	dist float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(pqItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

var _ service.PathOracle = (*Engine)(nil)
