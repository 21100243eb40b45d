package navgraph

import (
	"math"
	"math/rand/v2"
	"testing"

	"wayfinder/internal/domain/entity"
	"wayfinder/internal/infra/routing/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridIndex_Empty(t *testing.T) {
	index := NewGridIndex(5)
	index.Build(nil)

	_, ok := index.Nearest(entity.Point{}, 1)
	assert.False(t, ok)
	assert.Zero(t, index.Size())
	assert.Nil(t, index.Node(0))
}

func TestGridIndex_NearestMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	nodes := make([]loader.Node, 300)
	for i := range nodes {
		nodes[i] = loader.Node{
			ID: int64(i),
			Position: entity.Point{
				X: rng.Float64() * 120,
				Y: float64(rng.IntN(3)) * 4,
				Z: rng.Float64() * 80,
			},
		}
	}

	index := NewGridIndex(6)
	index.Build(nodes)
	require.Equal(t, len(nodes), index.Size())

	for i := 0; i < 200; i++ {
		query := entity.Point{
			X: rng.Float64()*160 - 20,
			Y: float64(rng.IntN(3)) * 4,
			Z: rng.Float64()*120 - 20,
		}

		got, ok := index.Nearest(query, 1)
		require.True(t, ok)

		want, wantDist := -1, math.Inf(1)
		for idx, node := range nodes {
			if math.Abs(node.Position.Y-query.Y) > 1 {
				continue
			}
			if d := query.HorizontalDistanceTo(node.Position); d < wantDist {
				want, wantDist = idx, d
			}
		}

		assert.InDelta(t, wantDist, query.HorizontalDistanceTo(nodes[got].Position), 1e-9, "query %s: got node %d want %d", query, got, want)
	}
}

func TestGridIndex_SkipsOtherFloors(t *testing.T) {
	index := NewGridIndex(2)
	index.Build([]loader.Node{
		{ID: 1, Position: entity.Point{X: 0, Y: 0, Z: 0}},
		{ID: 2, Position: entity.Point{X: 0, Y: 4, Z: 0}},
	})

	_, ok := index.Nearest(entity.Point{Y: 8}, 2)
	assert.False(t, ok)

	idx, ok := index.Nearest(entity.Point{Y: 3.5}, 2)
	require.True(t, ok)
	assert.Equal(t, int64(2), index.Node(idx).ID)
}
