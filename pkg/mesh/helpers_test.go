package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshcore/pkg/math"
)

// positionDesc is a Float3 position-only layout.
func positionDesc() VertexDescription {
	return NewVertexDescription(12, VertexAttribute{Semantic: Position, Format: Float3, Offset: 0})
}

// positionMesh builds a mesh whose vertices only carry positions.
func positionMesh(t *testing.T, points ...math.Vec3) *Mesh {
	t.Helper()

	m := New("test")
	require.True(t, m.SetVertexDescription(positionDesc()))

	buf := NewVertexBuffer(len(points), 12)
	for i, p := range points {
		buf.SetFloat3At(i*12, p)
	}
	m.SetVertices(len(points), buf)
	return m
}

// unitTriangle is the triangle (0,0,0), (1,0,0), (0,1,0).
func unitTriangle() []math.Vec3 {
	return []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
}
