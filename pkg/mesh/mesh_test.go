package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetVertexDescriptionRejectsInvalid(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := New("cube")
	m.SetLogger(zap.New(core))

	require.True(t, m.SetVertexDescription(positionDesc()))

	bad := NewVertexDescription(8, VertexAttribute{Semantic: Position, Format: Float3, Offset: 0})
	assert.False(t, m.SetVertexDescription(bad))
	assert.Equal(t, uint32(12), m.VertexDescription().Stride, "previous description kept")
	assert.Equal(t, 1, logs.FilterMessage("rejected vertex description").Len())
}

func TestSetVertices(t *testing.T) {
	m := New("")
	buf := NewVertexBuffer(3, 12)
	m.SetVertices(3, buf)
	assert.Equal(t, 3, m.VertexCount())

	// Same storage is a no-op, even with a different count.
	m.SetVertices(7, buf)
	assert.Equal(t, 3, m.VertexCount())

	other := NewVertexBuffer(2, 12)
	m.SetVertices(2, other)
	assert.Equal(t, 2, m.VertexCount())
	assert.Len(t, m.Vertices(), 24)

	// A sub-slice sharing the first byte but not the length is new storage.
	m.SetVertices(1, other[:12])
	assert.Equal(t, 1, m.VertexCount())
}

func TestGroupManagement(t *testing.T) {
	m := positionMesh(t, unitTriangle()...)

	assert.Equal(t, 1, m.AddGroup(&PrimitiveGroup{Topology: TriList, Indices: []uint32{0, 1, 2}}))
	assert.Equal(t, 2, m.AddPrimitives(PointList, 3, []uint32{0, 1, 2}))
	assert.Equal(t, 2, m.GroupCount())

	g := m.Group(1)
	require.NotNil(t, g)
	assert.Equal(t, PointList, g.Topology)
	assert.Equal(t, uint32(3), g.MaterialIndex)
	assert.Nil(t, g.Override, "only line groups get overrides")

	assert.Nil(t, m.Group(2))
	assert.Nil(t, m.Group(-1))

	assert.Equal(t, 1+3, m.PrimitiveCount())

	groups := m.Groups()
	groups[0] = nil
	assert.NotNil(t, m.Group(0), "Groups returns a copy")
}

func TestClearGroups(t *testing.T) {
	m := positionMesh(t, unitTriangle()...)
	m.AddPrimitives(LineStrip, 0, []uint32{0, 1, 2})
	g := m.Group(0)
	require.NotNil(t, g.Override)

	m.ClearGroups()
	assert.Zero(t, m.GroupCount())
	assert.Nil(t, m.Group(0))
	assert.Empty(t, m.Groups())
	assert.Zero(t, m.PrimitiveCount())

	// a group held by the caller keeps its override
	assert.NotNil(t, g.Override)
	assert.Equal(t, TriList, g.DrawTopology())

	m.AddPrimitives(TriList, 0, []uint32{0, 1, 2})
	assert.Equal(t, 1, m.GroupCount())
}

func TestMeshName(t *testing.T) {
	m := New("first")
	assert.Equal(t, "first", m.Name())
	m.SetName("second")
	assert.Equal(t, "second", m.Name())

	var zero Mesh
	assert.Empty(t, zero.Name())
	assert.Zero(t, zero.GroupCount())
	assert.True(t, zero.BoundingBox().IsEmpty())
}
