package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemapIndices(t *testing.T) {
	m := New("")
	m.AddGroup(&PrimitiveGroup{Topology: TriList, Indices: []uint32{0, 1, 2}})
	m.AddGroup(&PrimitiveGroup{Topology: PointList, Indices: []uint32{2, 2, 0}})

	m.RemapIndices([]uint32{10, 11, 12})

	assert.Equal(t, []uint32{10, 11, 12}, m.Group(0).Indices)
	assert.Equal(t, []uint32{12, 12, 10}, m.Group(1).Indices)
}

func TestRemapIndicesOutOfRangePanics(t *testing.T) {
	m := New("")
	m.AddGroup(&PrimitiveGroup{Topology: PointList, Indices: []uint32{5}})
	assert.Panics(t, func() { m.RemapIndices([]uint32{0, 1}) })
}

func TestRemapMaterials(t *testing.T) {
	m := New("")
	m.AddGroup(&PrimitiveGroup{MaterialIndex: 0})
	m.AddGroup(&PrimitiveGroup{MaterialIndex: 2})

	m.RemapMaterials([]uint32{7, 8, 9})

	assert.Equal(t, uint32(7), m.Group(0).MaterialIndex)
	assert.Equal(t, uint32(9), m.Group(1).MaterialIndex)
}

func TestAggregateByMaterialIsStable(t *testing.T) {
	m := New("")
	input := []struct {
		material uint32
		tag      uint32
	}{
		{3, 0}, {1, 1}, {3, 2}, {0, 3}, {1, 4}, {3, 5},
	}
	for _, in := range input {
		// The single index records the insertion order.
		m.AddGroup(&PrimitiveGroup{Topology: PointList, MaterialIndex: in.material, Indices: []uint32{in.tag}})
	}

	m.AggregateByMaterial()

	var materials, tags []uint32
	for _, g := range m.Groups() {
		materials = append(materials, g.MaterialIndex)
		tags = append(tags, g.Indices[0])
	}
	assert.Equal(t, []uint32{0, 1, 1, 3, 3, 3}, materials)
	assert.Equal(t, []uint32{3, 1, 4, 0, 2, 5}, tags)
}
