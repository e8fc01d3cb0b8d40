package mesh

import (
	"cmp"
	"slices"
)

// RemapIndices replaces every group index i with indexMap[i]. indexMap must
// cover every index in use.
func (m *Mesh) RemapIndices(indexMap []uint32) {
	for _, g := range m.groups {
		for i, idx := range g.Indices {
			g.Indices[i] = indexMap[idx]
		}
	}
}

// RemapMaterials replaces every group material index k with materialMap[k].
func (m *Mesh) RemapMaterials(materialMap []uint32) {
	for _, g := range m.groups {
		g.MaterialIndex = materialMap[g.MaterialIndex]
	}
}

// AggregateByMaterial stable-sorts the groups by ascending material index so
// that groups sharing a material are drawn consecutively.
func (m *Mesh) AggregateByMaterial() {
	slices.SortStableFunc(m.groups, func(a, b *PrimitiveGroup) int {
		return cmp.Compare(a.MaterialIndex, b.MaterialIndex)
	})
}
