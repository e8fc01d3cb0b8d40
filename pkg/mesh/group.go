package mesh

import "fmt"

// Topology describes how an index sequence decomposes into primitives.
type Topology int16

const (
	TopologyInvalid Topology = iota
	TriList
	TriStrip
	TriFan
	LineList
	LineStrip
	PointList
	SpriteList
)

// String returns a human-readable topology name.
func (t Topology) String() string {
	switch t {
	case TriList:
		return "TriList"
	case TriStrip:
		return "TriStrip"
	case TriFan:
		return "TriFan"
	case LineList:
		return "LineList"
	case LineStrip:
		return "LineStrip"
	case PointList:
		return "PointList"
	case SpriteList:
		return "SpriteList"
	case TopologyInvalid:
		return "Invalid"
	default:
		return fmt.Sprintf("Unknown(%d)", int16(t))
	}
}

// IsTriangle reports whether t is one of the triangle topologies.
func (t Topology) IsTriangle() bool {
	return t == TriList || t == TriStrip || t == TriFan
}

// IsLine reports whether t is one of the line topologies.
func (t Topology) IsLine() bool {
	return t == LineList || t == LineStrip
}

// PrimitiveCount returns the number of primitives n indices form under t.
// Strip and fan formulas never go below zero.
func (t Topology) PrimitiveCount(n int) int {
	switch t {
	case TriList:
		return n / 3
	case TriStrip, TriFan, LineStrip:
		return max(n-2, 0)
	case LineList:
		return n / 2
	case PointList, SpriteList:
		return n
	default:
		return 0
	}
}

// Override is an alternate sub-mesh attached to a group whose primitives had
// to be re-expressed geometrically. It owns its own vertex storage.
type Override struct {
	Vertices    VertexBuffer
	VertexCount int
	Description VertexDescription
	Indices     []uint32
	Topology    Topology
}

// PrimitiveGroup is one drawable batch sharing a topology and a material.
type PrimitiveGroup struct {
	Topology      Topology
	MaterialIndex uint32
	Indices       []uint32

	// Override is set only for groups produced by line expansion.
	Override *Override
}

// PrimitiveCount returns the number of primitives in the group's own index
// sequence.
func (g *PrimitiveGroup) PrimitiveCount() int {
	return g.Topology.PrimitiveCount(len(g.Indices))
}

// HasOverride reports whether the group carries an override sub-mesh.
func (g *PrimitiveGroup) HasOverride() bool {
	return g.Override != nil
}

// DrawTopology returns the topology a renderer should draw the group with.
func (g *PrimitiveGroup) DrawTopology() Topology {
	if g.Override != nil {
		return g.Override.Topology
	}
	return g.Topology
}

// DrawIndices returns the index sequence a renderer should draw.
func (g *PrimitiveGroup) DrawIndices() []uint32 {
	if g.Override != nil {
		return g.Override.Indices
	}
	return g.Indices
}

// DrawVertices returns the vertex storage the draw indices refer to, which
// is primary unless the group has an override.
func (g *PrimitiveGroup) DrawVertices(primary VertexBuffer) VertexBuffer {
	if g.Override != nil {
		return g.Override.Vertices
	}
	return primary
}

// DrawDescription returns the layout of DrawVertices.
func (g *PrimitiveGroup) DrawDescription(primary *VertexDescription) *VertexDescription {
	if g.Override != nil {
		return &g.Override.Description
	}
	return primary
}
