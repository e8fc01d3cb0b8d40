// Package mesh implements an in-memory mesh geometry engine: an interleaved
// vertex buffer described by a runtime VertexDescription, primitive groups
// over it, and geometry queries (ray picking, bounding boxes, transforms)
// evaluated directly against the raw buffer.
//
// A Mesh is not safe for concurrent mutation. Read-only queries may run in
// parallel as long as nothing mutates the mesh.
package mesh

import "go.uber.org/zap"

// Mesh owns one vertex buffer, its description and an ordered list of
// primitive groups.
type Mesh struct {
	vertices    VertexBuffer
	vertexCount int
	desc        VertexDescription
	groups      []*PrimitiveGroup
	name        string

	log *zap.Logger
}

// New creates an empty mesh with the given name.
func New(name string) *Mesh {
	return &Mesh{name: name}
}

// SetLogger sets the logger used for diagnostics. A nil logger disables
// logging.
func (m *Mesh) SetLogger(log *zap.Logger) {
	m.log = log
}

func (m *Mesh) logger() *zap.Logger {
	if m.log == nil {
		return zap.NewNop()
	}
	return m.log
}

// Name returns the mesh name.
func (m *Mesh) Name() string {
	return m.name
}

// SetName sets the mesh name.
func (m *Mesh) SetName(name string) {
	m.name = name
}

// SetVertices adopts buf as the vertex storage for count vertices. buf must
// hold count*Stride bytes. Passing the current buffer again is a no-op.
func (m *Mesh) SetVertices(count int, buf VertexBuffer) {
	if sameStorage(buf, m.vertices) {
		return
	}
	m.vertexCount = count
	m.vertices = buf
}

// Vertices returns the primary vertex buffer.
func (m *Mesh) Vertices() VertexBuffer {
	return m.vertices
}

// VertexCount returns the number of vertices in the primary buffer.
func (m *Mesh) VertexCount() int {
	return m.vertexCount
}

// SetVertexDescription replaces the vertex layout. It returns false and
// leaves the mesh unchanged if desc fails validation.
func (m *Mesh) SetVertexDescription(desc VertexDescription) bool {
	if !desc.Validate() {
		m.logger().Debug("rejected vertex description",
			zap.String("mesh", m.name),
			zap.Uint32("stride", desc.Stride),
			zap.Int("attributes", len(desc.Attributes())))
		return false
	}
	m.desc = desc
	return true
}

// VertexDescription returns the current vertex layout.
func (m *Mesh) VertexDescription() *VertexDescription {
	return &m.desc
}

// AddGroup appends an already built group and returns the new group count.
func (m *Mesh) AddGroup(g *PrimitiveGroup) int {
	m.groups = append(m.groups, g)
	return len(m.groups)
}

// AddPrimitives builds a group from a topology, material and index list and
// appends it. Line topologies also get an override sub-mesh of camera
// facing quads built from the current vertex buffer. Returns the new group
// count.
func (m *Mesh) AddPrimitives(t Topology, materialIndex uint32, indices []uint32) int {
	var g *PrimitiveGroup
	if t.IsLine() {
		g = m.expandLines(t == LineStrip, indices)
	} else {
		g = &PrimitiveGroup{}
	}
	g.Indices = indices
	g.Topology = t
	g.MaterialIndex = materialIndex

	return m.AddGroup(g)
}

// Group returns the group at index i, or nil if i is out of range.
func (m *Mesh) Group(i int) *PrimitiveGroup {
	if i < 0 || i >= len(m.groups) {
		return nil
	}
	return m.groups[i]
}

// GroupCount returns the number of groups.
func (m *Mesh) GroupCount() int {
	return len(m.groups)
}

// Groups returns the groups in draw order. The slice is a copy; the groups
// are not.
func (m *Mesh) Groups() []*PrimitiveGroup {
	out := make([]*PrimitiveGroup, len(m.groups))
	copy(out, m.groups)
	return out
}

// ClearGroups removes every group. Groups already handed out by Group or
// Groups stay usable by their holders.
func (m *Mesh) ClearGroups() {
	clear(m.groups)
	m.groups = m.groups[:0]
}

// PrimitiveCount returns the total primitive count over all groups.
func (m *Mesh) PrimitiveCount() int {
	count := 0
	for _, g := range m.groups {
		count += g.PrimitiveCount()
	}
	return count
}
