package mesh

import "github.com/gogpu/gputypes"

// gpuFormats maps vertex formats to their WebGPU equivalents.
var gpuFormats = map[Format]gputypes.VertexFormat{
	Float1: gputypes.VertexFormatFloat32,
	Float2: gputypes.VertexFormatFloat32x2,
	Float3: gputypes.VertexFormatFloat32x3,
	Float4: gputypes.VertexFormatFloat32x4,
	UByte4: gputypes.VertexFormatUnorm8x4,
}

// gpuTopologies maps topologies to WebGPU primitive topologies. Fans have no
// WebGPU counterpart; sprites are drawn as points.
var gpuTopologies = map[Topology]gputypes.PrimitiveTopology{
	TriList:    gputypes.PrimitiveTopologyTriangleList,
	TriStrip:   gputypes.PrimitiveTopologyTriangleStrip,
	LineList:   gputypes.PrimitiveTopologyLineList,
	LineStrip:  gputypes.PrimitiveTopologyLineStrip,
	PointList:  gputypes.PrimitiveTopologyPointList,
	SpriteList: gputypes.PrimitiveTopologyPointList,
}

// GPUFormat returns the WebGPU vertex format for f.
func (f Format) GPUFormat() (gputypes.VertexFormat, bool) {
	vf, ok := gpuFormats[f]
	return vf, ok
}

// GPUTopology returns the WebGPU primitive topology for t.
func (t Topology) GPUTopology() (gputypes.PrimitiveTopology, bool) {
	pt, ok := gpuTopologies[t]
	return pt, ok
}

// GPUAttribute is one vertex attribute as a WebGPU pipeline expects it.
type GPUAttribute struct {
	Location uint32
	Semantic Semantic
	Format   gputypes.VertexFormat
	Offset   uint64
}

// GPUAttributes lists the description's attributes in declaration order
// with sequential shader locations. Attributes without a WebGPU format are
// skipped and do not consume a location.
func (d *VertexDescription) GPUAttributes() []GPUAttribute {
	out := make([]GPUAttribute, 0, len(d.attributes))
	for _, attr := range d.attributes {
		vf, ok := attr.Format.GPUFormat()
		if !ok {
			continue
		}
		out = append(out, GPUAttribute{
			Location: uint32(len(out)),
			Semantic: attr.Semantic,
			Format:   vf,
			Offset:   uint64(attr.Offset),
		})
	}
	return out
}
