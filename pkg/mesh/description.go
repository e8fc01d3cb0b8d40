package mesh

import "slices"

// VertexDescription is the layout of one interleaved vertex record: its
// total byte stride and the ordered list of attributes it contains.
//
// Lookups by semantic go through a dense map indexed by Semantic. When a
// semantic is listed more than once, the last occurrence wins in the map
// while the attribute list keeps every entry.
type VertexDescription struct {
	Stride     uint32
	attributes []VertexAttribute
	semantics  [SemanticCount]VertexAttribute
}

// NewVertexDescription creates a description with the given stride and a
// copy of attrs.
func NewVertexDescription(stride uint32, attrs ...VertexAttribute) VertexDescription {
	d := VertexDescription{
		Stride:     stride,
		attributes: slices.Clone(attrs),
	}
	if len(d.attributes) > 0 {
		d.buildSemanticMap()
	}
	return d
}

// AppendingAttributes returns a new description holding desc's attributes
// followed by extra. The stride grows by the size of every added format.
// desc itself is not modified.
func AppendingAttributes(desc VertexDescription, extra ...VertexAttribute) VertexDescription {
	all := make([]VertexAttribute, 0, len(desc.attributes)+len(extra))
	all = append(all, desc.attributes...)

	stride := desc.Stride
	for _, attr := range extra {
		all = append(all, attr)
		stride += FormatSize(attr.Format)
	}
	return NewVertexDescription(stride, all...)
}

// Attributes returns the attribute list in declaration order. The returned
// slice must not be modified.
func (d *VertexDescription) Attributes() []VertexAttribute {
	return d.attributes
}

// Attribute returns the attribute registered for semantic s, or the zero
// VertexAttribute if there is none.
func (d *VertexDescription) Attribute(s Semantic) VertexAttribute {
	if !s.Valid() {
		return VertexAttribute{}
	}
	return d.semantics[s]
}

// Has reports whether semantic s is present with format f.
func (d *VertexDescription) Has(s Semantic, f Format) bool {
	attr := d.Attribute(s)
	return attr.Semantic == s && attr.Format == f
}

// Validate checks that every attribute is 4-byte aligned and fits inside
// the stride. Repeated semantics are not rejected.
func (d *VertexDescription) Validate() bool {
	for _, attr := range d.attributes {
		if attr.Offset%4 != 0 || attr.Offset > d.Stride || FormatSize(attr.Format) > d.Stride-attr.Offset {
			return false
		}
	}
	return true
}

// ClearSemanticMap resets every semantic slot to the absent attribute.
func (d *VertexDescription) ClearSemanticMap() {
	for i := range d.semantics {
		d.semantics[i] = VertexAttribute{}
	}
}

func (d *VertexDescription) buildSemanticMap() {
	for _, attr := range d.attributes {
		if attr.Semantic.Valid() {
			d.semantics[attr.Semantic] = attr
		}
	}
}

// Equal compares stride and attribute lists.
func (d *VertexDescription) Equal(other *VertexDescription) bool {
	return d.Stride == other.Stride && slices.Equal(d.attributes, other.attributes)
}

// Less orders descriptions by stride, then lexicographically by attribute.
func (d *VertexDescription) Less(other *VertexDescription) bool {
	if d.Stride != other.Stride {
		return d.Stride < other.Stride
	}
	return slices.CompareFunc(d.attributes, other.attributes, compareAttributes) < 0
}

func compareAttributes(a, b VertexAttribute) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
