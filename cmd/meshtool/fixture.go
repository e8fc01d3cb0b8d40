package main

import (
	"errors"
	"fmt"
	gomath "math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/meshcore/pkg/mesh"
)

// Fixture errors.
var (
	ErrUnknownSemantic = errors.New("unknown vertex semantic")
	ErrUnknownFormat   = errors.New("unknown vertex format")
	ErrUnknownTopology = errors.New("unknown topology")
	ErrInvalidFixture  = errors.New("invalid mesh fixture")
)

// Fixture is the YAML description of a test mesh: a vertex layout, one row
// of 32-bit words per vertex, and primitive groups.
type Fixture struct {
	Name       string             `yaml:"name"`
	Stride     uint32             `yaml:"stride"`
	Attributes []FixtureAttribute `yaml:"attributes"`
	Vertices   [][]float64        `yaml:"vertices"`
	Groups     []FixtureGroup     `yaml:"groups"`
}

// FixtureAttribute is one entry of the vertex layout.
type FixtureAttribute struct {
	Semantic string `yaml:"semantic"`
	Format   string `yaml:"format"`
	Offset   uint32 `yaml:"offset"`
}

// FixtureGroup is one primitive group.
type FixtureGroup struct {
	Topology string   `yaml:"topology"`
	Material uint32   `yaml:"material"`
	Indices  []uint32 `yaml:"indices"`
}

// LoadFixture reads and parses a fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFixture(data)
}

// ParseFixture parses fixture YAML.
func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	return &f, nil
}

// Build converts the fixture into a mesh. Each vertex row holds one value
// per 32-bit word of the record; words inside a UByte4 attribute are stored
// as packed integers, all others as float32.
func (f *Fixture) Build() (*mesh.Mesh, error) {
	attrs := make([]mesh.VertexAttribute, 0, len(f.Attributes))
	for _, a := range f.Attributes {
		s, err := parseSemantic(a.Semantic)
		if err != nil {
			return nil, err
		}
		format, err := parseFormat(a.Format)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, mesh.VertexAttribute{Semantic: s, Format: format, Offset: a.Offset})
	}

	m := mesh.New(f.Name)
	desc := mesh.NewVertexDescription(f.Stride, attrs...)
	if !m.SetVertexDescription(desc) {
		return nil, fmt.Errorf("%w: vertex layout does not fit stride %d", ErrInvalidFixture, f.Stride)
	}
	if f.Stride%4 != 0 {
		return nil, fmt.Errorf("%w: stride %d is not a multiple of 4", ErrInvalidFixture, f.Stride)
	}

	packed := packedWords(&desc)
	words := int(f.Stride / 4)
	buf := mesh.NewVertexBuffer(len(f.Vertices), f.Stride)
	for i, row := range f.Vertices {
		if len(row) != words {
			return nil, fmt.Errorf("%w: vertex %d has %d words, want %d", ErrInvalidFixture, i, len(row), words)
		}
		for w, v := range row {
			off := i*int(f.Stride) + 4*w
			if packed[w] {
				if v < 0 || v > gomath.MaxUint32 || v != gomath.Trunc(v) {
					return nil, fmt.Errorf("%w: vertex %d word %d is not a packed uint32", ErrInvalidFixture, i, w)
				}
				buf.SetUint32At(off, uint32(v))
			} else {
				buf.SetFloat32At(off, float32(v))
			}
		}
	}
	m.SetVertices(len(f.Vertices), buf)

	for gi, g := range f.Groups {
		t, err := parseTopology(g.Topology)
		if err != nil {
			return nil, err
		}
		for _, idx := range g.Indices {
			if int(idx) >= len(f.Vertices) {
				return nil, fmt.Errorf("%w: group %d index %d out of range", ErrInvalidFixture, gi, idx)
			}
		}
		m.AddPrimitives(t, g.Material, g.Indices)
	}
	return m, nil
}

// packedWords marks the 32-bit words of a record that belong to UByte4
// attributes.
func packedWords(desc *mesh.VertexDescription) []bool {
	packed := make([]bool, desc.Stride/4)
	for _, a := range desc.Attributes() {
		if a.Format == mesh.UByte4 {
			packed[a.Offset/4] = true
		}
	}
	return packed
}

func parseSemantic(name string) (mesh.Semantic, error) {
	for s := mesh.SemanticInvalid + 1; s < mesh.SemanticCount; s++ {
		if strings.EqualFold(s.String(), name) {
			return s, nil
		}
	}
	return mesh.SemanticInvalid, fmt.Errorf("%w: %q", ErrUnknownSemantic, name)
}

func parseFormat(name string) (mesh.Format, error) {
	for f := mesh.FormatInvalid + 1; f < mesh.FormatCount; f++ {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return mesh.FormatInvalid, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

func parseTopology(name string) (mesh.Topology, error) {
	for t := mesh.TriList; t <= mesh.SpriteList; t++ {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return mesh.TopologyInvalid, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
}
