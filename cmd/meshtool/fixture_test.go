package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshcore/pkg/math"
	"github.com/Faultbox/meshcore/pkg/mesh"
)

const triangleFixture = `
name: tri
stride: 16
attributes:
  - {semantic: position, format: float3, offset: 0}
  - {semantic: color0, format: ubyte4, offset: 12}
vertices:
  - [0, 0, 0, 4278190335]
  - [1, 0, 0, 4278190335]
  - [0, 1, 0, 4278190335]
groups:
  - {topology: trilist, material: 1, indices: [0, 1, 2]}
  - {topology: linestrip, material: 0, indices: [0, 1, 2]}
`

func TestFixtureBuild(t *testing.T) {
	f, err := ParseFixture([]byte(triangleFixture))
	require.NoError(t, err)

	m, err := f.Build()
	require.NoError(t, err)

	assert.Equal(t, "tri", m.Name())
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 2, m.GroupCount())
	assert.Equal(t, math.Vec3{X: 1}, m.Vertices().Float3At(16))
	assert.Equal(t, uint32(0xff0000ff), m.Vertices().Uint32At(12))
	assert.Equal(t, mesh.UByte4, m.VertexDescription().Attribute(mesh.Color0).Format)

	lines := m.Group(1)
	require.NotNil(t, lines.Override)
	assert.Equal(t, 8, lines.Override.VertexCount)
}

func TestFixtureErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "bad yaml",
			yaml:    "stride: [",
			wantErr: ErrInvalidFixture,
		},
		{
			name:    "unknown semantic",
			yaml:    "stride: 12\nattributes: [{semantic: velocity, format: float3, offset: 0}]",
			wantErr: ErrUnknownSemantic,
		},
		{
			name:    "unknown format",
			yaml:    "stride: 12\nattributes: [{semantic: position, format: double3, offset: 0}]",
			wantErr: ErrUnknownFormat,
		},
		{
			name:    "layout overflows stride",
			yaml:    "stride: 8\nattributes: [{semantic: position, format: float3, offset: 0}]",
			wantErr: ErrInvalidFixture,
		},
		{
			name:    "offset wraps past stride",
			yaml:    "stride: 4\nattributes: [{semantic: color0, format: ubyte4, offset: 4294967292}]\nvertices: [[0]]",
			wantErr: ErrInvalidFixture,
		},
		{
			name:    "short vertex row",
			yaml:    "stride: 12\nattributes: [{semantic: position, format: float3, offset: 0}]\nvertices: [[1, 2]]",
			wantErr: ErrInvalidFixture,
		},
		{
			name:    "unknown topology",
			yaml:    "stride: 12\nattributes: [{semantic: position, format: float3, offset: 0}]\ngroups: [{topology: quads}]",
			wantErr: ErrUnknownTopology,
		},
		{
			name:    "index out of range",
			yaml:    "stride: 12\nattributes: [{semantic: position, format: float3, offset: 0}]\nvertices: [[0, 0, 0]]\ngroups: [{topology: pointlist, indices: [1]}]",
			wantErr: ErrInvalidFixture,
		},
		{
			name:    "fractional packed word",
			yaml:    "stride: 4\nattributes: [{semantic: color0, format: ubyte4, offset: 0}]\nvertices: [[0.5]]",
			wantErr: ErrInvalidFixture,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFixture([]byte(tt.yaml))
			if err == nil {
				_, err = f.Build()
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParseEnumsCaseInsensitive(t *testing.T) {
	s, err := parseSemantic("NEXTPOSITION")
	require.NoError(t, err)
	assert.Equal(t, mesh.NextPosition, s)

	s, err = parseSemantic("texture3")
	require.NoError(t, err)
	assert.Equal(t, mesh.Texture3, s)

	_, err = parseSemantic("invalid")
	assert.ErrorIs(t, err, ErrUnknownSemantic)

	topo, err := parseTopology("TriFan")
	require.NoError(t, err)
	assert.Equal(t, mesh.TriFan, topo)

	_, err = parseTopology("invalid")
	assert.ErrorIs(t, err, ErrUnknownTopology)
}
