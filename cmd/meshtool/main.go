// meshtool is a CLI utility for inspecting mesh fixtures with the geometry
// engine: layout and group info, ray picking, bounds, transforms and line
// expansion.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/meshcore/internal/config"
	"github.com/Faultbox/meshcore/internal/logger"
	"github.com/Faultbox/meshcore/pkg/math"
	"github.com/Faultbox/meshcore/pkg/mesh"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitWithOptions(logger.Options{
		Level:   cfg.Logging.Level,
		JSON:    cfg.Logging.JSON,
		Console: true,
		File:    logFile(cfg.Logging.LogFile),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(os.Stdout, cfg, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func logFile(path string) logger.FileConfig {
	if path == "" {
		return logger.FileConfig{}
	}
	return logger.DefaultFileConfig(path)
}

// run dispatches one subcommand, writing its report to w.
func run(w io.Writer, cfg *config.Config, command string, args []string) error {
	switch command {
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	case "info", "bbox", "pick", "transform", "lines", "aggregate":
	default:
		printUsage(w)
		return fmt.Errorf("unknown command: %s", command)
	}

	if len(args) < 1 {
		return fmt.Errorf("usage: meshtool %s <fixture.yaml> ...", command)
	}
	m, err := loadMesh(args[0])
	if err != nil {
		return err
	}

	r := reporter{w: w, prec: cfg.Output.Precision}
	switch command {
	case "info":
		cmdInfo(r, m)
	case "bbox":
		cmdBBox(r, m)
	case "pick":
		return cmdPick(r, cfg.Pick, m, args[1:])
	case "transform":
		return cmdTransform(r, m, args[1:])
	case "lines":
		cmdLines(r, cfg.Lines, m)
	case "aggregate":
		cmdAggregate(r, m)
	}
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `meshtool - mesh geometry inspection utility

Usage:
  meshtool [flags] <command> <fixture.yaml> [args]

Commands:
  info <fixture>                          Show layout, groups and primitive counts
  bbox <fixture>                          Show the bounding box
  pick <fixture> ox oy oz dx dy dz        Cast a ray and report the closest hit
  transform <fixture> tx ty tz scale      Translate then scale, show the new box
  lines <fixture>                         Show line groups expanded to quads
  aggregate <fixture>                     Show group order after sorting by material

Flags:
  -config <file>      Config file (.yaml or .toml)
  -debug              Enable debug logging
  -log-file <file>    Also log to a rotating file
  -precision <n>      Decimals printed for coordinates
  -max-distance <d>   Ignore pick hits beyond d

Examples:
  meshtool info cube.yaml
  meshtool pick cube.yaml 0.25 0.25 5 0 0 -1
  meshtool -precision 2 transform cube.yaml 1 0 0 2`)
}

func loadMesh(path string) (*mesh.Mesh, error) {
	f, err := LoadFixture(path)
	if err != nil {
		return nil, fmt.Errorf("loading fixture %s: %w", path, err)
	}
	m, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("building mesh from %s: %w", path, err)
	}
	m.SetLogger(logger.Named("mesh"))
	logger.Debug("mesh loaded",
		zap.String("name", m.Name()),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("groups", m.GroupCount()))
	return m, nil
}

// reporter formats command output with the configured precision.
type reporter struct {
	w    io.Writer
	prec int
}

func (r reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r reporter) num(v float64) string {
	return strconv.FormatFloat(v, 'f', r.prec, 64)
}

func (r reporter) vec(v math.Vec3) string {
	return fmt.Sprintf("(%s, %s, %s)", r.num(float64(v.X)), r.num(float64(v.Y)), r.num(float64(v.Z)))
}

func (r reporter) box(b math.Box3) {
	if b.IsEmpty() {
		r.printf("Box:        empty\n")
		return
	}
	r.printf("Min:        %s\n", r.vec(b.Min))
	r.printf("Max:        %s\n", r.vec(b.Max))
	r.printf("Center:     %s\n", r.vec(b.Center()))
	r.printf("Size:       %s\n", r.vec(b.Size()))
	r.printf("Radius:     %s\n", r.num(float64(b.Radius())))
}

func cmdInfo(r reporter, m *mesh.Mesh) {
	desc := m.VertexDescription()

	r.printf("Mesh:       %s\n", m.Name())
	r.printf("Vertices:   %d\n", m.VertexCount())
	r.printf("Stride:     %d bytes\n", desc.Stride)
	r.printf("Groups:     %d\n", m.GroupCount())
	r.printf("Primitives: %d\n", m.PrimitiveCount())
	r.printf("\nAttributes:\n")
	for _, a := range desc.Attributes() {
		r.printf("  %-14s %-8s offset %d\n", a.Semantic, a.Format, a.Offset)
	}

	r.printf("\nGroups:\n")
	for i, g := range m.Groups() {
		r.printf("  #%-3d %-10s material %-3d indices %-5d primitives %d",
			i, g.Topology, g.MaterialIndex, len(g.Indices), g.PrimitiveCount())
		if g.HasOverride() {
			r.printf("  (override: %s, %d vertices)", g.Override.Topology, g.Override.VertexCount)
		}
		r.printf("\n")
	}
}

func cmdBBox(r reporter, m *mesh.Mesh) {
	r.box(m.BoundingBox())
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func cmdPick(r reporter, cfg config.PickConfig, m *mesh.Mesh, args []string) error {
	v, err := parseFloats(args, 6)
	if err != nil {
		return fmt.Errorf("usage: meshtool pick <fixture> ox oy oz dx dy dz: %w", err)
	}

	origin := mgl64.Vec3{v[0], v[1], v[2]}
	dir := mgl64.Vec3{v[3], v[4], v[5]}
	if dir.Len() == 0 {
		return fmt.Errorf("ray direction must be non-zero")
	}
	if cfg.Normalize {
		dir = dir.Normalize()
	}

	res, ok := m.Pick(origin, dir)
	if ok && cfg.MaxDistance > 0 && res.Distance > cfg.MaxDistance {
		logger.Debug("hit beyond max distance", zap.Float64("distance", res.Distance))
		ok = false
	}
	if !ok {
		r.printf("No hit\n")
		return nil
	}

	hit := origin.Add(dir.Mul(res.Distance))
	r.printf("Group:      %d (material %d)\n", res.GroupIndex, res.Group.MaterialIndex)
	r.printf("Primitive:  %d\n", res.PrimitiveIndex)
	r.printf("Distance:   %s\n", r.num(res.Distance))
	r.printf("Point:      %s\n", r.vec(math.FromVec64(hit)))
	return nil
}

func cmdTransform(r reporter, m *mesh.Mesh, args []string) error {
	v, err := parseFloats(args, 4)
	if err != nil {
		return fmt.Errorf("usage: meshtool transform <fixture> tx ty tz scale: %w", err)
	}

	before := m.BoundingBox()
	m.Transform(math.Vec3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}, float32(v[3]))

	r.printf("Before:\n")
	r.box(before)
	r.printf("After:\n")
	r.box(m.BoundingBox())
	return nil
}

func cmdLines(r reporter, cfg config.LinesConfig, m *mesh.Mesh) {
	count := 0
	for i, g := range m.Groups() {
		if !g.HasOverride() {
			continue
		}
		count++
		o := g.Override
		r.printf("Group #%d %s: %d lines -> %d vertices, %d indices, stride %d\n",
			i, g.Topology, len(o.Indices)/6, o.VertexCount, len(o.Indices), o.Description.Stride)

		if !cfg.ShowVertices || !o.Description.Has(mesh.Position, mesh.Float3) {
			continue
		}
		pos := o.Description.Attribute(mesh.Position)
		next := o.Description.Attribute(mesh.NextPosition)
		scale := o.Description.Attribute(mesh.ScaleFactor)
		stride := int(o.Description.Stride)
		for j := 0; j < o.VertexCount; j++ {
			base := j * stride
			r.printf("  %3d  pos %s  next %s  scale %s\n", j,
				r.vec(o.Vertices.Float3At(base+int(pos.Offset))),
				r.vec(o.Vertices.Float3At(base+int(next.Offset))),
				r.num(float64(o.Vertices.Float32At(base+int(scale.Offset)))))
		}
	}

	if count == 0 {
		r.printf("No line groups\n")
	}
}

func cmdAggregate(r reporter, m *mesh.Mesh) {
	before := make(map[*mesh.PrimitiveGroup]int, m.GroupCount())
	for i, g := range m.Groups() {
		before[g] = i
	}

	m.AggregateByMaterial()

	for i, g := range m.Groups() {
		r.printf("  #%-3d material %-3d (was #%d, %s)\n", i, g.MaterialIndex, before[g], g.Topology)
	}
}
