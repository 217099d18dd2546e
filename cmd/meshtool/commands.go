package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/Faultbox/parashape/internal/config"
	"github.com/Faultbox/parashape/internal/logger"
	"github.com/Faultbox/parashape/internal/preview"
	"github.com/Faultbox/parashape/internal/raster"
	"github.com/Faultbox/parashape/pkg/mesh"
)

func (a *app) cmdInfo(args []string) error {
	sf := newShapeFlags("info", a.stderr)
	spec, err := sf.parse(args)
	if err != nil {
		return err
	}

	m, err := mesh.Generate(spec)
	if err != nil {
		return err
	}

	b := m.Bounds
	fmt.Fprintf(a.stdout, "Shape:     %s\n", spec)
	fmt.Fprintf(a.stdout, "Vertices:  %d\n", m.VertexCount())
	fmt.Fprintf(a.stdout, "Triangles: %d\n", m.TriangleCount())
	fmt.Fprintf(a.stdout, "Indices:   %d\n", m.IndexCount())
	fmt.Fprintf(a.stdout, "Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Fprintf(a.stdout, "Radius:    %.3f\n", b.Radius())

	if err := mesh.Validate(m); err != nil {
		fmt.Fprintf(a.stdout, "Valid:     no (%v)\n", err)
		return err
	}
	fmt.Fprintln(a.stdout, "Valid:     yes")
	return nil
}

func (a *app) cmdOBJ(args []string) error {
	sf := newShapeFlags("obj", a.stderr)
	output := sf.fs.String("o", "", "output file (stdout if empty)")
	spec, err := sf.parse(args)
	if err != nil {
		return err
	}

	m, err := mesh.Generate(spec)
	if err != nil {
		return err
	}

	if *output == "" {
		return m.WriteOBJ(a.stdout, string(spec.Kind))
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create %s: %w", *output, err)
	}
	if err := m.WriteOBJ(f, string(spec.Kind)); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", *output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("wrote obj",
		zap.String("path", *output),
		zap.Stringer("shape", spec),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()))
	return nil
}

// previewFlags are shared by preview and batch.
type previewFlags struct {
	size        *int
	supersample *int
	shading     *string
	yaw         *float64
	pitch       *float64
}

func addPreviewFlags(fs *flag.FlagSet) *previewFlags {
	def := raster.DefaultOptions(0)
	return &previewFlags{
		size:        fs.Int("size", 512, "output size in pixels"),
		supersample: fs.Int("supersample", 2, "render scale factor before downsampling"),
		shading:     fs.String("shading", def.Shading.String(), "shading mode (fallback, diffuse, normal, tangent, binormal, texcoord)"),
		yaw:         fs.Float64("yaw", float64(def.Yaw), "view yaw in radians"),
		pitch:       fs.Float64("pitch", float64(def.Pitch), "view pitch in radians"),
	}
}

func (pf *previewFlags) options() (preview.Options, error) {
	shading, err := raster.ParseShading(*pf.shading)
	if err != nil {
		return preview.Options{}, err
	}
	opts := preview.DefaultOptions(*pf.size)
	opts.Supersample = *pf.supersample
	opts.Raster.Shading = shading
	opts.Raster.Yaw = float32(*pf.yaw)
	opts.Raster.Pitch = float32(*pf.pitch)
	return opts, nil
}

func (a *app) cmdPreview(args []string) error {
	sf := newShapeFlags("preview", a.stderr)
	output := sf.fs.String("o", "", "output .webp file (required)")
	pf := addPreviewFlags(sf.fs)
	spec, err := sf.parse(args)
	if err != nil {
		return err
	}
	if *output == "" {
		return fmt.Errorf("preview: -o is required: %w", errUsage)
	}

	opts, err := pf.options()
	if err != nil {
		return err
	}
	m, err := mesh.Generate(spec)
	if err != nil {
		return err
	}
	if err := preview.WriteFile(*output, m, opts); err != nil {
		return err
	}

	logger.Info("wrote preview",
		zap.String("path", *output),
		zap.Stringer("shape", spec),
		zap.Int("size", opts.Size))
	return nil
}

func (a *app) cmdBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	configPath := fs.String("config", "", "scene config file (default search path if empty)")
	outDir := fs.String("out", "previews", "output directory")
	pf := addPreviewFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	opts, err := pf.options()
	if err != nil {
		return err
	}
	// config values apply unless the flag was given explicitly
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if !explicit["size"] && cfg.Preview.Size > 0 {
		opts.Size = cfg.Preview.Size
		opts.Raster = withSize(opts.Raster, opts.Size)
	}
	if !explicit["supersample"] && cfg.Preview.Supersample > 0 {
		opts.Supersample = cfg.Preview.Supersample
	}

	shapes := cfg.Scene.Shapes
	if len(shapes) == 0 {
		return fmt.Errorf("batch: no shapes in config")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("batch: create output dir: %w", err)
	}

	bar := a.newProgressBar(len(shapes))
	var failed int
	for _, sc := range shapes {
		path := filepath.Join(*outDir, sc.Name+".webp")
		if err := renderShape(path, sc.Mesh, opts); err != nil {
			failed++
			logger.Warn("preview failed", zap.String("shape", sc.Name), zap.Error(err))
		} else {
			logger.Debug("preview written", zap.String("shape", sc.Name), zap.String("path", path))
		}
		bar.Add(1)
	}
	bar.Finish()

	fmt.Fprintf(a.stdout, "Rendered %d/%d shapes to %s\n", len(shapes)-failed, len(shapes), *outDir)
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d shapes failed", failed, len(shapes))
	}
	return nil
}

func renderShape(path string, spec mesh.Spec, opts preview.Options) error {
	m, err := mesh.Generate(spec)
	if err != nil {
		return err
	}
	return preview.WriteFile(path, m, opts)
}

func withSize(ro raster.Options, size int) raster.Options {
	ro.Size = size
	ro.Margin = max(size/32, 1)
	return ro
}

func (a *app) newProgressBar(n int) *progressbar.ProgressBar {
	if !a.progress {
		return progressbar.NewOptions(n, progressbar.OptionSetWriter(io.Discard))
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(a.stderr),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
