// meshtool inspects, exports and previews generated meshes without a GPU.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/parashape/internal/logger"
)

func main() {
	if err := logger.Init(os.Getenv("MESHTOOL_LOG"), ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	a := &app{stdout: os.Stdout, stderr: os.Stderr, progress: true}
	err := a.run(os.Args[1:])
	switch {
	case err == nil:
		logger.Close()
	case errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp):
		logger.Close()
		os.Exit(2)
	default:
		logger.Error("meshtool failed", zap.Error(err))
		logger.Close()
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

// app carries the output streams so commands can be exercised in tests.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	progress bool
}

func (a *app) run(args []string) error {
	if len(args) < 1 {
		a.printUsage()
		return errUsage
	}

	command, rest := args[0], args[1:]
	switch command {
	case "info":
		return a.cmdInfo(rest)
	case "obj":
		return a.cmdOBJ(rest)
	case "preview":
		return a.cmdPreview(rest)
	case "batch":
		return a.cmdBatch(rest)
	case "help", "-h", "--help":
		a.printUsage()
		return nil
	default:
		fmt.Fprintf(a.stderr, "Unknown command: %s\n", command)
		a.printUsage()
		return errUsage
	}
}

func (a *app) printUsage() {
	fmt.Fprintln(a.stderr, `meshtool - parametric mesh utility

Usage:
  meshtool <command> [options]

Commands:
  info <kind> [shape flags]                  Show counts, bounds and validation
  obj <kind> [shape flags] [-o file.obj]     Export Wavefront OBJ (stdout by default)
  preview <kind> [shape flags] -o file.webp  Render a WebP preview
  batch -config scene.yaml -out dir          Preview every shape of a scene config

Kinds: quad, sphere, torus, circle_ring, spaceship

Shape flags:
  -width -height   quad size
  -radius          sphere radius, ring radius
  -major -minor    torus radii
  -spread          ring width
  -su -sv          split counts

Examples:
  meshtool info sphere -radius 2 -su 40 -sv 30
  meshtool obj torus -major 1 -minor 0.25 -o torus.obj
  meshtool preview circle_ring -size 256 -shading normal -o ring.webp`)
}
