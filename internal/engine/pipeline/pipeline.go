// Package pipeline names the fixed-function rasterizer state the viewer
// switches at runtime. It has no GL dependency; the renderer maps these
// values to GL enums.
package pipeline

import (
	"fmt"
	"strings"
)

// CullMode selects which faces are discarded.
type CullMode int

const (
	CullDisabled CullMode = iota
	CullBack
	CullFront

	cullModeCount
)

var cullModeNames = [...]string{"disabled", "back", "front"}

func (m CullMode) String() string {
	if m < 0 || m >= cullModeCount {
		return fmt.Sprintf("CullMode(%d)", int(m))
	}
	return cullModeNames[m]
}

// Next returns the following mode, wrapping after front.
func (m CullMode) Next() CullMode {
	return (m + 1) % cullModeCount
}

// ParseCullMode parses a mode name, case-insensitively. An empty name is
// CullDisabled.
func ParseCullMode(name string) (CullMode, error) {
	if name == "" {
		return CullDisabled, nil
	}
	for i, n := range cullModeNames {
		if strings.EqualFold(name, n) {
			return CullMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown cull mode %q (want disabled, back or front)", name)
}

// PolygonMode selects how triangles are rasterized.
type PolygonMode int

const (
	PolygonFill PolygonMode = iota
	PolygonLine
	PolygonPoint

	polygonModeCount
)

var polygonModeNames = [...]string{"fill", "line", "point"}

func (m PolygonMode) String() string {
	if m < 0 || m >= polygonModeCount {
		return fmt.Sprintf("PolygonMode(%d)", int(m))
	}
	return polygonModeNames[m]
}

// Next returns the following mode, wrapping after point.
func (m PolygonMode) Next() PolygonMode {
	return (m + 1) % polygonModeCount
}

// ParsePolygonMode parses a mode name, case-insensitively. An empty name is
// PolygonFill.
func ParsePolygonMode(name string) (PolygonMode, error) {
	if name == "" {
		return PolygonFill, nil
	}
	for i, n := range polygonModeNames {
		if strings.EqualFold(name, n) {
			return PolygonMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown polygon mode %q (want fill, line or point)", name)
}

// WithWireframe returns the mode for a node that asks for wireframe: a
// filled global mode becomes lines, line and point modes are kept.
func (m PolygonMode) WithWireframe(wireframe bool) PolygonMode {
	if wireframe && m == PolygonFill {
		return PolygonLine
	}
	return m
}
