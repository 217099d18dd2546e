package raster

import (
	"github.com/Faultbox/parashape/pkg/math"
	"github.com/Faultbox/parashape/pkg/mesh"
)

// edgeSlack admits pixels a hair outside an edge so shared edges leave no
// cracks.
const edgeSlack = -1e-4

// rasterizeTriangle fills one triangle with depth testing and smooth
// attribute interpolation. Both windings are drawn.
func rasterizeTriangle(fb *FrameBuffer, m *mesh.Mesh, pv *projected, tri [3]uint32, shading Shading, light *Light) {
	i0, i1, i2 := tri[0], tri[1], tri[2]
	x0, y0, z0 := pv.x[i0], pv.y[i0], pv.z[i0]
	x1, y1, z1 := pv.x[i1], pv.y[i1], pv.z[i1]
	x2, y2, z2 := pv.x[i2], pv.y[i2], pv.z[i2]

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1 / det

	minX := max(floorInt(min(x0, x1, x2)), 0)
	maxX := min(floorInt(max(x0, x1, x2)), fb.Width-1)
	minY := max(floorInt(min(y0, y1, y2)), 0)
	maxY := min(floorInt(max(y0, y1, y2)), fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	dy12, dx21 := y1-y2, x2-x1
	dy20, dx02 := y2-y0, x0-x2

	for sy := minY; sy <= maxY; sy++ {
		py := float32(sy) + 0.5 - y2
		row := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			px := float32(sx) + 0.5 - x2
			w0 := (dy12*px + dx21*py) * invDet
			w1 := (dy20*px + dx02*py) * invDet
			w2 := 1 - w0 - w1
			if w0 < edgeSlack || w1 < edgeSlack || w2 < edgeSlack {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			idx := row + sx
			if z <= fb.Depth[idx] {
				continue
			}
			fb.Depth[idx] = z

			f := fragment{
				normal:   blend3(pv.normals, i0, i1, i2, w0, w1, w2),
				modelN:   blend3(m.Normals, i0, i1, i2, w0, w1, w2),
				tangent:  blend3(m.Tangents, i0, i1, i2, w0, w1, w2),
				binormal: blend3(m.Binormals, i0, i1, i2, w0, w1, w2),
				uv: m.TexCoords[i0].Scale(w0).
					Add(m.TexCoords[i1].Scale(w1)).
					Add(m.TexCoords[i2].Scale(w2)),
			}
			r, g, b := shading.color(f, light)

			c := idx * 4
			fb.Color[c] = r
			fb.Color[c+1] = g
			fb.Color[c+2] = b
			fb.Color[c+3] = 255
		}
	}
}

func blend3(v []math.Vec3, i0, i1, i2 uint32, w0, w1, w2 float32) math.Vec3 {
	return v[i0].Scale(w0).Add(v[i1].Scale(w1)).Add(v[i2].Scale(w2))
}
