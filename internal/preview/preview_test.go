package preview

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/parashape/pkg/mesh"
)

func TestRenderSupersampled(t *testing.T) {
	m, err := mesh.Torus(1, 0.3, 24, 12)
	require.NoError(t, err)

	img, err := Render(m, DefaultOptions(48))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 48, 48), img.Bounds())
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)
}

func TestRenderWithoutSupersampling(t *testing.T) {
	m, err := mesh.Sphere(1, 12, 8)
	require.NoError(t, err)

	opts := DefaultOptions(32)
	opts.Supersample = 0
	img, err := Render(m, opts)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, uint8(255), img.NRGBAAt(16, 16).A)
}

func TestRenderRejectsBadSize(t *testing.T) {
	_, err := Render(mesh.Spaceship(), Options{Size: 0})
	assert.Error(t, err)
}

func TestDownsampleKeepsOpaqueColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 200, 100, 50, 255
	}

	dst := Downsample(src, 4)
	require.Equal(t, 4, dst.Bounds().Dx())
	c := dst.NRGBAAt(2, 2)
	assert.InDelta(t, 200, int(c.R), 1)
	assert.InDelta(t, 100, int(c.G), 1)
	assert.InDelta(t, 50, int(c.B), 1)
	assert.Equal(t, uint8(255), c.A)

	assert.Same(t, src, Downsample(src, 8), "no upscaling")
}

func TestEncodeWritesWebP(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Pix[3] = 255

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))
	data := buf.Bytes()
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ship.webp")
	require.NoError(t, WriteFile(path, mesh.Spaceship(), DefaultOptions(32)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
