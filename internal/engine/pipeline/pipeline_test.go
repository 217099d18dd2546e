package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCullModeCycle(t *testing.T) {
	m := CullDisabled
	var seen []string
	for i := 0; i < 4; i++ {
		seen = append(seen, m.String())
		m = m.Next()
	}
	assert.Equal(t, []string{"disabled", "back", "front", "disabled"}, seen)
}

func TestPolygonModeCycle(t *testing.T) {
	m := PolygonFill
	var seen []string
	for i := 0; i < 4; i++ {
		seen = append(seen, m.String())
		m = m.Next()
	}
	assert.Equal(t, []string{"fill", "line", "point", "fill"}, seen)
}

func TestParseModes(t *testing.T) {
	tests := []struct {
		name    string
		cull    CullMode
		wantErr bool
	}{
		{"", CullDisabled, false},
		{"back", CullBack, false},
		{"FRONT", CullFront, false},
		{"both", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCullMode(tt.name)
		if tt.wantErr {
			assert.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.cull, got, tt.name)
	}

	p, err := ParsePolygonMode("Line")
	require.NoError(t, err)
	assert.Equal(t, PolygonLine, p)
	p, err = ParsePolygonMode("")
	require.NoError(t, err)
	assert.Equal(t, PolygonFill, p)
	_, err = ParsePolygonMode("dots")
	assert.Error(t, err)
}

func TestOutOfRangeNames(t *testing.T) {
	assert.Equal(t, "CullMode(7)", CullMode(7).String())
	assert.Equal(t, "PolygonMode(-1)", PolygonMode(-1).String())
}

func TestWithWireframe(t *testing.T) {
	assert.Equal(t, PolygonFill, PolygonFill.WithWireframe(false))
	assert.Equal(t, PolygonLine, PolygonFill.WithWireframe(true))
	assert.Equal(t, PolygonPoint, PolygonPoint.WithWireframe(true))
	assert.Equal(t, PolygonLine, PolygonLine.WithWireframe(false))
}
