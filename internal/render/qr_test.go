package render_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/qreet/internal/render"
)

const testCode = "24017050614017900110063168333761836002264103411300"

func TestRenderer_PNG(t *testing.T) {
	r := render.NewRenderer()
	assert.Equal(t, render.DefaultSize, r.Size())

	data, err := r.PNG(testCode)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, render.DefaultSize, img.Bounds().Dx())
	assert.Equal(t, render.DefaultSize, img.Bounds().Dy())
}

func TestRenderer_Options(t *testing.T) {
	r := render.NewRenderer(render.WithSize(512), render.WithLevel(render.LevelH))
	assert.Equal(t, 512, r.Size())

	data, err := r.PNG(testCode)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
}

func TestRenderer_NonNumericText(t *testing.T) {
	data, err := render.NewRenderer().PNG("EET receipt")
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderer_Errors(t *testing.T) {
	r := render.NewRenderer()

	_, err := r.PNG("")
	assert.Error(t, err)

	_, err = r.PNGSize(testCode, 10)
	assert.Error(t, err)

	_, err = r.PNGSize(testCode, render.MaxSize+1)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected render.Level
	}{
		{"", render.LevelM},
		{"l", render.LevelL},
		{"M", render.LevelM},
		{" q ", render.LevelQ},
		{"H", render.LevelH},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l, err := render.ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l)
		})
	}

	_, err := render.ParseLevel("X")
	assert.Error(t, err)
}
