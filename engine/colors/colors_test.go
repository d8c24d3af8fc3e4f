package colors

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestColorConversions(t *testing.T) {
	c := Color{0.1, 0.2, 0.3, 0.4}
	assert.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, c.RGB())
	assert.Equal(t, mgl32.Vec4{0.1, 0.2, 0.3, 0.4}, c.Vec4())
	assert.Equal(t, Color{0.1, 0.2, 0.3, 1}, c.WithAlpha(1))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, Black, Black.Lerp(White, 0))
	assert.Equal(t, White, Black.Lerp(White, 1))
	assert.Equal(t, Color{0.5, 0.5, 0.5, 1}, Black.Lerp(White, 0.5))
}
