package graphics

import (
	_ "embed"

	"github.com/pkg/errors"
)

//go:embed shaders/scene.vert
var sceneVertexShader string

//go:embed shaders/scene.frag
var sceneFragmentShader string

// NewSceneShader builds the embedded scene shader program used for all
// tabletop geometry. Must be called with a current GL context.
func NewSceneShader() (*Shader, error) {
	shader, err := NewShaderFromSource(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return nil, errors.Wrap(err, "scene shader")
	}
	return shader, nil
}
