package scene

import "github.com/mpoquet/go-whitted-raytracer/pkg/core"

// CameraSpec describes the viewpoint a scene was composed for. The renderer
// turns it into a camera of whatever resolution the caller wants.
type CameraSpec struct {
	FieldOfView float64
	From        core.Tuple
	To          core.Tuple
	Up          core.Tuple
}

// ViewTransform returns the view matrix for this spec.
func (c CameraSpec) ViewTransform() core.Matrix {
	return core.ViewTransform(c.From, c.To, c.Up)
}
