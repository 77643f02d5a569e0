package lights

import (
	"testing"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

func TestPointLight_HasPositionAndIntensity(t *testing.T) {
	position := core.NewPoint(0, 0, 0)
	intensity := core.NewColor(1, 1, 1)

	light := NewPointLight(position, intensity)

	if !light.Position.Equals(position) {
		t.Errorf("Expected position %v, got %v", position, light.Position)
	}
	if !light.Intensity.Equals(intensity) {
		t.Errorf("Expected intensity %v, got %v", intensity, light.Intensity)
	}
}
