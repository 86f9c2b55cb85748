package geometry

import (
	"math"

	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Position of the camera (lookfrom)
	LookAt        core.Vec3 // Point camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the plane of perfect focus, 0 = auto-calculate
	Time0         float64   // Shutter open time
	Time1         float64   // Shutter close time
}

// Camera generates rays for rendering with depth of field and motion blur
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // Lens plane basis
	lensRadius      float64
	time0, time1    float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	if config.AspectRatio <= 0 {
		config.AspectRatio = 1.0
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
		if focusDistance == 0 {
			focusDistance = 1.0
		}
	}

	theta := config.VFov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	w := config.Center.Subtract(config.LookAt).Normalize()
	if w.LengthSquared() == 0 {
		w = core.NewVec3(0, 0, 1)
	}
	u := config.Up.Cross(w).Normalize()
	if u.LengthSquared() == 0 {
		// Up is parallel to the view direction; pick any perpendicular axis
		u = perpendicular(w)
	}
	v := w.Cross(u)

	origin := config.Center
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDistance),
		vertical:        v.Multiply(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0,0) is the lower-left corner of the viewport.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	time := c.time0
	if c.time1 != c.time0 {
		time = c.time0 + sampler.Get1D()*(c.time1-c.time0)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAt(origin, direction, time)
}

// perpendicular returns a unit vector orthogonal to n
func perpendicular(n core.Vec3) core.Vec3 {
	if math.Abs(n.X) > 0.9 {
		return core.NewVec3(0, 1, 0).Cross(n).Normalize()
	}
	return core.NewVec3(1, 0, 0).Cross(n).Normalize()
}
