package material

import (
	"github.com/df07/go-nextweek-pathtracer/pkg/core"
)

// fixedSampler returns the same values on every call
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64 { return f.value }

func (f fixedSampler) Get2D() core.Vec2 { return core.NewVec2(f.value, f.value) }

func (f fixedSampler) Get3D() core.Vec3 { return core.NewVec3(f.value, f.value, f.value) }

func upHit(m Material) HitRecord {
	return HitRecord{
		T:        1,
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		UV:       core.NewVec2(0.25, 0.75),
		Material: m,
	}
}
