package anim

// Target receives the interpolated vector of position, rotation and scale animators.
type Target interface {
	SetPosition(Vec3)
	SetRotation(Vec3)
	SetScale(Vec3)
}

// Transform is a minimal Target holding the three vectors directly.
// Rotation is expressed as Euler angles in degrees.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

func (t *Transform) SetPosition(v Vec3) { t.Position = v }
func (t *Transform) SetRotation(v Vec3) { t.Rotation = v }
func (t *Transform) SetScale(v Vec3) { t.Scale = v }
