package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// dualQuaternion defines functions to perform rigid transformations in 3D.
// The real part is the rotation and the dual part encodes the translation as 0.5 * t * real.
type dualQuaternion struct {
	dualquat.Number
}

// newDualQuaternion returns a dual quaternion whose rotation is the identity.
// Since the real part of a dual quaternion should be a unit quaternion, not all zeroes, this should be used
// instead of &dualQuaternion{}.
func newDualQuaternion() *dualQuaternion {
	return &dualQuaternion{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

func newDualQuaternionFromPose(p Pose) *dualQuaternion {
	q := newDualQuaternion()
	q.Real = Normalize(p.Orientation().Quaternion())
	q.setTranslation(p.Point())
	return q
}

// setTranslation correctly sets the translation quaternion against the rotation.
func (q *dualQuaternion) setTranslation(pt r3.Vector) {
	q.Dual = quat.Mul(quat.Number{Imag: pt.X / 2, Jmag: pt.Y / 2, Kmag: pt.Z / 2}, q.Real)
}

// translation recovers the cartesian translation encoded in the dual part.
func (q *dualQuaternion) translation() r3.Vector {
	t := quat.Scale(2, quat.Mul(q.Dual, quat.Conj(q.Real)))
	return r3.Vector{X: t.Imag, Y: t.Jmag, Z: t.Kmag}
}

// compose multiplies two dual quaternions, applying other in the frame of q.
func (q *dualQuaternion) compose(other *dualQuaternion) *dualQuaternion {
	return &dualQuaternion{dualquat.Mul(q.Number, other.Number)}
}

func (q *dualQuaternion) toPose() Pose {
	return &pose{point: q.translation(), orientation: Normalize(q.Real)}
}
