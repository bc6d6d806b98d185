package kinematics

import (
	"github.com/golang/geo/r3"

	"go.viam.com/kinchain/spatialmath"
)

// JointType describes how a joint lets its child move relative to its parent.
type JointType string

// The joint types a chain can contain.
const (
	RevoluteJoint  JointType = "revolute"
	PrismaticJoint JointType = "prismatic"
	FixedJoint     JointType = "fixed"
)

var jointTypes = map[string]JointType{
	"revolute":  RevoluteJoint,
	"prismatic": PrismaticJoint,
	"fixed":     FixedJoint,
}

// ParseJointType maps a description joint type onto a JointType.
func ParseJointType(s string) (JointType, error) {
	jt, ok := jointTypes[s]
	if !ok {
		return "", NewUnsupportedJointTypeError(s)
	}
	return jt, nil
}

func (jt JointType) String() string {
	return string(jt)
}

// Limit represents the limits of motion for a joint.
type Limit struct {
	Min float64
	Max float64
}

// Joint is the mechanism connecting a frame to its parent.
type Joint struct {
	name      string
	jointType JointType
	offset    spatialmath.Pose
	axis      r3.Vector
	limit     Limit
}

// NewJoint creates a joint. offset is the pose of the joint frame relative to the parent link.
func NewJoint(name string, jointType JointType, offset spatialmath.Pose, axis r3.Vector, limit Limit) *Joint {
	if offset == nil {
		offset = spatialmath.NewZeroPose()
	}
	return &Joint{name: name, jointType: jointType, offset: offset, axis: axis, limit: limit}
}

// NewRootJoint returns the placeholder joint carried by the root frame of a chain.
func NewRootJoint() *Joint {
	return NewJoint("", FixedJoint, spatialmath.NewZeroPose(), r3.Vector{}, Limit{})
}

// Name returns the joint's name. The root placeholder has an empty name.
func (j *Joint) Name() string {
	return j.name
}

// Type returns the joint's type.
func (j *Joint) Type() JointType {
	return j.jointType
}

// Offset returns the pose of the joint relative to its parent link.
func (j *Joint) Offset() spatialmath.Pose {
	return j.offset
}

// Axis returns the axis of motion. It is meaningless for fixed joints.
func (j *Joint) Axis() r3.Vector {
	return j.axis
}

// Limit returns the joint's position limits. Movable joints without limits report infinite bounds.
func (j *Joint) Limit() Limit {
	return j.limit
}

// Transform returns the pose of the child frame relative to the parent link for joint position q, in radians for
// revolute joints and in description length units for prismatic joints.
func (j *Joint) Transform(q float64) (spatialmath.Pose, error) {
	switch j.jointType {
	case RevoluteJoint:
		if j.axis.Norm() == 0 {
			return nil, NewZeroAxisError(j.name)
		}
		rot := spatialmath.NewPoseFromOrientation(spatialmath.NewR4AAFromAxis(q, j.axis))
		return spatialmath.Compose(j.offset, rot), nil
	case PrismaticJoint:
		if j.axis.Norm() == 0 {
			return nil, NewZeroAxisError(j.name)
		}
		shift := spatialmath.NewPoseFromPoint(j.axis.Normalize().Mul(q))
		return spatialmath.Compose(j.offset, shift), nil
	case FixedJoint:
		return j.offset, nil
	default:
		return nil, NewUnsupportedJointTypeError(string(j.jointType))
	}
}
