package kinematics

import (
	"go.viam.com/kinchain/spatialmath"
)

// ForwardKinematics computes the pose of every link body in the frame of the root link's frame, given joint
// positions keyed by joint name. Joints missing from positions are at 0. Naming a joint that is not a movable
// joint of the chain is an error.
func (c *Chain) ForwardKinematics(positions map[string]float64) (map[string]spatialmath.Pose, error) {
	movable := map[string]bool{}
	for _, name := range c.JointParameterNames() {
		movable[name] = true
	}
	for name := range positions {
		if !movable[name] {
			return nil, NewUnknownJointError(name)
		}
	}

	poses := make(map[string]spatialmath.Pose)
	if err := forwardKinematics(c.root, spatialmath.NewZeroPose(), positions, poses); err != nil {
		return nil, err
	}
	return poses, nil
}

// ForwardKinematicsInputs is ForwardKinematics with positions ordered like JointParameterNames.
func (c *Chain) ForwardKinematicsInputs(inputs []float64) (map[string]spatialmath.Pose, error) {
	names := c.JointParameterNames()
	if len(inputs) != len(names) {
		return nil, NewIncorrectInputLengthError(len(inputs), len(names))
	}
	positions := make(map[string]float64, len(names))
	for i, name := range names {
		positions[name] = inputs[i]
	}
	return c.ForwardKinematics(positions)
}

func forwardKinematics(f *Frame, parent spatialmath.Pose, positions map[string]float64, out map[string]spatialmath.Pose) error {
	jointPose, err := f.joint.Transform(positions[f.joint.Name()])
	if err != nil {
		return err
	}
	framePose := spatialmath.Compose(parent, jointPose)
	out[f.link.Name()] = spatialmath.Compose(framePose, f.link.Offset())
	for _, child := range f.children {
		if err := forwardKinematics(child, framePose, positions, out); err != nil {
			return err
		}
	}
	return nil
}
