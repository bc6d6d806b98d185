package kinematics

import (
	"github.com/pkg/errors"
)

// ErrNoRootLink is returned when no link of a model qualifies as the root of the kinematic tree, including the
// case of a model without joints.
var ErrNoRootLink = errors.New("no root link found")

// NewUnsupportedJointTypeError returns an error indicating that a given joint type is not supported by the chain
// builder.
func NewUnsupportedJointTypeError(jointType string) error {
	return errors.Errorf("unsupported joint type detected: %q", jointType)
}

// NewLinkNotFoundError returns an error indicating that a joint references a link missing from the model.
func NewLinkNotFoundError(name string) error {
	return errors.Errorf("link %q not found in model", name)
}

// NewBadPoseLengthError is used when a raw pose has neither 6 nor 7 components.
func NewBadPoseLengthError(n int) error {
	return errors.Errorf("raw pose has %d components, need 6 (xyz rpy) or 7 (xyz wxyz)", n)
}

// NewUnknownJointError is used when joint positions are given for a joint that does not move or does not exist.
func NewUnknownJointError(name string) error {
	return errors.Errorf("no movable joint named %q in chain", name)
}

// NewZeroAxisError is used when a moving joint has no usable axis of motion.
func NewZeroAxisError(name string) error {
	return errors.Errorf("joint %q has a zero axis", name)
}

// NewIncorrectInputLengthError returns an error indicating that the length of the given inputs does not match the
// number of movable joints.
func NewIncorrectInputLengthError(actual, expected int) error {
	return errors.Errorf("number of inputs does not match number of movable joints, have %d want %d", actual, expected)
}
