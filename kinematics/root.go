package kinematics

import (
	"github.com/pkg/errors"

	"go.viam.com/kinchain/description"
)

// FindRoot returns the name of the root link: the parent of the first joint, in description order, whose parent
// is not the child of any other joint. The scan compares every pair of joints once, so it is quadratic in the
// number of joints. A model without joints, or one where every parent is also some joint's child, has no root.
func FindRoot(joints []description.Joint) (string, error) {
	if len(joints) == 0 {
		return "", errors.Wrap(ErrNoRootLink, "model has no joints")
	}

	candidate := make([]bool, len(joints))
	for i := range candidate {
		candidate[i] = true
	}
	for i := range joints {
		for j := i + 1; j < len(joints); j++ {
			if joints[i].Parent == joints[j].Child {
				candidate[i] = false
			} else if joints[j].Parent == joints[i].Child {
				candidate[j] = false
			}
		}
	}

	for i, ok := range candidate {
		if ok {
			return joints[i].Parent, nil
		}
	}
	return "", ErrNoRootLink
}
