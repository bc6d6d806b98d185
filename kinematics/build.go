package kinematics

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"go.viam.com/kinchain/description"
)

// BuildChain turns a parsed robot description into a kinematic chain. The root link is found with FindRoot, and
// the tree below it is assembled by following joints from parent to child. Any error aborts the whole build;
// no partial chain is returned. A nil logger uses the global logger.
func BuildChain(model *description.Model, logger golog.Logger) (*Chain, error) {
	if model == nil {
		return nil, description.ErrNoModelInformation
	}
	if logger == nil {
		logger = golog.Global()
	}

	links := model.LinkMap()
	rootName, err := FindRoot(model.Joints)
	if err != nil {
		return nil, err
	}
	rootLink, err := buildLink(rootName, links, logger)
	if err != nil {
		return nil, err
	}
	children, err := buildChildren(rootName, links, model.Joints, logger)
	if err != nil {
		return nil, err
	}

	chain := NewChain(NewFrame(FrameName(rootName), NewRootJoint(), rootLink, children))
	logger.Debugw("built kinematic chain",
		"model", model.Name, "root", rootName, "frames", len(chain.Frames()), "dof", len(chain.JointParameterNames()))
	return chain, nil
}

// buildChildren creates a frame for every joint whose parent is parentLink, in joint order, each with its own
// subtree already built.
func buildChildren(
	parentLink string,
	links map[string]*description.Link,
	joints []description.Joint,
	logger golog.Logger,
) ([]*Frame, error) {
	var children []*Frame
	for i := range joints {
		j := &joints[i]
		if j.Parent != parentLink {
			continue
		}

		joint, err := buildJoint(j)
		if err != nil {
			return nil, err
		}
		link, err := buildLink(j.Child, links, logger)
		if err != nil {
			return nil, err
		}
		grandchildren, err := buildChildren(j.Child, links, joints, logger)
		if err != nil {
			return nil, err
		}
		children = append(children, NewFrame(FrameName(j.Child), joint, link, grandchildren))
	}
	return children, nil
}

func buildJoint(j *description.Joint) (*Joint, error) {
	jointType, err := ParseJointType(j.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "joint %q", j.Name)
	}
	offset, err := poseFromRaw(j.Pose)
	if err != nil {
		return nil, errors.Wrapf(err, "joint %q", j.Name)
	}
	return NewJoint(j.Name, jointType, offset, j.Axis, limitFor(jointType, j.Limit)), nil
}

func buildLink(name string, links map[string]*description.Link, logger golog.Logger) (*Link, error) {
	l, ok := links[name]
	if !ok {
		return nil, NewLinkNotFoundError(name)
	}
	offset, err := poseFromRaw(l.Pose)
	if err != nil {
		return nil, errors.Wrapf(err, "link %q", name)
	}
	visuals, err := convertVisuals(l, logger)
	if err != nil {
		return nil, err
	}
	return NewLink(l.Name, offset, visuals), nil
}

// limitFor picks the limit of a joint. Fixed joints do not move; movable joints without a description limit are
// unbounded.
func limitFor(jt JointType, l *description.Limit) Limit {
	switch {
	case jt == FixedJoint:
		return Limit{}
	case l == nil:
		return Limit{Min: math.Inf(-1), Max: math.Inf(1)}
	default:
		return Limit{Min: l.Lower, Max: l.Upper}
	}
}
