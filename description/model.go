// Package description defines the parsed form of a robot description: links, joints and the
// visual geometry attached to links, as produced by the SDF and URDF parsers.
package description

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// ErrNoModelInformation is used when a description contains no data at all.
var ErrNoModelInformation = errors.New("no model information")

// RawPose is an unprocessed pose record. A nil RawPose means no pose was given.
// Six values are x y z roll pitch yaw (radians); seven values are x y z qw qx qy qz.
type RawPose []float64

// Model is a parsed robot description.
type Model struct {
	Name   string
	Links  []Link
	Joints []Joint
}

// Link is a rigid body of the description.
type Link struct {
	Name    string
	Pose    RawPose
	Visuals []Visual
}

// Visual is one visual element of a link, placed relative to the link.
type Visual struct {
	Name     string
	Pose     RawPose
	Geometry Geometry
}

// Limit holds the lower and upper position limit of a joint.
type Limit struct {
	Lower float64
	Upper float64
}

// Joint connects a parent link to a child link.
type Joint struct {
	Name   string
	Type   string
	Parent string
	Child  string
	Pose   RawPose
	Axis   r3.Vector
	Limit  *Limit
}

// LinkMap indexes the model's links by name. Later duplicates replace earlier ones.
func (m *Model) LinkMap() map[string]*Link {
	links := make(map[string]*Link, len(m.Links))
	for i := range m.Links {
		links[m.Links[i].Name] = &m.Links[i]
	}
	return links
}

// Link looks up a link by name.
func (m *Model) Link(name string) (*Link, bool) {
	for i := range m.Links {
		if m.Links[i].Name == name {
			return &m.Links[i], true
		}
	}
	return nil, false
}
