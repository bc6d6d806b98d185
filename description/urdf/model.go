// Package urdf provides functions which enable *.urdf files to be turned into kinematic chains.
package urdf

import (
	"encoding/xml"
	"math"
	"os"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/kinchain/description"
	"go.viam.com/kinchain/kinematics"
)

// Extension is the file extension associated with URDF files.
const Extension string = "urdf"

const continuousJoint = "continuous"

// robot represents the supported fields of a Universal Robot Description Format (URDF) file.
type robot struct {
	XMLName xml.Name `xml:"robot"`
	Name    string   `xml:"name,attr"`
	Links   []link   `xml:"link"`
	Joints  []joint  `xml:"joint"`
}

type link struct {
	Name    string   `xml:"name,attr"`
	Visuals []visual `xml:"visual"`
}

type visual struct {
	Name     string   `xml:"name,attr"`
	Origin   *origin  `xml:"origin"`
	Geometry geometry `xml:"geometry"`
}

type frame struct {
	Link string `xml:"link,attr"`
}

type joint struct {
	Name   string  `xml:"name,attr"`
	Type   string  `xml:"type,attr"`
	Parent frame   `xml:"parent"`
	Child  frame   `xml:"child"`
	Origin *origin `xml:"origin"`
	Axis   *struct {
		XYZ string `xml:"xyz,attr"`
	} `xml:"axis"`
	Limit *struct {
		Lower float64 `xml:"lower,attr"` // translation limits are in meters, revolute limits are in radians
		Upper float64 `xml:"upper,attr"`
	} `xml:"limit"`
}

// UnmarshalModelXML decodes URDF data into a description.Model. URDF places child links through their joint's
// origin, so links carry no pose of their own.
func UnmarshalModelXML(xmlData []byte) (*description.Model, error) {
	// empty data probably means that the read URDF has no actionable information
	if len(xmlData) == 0 {
		return nil, description.ErrNoModelInformation
	}

	r := &robot{}
	if err := xml.Unmarshal(xmlData, r); err != nil {
		return nil, errors.Wrap(err, "failed to convert URDF data to equivalent robot struct")
	}
	return r.toDescription()
}

// ParseModelXMLFile will read a given file and parse the contained URDF XML data into a description.Model.
func ParseModelXMLFile(filename string) (*description.Model, error) {
	//nolint:gosec
	xmlData, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read URDF file")
	}
	return UnmarshalModelXML(xmlData)
}

// BuildChain builds a kinematic chain from URDF data.
func BuildChain(xmlData []byte, logger golog.Logger) (*kinematics.Chain, error) {
	m, err := UnmarshalModelXML(xmlData)
	if err != nil {
		return nil, err
	}
	return kinematics.BuildChain(m, logger)
}

// BuildChainFromFile reads a URDF file and builds a kinematic chain from it.
func BuildChainFromFile(filename string, logger golog.Logger) (*kinematics.Chain, error) {
	if logger == nil {
		logger = golog.Global()
	}
	m, err := ParseModelXMLFile(filename)
	if err != nil {
		return nil, err
	}
	logger.Debugw("parsed URDF model", "file", filename, "model", m.Name, "links", len(m.Links), "joints", len(m.Joints))
	return kinematics.BuildChain(m, logger)
}

func (r *robot) toDescription() (*description.Model, error) {
	var errs error
	out := &description.Model{
		Name:   r.Name,
		Links:  make([]description.Link, 0, len(r.Links)),
		Joints: make([]description.Joint, 0, len(r.Joints)),
	}

	for _, l := range r.Links {
		visuals := make([]description.Visual, 0, len(l.Visuals))
		for _, v := range l.Visuals {
			visualPose, err := v.Origin.toRawPose()
			if err != nil {
				errs = multierr.Append(errs, errors.Wrapf(err, "link %q visual %q origin", l.Name, v.Name))
			}
			geom, err := v.Geometry.toDescription()
			if err != nil {
				errs = multierr.Append(errs, errors.Wrapf(err, "link %q visual %q geometry", l.Name, v.Name))
			}
			visuals = append(visuals, description.Visual{Name: v.Name, Pose: visualPose, Geometry: geom})
		}
		out.Links = append(out.Links, description.Link{Name: l.Name, Visuals: visuals})
	}

	for _, j := range r.Joints {
		parsed, err := j.toDescription()
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "joint %q", j.Name))
			continue
		}
		out.Joints = append(out.Joints, parsed)
	}

	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func (j *joint) toDescription() (description.Joint, error) {
	jointPose, err := j.Origin.toRawPose()
	if err != nil {
		return description.Joint{}, errors.Wrap(err, "origin")
	}
	parsed := description.Joint{
		Name:   j.Name,
		Type:   j.Type,
		Parent: j.Parent.Link,
		Child:  j.Child.Link,
		Pose:   jointPose,
	}
	if j.Type == kinematics.FixedJoint.String() {
		return parsed, nil
	}

	// URDF's default joint axis
	parsed.Axis = r3.Vector{X: 1}
	if j.Axis != nil && j.Axis.XYZ != "" {
		parsed.Axis, err = description.ParseVector(j.Axis.XYZ)
		if err != nil {
			return description.Joint{}, errors.Wrap(err, "axis")
		}
	}

	switch {
	case j.Type == continuousJoint:
		// a continuous joint is a revolute joint without limits
		parsed.Type = kinematics.RevoluteJoint.String()
		parsed.Limit = &description.Limit{Lower: math.Inf(-1), Upper: math.Inf(1)}
	case j.Limit != nil:
		parsed.Limit = &description.Limit{Lower: j.Limit.Lower, Upper: j.Limit.Upper}
	}
	return parsed, nil
}
