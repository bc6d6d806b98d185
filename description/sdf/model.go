// Package sdf provides functions which enable *.sdf files to be turned into kinematic chains.
package sdf

import (
	"encoding/xml"
	"os"
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"go.viam.com/kinchain/description"
	"go.viam.com/kinchain/kinematics"
)

// Extension is the file extension associated with SDF files.
const Extension string = "sdf"

// ErrNoModel is returned when an SDF document holds no model element.
var ErrNoModel = errors.New("sdf document contains no model")

// document represents the supported fields of a Simulation Description Format (SDF) file.
type document struct {
	XMLName xml.Name `xml:"sdf"`
	Version string   `xml:"version,attr"`
	Models  []model  `xml:"model"`
	Worlds  []struct {
		Models []model `xml:"model"`
	} `xml:"world"`
}

type model struct {
	Name   string  `xml:"name,attr"`
	Links  []link  `xml:"link"`
	Joints []joint `xml:"joint"`
}

type link struct {
	Name    string   `xml:"name,attr"`
	Pose    *pose    `xml:"pose"`
	Visuals []visual `xml:"visual"`
}

type visual struct {
	Name     string   `xml:"name,attr"`
	Pose     *pose    `xml:"pose"`
	Geometry geometry `xml:"geometry"`
}

type joint struct {
	Name   string `xml:"name,attr"`
	Type   string `xml:"type,attr"`
	Parent string `xml:"parent"`
	Child  string `xml:"child"`
	Pose   *pose  `xml:"pose"`
	Axis   *axis  `xml:"axis"`
}

type axis struct {
	XYZ   string `xml:"xyz"`
	Limit *limit `xml:"limit"`
}

type limit struct {
	Lower *float64 `xml:"lower"` // meters for prismatic joints, radians for revolute joints
	Upper *float64 `xml:"upper"`
}

// UnmarshalModelXML decodes SDF data into a description.Model. The first model of the document is used, looking
// inside the first world when the document has no top level model.
func UnmarshalModelXML(xmlData []byte) (*description.Model, error) {
	// empty data probably means that the read SDF has no actionable information
	if len(xmlData) == 0 {
		return nil, description.ErrNoModelInformation
	}

	doc := &document{}
	if err := xml.Unmarshal(xmlData, doc); err != nil {
		return nil, errors.Wrap(err, "failed to convert SDF data to equivalent document struct")
	}

	var m *model
	switch {
	case len(doc.Models) > 0:
		m = &doc.Models[0]
	case len(doc.Worlds) > 0 && len(doc.Worlds[0].Models) > 0:
		m = &doc.Worlds[0].Models[0]
	default:
		return nil, ErrNoModel
	}
	return m.toDescription()
}

// ParseModelXMLFile will read a given file and parse the contained SDF XML data into a description.Model.
func ParseModelXMLFile(filename string) (*description.Model, error) {
	//nolint:gosec
	xmlData, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SDF file")
	}
	return UnmarshalModelXML(xmlData)
}

// BuildChain builds a kinematic chain from SDF data.
func BuildChain(xmlData []byte, logger golog.Logger) (*kinematics.Chain, error) {
	m, err := UnmarshalModelXML(xmlData)
	if err != nil {
		return nil, err
	}
	return kinematics.BuildChain(m, logger)
}

// BuildChainFromFile reads an SDF file and builds a kinematic chain from it.
func BuildChainFromFile(filename string, logger golog.Logger) (*kinematics.Chain, error) {
	if logger == nil {
		logger = golog.Global()
	}
	m, err := ParseModelXMLFile(filename)
	if err != nil {
		return nil, err
	}
	logger.Debugw("parsed SDF model", "file", filename, "model", m.Name, "links", len(m.Links), "joints", len(m.Joints))
	return kinematics.BuildChain(m, logger)
}

func (m *model) toDescription() (*description.Model, error) {
	var errs error
	out := &description.Model{
		Name:   m.Name,
		Links:  make([]description.Link, 0, len(m.Links)),
		Joints: make([]description.Joint, 0, len(m.Joints)),
	}

	for _, l := range m.Links {
		linkPose, err := l.Pose.toRawPose()
		appendError(&errs, err, "link %q pose", l.Name)

		visuals := make([]description.Visual, 0, len(l.Visuals))
		for _, v := range l.Visuals {
			visualPose, err := v.Pose.toRawPose()
			appendError(&errs, err, "link %q visual %q pose", l.Name, v.Name)
			geom, err := v.Geometry.toDescription()
			appendError(&errs, err, "link %q visual %q geometry", l.Name, v.Name)
			visuals = append(visuals, description.Visual{Name: v.Name, Pose: visualPose, Geometry: geom})
		}
		out.Links = append(out.Links, description.Link{Name: l.Name, Pose: linkPose, Visuals: visuals})
	}

	for _, j := range m.Joints {
		jointPose, err := j.Pose.toRawPose()
		appendError(&errs, err, "joint %q pose", j.Name)

		parsed := description.Joint{
			Name:   j.Name,
			Type:   j.Type,
			Parent: strings.TrimSpace(j.Parent),
			Child:  strings.TrimSpace(j.Child),
			Pose:   jointPose,
		}
		if j.Type != kinematics.FixedJoint.String() {
			// SDF's default joint axis
			parsed.Axis.Z = 1
		}
		if j.Axis != nil {
			if strings.TrimSpace(j.Axis.XYZ) != "" {
				parsed.Axis, err = description.ParseVector(j.Axis.XYZ)
				appendError(&errs, err, "joint %q axis", j.Name)
			}
			if j.Axis.Limit != nil {
				parsed.Limit = j.Axis.Limit.toDescription()
			}
		}
		out.Joints = append(out.Joints, parsed)
	}

	if errs != nil {
		return nil, errs
	}
	return out, nil
}

func (l *limit) toDescription() *description.Limit {
	lim := &description.Limit{Lower: negInf, Upper: posInf}
	if l.Lower != nil {
		lim.Lower = *l.Lower
	}
	if l.Upper != nil {
		lim.Upper = *l.Upper
	}
	return lim
}
