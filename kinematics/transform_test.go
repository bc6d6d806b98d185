package kinematics

import (
	"math"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.viam.com/test"

	"go.viam.com/kinchain/description"
	"go.viam.com/kinchain/spatialmath"
)

func TestPoseFromRaw(t *testing.T) {
	t.Run("absent is identity", func(t *testing.T) {
		p, err := poseFromRaw(nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, spatialmath.PoseAlmostEqual(p, spatialmath.NewZeroPose()), test.ShouldBeTrue)
		test.That(t, p.Point(), test.ShouldResemble, r3.Vector{})
	})

	t.Run("translation is kept exactly", func(t *testing.T) {
		raw := description.RawPose{0.1, -0.25, 3.75, 0.3, -1.2, 2.9}
		p, err := poseFromRaw(raw)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, p.Point(), test.ShouldResemble, r3.Vector{X: 0.1, Y: -0.25, Z: 3.75})

		ea := p.Orientation().EulerAngles()
		test.That(t, ea.Roll, test.ShouldAlmostEqual, 0.3)
		test.That(t, ea.Pitch, test.ShouldAlmostEqual, -1.2)
		test.That(t, ea.Yaw, test.ShouldAlmostEqual, 2.9)
	})

	t.Run("quaternion form", func(t *testing.T) {
		half := math.Sqrt(0.5)
		p, err := poseFromRaw(description.RawPose{1, 2, 3, half, 0, 0, half})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, p.Point(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
		test.That(t, p.Orientation().EulerAngles().Yaw, test.ShouldAlmostEqual, math.Pi/2)
	})

	t.Run("bad length", func(t *testing.T) {
		_, err := poseFromRaw(description.RawPose{1, 2, 3})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "3 components")
	})
}

func TestNormalizeGeometry(t *testing.T) {
	g, extra := normalizeGeometry(&description.Mesh{Filename: "meshes/base.stl"})
	test.That(t, g, test.ShouldResemble, MeshGeometry{Filename: "meshes/base.stl"})
	test.That(t, extra, test.ShouldBeNil)

	g, extra = normalizeGeometry(&description.Box{Size: r3.Vector{X: 1, Y: 2, Z: 3}})
	test.That(t, g, test.ShouldResemble, BoxGeometry{Size: r3.Vector{X: 1, Y: 2, Z: 3}})
	test.That(t, extra, test.ShouldBeNil)

	g, extra = normalizeGeometry(&description.Sphere{Radius: 0.5})
	test.That(t, g, test.ShouldResemble, SphereGeometry{Radius: 0.5})
	test.That(t, extra, test.ShouldBeNil)

	g, extra = normalizeGeometry(&description.Cylinder{Radius: 0.1, Length: 0.4})
	test.That(t, g, test.ShouldResemble, CylinderGeometry{Radius: 0.1, Length: 0.4})
	test.That(t, extra, test.ShouldNotBeNil)

	for _, raw := range []description.Geometry{nil, &description.Capsule{}, &description.Plane{}, &description.Unsupported{Kind: "heightmap"}} {
		g, extra = normalizeGeometry(raw)
		test.That(t, g.Kind(), test.ShouldEqual, UnknownKind)
		test.That(t, extra, test.ShouldBeNil)
	}
}

func TestConvertVisuals(t *testing.T) {
	logger := golog.NewTestLogger(t)

	t.Run("cylinder gains a quarter turn about x", func(t *testing.T) {
		local := description.RawPose{0.5, 0, 0.2, 0.1, 0.7, -0.4}
		link := &description.Link{Name: "arm", Visuals: []description.Visual{
			{Name: "tube", Pose: local, Geometry: &description.Cylinder{Radius: 0.05, Length: 0.3}},
		}}
		visuals, err := convertVisuals(link, logger)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(visuals), test.ShouldEqual, 1)
		test.That(t, visuals[0].Geometry().Kind(), test.ShouldEqual, CylinderKind)

		localPose, err := poseFromRaw(local)
		test.That(t, err, test.ShouldBeNil)
		diff := spatialmath.OrientationBetween(localPose.Orientation(), visuals[0].Offset().Orientation())
		quarterX := &spatialmath.R4AA{Theta: math.Pi / 2, RX: 1}
		test.That(t, spatialmath.OrientationAlmostEqual(diff, quarterX), test.ShouldBeTrue)
		test.That(t, spatialmath.PoseAlmostEqual(
			spatialmath.NewPoseFromPoint(visuals[0].Offset().Point()),
			spatialmath.NewPoseFromPoint(localPose.Point()),
		), test.ShouldBeTrue)
	})

	t.Run("order and unknowns are kept", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		observed := zap.New(core).Sugar()

		link := &description.Link{Name: "base", Visuals: []description.Visual{
			{Name: "a", Geometry: &description.Sphere{Radius: 1}},
			{Name: "b", Geometry: &description.Capsule{Radius: 1, Length: 2}},
			{Name: "c", Geometry: &description.Box{Size: r3.Vector{X: 1, Y: 1, Z: 1}}},
		}}
		visuals, err := convertVisuals(link, observed)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(visuals), test.ShouldEqual, 3)
		test.That(t, visuals[0].Geometry().Kind(), test.ShouldEqual, SphereKind)
		test.That(t, visuals[1].Geometry().Kind(), test.ShouldEqual, UnknownKind)
		test.That(t, visuals[2].Geometry().Kind(), test.ShouldEqual, BoxKind)

		test.That(t, logs.Len(), test.ShouldEqual, 1)
		entry := logs.All()[0]
		test.That(t, entry.ContextMap()["visual"], test.ShouldEqual, "b")
		test.That(t, entry.ContextMap()["geometry"], test.ShouldEqual, "capsule")
	})

	t.Run("bad visual pose", func(t *testing.T) {
		link := &description.Link{Name: "base", Visuals: []description.Visual{
			{Name: "broken", Pose: description.RawPose{1, 2}, Geometry: &description.Sphere{Radius: 1}},
		}}
		_, err := convertVisuals(link, logger)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, `visual "broken"`)
	})
}
