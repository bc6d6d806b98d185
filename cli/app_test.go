package cli

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"testing"

	"go.viam.com/test"
	"gopkg.in/yaml.v3"

	"go.viam.com/kinchain/kinematics"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"kinchain"}, args...))
	return out.String(), err
}

func TestInspect(t *testing.T) {
	out, err := runApp(t, "inspect", "testdata/two_link.urdf")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, "base_link_frame\n"+
		"  upper_arm_frame [shoulder: revolute]\n"+
		"    forearm_frame [elbow: revolute]\n"+
		"      tool_frame [tool_mount: fixed]\n")

	t.Run("format flag overrides the extension", func(t *testing.T) {
		_, err := runApp(t, "inspect", "testdata/simple_arm.description")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, `unknown description format "description"`)

		out, err := runApp(t, "--format", "sdf", "inspect", "testdata/simple_arm.description")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldEqual, "base_frame\n  arm_frame [shoulder: revolute]\n")
	})

	t.Run("format from the environment", func(t *testing.T) {
		t.Setenv("KINCHAIN_FORMAT", "sdf")
		_, err := runApp(t, "inspect", "testdata/simple_arm.description")
		test.That(t, err, test.ShouldBeNil)
	})

	t.Run("table", func(t *testing.T) {
		out, err := runApp(t, "inspect", "--table", "testdata/two_link.urdf")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldContainSubstring, "FRAME")
		test.That(t, out, test.ShouldContainSubstring, "shoulder (revolute)")
		test.That(t, out, test.ShouldContainSubstring, "[-Inf, +Inf]")
		test.That(t, out, test.ShouldContainSubstring, "[-2, 2]")
		test.That(t, out, test.ShouldContainSubstring, "X:0.000, Y:0.000, Z:0.400")
		test.That(t, out, test.ShouldContainSubstring, "cylinder")
		test.That(t, len(strings.Split(strings.TrimSpace(out), "\n")), test.ShouldEqual, 4+4)
	})

	t.Run("missing argument", func(t *testing.T) {
		_, err := runApp(t, "inspect")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "exactly one description file")
	})

	t.Run("debug logging", func(t *testing.T) {
		_, err := runApp(t, "--debug", "inspect", "testdata/two_link.urdf")
		test.That(t, err, test.ShouldBeNil)
	})
}

func TestExport(t *testing.T) {
	out, err := runApp(t, "export", "testdata/two_link.urdf")
	test.That(t, err, test.ShouldBeNil)
	var cfg kinematics.ChainConfig
	test.That(t, json.Unmarshal([]byte(out), &cfg), test.ShouldBeNil)
	test.That(t, cfg.Root.Name, test.ShouldEqual, "base_link_frame")
	test.That(t, cfg.Root.Link.Visuals[0].Filename, test.ShouldEqual, "package://two_link/meshes/base.dae")
	test.That(t, cfg.Root.Children[0].Joint.Min, test.ShouldBeNil)

	out, err = runApp(t, "export", "--output", "yaml", "testdata/two_link.urdf")
	test.That(t, err, test.ShouldBeNil)
	var yamlCfg kinematics.ChainConfig
	test.That(t, yaml.Unmarshal([]byte(out), &yamlCfg), test.ShouldBeNil)
	test.That(t, yamlCfg.Root.Children[0].Children[0].Joint.Name, test.ShouldEqual, "elbow")
	test.That(t, *yamlCfg.Root.Children[0].Children[0].Joint.Max, test.ShouldEqual, 2.)

	_, err = runApp(t, "export", "-o", "toml", "testdata/two_link.urdf")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `unknown output "toml"`)
}

// linkXYZ finds the line printed for link and returns its translation.
func linkXYZ(t *testing.T, out, link string) []float64 {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		rest, ok := strings.CutPrefix(line, link+": xyz: [")
		if !ok {
			continue
		}
		fields := strings.Fields(rest[:strings.Index(rest, "]")])
		test.That(t, len(fields), test.ShouldEqual, 3)
		xyz := make([]float64, 0, 3)
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			test.That(t, err, test.ShouldBeNil)
			xyz = append(xyz, v)
		}
		return xyz
	}
	t.Fatalf("no pose printed for link %q in:\n%s", link, out)
	return nil
}

func TestForwardKinematics(t *testing.T) {
	out, err := runApp(t, "fk", "--joint", "elbow=0.5", "--joint", "shoulder=0", "testdata/two_link.urdf")
	test.That(t, err, test.ShouldBeNil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.That(t, len(lines), test.ShouldEqual, 4)
	test.That(t, strings.HasPrefix(lines[0], "base_link: xyz: ["), test.ShouldBeTrue)
	test.That(t, strings.HasPrefix(lines[3], "tool: xyz: ["), test.ShouldBeTrue)

	t.Run("repeated joint flag sets every joint", func(t *testing.T) {
		out, err := runApp(t, "fk", "--joint", "shoulder=1.5707963267948966", "--joint", "elbow=-0.7853981633974483",
			"testdata/two_link.urdf")
		test.That(t, err, test.ShouldBeNil)
		xyz := linkXYZ(t, out, "tool")
		test.That(t, xyz[0], test.ShouldAlmostEqual, 0.)
		test.That(t, xyz[1], test.ShouldAlmostEqual, 0.3*math.Sqrt(0.5))
		test.That(t, xyz[2], test.ShouldAlmostEqual, 0.5+0.3*math.Sqrt(0.5))
	})

	t.Run("matrix", func(t *testing.T) {
		out, err := runApp(t, "fk", "--matrix", "testdata/two_link.urdf")
		test.That(t, err, test.ShouldBeNil)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		test.That(t, len(lines), test.ShouldEqual, 4*5)
		test.That(t, lines[0], test.ShouldEqual, "base_link:")
		row := strings.Fields(strings.Trim(strings.TrimSpace(lines[1]), "[]"))
		test.That(t, len(row), test.ShouldEqual, 4)
		for i, want := range []float64{1, 0, 0, 0} {
			got, err := strconv.ParseFloat(row[i], 64)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, got, test.ShouldAlmostEqual, want)
		}
	})

	t.Run("degrees", func(t *testing.T) {
		out, err := runApp(t, "fk", "--degrees", "--joint", "elbow=45", "testdata/two_link.urdf")
		test.That(t, err, test.ShouldBeNil)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		test.That(t, len(lines), test.ShouldEqual, 4)
		test.That(t, strings.HasPrefix(lines[2], "forearm: xyz: ["), test.ShouldBeTrue)
		test.That(t, lines[2], test.ShouldContainSubstring, " 45 ")
	})

	t.Run("relative to a link", func(t *testing.T) {
		out, err := runApp(t, "fk", "--relative-to", "forearm", "testdata/two_link.urdf")
		test.That(t, err, test.ShouldBeNil)
		for link, want := range map[string][]float64{
			"base_link": {0, 0, -0.5},
			"forearm":   {0, 0, 0},
			"tool":      {0.3, 0, 0},
		} {
			xyz := linkXYZ(t, out, link)
			for i := range want {
				test.That(t, xyz[i], test.ShouldAlmostEqual, want[i])
			}
		}

		_, err = runApp(t, "fk", "--relative-to", "gripper", "testdata/two_link.urdf")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, `no link named "gripper"`)
	})

	t.Run("fixed joints take no position", func(t *testing.T) {
		_, err := runApp(t, "fk", "--joint", "tool_mount=1", "testdata/two_link.urdf")
		test.That(t, err, test.ShouldBeError, kinematics.NewUnknownJointError("tool_mount"))
	})
}

func TestParseJointPositions(t *testing.T) {
	positions, err := parseJointPositions([]string{"a=1.5", "b=-2", "a=3"})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, positions, test.ShouldResemble, map[string]float64{"a": 3, "b": -2})

	_, err = parseJointPositions([]string{"a"})
	test.That(t, err, test.ShouldNotBeNil)
	_, err = parseJointPositions([]string{"=1"})
	test.That(t, err, test.ShouldNotBeNil)
	_, err = parseJointPositions([]string{"a=one"})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `joint "a"`)
}
