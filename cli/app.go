// Package cli contains the kinchain command line application.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"go.viam.com/kinchain/description/sdf"
	"go.viam.com/kinchain/description/urdf"
	"go.viam.com/kinchain/kinematics"
	"go.viam.com/kinchain/spatialmath"
	"go.viam.com/kinchain/utils"
)

const (
	// Flags.
	flagDebug      = "debug"
	flagFormat     = "format"
	flagOutput     = "output"
	flagJoint      = "joint"
	flagMatrix     = "matrix"
	flagDegrees    = "degrees"
	flagTable      = "table"
	flagRelativeTo = "relative-to"

	outputJSON = "json"
	outputYAML = "yaml"
)

// NewApp returns the kinchain command line application.
func NewApp() *cli.App {
	var logger golog.Logger

	return &cli.App{
		Name:            "kinchain",
		Usage:           "build kinematic chains from SDF and URDF robot descriptions",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
				EnvVars: []string{"KINCHAIN_DEBUG"},
			},
			&cli.StringFlag{
				Name:    flagFormat,
				Usage:   "description format, `sdf` or `urdf`; inferred from the file extension when unset",
				EnvVars: []string{"KINCHAIN_FORMAT"},
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("kinchain")
			} else {
				logger = zap.NewNop().Sugar()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     "print the frame tree of a robot description",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  flagTable,
						Usage: "print a table of frames with their joints instead of the tree",
					},
				},
				Action: func(c *cli.Context) error {
					chain, err := loadChain(c, logger)
					if err != nil {
						return err
					}
					if c.Bool(flagTable) {
						fmt.Fprintln(c.App.Writer, frameTable(chain))
						return nil
					}
					fmt.Fprint(c.App.Writer, chain.String())
					return nil
				},
			},
			{
				Name:      "export",
				Usage:     "print the chain built from a robot description",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagOutput,
						Aliases: []string{"o"},
						Value:   outputJSON,
						Usage:   "output encoding, `json` or `yaml`",
					},
				},
				Action: func(c *cli.Context) error {
					chain, err := loadChain(c, logger)
					if err != nil {
						return err
					}
					return writeConfig(c.App.Writer, chain.Config(), c.String(flagOutput))
				},
			},
			{
				Name:      "fk",
				Usage:     "print the pose of every link for the given joint positions",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  flagJoint,
						Usage: "joint position as `NAME=VALUE`, radians for revolute joints; repeat --joint for each joint",
					},
					&cli.BoolFlag{
						Name:  flagMatrix,
						Usage: "print 4x4 homogeneous transforms instead of xyz and rpy",
					},
					&cli.BoolFlag{
						Name:  flagDegrees,
						Usage: "take revolute joint positions and print rpy in degrees",
					},
					&cli.StringFlag{
						Name:  flagRelativeTo,
						Usage: "print poses relative to the body of `LINK` instead of the root link's frame",
					},
				},
				Action: func(c *cli.Context) error {
					chain, err := loadChain(c, logger)
					if err != nil {
						return err
					}
					positions, err := parseJointPositions(c.StringSlice(flagJoint))
					if err != nil {
						return err
					}
					if c.Bool(flagDegrees) {
						revoluteToRadians(chain, positions)
					}
					poses, err := chain.ForwardKinematics(positions)
					if err != nil {
						return err
					}
					if ref := c.String(flagRelativeTo); ref != "" {
						if poses, err = relativeTo(poses, ref); err != nil {
							return err
						}
					}
					printPoses(c.App.Writer, chain, poses, c.Bool(flagMatrix), c.Bool(flagDegrees))
					return nil
				},
			},
		},
	}
}

// loadChain builds the chain described by the file named in the first argument.
func loadChain(c *cli.Context, logger golog.Logger) (*kinematics.Chain, error) {
	if c.NArg() != 1 {
		return nil, errors.New("expected exactly one description file argument")
	}
	filename := c.Args().First()

	format := c.String(flagFormat)
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(filename), ".")
	}
	switch strings.ToLower(format) {
	case sdf.Extension:
		return sdf.BuildChainFromFile(filename, logger)
	case urdf.Extension:
		return urdf.BuildChainFromFile(filename, logger)
	default:
		return nil, errors.Errorf("unknown description format %q, use --%s %s or %s", format, flagFormat, sdf.Extension, urdf.Extension)
	}
}

func writeConfig(w io.Writer, cfg *kinematics.ChainConfig, output string) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown output %q, use %s or %s", output, outputJSON, outputYAML)
	}
}

func parseJointPositions(args []string) (map[string]float64, error) {
	positions := make(map[string]float64, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, errors.Errorf("joint position %q is not of the form NAME=VALUE", arg)
		}
		q, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "joint %q", name)
		}
		positions[name] = q
	}
	return positions, nil
}

// relativeTo re-expresses every pose in the frame of the named link's body.
func relativeTo(poses map[string]spatialmath.Pose, link string) (map[string]spatialmath.Pose, error) {
	ref, ok := poses[link]
	if !ok {
		return nil, errors.Errorf("no link named %q in chain", link)
	}
	relative := make(map[string]spatialmath.Pose, len(poses))
	for name, p := range poses {
		relative[name] = spatialmath.PoseBetween(ref, p)
	}
	return relative, nil
}

// revoluteToRadians converts the positions of revolute joints from degrees. Other joints keep their units.
func revoluteToRadians(chain *kinematics.Chain, positions map[string]float64) {
	for _, f := range chain.Frames() {
		j := f.Joint()
		if q, ok := positions[j.Name()]; ok && j.Type() == kinematics.RevoluteJoint {
			positions[j.Name()] = utils.DegToRad(q)
		}
	}
}

// printPoses writes one entry per link in frame order.
func printPoses(w io.Writer, chain *kinematics.Chain, poses map[string]spatialmath.Pose, matrix, degrees bool) {
	for _, f := range chain.Frames() {
		name := f.Link().Name()
		p := poses[name]
		switch {
		case matrix:
			m := spatialmath.PoseToMat4(p)
			fmt.Fprintf(w, "%s:\n", name)
			for row := 0; row < 4; row++ {
				r := m.Row(row)
				fmt.Fprintf(w, "  [% .6f % .6f % .6f % .6f]\n", r[0], r[1], r[2], r[3])
			}
		case degrees:
			pt := p.Point()
			ea := p.Orientation().EulerAngles()
			fmt.Fprintf(w, "%s: xyz: [%.6g %.6g %.6g] rpy(deg): [%.6g %.6g %.6g]\n", name, pt.X, pt.Y, pt.Z,
				utils.RadToDeg(ea.Roll), utils.RadToDeg(ea.Pitch), utils.RadToDeg(ea.Yaw))
		default:
			fmt.Fprintf(w, "%s: %s\n", name, spatialmath.PoseToString(p))
		}
	}
}
