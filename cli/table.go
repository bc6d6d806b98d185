package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"go.viam.com/kinchain/kinematics"
	"go.viam.com/kinchain/utils"
)

// frameTable lists every frame of a chain with its parent, its joint and the placement of the joint relative to
// the parent link. Joint axes are expressed in the parent link frame. Rotations are shown in degrees.
func frameTable(chain *kinematics.Chain) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Frame", "Parent", "Joint", "Axis", "Limits", "Translation", "Orientation", "Visuals"})

	parents := map[*kinematics.Frame]string{}
	i := 0
	chain.Walk(func(f *kinematics.Frame, _ int) bool {
		for _, child := range f.Children() {
			parents[child] = f.Name()
		}

		j := f.Joint()
		var jointName, axis, limits string
		if j.Name() != "" {
			jointName = fmt.Sprintf("%s (%s)", j.Name(), j.Type())
		}
		if j.Type() != kinematics.FixedJoint {
			a := j.Offset().Orientation().RotationMatrix().Mul(j.Axis())
			axis = fmt.Sprintf("X:%.3g, Y:%.3g, Z:%.3g", a.X, a.Y, a.Z)
			limits = fmt.Sprintf("[%g, %g]", j.Limit().Min, j.Limit().Max)
		}
		tra := j.Offset().Point()
		ori := j.Offset().Orientation().EulerAngles()
		kinds := lo.Map(f.Link().Visuals(), func(v kinematics.Visual, _ int) string {
			return v.Geometry().Kind().String()
		})

		t.AppendRow([]interface{}{
			fmt.Sprintf("%d", i),
			f.Name(),
			parents[f],
			jointName,
			axis,
			limits,
			fmt.Sprintf("X:%.3f, Y:%.3f, Z:%.3f", tra.X, tra.Y, tra.Z),
			fmt.Sprintf(
				"Roll:%.2f, Pitch:%.2f, Yaw:%.2f",
				utils.RadToDeg(ori.Roll),
				utils.RadToDeg(ori.Pitch),
				utils.RadToDeg(ori.Yaw),
			),
			strings.Join(kinds, ", "),
		})
		i++
		return true
	})
	return t.Render()
}
