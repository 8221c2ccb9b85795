package svgen

import (
	"errors"

	"github.com/kpango/glg"
	"github.com/rustyoz/svg"

	"github.com/gucio321/svgen/pkg/path"
)

// Importer extracts path shapes from an existing SVG document.
type Importer struct {
	svg   *svg.Svg
	scale float64
}

// Parse reads raw SVG data into an Importer.
func Parse(data []byte) (*Importer, error) {
	result := &Importer{scale: 1.0}

	var err error
	if result.svg, err = svg.ParseSvg(string(data), "", 1); err != nil {
		return nil, err
	}

	return result, nil
}

// Scale sets a uniform factor applied to every imported coordinate.
func (i *Importer) Scale(scale float64) *Importer {
	i.scale = scale
	return i
}

// Shape walks the document's drawing instructions and rebuilds them as
// a single absolute-mode path shape. Instructions with no path-data
// counterpart (circles, paint) are skipped with a warning.
func (i *Importer) Shape() (*path.Shape, error) {
	instructions, errs := i.svg.ParseDrawingInstructions()
	if instructions == nil || errs == nil {
		return nil, errors.New("nil instruction channels")
	}

	shape := path.NewShape()

	for {
		select {
		case ins := <-instructions:
			if ins == nil {
				return shape, nil
			}

			switch ins.Kind {
			case svg.MoveInstruction:
				shape.Commands = append(shape.Commands, path.NewMoveTo(i.point(ins.M[0], ins.M[1])))
			case svg.LineInstruction:
				shape.Commands = append(shape.Commands, path.NewLineTo(i.point(ins.M[0], ins.M[1])))
			case svg.CurveInstruction:
				shape.Commands = append(shape.Commands, path.NewCubicBezierCurve(
					i.point(ins.CurvePoints.T[0], ins.CurvePoints.T[1]),
					i.point(ins.CurvePoints.C1[0], ins.CurvePoints.C1[1]),
					i.point(ins.CurvePoints.C2[0], ins.CurvePoints.C2[1]),
				))
			case svg.CloseInstruction:
				shape.Commands = append(shape.Commands, path.NewClose())
			case svg.CircleInstruction:
				glg.Warn("circle instructions have no path data counterpart, skipping")
			case svg.PaintInstruction:
				// styling only, nothing to rebuild
			default:
				glg.Warnf("unsupported drawing instruction %d, skipping", ins.Kind)
			}
		case err := <-errs:
			if err != nil {
				return nil, err
			}
		}
	}
}

func (i *Importer) point(x, y float64) path.Point {
	return path.Pt(float32(x*i.scale), float32(y*i.scale))
}
