//Package fieldplot renders 2D cuts of binned tensor fields as heatmaps,
//using gonum/plot.
package fieldplot

import (
	"fmt"

	voxel "github.com/rmera/govoxel"
	"github.com/rmera/govoxel/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//names for the plot axes, indexed as the grid axes
var axisNames = [3]string{"x", "y", "z"}

// Heatmap renders the given plane as a heatmap and saves it as a PNG (or
// whatever format the extension of plotname selects) file.
func Heatmap(P *grid.Plane, title, xlabel, ylabel, plotname string) error {
	if P == nil {
		return fmt.Errorf("fieldplot.Heatmap: given a nil plane")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	pal := palette.Heat(12, 1)
	h := plotter.NewHeatMap(P, pal)
	p.Add(h)
	if err := p.Save(12*vg.Centimeter, 12*vg.Centimeter, plotname); err != nil {
		return fmt.Errorf("fieldplot.Heatmap: %w", err)
	}
	return nil
}

// Component renders one (row,col) component of the field, cut with the
// plane normal to the given axis at the given grid index.
func Component(F *grid.TensorField, axis, index, row, col int, title, plotname string) error {
	P, err := F.ComponentPlane(axis, index, row, col)
	if err != nil {
		return fmt.Errorf("fieldplot.Component: %w", err)
	}
	xlabel, ylabel := inPlaneLabels(axis)
	if title == "" {
		title = fmt.Sprintf("component (%d,%d), %s-plane %d", row, col, axisNames[axis], index)
	}
	return Heatmap(P, title, xlabel, ylabel, plotname)
}

// VonMises renders the von Mises equivalent of the field on one cut plane.
func VonMises(F *grid.TensorField, axis, index int, title, plotname string) error {
	P, err := F.ScalarPlane(axis, index, voxel.VonMises)
	if err != nil {
		return fmt.Errorf("fieldplot.VonMises: %w", err)
	}
	xlabel, ylabel := inPlaneLabels(axis)
	if title == "" {
		title = fmt.Sprintf("von Mises equivalent, %s-plane %d", axisNames[axis], index)
	}
	return Heatmap(P, title, xlabel, ylabel, plotname)
}

// Hydrostatic renders the hydrostatic part of the field on one cut plane.
func Hydrostatic(F *grid.TensorField, axis, index int, title, plotname string) error {
	P, err := F.ScalarPlane(axis, index, voxel.Hydrostatic)
	if err != nil {
		return fmt.Errorf("fieldplot.Hydrostatic: %w", err)
	}
	xlabel, ylabel := inPlaneLabels(axis)
	if title == "" {
		title = fmt.Sprintf("hydrostatic part, %s-plane %d", axisNames[axis], index)
	}
	return Heatmap(P, title, xlabel, ylabel, plotname)
}

func inPlaneLabels(axis int) (string, string) {
	if axis < 0 || axis > 2 {
		return "", ""
	}
	a1, a2 := (axis+1)%3, (axis+2)%3
	if a1 > a2 {
		a1, a2 = a2, a1
	}
	return axisNames[a1], axisNames[a2]
}
