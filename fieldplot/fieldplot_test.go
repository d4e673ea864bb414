package fieldplot

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	voxel "github.com/rmera/govoxel"
	"github.com/rmera/govoxel/grid"
	"gonum.org/v1/gonum/mat"
)

func testField(Te *testing.T) *grid.TensorField {
	B, err := voxel.NewBox([]float64{10, 0, 0, 0, 10, 0, 0, 0, 10})
	if err != nil {
		Te.Fatal(err)
	}
	A, err := grid.NewAggregator(B, 4, 4, 4)
	if err != nil {
		Te.Fatal(err)
	}
	coords := mat.NewDense(3, 3, []float64{
		4, 4, 4,
		1, 1, 1,
		-3, 2, 4,
	})
	tensors := mat.NewDense(3, 6, []float64{
		1, 2, 3, 4, 5, 6,
		0.5, 0.5, 0.5, 0, 0, 0,
		-1, 2, -3, 4, -5, 6,
	})
	F, err := voxel.NewFrame(B, nil, coords, tensors)
	if err != nil {
		Te.Fatal(err)
	}
	if err := A.AddFrame(F); err != nil {
		Te.Fatal(err)
	}
	field, err := A.Field()
	if err != nil {
		Te.Fatal(err)
	}
	return field
}

// TestHeatmaps renders one plot per supported quantity. The png files end
// up in a temporal directory, so this mostly checks that nothing errors
// out or panics on the way.
func TestHeatmaps(Te *testing.T) {
	field := testField(Te)
	dir := Te.TempDir()
	err := Component(field, 2, 1, 0, 0, "xx component", filepath.Join(dir, "xx.png"))
	if err != nil {
		Te.Error(err)
	}
	err = VonMises(field, 2, 1, "", filepath.Join(dir, "vm.png"))
	if err != nil {
		Te.Error(err)
	}
	err = Hydrostatic(field, 0, 3, "", filepath.Join(dir, "hydro.png"))
	if err != nil {
		Te.Error(err)
	}
	fi, err := os.Stat(filepath.Join(dir, "vm.png"))
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("von Mises heatmap is", fi.Size(), "bytes")
	if fi.Size() == 0 {
		Te.Error("An empty plot file was written")
	}
}

func TestHeatmapErrors(Te *testing.T) {
	field := testField(Te)
	if err := Component(field, 5, 0, 0, 0, "", "nope.png"); err == nil {
		Te.Error("A bad axis should be an error")
	}
	if err := Heatmap(nil, "", "", "", "nope.png"); err == nil {
		Te.Error("A nil plane should be an error")
	}
}
