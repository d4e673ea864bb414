package grid

import (
	"fmt"

	voxel "github.com/rmera/govoxel"
)

// Options contains the tunable settings for an aggregation run.
type Options struct {
	cutoff float64
	skip   int
}

// DefaultOptions returns an Options with the default settings: every frame
// is binned, and the search radius is taken from the grid spacing.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cutoff = 0 //0 means "use the largest grid spacing", decided when the grid is built
	ret.skip = 1
	return ret
}

// Cutoff returns the search radius for the particle assignment and sets it,
// if a value is given. A particle farther than this from its nearest grid
// point is left out of the binning, as it would be in a cutoff-based
// neighbor search. Zero means the largest grid spacing along any axis,
// which guarantees every particle a home. Negative values are rejected at
// aggregator construction.
func (O *Options) Cutoff(cutoff ...float64) float64 {
	ret := O.cutoff
	if len(cutoff) > 0 {
		O.cutoff = cutoff[0]
	}
	return ret
}

// Skip returns how many frames advance between binned frames in FromTraj
// (1 means every frame) and sets it, if a valid value is given.
func (O *Options) Skip(skip ...int) int {
	ret := O.skip
	if len(skip) > 0 && skip[0] > 0 {
		O.skip = skip[0]
	}
	return ret
}

// Aggregator accumulates the per-cell averages of the particle tensors of
// a sequence of snapshots, on a fixed grid. Each snapshot contributes the
// per-cell arithmetic mean of the tensors of its particles assigned to that
// cell, with empty cells contributing zero; Field returns the mean of those
// per-snapshot means.
type Aggregator struct {
	g      *Grid
	cutoff float64
	frames int
	means  []float64 //Cells x 6, running sum of the per-frame cell means
	fsum   []float64 //Cells x 6, scratch for the frame being binned
	fcount []int     //Cells, scratch
	vbuf   []float64 //one Voigt tensor
}

// NewAggregator builds an aggregator with the given resolution over the
// given box, which should be the average box of the trajectory to be
// binned. It returns a configuration error if the resolution or the
// cutoff in the options are invalid.
func NewAggregator(box *voxel.Box, nx, ny, nz int, options ...*Options) (*Aggregator, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	g, err := NewGrid(box, nx, ny, nz)
	if err != nil {
		return nil, errDecorate(err, "NewAggregator")
	}
	A := new(Aggregator)
	A.g = g
	if o.cutoff < 0 {
		return nil, Error{BadCutoff, []string{"NewAggregator"}, true}
	}
	A.cutoff = o.cutoff
	if A.cutoff == 0 {
		A.cutoff = g.MaxSpacing()
	}
	cells := g.Cells()
	A.means = make([]float64, cells*voxel.VoigtComps)
	A.fsum = make([]float64, cells*voxel.VoigtComps)
	A.fcount = make([]int, cells)
	A.vbuf = make([]float64, voxel.VoigtComps)
	return A, nil
}

// Grid returns the grid the aggregator bins onto.
func (A *Aggregator) Grid() *Grid {
	return A.g
}

// Frames returns the number of frames binned so far.
func (A *Aggregator) Frames() int {
	return A.frames
}

// AddFrame bins one snapshot. Each particle goes to the bin of its nearest
// grid point, wrapped with the box of this frame, not with the averaged
// one the grid was built from. The per-cell means of the frame are then
// folded into the running cross-frame average. Cells that got no particle
// mean zero for this frame: the count is clamped to 1 before dividing, so
// the output can never hold a NaN.
func (A *Aggregator) AddFrame(F *voxel.Frame) error {
	if F == nil || F.Box == nil {
		return Error{NilFrame, []string{"AddFrame"}, true}
	}
	for i := range A.fsum {
		A.fsum[i] = 0
	}
	for i := range A.fcount {
		A.fcount[i] = 0
	}
	n := F.Len()
	for i := 0; i < n; i++ {
		bin, dist := A.g.Nearest(F.Pos(i), F.Box)
		if dist > A.cutoff {
			continue
		}
		A.vbuf = F.Voigt(i, A.vbuf)
		for j, v := range A.vbuf {
			A.fsum[bin*voxel.VoigtComps+j] += v
		}
		A.fcount[bin]++
	}
	for bin, c := range A.fcount {
		if c == 0 {
			c = 1
		}
		for j := 0; j < voxel.VoigtComps; j++ {
			k := bin*voxel.VoigtComps + j
			A.means[k] += A.fsum[k] / float64(c)
		}
	}
	A.frames++
	return nil
}

// Field returns the binned tensor field: the arithmetic mean, over all the
// frames added so far, of the per-frame cell means. It errors out if no
// frame has been added.
func (A *Aggregator) Field() (*TensorField, error) {
	if A.frames == 0 {
		return nil, Error{NoFrames, []string{"Field"}, true}
	}
	F := newTensorField(A.g)
	for i, v := range A.means {
		F.data[i] = v / float64(A.frames)
	}
	return F, nil
}

// FromTraj runs the whole aggregation over a trajectory: a first pass
// collects the boxes and averages them to build the grid, then the
// trajectory is rewound and every frame (or every skip-th frame, see
// Options) is binned. If the trajectory implements voxel.BoxReader the
// first pass reads only the headers.
func FromTraj(traj voxel.Traj, nx, ny, nz int, options ...*Options) (*TensorField, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	boxes := make([]*voxel.Box, 0, traj.Len())
	br, cheap := traj.(voxel.BoxReader) //header-only reads, when the source offers them
	for {
		var box *voxel.Box
		var err error
		if cheap {
			box, err = br.NextBox()
		} else {
			var F *voxel.Frame
			F, err = traj.Next()
			if err == nil {
				box = F.Box
			}
		}
		if err != nil {
			if _, ok := err.(voxel.LastFrameError); ok {
				break
			}
			return nil, errDecorate(err, "FromTraj")
		}
		boxes = append(boxes, box)
	}
	avg, err := voxel.AverageBox(boxes...)
	if err != nil {
		return nil, errDecorate(err, "FromTraj")
	}
	if err := traj.Reset(); err != nil {
		return nil, errDecorate(err, "FromTraj")
	}
	A, err := NewAggregator(avg, nx, ny, nz, o)
	if err != nil {
		return nil, errDecorate(err, "FromTraj")
	}
	read := 0
	for {
		F, err := traj.Next()
		if err != nil {
			if _, ok := err.(voxel.LastFrameError); ok {
				break
			}
			return nil, errDecorate(err, "FromTraj")
		}
		if read%o.skip != 0 {
			read++
			continue
		}
		read++
		if err := A.AddFrame(F); err != nil {
			return nil, errDecorate(err, "FromTraj")
		}
	}
	ret, err := A.Field()
	if err != nil {
		return nil, errDecorate(err, "FromTraj")
	}
	return ret, nil
}

// errDecorate decorates the error if it implements voxel.Error, and
// returns it as given otherwise.
func errDecorate(err error, deco string) error {
	err2, ok := err.(voxel.Error)
	if ok {
		err2.Decorate(deco)
		return err2
	}
	return err
}

// Error is the concrete error type of this package. It implements
// voxel.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("goVoxel/grid error: %s", err.message)
}

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

// Messages for the errors this package returns.
const (
	NilBox        = "Nil box given"
	NilFrame      = "Nil frame, or frame without a box, given"
	BadResolution = "Grid resolution must be at least 1 point per axis"
	BadCutoff     = "The assignment cutoff can not be negative"
	NoFrames      = "No frames have been binned"
	BadAxis       = "Plane axis must be 0, 1 or 2"
	BadIndex      = "Index out of the grid or tensor range"
	BadDump       = "JSON dump inconsistent with its own dimensions"
)
