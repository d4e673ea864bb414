package extxyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	voxel "github.com/rmera/govoxel"
	"gonum.org/v1/gonum/mat"
)

// Traj is a snapshot trajectory: a list of extended-XYZ files, one frame
// per file, read sequentially. It implements voxel.Traj.
type Traj struct {
	files    []string
	current  int
	readable bool
}

// New builds a trajectory from the given snapshot file names. The frames
// will be read in the order the names are given.
func New(files ...string) (*Traj, error) {
	if len(files) == 0 {
		return nil, Error{NoFiles, "", []string{"New"}, true}
	}
	return &Traj{files: files, readable: true}, nil
}

// Readable returns true if the object is ready to be read from,
// false otherwise. It doesnt guarantee that there is something
// to read.
func (T *Traj) Readable() bool {
	return T.readable
}

// Len returns the total number of frames (files) in the trajectory.
func (T *Traj) Len() int {
	return len(T.files)
}

// Reset rewinds the trajectory to its first frame.
func (T *Traj) Reset() error {
	T.current = 0
	T.readable = true
	return nil
}

// Next reads the next frame of the trajectory. Upon normal exhaustion it
// returns an error implementing voxel.LastFrameError.
func (T *Traj) Next() (*voxel.Frame, error) {
	if !T.readable {
		return nil, Error{TrajUnIni, "", []string{"Next"}, true}
	}
	if T.current >= len(T.files) {
		T.readable = false
		return nil, newlastFrameError(T.files[len(T.files)-1], "Next")
	}
	name := T.files[T.current]
	T.current++
	F, err := Read(name)
	if err != nil {
		return nil, errDecorate(err, "Next")
	}
	return F, nil
}

// NextBox reads only the box of the next frame, advancing the trajectory.
// It implements voxel.BoxReader, so box-averaging passes skip the particle
// parsing.
func (T *Traj) NextBox() (*voxel.Box, error) {
	if !T.readable {
		return nil, Error{TrajUnIni, "", []string{"NextBox"}, true}
	}
	if T.current >= len(T.files) {
		T.readable = false
		return nil, newlastFrameError(T.files[len(T.files)-1], "NextBox")
	}
	name := T.files[T.current]
	T.current++
	box, err := ReadBox(name)
	if err != nil {
		return nil, errDecorate(err, "NextBox")
	}
	return box, nil
}

// Read parses the snapshot file with the given name into a voxel.Frame.
func Read(name string) (*voxel.Frame, error) {
	f, r, err := open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defer r.Close()
	buf := bufio.NewReader(r)
	line, err := buf.ReadString('\n')
	if err != nil {
		return nil, Error{MissingHeader, name, []string{"Read"}, true}
	}
	//The first line is free-form in this format, but it customarily holds
	//the particle count, which we can use to preallocate.
	nalloc := 0
	if n, err2 := strconv.Atoi(strings.TrimSpace(line)); err2 == nil && n > 0 {
		nalloc = n
	}
	line, err = buf.ReadString('\n')
	if err != nil && line == "" {
		return nil, Error{MissingHeader, name, []string{"Read"}, true}
	}
	box, err := parseLattice(line, name)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	ids := make([]int, 0, nalloc)
	coords := make([]float64, 0, nalloc*3)
	tensors := make([]float64, 0, nalloc*voxel.VoigtComps)
	for {
		line, err = buf.ReadString('\n')
		if line == "" && err != nil {
			break //EOF, the only error bufio.Reader produces on a regular file
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 1+3+voxel.VoigtComps {
			return nil, Error{fmt.Sprintf("%s: %d fields in particle line, at least %d needed", WrongFields, len(fields), 1+3+voxel.VoigtComps), name, []string{"Read"}, true}
		}
		id, err2 := strconv.Atoi(fields[0])
		if err2 != nil {
			return nil, Error{fmt.Sprintf("%s: %s", WrongFields, err2.Error()), name, []string{"strconv.Atoi", "Read"}, true}
		}
		ids = append(ids, id)
		for i := 1; i < 1+3+voxel.VoigtComps; i++ {
			v, err2 := strconv.ParseFloat(fields[i], 64)
			if err2 != nil {
				return nil, Error{fmt.Sprintf("%s: %s", WrongFields, err2.Error()), name, []string{"strconv.ParseFloat", "Read"}, true}
			}
			if i <= 3 {
				coords = append(coords, v)
			} else {
				tensors = append(tensors, v)
			}
		}
		if err != nil {
			break //EOF with a well-formed last line lacking its newline
		}
	}
	natoms := len(ids)
	if natoms == 0 {
		return nil, Error{NoParticles, name, []string{"Read"}, true}
	}
	F, err := voxel.NewFrame(box, ids, mat.NewDense(natoms, 3, coords), mat.NewDense(natoms, voxel.VoigtComps, tensors))
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return F, nil
}

// ReadBox parses only the header of the snapshot file with the given name,
// returning its box. Cheaper than Read when, as when averaging the boxes of
// a whole trajectory, the particles are not needed.
func ReadBox(name string) (*voxel.Box, error) {
	f, r, err := open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defer r.Close()
	buf := bufio.NewReader(r)
	if _, err = buf.ReadString('\n'); err != nil {
		return nil, Error{MissingHeader, name, []string{"ReadBox"}, true}
	}
	line, err := buf.ReadString('\n')
	if err != nil && line == "" {
		return nil, Error{MissingHeader, name, []string{"ReadBox"}, true}
	}
	box, err := parseLattice(line, name)
	if err != nil {
		return nil, errDecorate(err, "ReadBox")
	}
	return box, nil
}

// parseLattice extracts the Lattice="..." token from the header line and
// builds a box from it, transposing from the column-vector convention of
// the file to the row-vector one of the voxel package.
func parseLattice(line, name string) (*voxel.Box, error) {
	const token = "Lattice=\""
	start := strings.Index(line, token)
	if start < 0 {
		return nil, Error{MissingLattice, name, []string{"parseLattice"}, true}
	}
	rest := line[start+len(token):]
	end := strings.Index(rest, "\"")
	if end < 0 {
		return nil, Error{MissingLattice, name, []string{"parseLattice"}, true}
	}
	fields := strings.Fields(rest[:end])
	if len(fields) != 9 {
		return nil, Error{fmt.Sprintf("%s: got %d numbers, need 9", WrongLattice, len(fields)), name, []string{"parseLattice"}, true}
	}
	lattice := make([]float64, 9)
	for i, v := range fields {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, Error{fmt.Sprintf("%s: %s", WrongLattice, err.Error()), name, []string{"strconv.ParseFloat", "parseLattice"}, true}
		}
		//transposed on the fly
		lattice[3*(i%3)+i/3] = n
	}
	box, err := voxel.NewBox(lattice)
	if err != nil {
		return nil, errDecorate(err, "parseLattice")
	}
	return box, nil
}

//As in goChem's stf reader, the compression (if any) is decided from the
//file name. zstd.Decoder does not implement io.ReadCloser, hence the little
//wrapper.

type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

type nopCloser struct {
	io.Reader
}

func (n nopCloser) Close() error { return nil }

func open(name string) (*os.File, io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, Error{UnableToOpen, name, []string{"os.Open", "open"}, true}
	}
	var r io.ReadCloser
	switch {
	case strings.HasSuffix(name, ".gz"):
		r, err = gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, Error{fmt.Sprintf("%s: %s", UnableToOpen, err.Error()), name, []string{"gzip.NewReader", "open"}, true}
		}
	case strings.HasSuffix(name, ".zst") || strings.HasSuffix(name, ".zstd"):
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, Error{fmt.Sprintf("%s: %s", UnableToOpen, err.Error()), name, []string{"zstd.NewReader", "open"}, true}
		}
		r = zstdql{d.Close, d}
	default:
		r = nopCloser{f}
	}
	return f, r, nil
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
// voxel.TrajError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("extxyz file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing snapshot was associated
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file associated to the error
func (err Error) Format() string { return "extxyz" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

// Messages for the errors this package returns.
const (
	TrajUnIni      = "Traj object uninitialized to read"
	UnableToOpen   = "Unable to open file"
	MissingHeader  = "Snapshot shorter than its fixed 2-line header"
	MissingLattice = "No Lattice=\"...\" token in the header line"
	WrongLattice   = "Malformed Lattice token"
	WrongFields    = "Malformed particle line"
	NoParticles    = "Snapshot contains no particle lines"
	NoFiles        = "No snapshot files given"
)

// lastFrameError implements voxel.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

// NormalLastFrameTermination does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "extxyz" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename, caller string) lastFrameError {
	return lastFrameError{fileName: filename, deco: []string{caller}}
}
