package extxyz

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	voxel "github.com/rmera/govoxel"
)

const tol = 1e-12

func TestRead(Te *testing.T) {
	F, err := Read("../../test/strain.0.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if F.Len() != 3 {
		Te.Errorf("Wrong number of particles: %d", F.Len())
	}
	l := F.Box.Lengths()
	fmt.Println("Box lengths:", l)
	if math.Abs(l[0]-10) > tol || math.Abs(l[1]-10) > tol || math.Abs(l[2]-10) > tol {
		Te.Errorf("Wrong box: %v", l)
	}
	if F.IDs[0] != 1 || F.IDs[2] != 3 {
		Te.Errorf("Wrong ids: %v", F.IDs)
	}
	p := F.Pos(0)
	if math.Abs(p[0]-4) > tol || math.Abs(p[1]-4) > tol || math.Abs(p[2]-4) > tol {
		Te.Errorf("Wrong position: %v", p)
	}
	v := F.Voigt(0, nil)
	want := []float64{1, 2, 3, 4, 5, 6}
	for i := range want {
		if math.Abs(v[i]-want[i]) > tol {
			Te.Errorf("Wrong tensor: %v", v)
		}
	}
}

func TestReadBox(Te *testing.T) {
	B, err := ReadBox("../../test/strain.1.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	l := B.Lengths()
	if math.Abs(l[0]-10.2) > tol || math.Abs(l[2]-9.8) > tol {
		Te.Errorf("Wrong box: %v", l)
	}
}

// The file declares the lattice vectors as columns; goVoxel wants them
// as rows. A tilted box makes the transposition visible.
func TestLatticeTransposed(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "tilted.xyz")
	content := "1\n" +
		"Lattice=\"10.0 2.0 0.0 0.0 10.0 0.0 0.0 0.0 10.0\"\n" +
		"1 1.0 1.0 1.0 0.0 0.0 0.0 0.0 0.0 0.0\n"
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	B, err := ReadBox(name)
	if err != nil {
		Te.Fatal(err)
	}
	b := B.Vector(1)
	fmt.Println("Second lattice vector:", b)
	if math.Abs(b[0]-2) > tol || math.Abs(b[1]-10) > tol {
		Te.Errorf("Lattice not transposed on reading: %v", b)
	}
}

func TestParseErrors(Te *testing.T) {
	_, err := Read("../../test/nolattice.xyz")
	if err == nil {
		Te.Error("A header without a Lattice token should be rejected")
	}
	fmt.Println("Expected error:", err)
	_, err = Read("../../test/shortrow.xyz")
	if err == nil {
		Te.Error("A particle line with too few fields should be rejected")
	}
	fmt.Println("Expected error:", err)
	_, err = Read("../../test/doesnotexist.xyz")
	if err == nil {
		Te.Error("A missing file should be an error")
	}
}

func TestGzip(Te *testing.T) {
	//a compressed snapshot must read the same as its plain original
	plain, err := os.ReadFile("../../test/strain.0.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "strain.0.xyz.gz")
	f, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	w := gzip.NewWriter(f)
	if _, err := w.Write(plain); err != nil {
		Te.Fatal(err)
	}
	w.Close()
	f.Close()
	F, err := Read(name)
	if err != nil {
		Te.Fatal(err)
	}
	R, err := Read("../../test/strain.0.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if F.Len() != R.Len() {
		Te.Errorf("Compressed and plain reads disagree: %d vs %d", F.Len(), R.Len())
	}
	for i := 0; i < F.Len(); i++ {
		pf, pr := F.Pos(i), R.Pos(i)
		for k := 0; k < 3; k++ {
			if math.Abs(pf[k]-pr[k]) > tol {
				Te.Errorf("Compressed and plain positions disagree at %d", i)
			}
		}
	}
}

// NextBox walks the same files as Next, exhausts the same way, and hands
// out the same boxes.
func TestNextBox(Te *testing.T) {
	traj, err := New("../../test/strain.0.xyz", "../../test/strain.1.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	var _ voxel.BoxReader = traj
	read := 0
	for {
		B, err := traj.NextBox()
		if err != nil {
			if _, ok := err.(voxel.LastFrameError); ok {
				break
			}
			Te.Fatal(err)
		}
		read++
		fmt.Println("Box lengths:", B.Lengths())
	}
	if read != 2 {
		Te.Errorf("Read %d boxes, wanted 2", read)
	}
	if traj.Readable() {
		Te.Error("An exhausted trajectory should not be readable")
	}
	if err := traj.Reset(); err != nil {
		Te.Fatal(err)
	}
	B, err := traj.NextBox()
	if err != nil {
		Te.Fatal(err)
	}
	l := B.Lengths()
	if math.Abs(l[0]-10) > tol {
		Te.Errorf("Wrong first box after Reset: %v", l)
	}
	//the box pass and the frame pass can be mixed: the next full read
	//yields the second frame
	F, err := traj.Next()
	if err != nil {
		Te.Fatal(err)
	}
	l = F.Box.Lengths()
	if math.Abs(l[0]-10.2) > tol {
		Te.Errorf("NextBox did not advance the trajectory: %v", l)
	}
}

func TestTraj(Te *testing.T) {
	traj, err := New("../../test/strain.0.xyz", "../../test/strain.1.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if traj.Len() != 2 {
		Te.Errorf("Wrong trajectory length: %d", traj.Len())
	}
	read := 0
	for {
		F, err := traj.Next()
		if err != nil {
			if _, ok := err.(voxel.LastFrameError); ok {
				break
			}
			Te.Fatal(err)
		}
		read++
		fmt.Println("Frame with", F.Len(), "particles")
	}
	if read != 2 {
		Te.Errorf("Read %d frames, wanted 2", read)
	}
	if traj.Readable() {
		Te.Error("An exhausted trajectory should not be readable")
	}
	if err := traj.Reset(); err != nil {
		Te.Fatal(err)
	}
	if !traj.Readable() {
		Te.Error("A rewound trajectory should be readable")
	}
	F, err := traj.Next()
	if err != nil {
		Te.Fatal(err)
	}
	if F.Len() != 3 {
		Te.Errorf("Wrong first frame after Reset: %d particles", F.Len())
	}
	_, err = New()
	if err == nil {
		Te.Error("An empty file list should be rejected")
	}
}
