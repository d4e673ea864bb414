//voxelize bins the per-particle tensors of a set of snapshot files onto a
//regular grid and writes heatmap slices and/or a JSON dump of the resulting
//field. It is driven by a gcfg configuration file; run with -example to get
//a commented template.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rmera/govoxel/fieldplot"
	"github.com/rmera/govoxel/grid"
	"github.com/rmera/govoxel/traj/extxyz"
	"gopkg.in/gcfg.v1"
)

const exampleConfig = `[Voxelize]

#######################
# Required Parameters #
#######################

# Input snapshot files. The key can be repeated, and every value is a glob,
# so both explicit lists and patterns work. Files ending in .gz or .zst are
# decompressed on the fly.
Input = snapshots/strain.*.xyz

# Grid resolution along each axis.
Nx = 16
Ny = 16
Nz = 16

#######################
# Optional Parameters #
#######################

# Assignment cutoff. A particle farther than this from its nearest grid
# point is not binned. 0 (the default) means the largest grid spacing,
# which guarantees that every particle lands somewhere.
# Cutoff = 0

# Bin only every Skip-th snapshot. Default 1 (all of them).
# Skip = 1

# Write a PNG heatmap of one slice of the field. Axis is the normal of the
# cut plane (x, y or z), Slice the grid index along it. Quantity is one of
# component, vonmises or hydrostatic; Row and Col select the component in
# the first case.
# PNG = field.png
# Axis = z
# Slice = 8
# Quantity = component
# Row = 0
# Col = 0

# Write the whole field, coordinates included, as JSON.
# JSON = field.json`

type voxelizeSection struct {
	Input      []string
	Nx, Ny, Nz int
	Cutoff     float64
	Skip       int
	PNG        string
	Axis       string
	Slice      int
	Quantity   string
	Row, Col   int
	JSON       string
}

type config struct {
	Voxelize voxelizeSection
}

func main() {
	var configPath string
	var example bool
	flag.StringVar(&configPath, "config", "voxelize.gcfg",
		"Location of the configuration file.")
	flag.BoolVar(&example, "example", false,
		"Print an example configuration file to stdout and exit.")
	flag.Parse()

	if example {
		fmt.Println(exampleConfig)
		return
	}

	var con config
	if err := gcfg.ReadFileInto(&con, configPath); err != nil {
		log.Fatal(err.Error())
	}
	v := &con.Voxelize
	files, err := expand(v.Input)
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(files) == 0 {
		log.Fatal("No snapshot files match the 'Input' values.")
	}
	if v.Nx < 1 || v.Ny < 1 || v.Nz < 1 {
		log.Fatal("'Nx', 'Ny' and 'Nz' must all be at least 1.")
	}

	traj, err := extxyz.New(files...)
	if err != nil {
		log.Fatal(err.Error())
	}
	opts := grid.DefaultOptions()
	if v.Cutoff != 0 {
		opts.Cutoff(v.Cutoff)
	}
	if v.Skip > 1 {
		opts.Skip(v.Skip)
	}
	field, err := grid.FromTraj(traj, v.Nx, v.Ny, v.Nz, opts)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Binned %d snapshots onto a %dx%dx%d grid.", traj.Len(), v.Nx, v.Ny, v.Nz)

	if v.PNG != "" {
		if err := plotField(field, v); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote %s.", v.PNG)
	}
	if v.JSON != "" {
		j, err := json.Marshal(field)
		if err != nil {
			log.Fatal(err.Error())
		}
		if err := os.WriteFile(v.JSON, j, 0644); err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote %s.", v.JSON)
	}
}

// expand resolves every input value as a glob and returns the union of the
// matches, sorted, so snapshots numbered in their names are read in order.
func expand(patterns []string) ([]string, error) {
	var files []string
	for _, p := range patterns {
		m, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad 'Input' glob %q: %w", p, err)
		}
		files = append(files, m...)
	}
	sort.Strings(files)
	return files, nil
}

func plotField(field *grid.TensorField, v *voxelizeSection) error {
	var axis int
	switch strings.ToLower(v.Axis) {
	case "", "z":
		axis = 2
	case "y":
		axis = 1
	case "x":
		axis = 0
	default:
		return fmt.Errorf("'Axis' must be x, y or z, not %q", v.Axis)
	}
	switch strings.ToLower(v.Quantity) {
	case "", "component":
		return fieldplot.Component(field, axis, v.Slice, v.Row, v.Col, "", v.PNG)
	case "vonmises":
		return fieldplot.VonMises(field, axis, v.Slice, "", v.PNG)
	case "hydrostatic":
		return fieldplot.Hydrostatic(field, axis, v.Slice, "", v.PNG)
	}
	return fmt.Errorf("'Quantity' must be component, vonmises or hydrostatic, not %q", v.Quantity)
}
