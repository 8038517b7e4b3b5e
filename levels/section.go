// Package levels defines the section file format and builds section
// elements from it.
//
// A section file is one YAML document:
//
//	name: forest-1
//	id: 1
//	song: forest
//	tiles: |
//	  ..........
//	  ...==.....
//	  ##########
//	entrances: [[1, 1]]
//	elements:
//	  - kind: Wheeliam
//	    at: [6, 1]
//	  - kind: Key
//	    at: [3, 0]
//	    args: {type: 1}
//
// Tiles are one character per cell: '#' solid, '=' one-way platform, '/'
// and '\' ramps rising to the right and to the left, anything else empty.
package levels

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/bombsim/actor"
	"github.com/milk9111/bombsim/common"
	"gopkg.in/yaml.v3"
)

// ErrBadSection is wrapped by every structural error of a section file.
var ErrBadSection = errors.New("bad section")

type Tile byte

const (
	TileEmpty  Tile = '.'
	TileSolid  Tile = '#'
	TileOneWay Tile = '='
	TileRampR  Tile = '/'
	TileRampL  Tile = '\\'
)

// File is a parsed section file.
type File struct {
	Name string `yaml:"name"`
	// ID tells the sections of a stage apart in switch ids.
	ID        int       `yaml:"id"`
	Song      string    `yaml:"song"`
	Dark      bool      `yaml:"dark"`
	Tiles     string    `yaml:"tiles"`
	Entrances [][2]int  `yaml:"entrances"`
	Elements  []Element `yaml:"elements"`

	rows []string
}

// Element is one placed element. At is in tiles.
type Element struct {
	Kind string    `yaml:"kind"`
	At   [2]int    `yaml:"at"`
	Args yaml.Node `yaml:"args"`
}

// Position returns the element's world position.
func (e *Element) Position() common.Vector {
	return common.Vector{X: float64(e.At[0] * common.TileSize), Y: float64(e.At[1] * common.TileSize)}
}

// ArgsOf returns the element's configuration, or nil when it has none.
func (e *Element) ArgsOf() actor.Args {
	if e.Args.Kind == 0 {
		return nil
	}
	return &Args{node: &e.Args}
}

// Args adapts an element's args node to actor.Args.
type Args struct {
	node *yaml.Node
}

func (a *Args) Present() bool { return a != nil && a.node != nil && a.node.Kind != 0 }

func (a *Args) Decode(v any) error {
	if !a.Present() {
		return nil
	}
	return a.node.Decode(v)
}

// Parse decodes a section file and checks its structure.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	f.rows = splitRows(f.Tiles)
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func splitRows(tiles string) []string {
	var rows []string
	for _, line := range strings.Split(tiles, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// Width and Height are the section size in tiles.
func (f *File) Width() int {
	w := 0
	for _, r := range f.rows {
		w = max(w, len(r))
	}
	return w
}

func (f *File) Height() int { return len(f.rows) }

// Size is the section size in pixels.
func (f *File) Size() common.Vector {
	return common.Vector{X: float64(f.Width() * common.TileSize), Y: float64(f.Height() * common.TileSize)}
}

// TileAt returns the tile at column i, row j. Cells outside the map are
// empty.
func (f *File) TileAt(i, j int) Tile {
	if j < 0 || j >= len(f.rows) || i < 0 || i >= len(f.rows[j]) {
		return TileEmpty
	}
	return Tile(f.rows[j][i])
}

// Validate reports the structural problems of the file: an empty map,
// missing entrances, elements of unknown kinds or placed outside the map.
// Problems of element arguments are only found when building.
func (f *File) Validate() error {
	if f.rows == nil {
		f.rows = splitRows(f.Tiles)
	}
	var errs []error
	if len(f.rows) == 0 {
		errs = append(errs, fmt.Errorf("%w: no tiles", ErrBadSection))
	}
	if len(f.Entrances) == 0 {
		errs = append(errs, fmt.Errorf("%w: no entrances", ErrBadSection))
	}
	w, h := f.Width(), f.Height()
	for i, e := range f.Entrances {
		if !inside(e, w, h) {
			errs = append(errs, fmt.Errorf("%w: entrance %d at %v is outside the map", ErrBadSection, i, e))
		}
	}
	for i, e := range f.Elements {
		if _, ok := Lookup(e.Kind); !ok {
			errs = append(errs, &ElementError{Index: i, Kind: e.Kind, Err: ErrUnknownKind})
			continue
		}
		if !inside(e.At, w, h) {
			errs = append(errs, &ElementError{Index: i, Kind: e.Kind, Err: fmt.Errorf("%w: at %v is outside the map", ErrBadSection, e.At)})
		}
	}
	return errors.Join(errs...)
}

func inside(p [2]int, w, h int) bool {
	return p[0] >= 0 && p[0] < w && p[1] >= 0 && p[1] < h
}

// SwitchID is the id of the switch of element index in section id, unique
// within a stage.
func SwitchID(section, index int) int {
	return section*1000 + index
}
