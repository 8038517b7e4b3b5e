package levels

import "math"

// Path finds a 4-way path of open tiles from one tile to another. Solid
// tiles block, every other tile is open. It returns nil when to cannot be
// reached or lies outside the map.
func (f *File) Path(from, to [2]int) [][2]int {
	w, h := f.Width(), f.Height()
	if w <= 0 || h <= 0 || !inside(from, w, h) || !inside(to, w, h) {
		return nil
	}
	if from == to {
		return [][2]int{from}
	}
	blocked := func(p [2]int) bool { return f.TileAt(p[0], p[1]) == TileSolid }
	if blocked(to) {
		return nil
	}

	index := func(p [2]int) int { return p[1]*w + p[0] }
	start, goal := index(from), index(to)

	open := [][2]int{from}
	inOpen := map[int]bool{start: true}
	cameFrom := make(map[int]int, 128)
	gScore := map[int]float64{start: 0}
	fScore := map[int]float64{start: manhattan(from, to)}

	for len(open) > 0 {
		best, bestScore := 0, math.MaxFloat64
		for i, p := range open {
			if s := fScore[index(p)]; s < bestScore {
				best, bestScore = i, s
			}
		}
		cur := open[best]
		ci := index(cur)
		open = append(open[:best], open[best+1:]...)
		delete(inOpen, ci)

		if ci == goal {
			return walkBack(cameFrom, ci, start, w)
		}

		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := [2]int{cur[0] + d[0], cur[1] + d[1]}
			if !inside(n, w, h) || blocked(n) {
				continue
			}
			ni := index(n)
			g := gScore[ci] + 1
			if prev, seen := gScore[ni]; seen && g >= prev {
				continue
			}
			cameFrom[ni] = ci
			gScore[ni] = g
			fScore[ni] = g + manhattan(n, to)
			if !inOpen[ni] {
				open = append(open, n)
				inOpen[ni] = true
			}
		}
	}
	return nil
}

// Unreachable lists the elements whose tile no open path joins to the
// first entrance.
func (f *File) Unreachable() []int {
	if len(f.Entrances) == 0 {
		return nil
	}
	var out []int
	for i, e := range f.Elements {
		if f.Path(f.Entrances[0], e.At) == nil {
			out = append(out, i)
		}
	}
	return out
}

func walkBack(cameFrom map[int]int, cur, start, w int) [][2]int {
	var path [][2]int
	for {
		path = append(path, [2]int{cur % w, cur / w})
		if cur == start {
			break
		}
		prev, ok := cameFrom[cur]
		if !ok {
			return nil
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b [2]int) float64 {
	return math.Abs(float64(a[0]-b[0])) + math.Abs(float64(a[1]-b[1]))
}
