// Package region finds the connected color regions a player holds or can capture.
//
// Every traversal is a breadth-first search over the 4-neighborhood with an
// explicit queue; the visiting order never changes the resulting set.
package region

import (
	"sort"

	"github.com/aretw0/filler/pkg/domain"
)

// Grid is the read side of a board needed by the classifier.
// *domain.Board satisfies it.
type Grid interface {
	Size() int
	Anchor(p domain.Player) domain.Pos
	ColorAt(p domain.Pos) (domain.Color, error)
	OwnerAt(p domain.Pos) (domain.Player, error)
	Neighbors4(p domain.Pos) []domain.Pos
}

// Set is an unordered collection of positions.
type Set map[domain.Pos]struct{}

// Has reports whether p is in the set.
func (s Set) Has(p domain.Pos) bool {
	_, ok := s[p]
	return ok
}

// Add inserts p.
func (s Set) Add(p domain.Pos) {
	s[p] = struct{}{}
}

// Len returns the number of positions.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the positions in row-major order.
func (s Set) Sorted() []domain.Pos {
	out := make([]domain.Pos, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Component returns every position reachable from the seeds through cells
// accepted by match. Seeds themselves must satisfy match to be included.
func Component(g Grid, match func(domain.Pos) bool, seeds ...domain.Pos) Set {
	visited := make(Set)
	queue := make([]domain.Pos, 0, g.Size()*g.Size())
	for _, s := range seeds {
		if visited.Has(s) || !match(s) {
			continue
		}
		visited.Add(s)
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, next := range g.Neighbors4(curr) {
			if visited.Has(next) || !match(next) {
				continue
			}
			visited.Add(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// Territory returns the region anchored at p's home corner: cells connected
// to the anchor that share the anchor's color and are not held by the opponent.
func Territory(g Grid, p domain.Player) Set {
	anchor := g.Anchor(p)
	target, err := g.ColorAt(anchor)
	if err != nil {
		return Set{}
	}
	return Component(g, sameColorFree(g, p, target), anchor)
}

// Frontier returns the cells of color c connected to territory that the
// opponent does not hold. The territory itself is excluded.
func Frontier(g Grid, territory Set, p domain.Player, c domain.Color) Set {
	match := sameColorFree(g, p, c)
	var seeds []domain.Pos
	for cell := range territory {
		for _, n := range g.Neighbors4(cell) {
			if !territory.Has(n) && match(n) {
				seeds = append(seeds, n)
			}
		}
	}
	ring := Component(g, func(pos domain.Pos) bool {
		return !territory.Has(pos) && match(pos)
	}, seeds...)
	return ring
}

// Capturable previews the cells p would hold after choosing chosen: the
// current territory plus its frontier of chosen. The boolean is false when
// chosen already is the anchor color, in which case the choice changes nothing.
func Capturable(g Grid, p domain.Player, chosen domain.Color) (Set, bool) {
	target, err := g.ColorAt(g.Anchor(p))
	if err != nil || target == chosen {
		return Set{}, false
	}
	territory := Territory(g, p)
	for cell := range Frontier(g, territory, p, chosen) {
		territory.Add(cell)
	}
	return territory, true
}

// Size is the connected-region score of p: the size of its Territory.
func Size(g Grid, p domain.Player) int {
	return Territory(g, p).Len()
}

func sameColorFree(g Grid, p domain.Player, c domain.Color) func(domain.Pos) bool {
	opponent := p.Opponent()
	return func(pos domain.Pos) bool {
		color, err := g.ColorAt(pos)
		if err != nil || color != c {
			return false
		}
		owner, _ := g.OwnerAt(pos)
		return owner != opponent
	}
}
