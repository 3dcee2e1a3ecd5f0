package percolation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/percolation/grid"
	"github.com/katalvlaran/percolation/unionfind"
)

// Glyphs used by String.
const (
	OpenGlyph    = "□"
	BlockedGlyph = "■"
)

// Percolation is the connectivity engine for one n×n system.
type Percolation struct {
	lattice grid.Lattice
	// open has Size() entries; the two virtual sites are always true.
	open      []bool
	openCount int
	// full sees every union and answers Percolates.
	full *unionfind.UnionFind
	// noBackwash skips every union that touches the bottom virtual site
	// and answers IsFull.
	noBackwash *unionfind.UnionFind
}

// New builds an n×n system with every site blocked.
// Returns an error wrapping ErrInvalidArgument if n ≤ 0.
func New(n int) (*Percolation, error) {
	lattice, err := grid.New(n)
	if err != nil {
		return nil, fmt.Errorf("%w: side %d: %w", ErrInvalidArgument, n, err)
	}
	size := lattice.Size()

	full, err := unionfind.New(size)
	if err != nil {
		return nil, fmt.Errorf("percolation: full structure: %w", err)
	}
	noBackwash, err := unionfind.New(size, unionfind.WithSkip(unionfind.SkipElement(lattice.Bottom())))
	if err != nil {
		return nil, fmt.Errorf("percolation: no-backwash structure: %w", err)
	}

	p := &Percolation{
		lattice:    lattice,
		open:       make([]bool, size),
		full:       full,
		noBackwash: noBackwash,
	}
	p.open[lattice.Top()] = true
	p.open[lattice.Bottom()] = true

	return p, nil
}

// Side returns the side length n.
func (p *Percolation) Side() int { return p.lattice.Side() }

// validate returns the linear index of (row, col) or an error wrapping
// ErrInvalidArgument.
func (p *Percolation) validate(row, col int) (int, error) {
	if !p.lattice.InBounds(row, col) {
		return 0, fmt.Errorf("%w: site (%d,%d) outside [1,%d]", ErrInvalidArgument, row, col, p.lattice.Side())
	}

	return p.lattice.Index(row, col), nil
}

// Open opens site (row, col) and joins it to every open neighbor. Opening an
// already open site does nothing.
// Row 1 is joined to the top virtual site and row n to the bottom one; the
// no-backwash structure silently drops the latter.
func (p *Percolation) Open(row, col int) error {
	idx, err := p.validate(row, col)
	if err != nil {
		return err
	}
	if p.open[idx] {
		return nil
	}

	p.open[idx] = true
	for _, nb := range p.lattice.Neighbors(idx) {
		// Virtual indices are in range of open and always true.
		if nb == grid.None || !p.open[nb] {
			continue
		}
		p.full.Union(idx, nb)
		p.noBackwash.Union(idx, nb)
	}
	p.openCount++

	return nil
}

// IsOpen reports whether site (row, col) is open.
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	idx, err := p.validate(row, col)
	if err != nil {
		return false, err
	}

	return p.open[idx], nil
}

// IsFull reports whether site (row, col) is connected to the top row through
// open sites. Connections that only go through the bottom virtual site do
// not count.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	idx, err := p.validate(row, col)
	if err != nil {
		return false, err
	}

	return p.noBackwash.Connected(idx, p.lattice.Top()), nil
}

// NumberOfOpenSites returns how many real sites are open.
func (p *Percolation) NumberOfOpenSites() int { return p.openCount }

// Percolates reports whether the top and bottom virtual sites are connected.
func (p *Percolation) Percolates() bool {
	return p.full.Connected(p.lattice.Top(), p.lattice.Bottom())
}

// String renders the grid one row per line, each site drawn as OpenGlyph or
// BlockedGlyph padded by a space on both sides. The rendering starts with a
// newline so it can follow a label on the same line.
func (p *Percolation) String() string {
	var sb strings.Builder
	n := p.lattice.Side()
	for i := 0; i < p.lattice.Sites(); i++ {
		if i%n == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte(' ')
		if p.open[i] {
			sb.WriteString(OpenGlyph)
		} else {
			sb.WriteString(BlockedGlyph)
		}
		sb.WriteByte(' ')
	}

	return sb.String()
}
