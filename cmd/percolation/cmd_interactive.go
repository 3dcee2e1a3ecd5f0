package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/percolation"
)

// Menu entries of the interactive session. Any other number ends it.
const (
	opOpen = iota + 1
	opIsOpen
	opIsFull
	opCount
	opPercolates
)

const menu = `-----------------------------------------------------
Choose an operation:
 1. open
 2. isOpen
 3. isFull
 4. numberOfOpenSites
 5. percolates
 any other number exits
`

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Open and inspect sites of a single grid from a text menu",
		Long: `Read the grid side n, then loop over a numbered menu of engine operations.
Input is whitespace-separated integers, so the session can be scripted:

  printf '3\n1 1 1\n5\n0\n' | percolation interactive

An out-of-range n, row or column ends the session with an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			return newSession(cmd.InOrStdin(), cmd.OutOrStdout(), logger).run()
		},
	}
}

// session drives one Percolation from a stream of integer tokens.
type session struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
	p      *percolation.Percolation
}

func newSession(in io.Reader, out io.Writer, logger *slog.Logger) *session {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &session{in: sc, out: out, logger: logger}
}

// nextInt prints prompt and reads one integer. It returns io.EOF when the
// input is exhausted.
func (s *session) nextInt(prompt string) (int, error) {
	fmt.Fprintln(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	tok := s.in.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", tok)
	}

	return v, nil
}

// site reads a row and a column. Running out of input here is unexpected.
func (s *session) site(action string) (row, col int, err error) {
	fmt.Fprintf(s.out, "\nEnter the row and column of the site to %s.\n", action)
	if row, err = s.nextInt("Row:"); err != nil {
		return 0, 0, unexpected(err)
	}
	if col, err = s.nextInt("Column:"); err != nil {
		return 0, 0, unexpected(err)
	}

	return row, col, nil
}

func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}

func (s *session) run() error {
	fmt.Fprintln(s.out, "PERCOLATION")
	n, err := s.nextInt("Enter n for an n*n grid of sites:")
	if err != nil {
		return unexpected(err)
	}
	if s.p, err = percolation.New(n); err != nil {
		return err
	}
	s.logger.Debug("session started", "side", n)

	for {
		op, err := s.nextInt(menu)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if op < opOpen || op > opPercolates {
			s.logger.Debug("session ended", "open_sites", s.p.NumberOfOpenSites())
			return nil
		}
		if err := s.apply(op); err != nil {
			return err
		}
	}
}

// apply runs one menu operation against the grid.
func (s *session) apply(op int) error {
	switch op {
	case opOpen:
		row, col, err := s.site("open")
		if err != nil {
			return err
		}
		if err := s.p.Open(row, col); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "==> Site opened. The grid is now:%s\n", s.p)

	case opIsOpen:
		row, col, err := s.site("check")
		if err != nil {
			return err
		}
		open, err := s.p.IsOpen(row, col)
		if err != nil {
			return err
		}
		if open {
			fmt.Fprintln(s.out, "==> The site is open.")
		} else {
			fmt.Fprintln(s.out, "==> The site is blocked.")
		}

	case opIsFull:
		row, col, err := s.site("check")
		if err != nil {
			return err
		}
		full, err := s.p.IsFull(row, col)
		if err != nil {
			return err
		}
		if full {
			fmt.Fprintln(s.out, "==> The site is full.")
		} else {
			fmt.Fprintln(s.out, "==> The site is not full.")
		}

	case opCount:
		fmt.Fprintf(s.out, "==> Open sites: %d\n", s.p.NumberOfOpenSites())

	case opPercolates:
		if s.p.Percolates() {
			fmt.Fprintf(s.out, "==> The system percolates.%s\n", s.p)
		} else {
			fmt.Fprintf(s.out, "==> The system does not percolate.%s\n", s.p)
		}
	}

	return nil
}
