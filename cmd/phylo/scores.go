package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/phylo/guidetree"
)

// Score-table parsing errors.
var (
	// errNoRows is returned for an empty score table.
	errNoRows = errors.New("phylo: score table is empty")

	// errRowCount is returned when the row count is not N(N-1)/2 for the
	// N distinct sequence ids appearing in the table.
	errRowCount = errors.New("phylo: row count does not match the sequence pair count")

	// errRowOrder is returned when rows do not follow the fixed pair
	// enumeration order (0,1),(0,2),…,(N-2,N-1).
	errRowOrder = errors.New("phylo: rows must follow the fixed pair enumeration order")

	// errBadScore is returned when a score column is not an integer.
	errBadScore = errors.New("phylo: malformed score value")
)

// scoreRow is one parsed table line: a sequence pair and its scorer values.
type scoreRow struct {
	a, b string
	sc   guidetree.PairScore
}

// parseScores reads a tab-separated score table. Each row is
//
//	idA	idB	score	maxScore	minScore
//
// with one row per unordered sequence pair in the fixed enumeration order
// (0,1),(0,2),…,(N-2,N-1) over the sequence ids in order of first
// appearance. Lines starting with '#' are comments.
func parseScores(r io.Reader) ([]guidetree.Sequence, []guidetree.Scorer, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = 5

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("phylo: reading score table: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, errNoRows
	}

	// 1. Parse rows, collecting sequence ids in order of first appearance
	var ids []string
	seen := make(map[string]bool)
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	rows := make([]scoreRow, 0, len(records))
	for ln, rec := range records {
		row := scoreRow{a: rec[0], b: rec[1]}
		if row.sc.S, err = strconv.Atoi(rec[2]); err != nil {
			return nil, nil, fmt.Errorf("row %d: %q: %w", ln+1, rec[2], errBadScore)
		}
		if row.sc.Max, err = strconv.Atoi(rec[3]); err != nil {
			return nil, nil, fmt.Errorf("row %d: %q: %w", ln+1, rec[3], errBadScore)
		}
		if row.sc.Min, err = strconv.Atoi(rec[4]); err != nil {
			return nil, nil, fmt.Errorf("row %d: %q: %w", ln+1, rec[4], errBadScore)
		}
		add(row.a)
		add(row.b)
		rows = append(rows, row)
	}

	// 2. Validate the pair count and enumeration order
	n := len(ids)
	if len(rows) != n*(n-1)/2 {
		return nil, nil, fmt.Errorf("%d ids need %d rows, got %d: %w", n, n*(n-1)/2, len(rows), errRowCount)
	}
	k := 0
	scorers := make([]guidetree.Scorer, 0, len(rows))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			row := rows[k]
			if row.a != ids[i] || row.b != ids[j] {
				return nil, nil, fmt.Errorf("row %d: got (%s,%s), want (%s,%s): %w",
					k+1, row.a, row.b, ids[i], ids[j], errRowOrder)
			}
			scorers = append(scorers, row.sc)
			k++
		}
	}

	seqs := make([]guidetree.Sequence, n)
	for i, id := range ids {
		seqs[i] = guidetree.Seq{ID: id}
	}

	return seqs, scorers, nil
}
