// Package helix finds known parts in DNA sequences via local alignment
// and keeps the component database those parts come from.
package helix

import "math"

// ScoringParams are the affine-gap scoring settings shared by every
// alignment in a run. Mismatch, open and extend should be negative
type ScoringParams struct {
	// Match is the score awarded for a matching base pair
	Match int

	// Mismatch is the penalty for a mismatching base pair
	Mismatch int

	// GapOpen is the penalty for opening a new gap
	GapOpen int

	// GapExtend is the penalty for extending an already open gap
	GapExtend int
}

// AlignmentResult is the outcome of a local alignment between a
// query (a component's sequence) and a target sequence
type AlignmentResult struct {
	// Score of the best local alignment
	Score int

	// QueryStart of the alignment on the query (0-indexed, inclusive)
	QueryStart int

	// QueryEnd of the alignment on the query (0-indexed, exclusive)
	QueryEnd int

	// TargetStart of the alignment on the target (0-indexed, inclusive)
	TargetStart int

	// TargetEnd of the alignment on the target (0-indexed, exclusive)
	TargetEnd int

	// Matches is the number of matching bases in the alignment
	Matches int

	// Mismatches is the number of mismatching bases in the alignment
	Mismatches int

	// Gaps is the number of gap positions in the alignment
	Gaps int

	// AlignmentLength is matches + mismatches + gaps
	AlignmentLength int
}

// PercentIdentity is the percentage of aligned columns that are matches
func (r *AlignmentResult) PercentIdentity() float64 {
	if r.AlignmentLength == 0 {
		return 0.0
	}
	return float64(r.Matches) / float64(r.AlignmentLength) * 100.0
}

// QueryCoverage is the percentage of the query consumed by the alignment
func (r *AlignmentResult) QueryCoverage(queryLen int) float64 {
	if queryLen == 0 {
		return 0.0
	}
	return float64(r.QueryEnd-r.QueryStart) / float64(queryLen) * 100.0
}

// traceOp is the traceback direction recorded per cell
type traceOp byte

const (
	// traceNone means the cell has no predecessor (the alignment starts here)
	traceNone traceOp = iota

	// traceMatch means the cell came from a match/mismatch (diagonal move)
	traceMatch

	// traceGapInQuery means the cell came from a gap in the query (target consumed)
	traceGapInQuery

	// traceGapInTarget means the cell came from a gap in the target (query consumed)
	traceGapInTarget
)

// negInf seeds the gap matrices so an unopened gap can never win a cell.
// MinInt32/2 leaves headroom for the penalty additions
const negInf = math.MinInt32 / 2

// Align finds the best local alignment between query and target using
// Smith-Waterman with affine gap penalties. Base comparison is
// case-insensitive.
//
// When bandWidth is greater than zero only cells within bandWidth columns
// of an estimated diagonal are filled, dropping the cost from O(nm) to
// O(n*bandWidth). The estimate assumes the alignment is roughly co-linear:
// if the true alignment path drifts outside the band (eg large indels
// relative to the band), the banded result can diverge from the unbanded
// optimum.
//
// Returns nil if either sequence is empty or the best score is below
// minScore.
func Align(query, target []byte, params ScoringParams, bandWidth, minScore int) *AlignmentResult {
	n := len(query)  // rows
	m := len(target) // columns

	if n == 0 || m == 0 {
		return nil
	}

	rows := n + 1
	cols := m + 1

	// three flat matrices, addressed row*cols+col:
	//   h: best score ending in a match/mismatch at (i, j)
	//   e: best score ending in a gap in the query (target consumed)
	//   f: best score ending in a gap in the target (query consumed)
	// all clamped to zero, the Smith-Waterman local property
	h := make([]int, rows*cols)
	e := make([]int, rows*cols)
	f := make([]int, rows*cols)
	trace := make([]traceOp, rows*cols)

	for i := range e {
		e[i] = negInf
		f[i] = negInf
	}

	maxScore := 0
	maxI := 0
	maxJ := 0

	for i := 1; i < rows; i++ {
		jStart, jEnd := 1, cols
		if bandWidth > 0 {
			// estimated diagonal center for this row. when the target is
			// longer the diagonal shifts right proportionally
			center := i
			if m >= n {
				center = i * m / n
			}

			if jStart = center - bandWidth; jStart < 1 {
				jStart = 1
			}
			if jEnd = center + bandWidth + 1; jEnd > cols {
				jEnd = cols
			}
		}

		for j := jStart; j < jEnd; j++ {
			diag := h[(i-1)*cols+j-1] + params.Mismatch
			if upper(query[i-1]) == upper(target[j-1]) {
				diag = h[(i-1)*cols+j-1] + params.Match
			}

			// gap in query: extends along the target (horizontal move)
			eVal := h[i*cols+j-1] + params.GapOpen + params.GapExtend
			if ext := e[i*cols+j-1] + params.GapExtend; ext > eVal {
				eVal = ext
			}
			if eVal < 0 {
				eVal = 0
			}
			e[i*cols+j] = eVal

			// gap in target: extends along the query (vertical move)
			fVal := h[(i-1)*cols+j] + params.GapOpen + params.GapExtend
			if ext := f[(i-1)*cols+j] + params.GapExtend; ext > fVal {
				fVal = ext
			}
			if fVal < 0 {
				fVal = 0
			}
			f[i*cols+j] = fVal

			hVal := diag
			if eVal > hVal {
				hVal = eVal
			}
			if fVal > hVal {
				hVal = fVal
			}
			if hVal < 0 {
				hVal = 0
			}
			h[i*cols+j] = hVal

			// tie-break order: diagonal, then gap in target, then gap in query
			switch {
			case hVal == 0:
				trace[i*cols+j] = traceNone
			case hVal == diag:
				trace[i*cols+j] = traceMatch
			case hVal == fVal:
				trace[i*cols+j] = traceGapInTarget
			default:
				trace[i*cols+j] = traceGapInQuery
			}

			if hVal > maxScore {
				maxScore = hVal
				maxI = i
				maxJ = j
			}
		}
	}

	if maxScore < minScore {
		return nil
	}

	// walk back from the max cell until the local alignment starts
	matches := 0
	mismatches := 0
	gaps := 0

	ci := maxI
	cj := maxJ

	for ci > 0 && cj > 0 && h[ci*cols+cj] > 0 {
		done := false
		switch trace[ci*cols+cj] {
		case traceMatch:
			if upper(query[ci-1]) == upper(target[cj-1]) {
				matches++
			} else {
				mismatches++
			}
			ci--
			cj--
		case traceGapInTarget:
			gaps++
			ci--
		case traceGapInQuery:
			gaps++
			cj--
		case traceNone:
			done = true
		}

		if done {
			break
		}
	}

	return &AlignmentResult{
		Score:           maxScore,
		QueryStart:      ci,
		QueryEnd:        maxI,
		TargetStart:     cj,
		TargetEnd:       maxJ,
		Matches:         matches,
		Mismatches:      mismatches,
		Gaps:            gaps,
		AlignmentLength: matches + mismatches + gaps,
	}
}

// AlignBothStrands runs Align against the target and against the target's
// reverse complement, returning whichever alignment scores higher. The
// returned bool is true when the reverse complement strand won. The
// forward strand wins ties.
//
// Coordinates of a reverse complement result are in the reverse
// complement's frame, not the target's.
//
// Returns nil if neither strand produces a score at or above minScore.
func AlignBothStrands(query, target []byte, params ScoringParams, bandWidth, minScore int) (*AlignmentResult, bool) {
	fwd := Align(query, target, params, bandWidth, minScore)

	rc := []byte(reverseComplement(string(target)))
	rev := Align(query, rc, params, bandWidth, minScore)

	switch {
	case fwd != nil && rev != nil:
		if rev.Score > fwd.Score {
			return rev, true
		}
		return fwd, false
	case fwd != nil:
		return fwd, false
	case rev != nil:
		return rev, true
	}
	return nil, false
}
