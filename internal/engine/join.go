package engine

import (
	"fmt"
	"time"

	"minidb/internal/sql"
	"minidb/internal/storage"
)

// The join executors are stateless and operate directly on two tables;
// joins are invoked programmatically, not through the SQL grammar. All
// variants use a literal nested loop: |left| × |right| comparisons.
// NULL never equals anything, including NULL, so NULL-keyed rows match
// nothing on either side.

// InnerJoin emits one combined row for every left/right pair whose join
// columns hold equal non-null values. Unmatched rows on either side are
// dropped.
func InnerJoin(left, right *storage.Table, leftColumn, rightColumn string) (*JoinResult, error) {
	leftIdx, rightIdx, err := joinColumnIndices(left, right, leftColumn, rightColumn)
	if err != nil {
		return nil, err
	}

	result := newJoinResult(left, right)
	rightRows := right.SelectAll()
	for _, lrow := range left.SelectAll() {
		for _, rrow := range rightRows {
			if sql.ValuesEqual(lrow[leftIdx], rrow[rightIdx]) {
				result.addJoinedRow(lrow, rrow)
			}
		}
	}
	return result, nil
}

// LeftJoin is InnerJoin plus one NULL-padded row for every left row
// that matched nothing on the right.
func LeftJoin(left, right *storage.Table, leftColumn, rightColumn string) (*JoinResult, error) {
	leftIdx, rightIdx, err := joinColumnIndices(left, right, leftColumn, rightColumn)
	if err != nil {
		return nil, err
	}

	result := newJoinResult(left, right)
	rightRows := right.SelectAll()
	for _, lrow := range left.SelectAll() {
		matched := false
		for _, rrow := range rightRows {
			if sql.ValuesEqual(lrow[leftIdx], rrow[rightIdx]) {
				result.addJoinedRow(lrow, rrow)
				matched = true
			}
		}
		if !matched {
			result.addLeftOnlyRow(lrow, right.ColumnCount())
		}
	}
	return result, nil
}

// RightJoin is the mirror of LeftJoin. Matched right rows are tracked
// by position, not value, so duplicate key values pad correctly.
func RightJoin(left, right *storage.Table, leftColumn, rightColumn string) (*JoinResult, error) {
	leftIdx, rightIdx, err := joinColumnIndices(left, right, leftColumn, rightColumn)
	if err != nil {
		return nil, err
	}

	result := newJoinResult(left, right)
	rightRows := right.SelectAll()
	matched := make([]bool, len(rightRows))

	for _, lrow := range left.SelectAll() {
		for ri, rrow := range rightRows {
			if sql.ValuesEqual(lrow[leftIdx], rrow[rightIdx]) {
				result.addJoinedRow(lrow, rrow)
				matched[ri] = true
			}
		}
	}

	for ri, rrow := range rightRows {
		if !matched[ri] {
			result.addRightOnlyRow(rrow, left.ColumnCount())
		}
	}
	return result, nil
}

// CrossJoin pairs every left row with every right row, no predicate.
// The result has exactly |left| × |right| rows.
func CrossJoin(left, right *storage.Table) *JoinResult {
	result := newJoinResult(left, right)
	rightRows := right.SelectAll()
	for _, lrow := range left.SelectAll() {
		for _, rrow := range rightRows {
			result.addJoinedRow(lrow, rrow)
		}
	}
	return result
}

// JoinStats reports observational data about a join run.
type JoinStats struct {
	Duration    time.Duration
	Comparisons int
}

// InnerJoinWithStats runs InnerJoin and additionally reports wall-clock
// duration and the comparison count of the full nested loop.
func InnerJoinWithStats(left, right *storage.Table, leftColumn, rightColumn string) (*JoinResult, JoinStats, error) {
	start := time.Now()
	result, err := InnerJoin(left, right, leftColumn, rightColumn)
	if err != nil {
		return nil, JoinStats{}, err
	}
	return result, JoinStats{
		Duration:    time.Since(start),
		Comparisons: left.RowCount() * right.RowCount(),
	}, nil
}

// joinColumnIndices validates both join columns before any work is
// done.
func joinColumnIndices(left, right *storage.Table, leftColumn, rightColumn string) (int, int, error) {
	leftIdx := left.ColumnIndex(leftColumn)
	if leftIdx < 0 {
		return 0, 0, fmt.Errorf("column %q not found in table %q", leftColumn, left.Name())
	}
	rightIdx := right.ColumnIndex(rightColumn)
	if rightIdx < 0 {
		return 0, 0, fmt.Errorf("column %q not found in table %q", rightColumn, right.Name())
	}
	return leftIdx, rightIdx, nil
}
