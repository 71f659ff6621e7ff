package diff

import (
	"fmt"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

// Compute returns the edit operations transforming source into target.
// Lines equal on both sides become OpEqual; lines only in source become
// OpDelete; lines only in target become OpInsert. Applying the sequence
// to source reproduces target exactly.
func Compute(source, target []string) []sprocdiff.DiffLine {
	// lcs[i][j] is the LCS length of source[i:] and target[j:].
	lcs := make([][]int, len(source)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(target)+1)
	}
	for i := len(source) - 1; i >= 0; i-- {
		for j := len(target) - 1; j >= 0; j-- {
			if source[i] == target[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	ops := make([]sprocdiff.DiffLine, 0, len(source)+len(target))
	i, j := 0, 0
	for i < len(source) && j < len(target) {
		switch {
		case source[i] == target[j]:
			ops = append(ops, sprocdiff.DiffLine{Op: sprocdiff.OpEqual, Text: source[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			// Tie goes to deletion so earlier source lines align first.
			ops = append(ops, sprocdiff.DiffLine{Op: sprocdiff.OpDelete, Text: source[i]})
			i++
		default:
			ops = append(ops, sprocdiff.DiffLine{Op: sprocdiff.OpInsert, Text: target[j]})
			j++
		}
	}
	for ; i < len(source); i++ {
		ops = append(ops, sprocdiff.DiffLine{Op: sprocdiff.OpDelete, Text: source[i]})
	}
	for ; j < len(target); j++ {
		ops = append(ops, sprocdiff.DiffLine{Op: sprocdiff.OpInsert, Text: target[j]})
	}
	return ops
}

// Apply replays the edit operations over the source lines and returns
// the reconstructed target lines. It fails if the operations do not
// match the source, which would indicate a diff computed against
// different text.
func Apply(ops []sprocdiff.DiffLine, source []string) ([]string, error) {
	var result []string
	idx := 0
	for _, op := range ops {
		switch op.Op {
		case sprocdiff.OpEqual:
			if idx >= len(source) || source[idx] != op.Text {
				return nil, fmt.Errorf("equal op %q does not match source at line %d", op.Text, idx+1)
			}
			result = append(result, op.Text)
			idx++
		case sprocdiff.OpDelete:
			if idx >= len(source) || source[idx] != op.Text {
				return nil, fmt.Errorf("delete op %q does not match source at line %d", op.Text, idx+1)
			}
			idx++
		case sprocdiff.OpInsert:
			result = append(result, op.Text)
		default:
			return nil, fmt.Errorf("unknown diff op %v", op.Op)
		}
	}
	if idx != len(source) {
		return nil, fmt.Errorf("diff consumed %d of %d source lines", idx, len(source))
	}
	return result, nil
}

// Similarity returns 2*matches/total over the two line counts, the
// ratio difflib popularized. Two empty inputs are fully similar.
func Similarity(ops []sprocdiff.DiffLine, sourceLen, targetLen int) float64 {
	total := sourceLen + targetLen
	if total == 0 {
		return 1.0
	}
	matches := 0
	for _, op := range ops {
		if op.Op == sprocdiff.OpEqual {
			matches++
		}
	}
	return 2.0 * float64(matches) / float64(total)
}

// Changed reports whether any operation is an insert or delete.
func Changed(ops []sprocdiff.DiffLine) bool {
	for _, op := range ops {
		if op.Op != sprocdiff.OpEqual {
			return true
		}
	}
	return false
}
