package score

import (
	"math"

	"github.com/hbollon/go-edlib"
)

// EdlibScorer scores with go-edlib. The whole ratio is Levenshtein
// similarity over the complete strings. The partial ratio slides the
// shorter string across the longer one, end-truncating the final windows,
// and keeps the best window scored by a common-subsequence ratio, so a
// query that almost sits inside a candidate aligns against the candidate's
// tail instead of being penalized for overhang. Windows are rune-based.
type EdlibScorer struct{}

var _ Scorer = (*EdlibScorer)(nil)

// NewEdlibScorer creates the edlib scorer backend.
func NewEdlibScorer() *EdlibScorer {
	return &EdlibScorer{}
}

// Ratio scores the two complete strings.
func (s *EdlibScorer) Ratio(a, b string) int {
	if pinned, score := emptyScore(a, b); pinned {
		return score
	}

	sim, err := edlib.StringsSimilarity(a, b, edlib.Levenshtein)
	if err != nil {
		return 0
	}
	return clamp(int(math.Round(float64(sim) * 100)))
}

// PartialRatio scores the best substring alignment.
func (s *EdlibScorer) PartialRatio(a, b string) int {
	if pinned, score := emptyScore(a, b); pinned {
		return score
	}

	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	best := 0
	for i := range longer {
		end := i + len(shorter)
		if end > len(longer) {
			end = len(longer)
		}
		window := string(longer[i:end])
		if score := lcsRatio(string(shorter), window); score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

// lcsRatio scores two strings by their longest common subsequence,
// 2*common/(len(a)+len(b)), the same shape the default backend derives
// from its matching blocks.
func lcsRatio(a, b string) int {
	la, lb := len([]rune(a)), len([]rune(b))
	if la+lb == 0 {
		return 100
	}
	common := edlib.LCS(a, b)
	return clamp(int(math.Round(float64(2*common) / float64(la+lb) * 100)))
}
