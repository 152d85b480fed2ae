package keyed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLIS_EmptySequence(t *testing.T) {
	result := longestIncreasingSubsequence(nil)
	assert.Empty(t, result)
}

func TestLIS_SingleElement(t *testing.T) {
	result := longestIncreasingSubsequence([]int{5})
	assert.Equal(t, map[int]struct{}{0: {}}, result)
}

func TestLIS_StrictlyIncreasingKeepsEveryIndex(t *testing.T) {
	seq := []int{0, 1, 2, 3, 4}
	result := longestIncreasingSubsequence(seq)
	assert.Len(t, result, len(seq))
	for i := range seq {
		_, ok := result[i]
		assert.True(t, ok, "index %d should survive", i)
	}
}

func TestLIS_StrictlyDecreasingKeepsOneIndex(t *testing.T) {
	result := longestIncreasingSubsequence([]int{4, 3, 2, 1, 0})
	assert.Len(t, result, 1)
}

func TestLIS_HeadRotatedToTail(t *testing.T) {
	// [4,0,1,2,3]: longest increasing run is 0,1,2,3 at indices 1..4.
	result := longestIncreasingSubsequence([]int{4, 0, 1, 2, 3})
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}, 4: {}}, result)
}

func TestLIS_AmbiguousCaseHasSizeThree(t *testing.T) {
	// [0,2,1,3]: two subsequences of length 3 exist ({0,2,3} and {0,1,3});
	// only the size is a stable contract, not which one is chosen.
	result := longestIncreasingSubsequence([]int{0, 2, 1, 3})
	assert.Len(t, result, 3)
}

func isValidIncreasingSubsequence(t *testing.T, seq []int, idx map[int]struct{}) {
	t.Helper()
	var ordered []int
	for i := range seq {
		if _, ok := idx[i]; ok {
			ordered = append(ordered, i)
		}
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i])
		assert.Less(t, seq[ordered[i-1]], seq[ordered[i]])
	}
}

func TestLIS_ResultIsAlwaysAValidIncreasingRun(t *testing.T) {
	cases := [][]int{
		{},
		{7},
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{3, 1, 4, 1, 5, 9, 2, 6},
		{4, 0, 1, 2, 3},
	}
	for _, seq := range cases {
		result := longestIncreasingSubsequence(seq)
		isValidIncreasingSubsequence(t, seq, result)
	}
}
