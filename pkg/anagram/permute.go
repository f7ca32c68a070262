package anagram

// A PermutationIter enumerates rearrangements of a word's runes using Heap's
// algorithm. The word's own arrangement is skipped, so a word of n distinct
// runes yields n!-1 strings. Repeated runes are not deduplicated; arrangements
// that happen to spell the original word again are still emitted.
//
// Factorials grow fast: collecting every permutation of even a 12-rune word
// needs gigabytes. Consume the iterator lazily and cap it on the caller side.
type PermutationIter struct {
	runes []rune
	stack []int
	i     int
}

// Permutations returns an iterator over all rearrangements of word except the
// original one. Words shorter than two runes have no rearrangements and yield
// an exhausted iterator.
func Permutations(word string) *PermutationIter {
	runes := []rune(word)
	return &PermutationIter{
		runes: runes,
		stack: make([]int, len(runes)),
		i:     1,
	}
}

// Next returns the next rearrangement. The second return is false once the
// iterator is exhausted.
func (p *PermutationIter) Next() (string, bool) {
	n := len(p.runes)
	if n <= 1 {
		return "", false
	}
	// Iterative Heap's algorithm with the recursion stack flattened into a
	// counter per depth; each swap yields exactly one arrangement.
	for p.i < n {
		if p.stack[p.i] < p.i {
			if p.i%2 == 0 {
				p.runes[0], p.runes[p.i] = p.runes[p.i], p.runes[0]
			} else {
				k := p.stack[p.i]
				p.runes[k], p.runes[p.i] = p.runes[p.i], p.runes[k]
			}
			p.stack[p.i]++
			p.i = 1
			return string(p.runes), true
		}
		p.stack[p.i] = 0
		p.i++
	}
	return "", false
}
