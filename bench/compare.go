package bench

import (
	"cmp"
	"slices"
)

// Compare finalizes the suite. With two or more measurements it writes the
// ranking, fastest first, with every other entry's mean duration as a
// percentage slower than the fastest. The suite's measurements are released
// afterwards and further use returns ErrSuiteClosed.
//
// If the suite recorded a fatal error, no ranking is written and that error
// is returned.
func (s *Suite) Compare() error {
	if s.state != Active {
		return ErrSuiteClosed
	}
	s.state = Finalizing
	defer s.release()

	if s.err != nil {
		return s.err
	}
	if s.measurements.Len() < 2 {
		return nil
	}

	sorted := s.measurements.Sorted(func(a, b *Measurement) int {
		return fasterFirst(a.stats.Throughput(), b.stats.Throughput())
	})
	summaries := make([]Summary, len(sorted))
	for i, m := range sorted {
		summaries[i] = m.Summary()
	}
	ranking := rankSorted(summaries)

	pad := s.pad()
	if err := s.printf("%sComparing...\n", pad); err != nil {
		return s.fail(err)
	}
	for _, r := range ranking {
		var err error
		if r.Rank == 0 {
			err = s.printf("%s  - %s (fastest)\n", pad, r.Name)
		} else {
			err = s.printf("%s  - %s (%.2f%% slower)\n", pad, r.Name, r.SlowerPercent)
		}
		if err != nil {
			return s.fail(err)
		}
	}

	s.logger.Debug("suite compared", "fastest", ranking[0].Name, "measurements", len(ranking))
	if s.observer != nil {
		s.observer.Compared(s.Path(), ranking)
	}
	return nil
}

// Rank orders summaries by descending throughput, keeping the given order
// between equal throughputs, and computes each entry's slowdown relative to
// the fastest.
func Rank(summaries []Summary) []Ranked {
	sorted := slices.Clone(summaries)
	slices.SortStableFunc(sorted, func(a, b Summary) int {
		return fasterFirst(a.Throughput, b.Throughput)
	})
	return rankSorted(sorted)
}

// fasterFirst orders higher throughput first; NaN sorts last.
func fasterFirst(a, b float64) int {
	return cmp.Compare(b, a)
}

func rankSorted(sorted []Summary) []Ranked {
	ranking := make([]Ranked, len(sorted))
	for i, sum := range sorted {
		ranking[i] = Ranked{Summary: sum, Rank: i}
		if i > 0 {
			ranking[i].SlowerPercent = sum.Mean/sorted[0].Mean*100 - 100
		}
	}
	return ranking
}

func (s *Suite) release() {
	s.measurements.Reset()
	s.state = Destroyed
	s.logger.Debug("suite released")
}
