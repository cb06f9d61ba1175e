package bench

// Observer is notified as results become available. path is the chain of
// suite names from the root suite to the suite that produced the result.
type Observer interface {
	// Measured is called after a measurement finishes sampling.
	Measured(path []string, s Summary)

	// Compared is called after a suite with two or more measurements is ranked.
	Compared(path []string, ranking []Ranked)
}
