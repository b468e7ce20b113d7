package game

type Tally struct {
	Counts [len(Judgements)]int
}

func (t *Tally) Add(tier Tier) {
	t.Counts[tier]++
}

func (t *Tally) Reset() {
	*t = Tally{}
}

func (t *Tally) Count(tier Tier) int {
	return t.Counts[tier]
}

// Judged is the number of notes counted in any tier.
func (t *Tally) Judged() int {
	total := 0
	for _, c := range t.Counts {
		total += c
	}
	return total
}

// Accuracy is in [0, 1]. With nothing judged yet it is 1.
func (t *Tally) Accuracy() float64 {
	total := t.Judged()
	if total == 0 {
		return 1
	}
	// Marvelous is weighted at 305, not its score of 320
	points := 305*t.Counts[Marvelous] +
		300*t.Counts[Perfect] +
		200*t.Counts[Great] +
		100*t.Counts[Good] +
		50*t.Counts[Ok]
	return float64(points) / float64(305*total)
}

// Score is the sum of tier scores.
func (t *Tally) Score() int {
	s := 0
	for i, c := range t.Counts {
		s += c * Judgements[i].Score
	}
	return s
}
