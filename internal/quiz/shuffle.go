package quiz

import "quizzer/internal/question"

// Randomizer permutes n elements through swap; *rand.Rand satisfies it.
type Randomizer interface {
	Shuffle(n int, swap func(i, j int))
}

// Shuffle returns a deep copy of set with question order and each question's
// choice order permuted. Correct answers are values and stay untouched.
func Shuffle(set question.Set, rng Randomizer) question.Set {
	shuffled := set.Clone()
	if rng == nil {
		return shuffled
	}
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	for i := range shuffled {
		choices := shuffled[i].Choices
		rng.Shuffle(len(choices), func(a, b int) {
			choices[a], choices[b] = choices[b], choices[a]
		})
	}
	return shuffled
}
