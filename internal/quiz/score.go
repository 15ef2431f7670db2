package quiz

import "math"

// Result is the graded outcome of a quiz attempt.
type Result struct {
	Score       int    // 0-100
	Correct     int
	Total       int
	PerQuestion []bool // correctness by question index
}

// Score grades answers against the correct-answer keys of questions.
// Unanswered questions count as wrong.
func Score(questions []Question, answers Answers) Result {
	res := Result{
		Total:       len(questions),
		PerQuestion: make([]bool, len(questions)),
	}
	if len(questions) == 0 {
		return res
	}

	for i, q := range questions {
		if opt, ok := answers.Get(i); ok && opt == q.CorrectAnswer {
			res.PerQuestion[i] = true
			res.Correct++
		}
	}

	res.Score = int(math.Round(float64(res.Correct) / float64(res.Total) * 100))
	return res
}

// Tier is a motivation band for a quiz score.
type Tier int

const (
	TierDontGiveUp Tier = iota // [0, 50)
	TierGoodEffort             // [50, 70)
	TierOnTrack                // [70, 90)
	TierMastered               // [90, 100]
)

// Motivation maps score to its tier. Scores outside 0-100 are clamped.
func Motivation(score int) Tier {
	score = max(0, min(score, 100))
	switch {
	case score >= 90:
		return TierMastered
	case score >= 70:
		return TierOnTrack
	case score >= 50:
		return TierGoodEffort
	default:
		return TierDontGiveUp
	}
}

// Message returns the encouragement shown on the results screen.
func (t Tier) Message() string {
	switch t {
	case TierMastered:
		return "Outstanding! You've mastered this topic! 🌟"
	case TierOnTrack:
		return "Great job! You're on the right track! 💪"
	case TierGoodEffort:
		return "Good effort! Keep practicing to improve! 📚"
	default:
		return "Don't give up! Review the material and try again! 🚀"
	}
}

// String returns a short machine-friendly name, used when persisting results.
func (t Tier) String() string {
	switch t {
	case TierMastered:
		return "mastered"
	case TierOnTrack:
		return "on-track"
	case TierGoodEffort:
		return "good-effort"
	default:
		return "dont-give-up"
	}
}

// ParseTier is the inverse of Tier.String. Unknown names map to TierDontGiveUp.
func ParseTier(s string) Tier {
	switch s {
	case "mastered":
		return TierMastered
	case "on-track":
		return TierOnTrack
	case "good-effort":
		return TierGoodEffort
	default:
		return TierDontGiveUp
	}
}
