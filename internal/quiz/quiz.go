package quiz

// Question is a single multiple-choice quiz question.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Length is the number of questions in every generated quiz.
const Length = 3

// Generate returns the fixed quiz attached to every study session.
// Each call returns a fresh copy.
func Generate() []Question {
	return []Question{
		{
			Question: "What is the main concept discussed in this material?",
			Options: []string{
				"Basic fundamentals and core principles",
				"Advanced theoretical frameworks",
				"Practical applications only",
				"Historical background information",
			},
			CorrectAnswer: 0,
			Explanation:   "The material focuses on fundamental concepts and core principles as the foundation for understanding.",
		},
		{
			Question: "Which learning approach is most effective for this topic?",
			Options: []string{
				"Memorization only",
				"Active engagement and practice",
				"Passive reading",
				"Group discussions only",
			},
			CorrectAnswer: 1,
			Explanation:   "Active engagement and practice help reinforce learning and improve retention of the material.",
		},
		{
			Question: "What is the key benefit of visual learning aids?",
			Options: []string{
				"They look attractive",
				"They replace text completely",
				"They enhance comprehension and memory retention",
				"They are easier to create",
			},
			CorrectAnswer: 2,
			Explanation:   "Visual learning aids significantly enhance comprehension and help with long-term memory retention.",
		},
	}
}
