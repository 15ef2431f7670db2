package quiz

// Answers records the option selected for each question index.
// The zero value is an empty record ready to use.
type Answers struct {
	m map[int]int
}

// NewAnswers builds a record from options listed in question order.
// Negative entries are left unanswered.
func NewAnswers(options ...int) Answers {
	var a Answers
	for i, opt := range options {
		if opt >= 0 {
			a.Set(i, opt)
		}
	}
	return a
}

// Set records option for question, replacing any earlier choice.
func (a *Answers) Set(question, option int) {
	if a.m == nil {
		a.m = make(map[int]int)
	}
	a.m[question] = option
}

// Get returns the option recorded for question.
func (a Answers) Get(question int) (int, bool) {
	opt, ok := a.m[question]
	return opt, ok
}

// Has reports whether question has been answered.
func (a Answers) Has(question int) bool {
	_, ok := a.m[question]
	return ok
}

// Len returns the number of answered questions.
func (a Answers) Len() int {
	return len(a.m)
}

// Slice returns the selections for the first n questions in order, with -1
// for each unanswered question.
func (a Answers) Slice(n int) []int {
	out := make([]int, n)
	for i := range out {
		if opt, ok := a.m[i]; ok {
			out[i] = opt
		} else {
			out[i] = -1
		}
	}
	return out
}

// Clone returns an independent copy of the record.
func (a Answers) Clone() Answers {
	var c Answers
	for q, opt := range a.m {
		c.Set(q, opt)
	}
	return c
}
