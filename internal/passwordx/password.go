// Package passwordx scores password strength for signup and password-change
// flows. It is pure: no IO, no state, safe to call on every keystroke.
package passwordx

import "unicode"

// Label is the human-readable strength bucket.
type Label string

const (
	LabelWeak   Label = "Weak"
	LabelMedium Label = "Medium"
	LabelStrong Label = "Strong"
)

// Rules records which individual checks a password satisfied.
type Rules struct {
	Length  bool // at least 8 characters
	Upper   bool // contains an uppercase letter
	Lower   bool // contains a lowercase letter
	Number  bool // contains a digit
	Special bool // contains a non-alphanumeric character
}

// Strength is the result of evaluating a password: one point per satisfied
// rule (0..5) and a label derived from the score.
type Strength struct {
	Rules Rules
	Score int
	Label Label
}

// Evaluate scores a password against the five rules. Labels: Strong when all
// five pass, Medium at three or more, Weak otherwise. An empty password gets
// score 0 and an empty label so callers can treat "not typed yet" separately
// from "typed something weak".
func Evaluate(password string) Strength {
	if password == "" {
		return Strength{}
	}

	r := Rules{Length: len([]rune(password)) >= 8}
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			r.Upper = true
		case unicode.IsLower(c):
			r.Lower = true
		case unicode.IsDigit(c):
			r.Number = true
		default:
			r.Special = true
		}
	}

	score := 0
	for _, ok := range []bool{r.Length, r.Upper, r.Lower, r.Number, r.Special} {
		if ok {
			score++
		}
	}

	label := LabelWeak
	switch {
	case score >= 5:
		label = LabelStrong
	case score >= 3:
		label = LabelMedium
	}

	return Strength{Rules: r, Score: score, Label: label}
}
