package leads

import "strings"

// Scoring mirrors the production lead workflow so the demo behaves the
// same when no workflow engine is configured.
const (
	baseScore      = 30
	urgencyBonus   = 25
	budgetBonus    = 20
	companyBonus   = 15
	detailBonus    = 10
	qualifiedScore = 70

	detailThreshold = 50
)

var urgencyTerms = []string{"urgent", "asap", "immediately"}

var budgetTerms = []string{"budget", "investment", "cost"}

// Score rates a lead on intent signals in the message and profile.
func Score(lead Lead) int {
	score := baseScore
	message := strings.ToLower(lead.Message)

	if containsAny(message, urgencyTerms) {
		score += urgencyBonus
	}
	if containsAny(message, budgetTerms) {
		score += budgetBonus
	}
	if strings.TrimSpace(lead.Company) != "" && lead.Company != "Not provided" {
		score += companyBonus
	}
	if len(lead.Message) > detailThreshold {
		score += detailBonus
	}
	return score
}

// Qualified reports whether a score clears the qualification bar.
func Qualified(score int) bool {
	return score >= qualifiedScore
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
