package botrouter

import (
	"strings"
	"testing"
)

func TestMatchCategories(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name     string
		message  string
		category string
	}{
		{"support keyword", "I need customer support for my account", CategorySupport},
		{"email keyword", "can you write an email campaign", CategoryEmail},
		{"roi keyword", "what is the ROI on automation", CategoryROI},
		{"scheduling keyword", "I want to schedule a meeting", CategoryScheduling},
		{"booking keyword", "book an appointment please", CategoryScheduling},
		{"reschedule wins over scheduling", "I need to reschedule my appointment", CategoryReschedule},
		{"cancel keyword", "please cancel my booking", CategoryCancel},
		{"inventory keyword", "how do you track inventory", CategoryInventory},
		{"about keyword", "what does IAA offer for insurance careers", CategoryAbout},
		{"demo keyword", "can I see a demo", CategoryDemo},
		{"uppercase is matched", "SCHEDULE A CALL", CategoryScheduling},
		{"no keyword falls through", "hello there", CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, template, _ := table.Match(tt.message)
			if category != tt.category {
				t.Fatalf("expected category %q, got %q", tt.category, category)
			}
			if template == "" {
				t.Fatal("expected a non-empty template")
			}
		})
	}
}

func TestMatchReportsWhetherRuleMatched(t *testing.T) {
	table := DefaultTable()

	if _, _, matched := table.Match("schedule something"); !matched {
		t.Fatal("expected a rule match")
	}
	if _, _, matched := table.Match("xyzzy"); matched {
		t.Fatal("expected no rule match for nonsense input")
	}
}

func TestFirstRuleWins(t *testing.T) {
	table := NewTable([]RoutingRule{
		{Keywords: []string{"alpha"}, Category: "first", Template: "first reply"},
		{Keywords: []string{"alpha", "beta"}, Category: "second", Template: "second reply"},
	}, CategoryGeneral, "fallback")

	category, template, matched := table.Match("alpha beta")
	if !matched || category != "first" || template != "first reply" {
		t.Fatalf("expected first rule to win, got %q / %q", category, template)
	}
}

func TestTemplatesCarryContactDetails(t *testing.T) {
	table := DefaultTable()

	_, template, _ := table.Match("what would this cost")
	if !strings.Contains(template, agencyPhone) {
		t.Fatalf("expected the template to carry the agency phone number")
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	table := DefaultTable()

	rules := table.Rules()
	if len(rules) == 0 {
		t.Fatal("expected default rules")
	}
	rules[0].Category = "mutated"

	category, _, _ := table.Match(rules[0].Keywords[0])
	if category == "mutated" {
		t.Fatal("mutating the returned slice should not affect the table")
	}
}
