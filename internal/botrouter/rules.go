package botrouter

import "strings"

// RoutingRule maps a set of trigger keywords to a pre-authored response.
// Rules are evaluated top to bottom; the first rule with any keyword
// contained in the lower-cased message wins.
type RoutingRule struct {
	Keywords []string
	Category string
	Template string
}

// Table is an ordered, immutable routing rule table.
type Table struct {
	rules           []RoutingRule
	defaultCategory string
	defaultTemplate string
}

// NewTable builds a table from an ordered rule list.
func NewTable(rules []RoutingRule, defaultCategory, defaultTemplate string) *Table {
	return &Table{
		rules:           rules,
		defaultCategory: defaultCategory,
		defaultTemplate: defaultTemplate,
	}
}

// DefaultTable returns the routing table shipped with the demo.
func DefaultTable() *Table {
	return NewTable(defaultRules, CategoryGeneral, templateGeneral)
}

// Match returns the category and template for a message. The boolean is
// false when no rule matched and the defaults were used.
func (t *Table) Match(message string) (category, template string, matched bool) {
	lower := strings.ToLower(message)
	for _, rule := range t.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category, rule.Template, true
			}
		}
	}
	return t.defaultCategory, t.defaultTemplate, false
}

// Rules returns a copy of the rule list, mostly for diagnostics.
func (t *Table) Rules() []RoutingRule {
	out := make([]RoutingRule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Response categories. These double as the bot identity shown by the chat
// widget and drive the booking form toggle for scheduling intents.
const (
	CategorySupport    = "support"
	CategoryEmail      = "email"
	CategoryROI        = "roi"
	CategoryReschedule = "reschedule"
	CategoryCancel     = "cancel"
	CategoryScheduling = "scheduling"
	CategoryInventory  = "inventory"
	CategoryAbout      = "about"
	CategoryDemo       = "demo"
	CategoryGeneral    = "general"
)

// defaultRules is evaluated in order. "reschedule" and "cancel" sit ahead
// of the scheduling rule because "reschedule" contains "schedule" as a
// substring and would otherwise never be reachable.
var defaultRules = []RoutingRule{
	{
		Keywords: []string{"customer support", "support"},
		Category: CategorySupport,
		Template: templateSupport,
	},
	{
		Keywords: []string{"email", "communication"},
		Category: CategoryEmail,
		Template: templateEmail,
	},
	{
		Keywords: []string{"roi", "cost", "investment"},
		Category: CategoryROI,
		Template: templateROI,
	},
	{
		Keywords: []string{"reschedule", "change"},
		Category: CategoryReschedule,
		Template: templateReschedule,
	},
	{
		Keywords: []string{"cancel"},
		Category: CategoryCancel,
		Template: templateCancel,
	},
	{
		Keywords: []string{"schedule", "calendar", "appointment", "book", "consultation"},
		Category: CategoryScheduling,
		Template: templateScheduling,
	},
	{
		Keywords: []string{"inventory", "supply"},
		Category: CategoryInventory,
		Template: templateInventory,
	},
	{
		Keywords: []string{"iaa", "insurance", "career"},
		Category: CategoryAbout,
		Template: templateAbout,
	},
	{
		Keywords: []string{"demo", "workflow", "n8n"},
		Category: CategoryDemo,
		Template: templateDemo,
	},
}
