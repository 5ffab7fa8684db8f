package leads

import "strings"

// Lead is a captured prospect from the demo lead form.
type Lead struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// Validate checks the fields required before a lead can be processed.
func (l Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(l.Email) == "" {
		return ErrMissingEmail
	}
	if strings.TrimSpace(l.Message) == "" {
		return ErrMissingMessage
	}
	return nil
}

// Normalize fills the defaults the workflow expects for optional fields.
func (l *Lead) Normalize() {
	if strings.TrimSpace(l.Company) == "" {
		l.Company = "Not provided"
	}
	if strings.TrimSpace(l.Source) == "" {
		l.Source = "automari-demo"
	}
}
