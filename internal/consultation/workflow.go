package consultation

// WorkflowStatus summarizes what the booking workflow did, shown in the
// demo UI as proof the automation ran end to end.
type WorkflowStatus struct {
	WebhookCalled  bool   `json:"webhookCalled"`
	GoogleCalendar string `json:"googleCalendar"`
	GoogleSheets   string `json:"googleSheets"`
	EmailSent      string `json:"emailSent"`
	AIProcessed    string `json:"aiProcessed"`
}

func completedWorkflow() WorkflowStatus {
	return WorkflowStatus{
		WebhookCalled:  true,
		GoogleCalendar: "Updated",
		GoogleSheets:   "Record saved",
		EmailSent:      "Confirmation sent",
		AIProcessed:    "Emma AI completed processing",
	}
}

// Step is one stage of the visible workflow plan for an intent.
type Step struct {
	Label  string `json:"label"`
	Result string `json:"result"`
}

// StepPlan returns the workflow stages the demo animates for an intent.
func StepPlan(intent string) []Step {
	switch intent {
	case IntentReschedule:
		return []Step{
			{Label: "Locating existing booking", Result: "Booking found"},
			{Label: "Checking new time availability", Result: "Slot available"},
			{Label: "Updating Google Calendar", Result: "Event moved"},
			{Label: "Updating booking record", Result: "Record updated"},
			{Label: "Sending updated confirmation", Result: "Email sent"},
		}
	case IntentCancel:
		return []Step{
			{Label: "Locating existing booking", Result: "Booking found"},
			{Label: "Removing calendar event", Result: "Event removed"},
			{Label: "Updating booking record", Result: "Marked cancelled"},
			{Label: "Sending cancellation notice", Result: "Email sent"},
		}
	default:
		return []Step{
			{Label: "Checking availability", Result: "Slot available"},
			{Label: "Creating Google Calendar event", Result: "Event created"},
			{Label: "Saving to Google Sheets", Result: "Record saved"},
			{Label: "Sending confirmation email", Result: "Email sent"},
			{Label: "Generating booking reference", Result: "Reference issued"},
		}
	}
}

// NextSteps returns the guidance shown to the visitor after each intent.
func NextSteps(intent string) string {
	switch intent {
	case IntentReschedule:
		return "Your consultation has been moved. An updated confirmation email is on its way."
	case IntentCancel:
		return "Your consultation has been cancelled. You can book a new time whenever you're ready."
	default:
		return "You'll receive a confirmation email shortly. Emma will call you at your scheduled time."
	}
}
