package n8n

// LeadPayload is the lead capture body forwarded to the workflow engine.
type LeadPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	Source    string `json:"source,omitempty"`
	Timestamp string `json:"timestamp"`
	UserAgent string `json:"userAgent,omitempty"`
	IP        string `json:"ip,omitempty"`
}

// LeadResult is the workflow engine's verdict on a submitted lead.
type LeadResult struct {
	Success   bool   `json:"success"`
	LeadID    string `json:"leadId"`
	Score     int    `json:"score"`
	Qualified bool   `json:"qualified"`
	Message   string `json:"message"`
	NextSteps string `json:"nextSteps"`
}

// ConsultationArguments is the function-call argument set carried inside
// the tool call envelope.
type ConsultationArguments struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Company          string `json:"company,omitempty"`
	ConsultationType string `json:"consultationType"`
	PreferredDate    string `json:"preferredDate"`
	PreferredTime    string `json:"preferredTime"`
	Message          string `json:"message,omitempty"`
	Intent           string `json:"intent,omitempty"`
}

// Workflow engines built for voice agents expect tool calls wrapped in a
// message body, so consultation submissions mimic that envelope.
type toolCallEnvelope struct {
	Body toolCallBody `json:"body"`
}

type toolCallBody struct {
	Message toolCallMessage `json:"message"`
}

type toolCallMessage struct {
	ToolCalls []toolCall `json:"toolCalls"`
}

type toolCall struct {
	ID       string           `json:"id"`
	Function toolCallFunction `json:"function"`
}

type toolCallFunction struct {
	Arguments ConsultationArguments `json:"arguments"`
}

type toolCallResponse struct {
	Results []struct {
		Result string `json:"result"`
	} `json:"results"`
}
