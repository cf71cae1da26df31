package dto

// GenerateInterviewRequest is the body of POST /api/vapi/generate.
// Techstack is a comma-separated list.
type GenerateInterviewRequest struct {
	Level     string `json:"level"`
	Amount    int    `json:"amount"`
	Techstack string `json:"techstack"`
	Role      string `json:"role"`
	Type      string `json:"type"`
	UserID    string `json:"userId"`
}
