package advisory

import "strings"

// BuzzRequest describes the message to promote.
type BuzzRequest struct {
	StartupName       string   `json:"startup_name"`
	YourIndustry      string   `json:"your_industry"`
	CurrentMilestones []string `json:"current_milestones"`
	KeyMessage        string   `json:"key_message"`
	TargetAudience    string   `json:"target_audience"`
}

// Normalize returns a copy with trimmed fields and empty milestones dropped.
func (r BuzzRequest) Normalize() BuzzRequest {
	r.StartupName = strings.TrimSpace(r.StartupName)
	r.YourIndustry = strings.TrimSpace(r.YourIndustry)
	r.CurrentMilestones = trimAll(r.CurrentMilestones)
	r.KeyMessage = strings.TrimSpace(r.KeyMessage)
	r.TargetAudience = strings.TrimSpace(r.TargetAudience)
	return r
}

// Validate checks required fields.
func (r BuzzRequest) Validate() error {
	if err := required("startup_name", r.StartupName); err != nil {
		return err
	}
	if err := required("your_industry", r.YourIndustry); err != nil {
		return err
	}
	if err := required("key_message", r.KeyMessage); err != nil {
		return err
	}
	return required("target_audience", r.TargetAudience)
}

// SocialPostSuggestion is one platform-specific content idea.
type SocialPostSuggestion struct {
	Platform      string   `json:"platform"`
	Title         string   `json:"title"`
	ContentPoints []string `json:"content_points"`
	Hashtags      []string `json:"hashtags"`
	CallToAction  string   `json:"call_to_action"`
}

// BuzzResult holds content suggestions and tips.
type BuzzResult struct {
	StartupName string                 `json:"startup_name"`
	Suggestions []SocialPostSuggestion `json:"suggestions"`
	AITips      []string               `json:"ai_tips"`
	Degraded    bool                   `json:"degraded"`
}
