package advisory

import "strings"

// TalentRequest describes the team and its main hiring challenge.
type TalentRequest struct {
	StartupName     string `json:"startup_name"`
	YourIndustry    string `json:"your_industry"`
	FundingStage    string `json:"funding_stage"`
	CurrentTeamSize int    `json:"current_team_size"`
	KeyChallenge    string `json:"key_challenge"`
}

// Normalize returns a copy with surrounding whitespace removed.
func (r TalentRequest) Normalize() TalentRequest {
	r.StartupName = strings.TrimSpace(r.StartupName)
	r.YourIndustry = strings.TrimSpace(r.YourIndustry)
	r.FundingStage = strings.TrimSpace(r.FundingStage)
	r.KeyChallenge = strings.TrimSpace(r.KeyChallenge)
	return r
}

// Validate checks required fields.
func (r TalentRequest) Validate() error {
	if err := required("startup_name", r.StartupName); err != nil {
		return err
	}
	if err := required("your_industry", r.YourIndustry); err != nil {
		return err
	}
	if r.CurrentTeamSize < 1 {
		return invalid("current_team_size must be at least 1")
	}
	return required("key_challenge", r.KeyChallenge)
}

// InterviewQuestion is one suggested question.
type InterviewQuestion struct {
	Question string `json:"question"`
}

// RecommendedRole is a hire or advisor the team needs.
type RecommendedRole struct {
	RoleName              string              `json:"role_name"`
	IdealCandidateProfile string              `json:"ideal_candidate_profile"`
	InterviewQuestions    []InterviewQuestion `json:"interview_questions"`
}

// TalentTip is a team-building tip.
type TalentTip struct {
	Tip string `json:"tip"`
}

// TalentResult holds roles and team-building tips.
type TalentResult struct {
	StartupName      string            `json:"startup_name"`
	RecommendedRoles []RecommendedRole `json:"recommended_roles"`
	TeamBuildingTips []TalentTip       `json:"team_building_tips"`
	Degraded         bool              `json:"degraded"`
}
