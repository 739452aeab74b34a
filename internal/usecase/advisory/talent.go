package advisory

import (
	"context"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

// NavigateTalent recommends roles and team-building tips.
func (s *Service) NavigateTalent(ctx context.Context, req advisory.TalentRequest) advisory.TalentResult {
	return runner.Run(ctx, s.runner, runner.Operation[advisory.TalentRequest, advisory.TalentResult]{
		Feature: advisory.FeatureTalent,
		Plan:    s.planTalent,
	}, req.Normalize())
}

func (s *Service) planTalent(_ context.Context, req advisory.TalentRequest) runner.Plan[advisory.TalentResult] {
	p := newPrompt("You are an AI talent advisor specializing in startup team building.").
		field("Startup Name", req.StartupName).
		field("Industry", req.YourIndustry).
		field("Funding Stage", orNA(req.FundingStage)).
		field("Current Team Size", req.CurrentTeamSize).
		field("Key Challenge", req.KeyChallenge).
		blank().
		line("Recommend 3-5 key roles to hire or bring on as advisors. For each, describe the ideal").
		line("candidate profile and suggest 2-3 interview questions. Then give 3-5 team-building tips.")

	return runner.Plan[advisory.TalentResult]{
		Prompt: p.shape(`{
  "recommended_roles": [{
    "role_name": "...",
    "ideal_candidate_profile": "...",
    "interview_questions": ["..."]
  }],
  "team_building_tips": ["..."]
}`),
		Decode: func(v extract.Value) advisory.TalentResult {
			res := advisory.TalentResult{
				StartupName:      req.StartupName,
				RecommendedRoles: []advisory.RecommendedRole{},
				TeamBuildingTips: []advisory.TalentTip{},
			}
			for _, it := range v.Field("recommended_roles").Items() {
				role := advisory.RecommendedRole{
					RoleName:              it.Label("role_name", "Unknown Role"),
					IdealCandidateProfile: it.Field("ideal_candidate_profile").String("N/A"),
					InterviewQuestions:    []advisory.InterviewQuestion{},
				}
				for _, q := range it.Field("interview_questions").Items() {
					if text := q.Field("question").String(q.String("")); text != "" {
						role.InterviewQuestions = append(role.InterviewQuestions, advisory.InterviewQuestion{Question: text})
					}
				}
				res.RecommendedRoles = append(res.RecommendedRoles, role)
			}
			for _, t := range v.Field("team_building_tips").Items() {
				if tip := t.Field("tip").String(t.String("")); tip != "" {
					res.TeamBuildingTips = append(res.TeamBuildingTips, advisory.TalentTip{Tip: tip})
				}
			}
			return res
		},
		Fallback: func(err error) advisory.TalentResult {
			return advisory.TalentResult{
				StartupName: req.StartupName,
				RecommendedRoles: []advisory.RecommendedRole{{
					RoleName:              advisory.ServiceErrorName,
					IdealCandidateProfile: "Could not generate guidance due to AI service error.",
					InterviewQuestions:    []advisory.InterviewQuestion{{Question: "Please check API key or service status."}},
				}},
				TeamBuildingTips: []advisory.TalentTip{{Tip: serviceError(err)}},
				Degraded:         true,
			}
		},
	}
}
