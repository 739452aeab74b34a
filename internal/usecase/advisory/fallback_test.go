package advisory

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
)

// Every feature must produce a complete, degraded result when the backend
// fails, and a complete result when the reply is unusable.
func TestFeatures_FallbackCompleteness(t *testing.T) {
	ctx := context.Background()
	pitch := completePitch

	run := map[string]func(*Service) any{
		advisory.FeatureRisk: func(s *Service) any { return s.AnalyzeRisk(ctx, riskRequest()) },
		advisory.FeatureReputation: func(s *Service) any {
			return s.ScanReputation(ctx, advisory.ReputationRequest{StartupName: "Acme", InitialPitchText: pitch})
		},
		advisory.FeatureInvestor: func(s *Service) any { return s.MatchInvestors(ctx, investorRequest(0.1)) },
		advisory.FeaturePitch: func(s *Service) any {
			return s.PitchFeedback(ctx, advisory.PitchFeedbackRequest{StartupName: "Acme", PitchText: pitch})
		},
		advisory.FeatureCompetitor: func(s *Service) any { return s.CompetitorRadar(ctx, radarRequest()) },
		advisory.FeatureTraction: func(s *Service) any {
			return s.EstimateTraction(ctx, advisory.TractionRequest{
				StartupName:             "Acme",
				YourIndustry:            "AI",
				MonthlyActiveUsers:      ptr(1.0),
				MonthlyRecurringRevenue: ptr(1.0),
				CustomerAcquisitionCost: ptr(1.0),
				CustomerLifetimeValue:   ptr(1.0),
				ChurnRatePercent:        ptr(1.0),
				ConversionRatePercent:   ptr(1.0),
			})
		},
		advisory.FeatureBuzz: func(s *Service) any {
			return s.BuildBuzz(ctx, advisory.BuzzRequest{StartupName: "Acme", YourIndustry: "SaaS", KeyMessage: "m", TargetAudience: "a"})
		},
		advisory.FeatureLegal: func(s *Service) any {
			return s.LegalAssistance(ctx, advisory.LegalRequest{
				StartupName: "Acme", Industry: "SaaS", BusinessModelSummary: "subscriptions", NumFounders: 2, HandlesPersonalData: true,
			})
		},
		advisory.FeatureExit: func(s *Service) any {
			return s.ExploreExitStrategies(ctx, advisory.ExitRequest{
				StartupName: "Acme", Industry: "SaaS", BusinessModelSummary: "subscriptions", FundingStage: "Seed",
			})
		},
		advisory.FeatureTalent: func(s *Service) any {
			return s.NavigateTalent(ctx, advisory.TalentRequest{
				StartupName: "Acme", YourIndustry: "SaaS", CurrentTeamSize: 3, KeyChallenge: "hiring engineers",
			})
		},
	}

	cases := []struct {
		name  string
		reply string
		err   error
	}{
		{"generation failed", "", errors.New("service unavailable")},
		{"malformed output", "I cannot help with that.", nil},
		{"empty object", "{}", nil},
	}

	for _, feature := range advisory.Features {
		fn, ok := run[feature]
		if !ok {
			t.Fatalf("no runner for feature %s", feature)
		}
		for _, tc := range cases {
			t.Run(feature+"/"+tc.name, func(t *testing.T) {
				f := newFixture(t, "")
				f.completer.set(tc.reply, tc.err)
				f.lookup.web = radarWeb

				out, err := json.Marshal(fn(f.svc))
				if err != nil {
					t.Fatal(err)
				}
				body := string(out)
				if strings.Contains(body, "null") {
					t.Errorf("result has null fields: %s", body)
				}
				if !strings.Contains(body, `"startup_name":"Acme"`) {
					t.Errorf("result lost the startup name: %s", body)
				}
				degraded := strings.Contains(body, `"degraded":true`)
				if wantDegraded := tc.reply != "{}"; degraded != wantDegraded {
					t.Errorf("degraded = %v, want %v: %s", degraded, wantDegraded, body)
				}
			})
		}
	}
}

func TestExploreExitStrategies_MalformedOutputMarker(t *testing.T) {
	f := newFixture(t, "not json at all")

	res := f.svc.ExploreExitStrategies(context.Background(), advisory.ExitRequest{
		StartupName: "Acme", Industry: "SaaS", BusinessModelSummary: "subscriptions", FundingStage: "Seed",
	})

	if len(res.RelevantExitStrategies) != 1 || res.RelevantExitStrategies[0].StrategyName != "AI Response Error" {
		t.Errorf("unexpected fallback: %+v", res)
	}
}

func TestExploreExitStrategies_CoercesScalars(t *testing.T) {
	f := newFixture(t, `{"relevant_exit_strategies": [{
  "strategy_name": "Strategic Acquisition",
  "common_acquirer_types": "Large CRM vendors",
  "action_items": [{"item": "Clean up the cap table"}, "Audit IP"]
}]}`)

	res := f.svc.ExploreExitStrategies(context.Background(), advisory.ExitRequest{
		StartupName: "Acme", Industry: "SaaS", BusinessModelSummary: "subscriptions", FundingStage: "Seed",
	})

	st := res.RelevantExitStrategies[0]
	if len(st.CommonAcquirerTypes) != 1 || st.CommonAcquirerTypes[0].TypeName != "Large CRM vendors" {
		t.Errorf("acquirer types = %+v", st.CommonAcquirerTypes)
	}
	if len(st.ActionItems) != 2 || st.ActionItems[1].Item != "Audit IP" {
		t.Errorf("action items = %+v", st.ActionItems)
	}
	if st.Description != "N/A" {
		t.Errorf("description = %q", st.Description)
	}
}

func TestNavigateTalent_Defaults(t *testing.T) {
	f := newFixture(t, `{"recommended_roles": [{"interview_questions": "Why us?"}], "team_building_tips": ["Hire slow"]}`)

	res := f.svc.NavigateTalent(context.Background(), advisory.TalentRequest{
		StartupName: "Acme", YourIndustry: "SaaS", CurrentTeamSize: 3, KeyChallenge: "hiring",
	})

	r := res.RecommendedRoles[0]
	if r.RoleName != "Unknown Role" || r.IdealCandidateProfile != "N/A" {
		t.Errorf("unexpected defaults: %+v", r)
	}
	if len(r.InterviewQuestions) != 1 || r.InterviewQuestions[0].Question != "Why us?" {
		t.Errorf("questions = %+v", r.InterviewQuestions)
	}
	if len(res.TeamBuildingTips) != 1 || res.TeamBuildingTips[0].Tip != "Hire slow" {
		t.Errorf("tips = %+v", res.TeamBuildingTips)
	}
}
