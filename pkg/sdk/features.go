package navigator

import (
	"context"
	"time"
)

// request is implemented by every feature request.
type request interface {
	Validate() error
}

// call validates req, runs fn and records the operation. Only validation fails.
func call[Req request, Res any](
	ctx context.Context, c *Client, op string, req Req,
	fn func(context.Context, Req) Res, degraded func(Res) bool,
) (res Res, err error) {
	start := time.Now()
	defer func() { c.obs.observe(op, start, err == nil && degraded(res), err) }()

	if err = req.Validate(); err != nil {
		return res, err
	}
	return fn(ctx, req), nil
}

// AnalyzeRisk scores a startup's risk profile.
func (c *Client) AnalyzeRisk(ctx context.Context, req RiskRequest) (RiskResult, error) {
	return call(ctx, c, "analyze_risk", req, c.svc.AnalyzeRisk,
		func(r RiskResult) bool { return r.Degraded })
}

// ScanReputation gauges public sentiment about a startup.
func (c *Client) ScanReputation(ctx context.Context, req ReputationRequest) (ReputationResult, error) {
	return call(ctx, c, "scan_reputation", req, c.svc.ScanReputation,
		func(r ReputationResult) bool { return r.Degraded })
}

// MatchInvestors ranks the investor table against a startup.
func (c *Client) MatchInvestors(ctx context.Context, req InvestorMatchRequest) (InvestorMatchResult, error) {
	return call(ctx, c, "match_investors", req, c.svc.MatchInvestors,
		func(r InvestorMatchResult) bool { return r.Degraded })
}

// PitchFeedback reviews a pitch text.
func (c *Client) PitchFeedback(ctx context.Context, req PitchFeedbackRequest) (PitchFeedbackResult, error) {
	return call(ctx, c, "pitch_feedback", req, c.svc.PitchFeedback,
		func(r PitchFeedbackResult) bool { return r.Degraded })
}

// CompetitorRadar discovers and summarises competitors.
func (c *Client) CompetitorRadar(ctx context.Context, req CompetitorRadarRequest) (CompetitorRadarResult, error) {
	return call(ctx, c, "competitor_radar", req, c.svc.CompetitorRadar,
		func(r CompetitorRadarResult) bool { return r.Degraded })
}

// EstimateTraction compares metrics with industry benchmarks.
func (c *Client) EstimateTraction(ctx context.Context, req TractionRequest) (TractionResult, error) {
	return call(ctx, c, "traction_estimator", req, c.svc.EstimateTraction,
		func(r TractionResult) bool { return r.Degraded })
}

// BuildBuzz drafts social media posts.
func (c *Client) BuildBuzz(ctx context.Context, req BuzzRequest) (BuzzResult, error) {
	return call(ctx, c, "buzz_builder", req, c.svc.BuildBuzz,
		func(r BuzzResult) bool { return r.Degraded })
}

// LegalAssistance lists the documents and legal risks for a startup.
func (c *Client) LegalAssistance(ctx context.Context, req LegalRequest) (LegalResult, error) {
	return call(ctx, c, "legal_assistance", req, c.svc.LegalAssistance,
		func(r LegalResult) bool { return r.Degraded })
}

// ExploreExitStrategies suggests exit paths.
func (c *Client) ExploreExitStrategies(ctx context.Context, req ExitRequest) (ExitResult, error) {
	return call(ctx, c, "exit_strategy_explorer", req, c.svc.ExploreExitStrategies,
		func(r ExitResult) bool { return r.Degraded })
}

// NavigateTalent recommends hires and interview questions.
func (c *Client) NavigateTalent(ctx context.Context, req TalentRequest) (TalentResult, error) {
	return call(ctx, c, "talent_navigator", req, c.svc.NavigateTalent,
		func(r TalentResult) bool { return r.Degraded })
}
