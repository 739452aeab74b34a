package navigator

import (
	"github.com/kailas-cloud/navigator/internal/domain"
	"github.com/kailas-cloud/navigator/internal/domain/advisory"
)

// Completer generates text for a prompt. One attempt per call.
type Completer interface {
	domain.Completer
}

// Searcher queries a web or news search backend.
type Searcher = domain.Searcher

// Search types.
type (
	SearchRecord  = domain.SearchRecord
	SearchOptions = domain.SearchOptions
)

// Feature requests.
type (
	RiskRequest            = advisory.RiskRequest
	ReputationRequest      = advisory.ReputationRequest
	InvestorMatchRequest   = advisory.InvestorMatchRequest
	PitchFeedbackRequest   = advisory.PitchFeedbackRequest
	CompetitorRadarRequest = advisory.CompetitorRadarRequest
	TractionRequest        = advisory.TractionRequest
	BuzzRequest            = advisory.BuzzRequest
	LegalRequest           = advisory.LegalRequest
	ExitRequest            = advisory.ExitRequest
	TalentRequest          = advisory.TalentRequest
)

// Feature results. Every result carries Degraded.
type (
	RiskResult            = advisory.RiskResult
	ReputationResult      = advisory.ReputationResult
	InvestorMatchResult   = advisory.InvestorMatchResult
	PitchFeedbackResult   = advisory.PitchFeedbackResult
	CompetitorRadarResult = advisory.CompetitorRadarResult
	TractionResult        = advisory.TractionResult
	BuzzResult            = advisory.BuzzResult
	LegalResult           = advisory.LegalResult
	ExitResult            = advisory.ExitResult
	TalentResult          = advisory.TalentResult
)
