package advisory

import (
	"context"

	"github.com/kailas-cloud/navigator/internal/domain/advisory"
	"github.com/kailas-cloud/navigator/internal/extract"
	"github.com/kailas-cloud/navigator/internal/usecase/runner"
)

// LegalAssistance lists documents, licences and risks for a startup profile.
func (s *Service) LegalAssistance(ctx context.Context, req advisory.LegalRequest) advisory.LegalResult {
	return runner.Run(ctx, s.runner, runner.Operation[advisory.LegalRequest, advisory.LegalResult]{
		Feature: advisory.FeatureLegal,
		Plan:    s.planLegal,
	}, req.Normalize())
}

// BaselineDocuments returns documents every startup with this profile needs.
func BaselineDocuments(req advisory.LegalRequest) []advisory.LegalDocument {
	docs := []advisory.LegalDocument{{
		Name:            "Terms of Service",
		Description:     "Rules governing use of the product or service.",
		RelevanceReason: "Every customer-facing business needs clear usage terms.",
	}}
	if req.NumFounders > 1 {
		docs = append(docs, advisory.LegalDocument{
			Name:            "Founders' Agreement",
			Description:     "Equity split, vesting, roles and decision rights among founders.",
			RelevanceReason: "The company has more than one founder.",
		})
	}
	if req.NumEmployees > 0 {
		docs = append(docs, advisory.LegalDocument{
			Name:            "Employment and IP Assignment Agreements",
			Description:     "Employment terms plus assignment of work product to the company.",
			RelevanceReason: "The company has employees creating intellectual property.",
		})
	}
	if req.HandlesPersonalData {
		docs = append(docs, advisory.LegalDocument{
			Name:            "Privacy Policy",
			Description:     "How personal data is collected, used, stored and shared.",
			RelevanceReason: "The business handles personal data.",
		})
	}
	if req.SellsPhysicalProducts {
		docs = append(docs, advisory.LegalDocument{
			Name:            "Sales, Returns and Warranty Terms",
			Description:     "Conditions of sale, returns and product warranties.",
			RelevanceReason: "The business sells physical products.",
		})
	}
	return docs
}

func (s *Service) planLegal(_ context.Context, req advisory.LegalRequest) runner.Plan[advisory.LegalResult] {
	p := newPrompt("You are an AI legal assistant specializing in startup law.").
		field("Startup Name", req.StartupName).
		field("Industry", req.Industry).
		field("Business Model Summary", req.BusinessModelSummary).
		field("Funding Stage", orNA(req.FundingStage)).
		field("Number of Founders", req.NumFounders).
		field("Number of Employees", req.NumEmployees).
		field("Handles Personal Data", req.HandlesPersonalData).
		field("Sells Physical Products", req.SellsPhysicalProducts).
		blank().
		line("Identify essential legal documents, required industry-specific licenses or certifications,").
		line("and key legal risks with prevention strategies. Give general legal advice relevant to their stage.")

	return runner.Plan[advisory.LegalResult]{
		Prompt: p.shape(`{
  "essential_documents": [{"name": "...", "description": "...", "relevance_reason": "..."}],
  "industry_licenses_certs": [{"name": "...", "description": "...", "relevance_reason": "..."}],
  "key_legal_risks": [{"name": "...", "description": "...", "prevention_strategy": "..."}],
  "general_legal_advice": ["..."]
}`),
		Decode: func(v extract.Value) advisory.LegalResult {
			res := advisory.LegalResult{
				StartupName:           req.StartupName,
				EssentialDocuments:    decodeDocuments(v.Field("essential_documents")),
				IndustryLicensesCerts: decodeDocuments(v.Field("industry_licenses_certs")),
				KeyLegalRisks:         []advisory.LegalRisk{},
				GeneralLegalAdvice:    v.Field("general_legal_advice").Strings(),
			}
			for _, it := range v.Field("key_legal_risks").Items() {
				res.KeyLegalRisks = append(res.KeyLegalRisks, advisory.LegalRisk{
					Name:               it.Label("name", "Unnamed risk"),
					Description:        it.Field("description").String(""),
					PreventionStrategy: it.Field("prevention_strategy").String(""),
				})
			}
			return res
		},
		Fallback: func(err error) advisory.LegalResult {
			return advisory.LegalResult{
				StartupName:           req.StartupName,
				EssentialDocuments:    BaselineDocuments(req),
				IndustryLicensesCerts: []advisory.LegalDocument{},
				KeyLegalRisks: []advisory.LegalRisk{{
					Name:               advisory.ServiceErrorName,
					Description:        "Legal advice could not be generated.",
					PreventionStrategy: serviceError(err) + ". Check API key or service.",
				}},
				GeneralLegalAdvice: []string{"Could not generate detailed legal assistance due to AI service error."},
				Degraded:           true,
			}
		},
	}
}

func decodeDocuments(v extract.Value) []advisory.LegalDocument {
	docs := []advisory.LegalDocument{}
	for _, it := range v.Items() {
		docs = append(docs, advisory.LegalDocument{
			Name:            it.Label("name", "Unnamed document"),
			Description:     it.Field("description").String(""),
			RelevanceReason: it.Field("relevance_reason").String(""),
		})
	}
	return docs
}
