package advisory

import "strings"

// LegalRequest describes the startup's legal profile.
type LegalRequest struct {
	StartupName           string `json:"startup_name"`
	Industry              string `json:"industry"`
	BusinessModelSummary  string `json:"business_model_summary"`
	FundingStage          string `json:"funding_stage"`
	NumFounders           int    `json:"num_founders"`
	NumEmployees          int    `json:"num_employees"`
	HandlesPersonalData   bool   `json:"handles_personal_data"`
	SellsPhysicalProducts bool   `json:"sells_physical_products"`
}

// Normalize returns a copy with surrounding whitespace removed.
func (r LegalRequest) Normalize() LegalRequest {
	r.StartupName = strings.TrimSpace(r.StartupName)
	r.Industry = strings.TrimSpace(r.Industry)
	r.BusinessModelSummary = strings.TrimSpace(r.BusinessModelSummary)
	r.FundingStage = strings.TrimSpace(r.FundingStage)
	return r
}

// Validate checks required fields and counts.
func (r LegalRequest) Validate() error {
	if err := required("startup_name", r.StartupName); err != nil {
		return err
	}
	if err := required("industry", r.Industry); err != nil {
		return err
	}
	if err := required("business_model_summary", r.BusinessModelSummary); err != nil {
		return err
	}
	if r.NumFounders < 1 {
		return invalid("num_founders must be at least 1")
	}
	if r.NumEmployees < 0 {
		return invalid("num_employees must not be negative")
	}
	return nil
}

// LegalDocument is a document or licence the startup needs.
type LegalDocument struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	RelevanceReason string `json:"relevance_reason"`
}

// LegalRisk is a legal exposure and how to prevent it.
type LegalRisk struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	PreventionStrategy string `json:"prevention_strategy"`
}

// LegalResult holds documents, licences, risks and advice.
type LegalResult struct {
	StartupName           string          `json:"startup_name"`
	EssentialDocuments    []LegalDocument `json:"essential_documents"`
	IndustryLicensesCerts []LegalDocument `json:"industry_licenses_certs"`
	KeyLegalRisks         []LegalRisk     `json:"key_legal_risks"`
	GeneralLegalAdvice    []string        `json:"general_legal_advice"`
	Degraded              bool            `json:"degraded"`
}
