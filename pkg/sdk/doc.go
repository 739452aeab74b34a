// Package navigator embeds the startup-advisory features in a Go program
// without running the HTTP server.
//
// Results are cached in Redis (rueidis or go-redis) or in process memory,
// keyed by a canonical fingerprint of the request. Generation and search
// failures never surface as errors: each feature returns its fallback
// result with Degraded set. Only invalid requests fail.
//
//	client, _ := navigator.New(ctx,
//	    navigator.WithRedis("localhost:6379", ""),
//	    navigator.WithOpenAI(apiKey, "https://generativelanguage.googleapis.com/v1beta/openai/", "gemini-1.5-flash"),
//	)
//	defer client.Close()
//
//	res, err := client.AnalyzeRisk(ctx, navigator.RiskRequest{
//	    StartupName:             "Acme",
//	    Industry:                "Fintech",
//	    MarketSizeUSD:           5_000_000_000,
//	    FounderExperienceYears:  8,
//	    InitialFundingNeededUSD: 500_000,
//	})
package navigator
