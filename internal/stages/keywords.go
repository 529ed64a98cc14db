package stages

// #region denylist

// defaultDenylist returns the ordered unsafe-intent patterns. Matching is
// case-insensitive substring only; no fuzzy matching.
func defaultDenylist() []string {
	return []string{
		"ignore previous instructions",
		"jailbreak",
		"pretend you are",
		"financial advice",
		"legal advice",
	}
}

// #endregion denylist

// #region intent-keywords

// Intent keyword sets. Checked in declaration order; the first matching
// rule wins: scam_verify before scheme_lookup before the offline flag,
// with general_question as the default.
var scamVerifyKeywords = []string{
	"scam", "fake", "fraud", "verify", "trust",
}

var schemeLookupKeywords = []string{
	"scheme", "yojana", "benefit", "subsidy", "pm kisan",
}

// offlineKeyword in the query forces the offline intent, as does the
// request-level offline flag.
const offlineKeyword = "offline"

// #endregion intent-keywords

// #region output-guardrail-markers

// hallucinationMarkers clamp confidence when present in a response.
var hallucinationMarkers = []string{
	"I don't know",
	"I'm not sure",
}

// adviceMarkers trigger replacement with the fixed disclaimer.
var adviceMarkers = []string{
	"invest", "lawsuit", "legal action",
}

// RiskFlagAttemptedAdvice marks responses rewritten by the advice guardrail.
const RiskFlagAttemptedAdvice = "attempted_advice"

// #endregion output-guardrail-markers
