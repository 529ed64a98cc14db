package state

// #region language

// Language is the user-facing language of a request.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
)

// SupportedLanguages lists the languages the engine accepts.
var SupportedLanguages = []Language{LangEnglish, LangHindi}

// #endregion language

// #region intent

// Intent classifies what the user is asking for. Set exactly once per run
// by the intent stage; IntentError is reserved for the system-error outcome.
type Intent string

const (
	IntentUnset           Intent = ""
	IntentScamVerify      Intent = "scam_verify"
	IntentSchemeLookup    Intent = "scheme_lookup"
	IntentGeneralQuestion Intent = "general_question"
	IntentOfflineFallback Intent = "offline_fallback"
	IntentError           Intent = "error"
)

// #endregion intent

// #region context-doc

// ContextDoc is a single retrieved context document.
type ContextDoc struct {
	Content    string
	Source     string
	Confidence float32
}

// #endregion context-doc

// #region risk-level

// RiskLevelHigh and RiskLevelLow are the two caller-visible risk levels.
const (
	RiskLevelHigh = "high"
	RiskLevelLow  = "low"
)

// #endregion risk-level
