package responder

import "strings"

// Intent is the classified legal topic of a user message.
type Intent string

const (
	IntentITAct            Intent = "it_act"
	IntentCybercrimeReport Intent = "cybercrime_report"
	IntentHacking          Intent = "hacking"
	IntentDataProtection   Intent = "data_protection"
	IntentPenalties        Intent = "penalties"
	IntentDigitalSignature Intent = "digital_signature"
	IntentJurisdiction     Intent = "jurisdiction"
	IntentGeneral          Intent = "general"
)

type predicate func(text string) bool

func anyOf(keywords ...string) predicate {
	return func(text string) bool {
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
}

func allOf(keywords ...string) predicate {
	return func(text string) bool {
		for _, kw := range keywords {
			if !strings.Contains(text, kw) {
				return false
			}
		}
		return true
	}
}

type rule struct {
	match    predicate
	intent   Intent
	template string
}

// Rule order is significant: compound and specific predicates run before
// broad single-keyword ones so that overlapping keywords ("data protection"
// vs "privacy", "report" alone) do not match prematurely.
var rules = []rule{
	{anyOf("it act", "information technology"), IntentITAct, itActTemplate},
	{allOf("cyber", "report"), IntentCybercrimeReport, reportingTemplate},
	{anyOf("section 66", "hacking"), IntentHacking, hackingTemplate},
	{anyOf("privacy", "data protection"), IntentDataProtection, dataProtectionTemplate},
	{anyOf("fine", "penalty"), IntentPenalties, penaltiesTemplate},
	{anyOf("digital signature", "electronic signature"), IntentDigitalSignature, signatureTemplate},
	{anyOf("jurisdiction", "court"), IntentJurisdiction, jurisdictionTemplate},
}

// Compose maps free-text user input to a canned legal-information response.
// Matching is case-insensitive, first-match-wins; unmatched input gets the
// topic menu. The returned text is never empty.
func Compose(message string) (Intent, string) {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if r.match(lower) {
			return r.intent, r.template
		}
	}
	return IntentGeneral, menuTemplate
}

// Classify returns only the intent, for callers that do not need the reply.
func Classify(message string) Intent {
	intent, _ := Compose(message)
	return intent
}
