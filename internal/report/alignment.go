package report

import "github.com/blazmaric/DMARC-SAAS/internal/core/domain"

// EvaluateAlignment fills DKIMAligned/SPFAligned on every record of a
// report.
//
// The baseline is the report's own policy-evaluated verdict. When the
// record carries detailed auth_results, those are authoritative:
// alignment then requires at least one entry with result "pass" whose
// domain exactly equals the published policy domain. Some reporting
// organizations summarize leniently, so the summary verdict is trusted
// only when no detailed results exist.
func EvaluateAlignment(rep *domain.ParsedReport) {
	for i := range rep.Records {
		evaluateRecord(rep.PolicyDomain, &rep.Records[i])
	}
}

func evaluateRecord(policyDomain string, rec *domain.ParsedRecord) {
	rec.DKIMAligned = rec.DKIMResult == "pass"
	rec.SPFAligned = rec.SPFResult == "pass"

	if len(rec.DKIMAuth) > 0 {
		rec.DKIMAligned = anyAlignedPass(rec.DKIMAuth, policyDomain)
	}
	if len(rec.SPFAuth) > 0 {
		rec.SPFAligned = anyAlignedPass(rec.SPFAuth, policyDomain)
	}
}

func anyAlignedPass(results []domain.AuthResult, policyDomain string) bool {
	for _, r := range results {
		if r.Result == "pass" && r.Domain == policyDomain {
			return true
		}
	}
	return false
}
