// Package report parses DMARC aggregate feedback XML and evaluates
// per-record authentication alignment.
package report

import (
	"bytes"
	"encoding/xml"
	"errors"
	"time"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
)

// ErrMalformed is returned for XML that is not a usable aggregate
// report: undecodable, or missing report_metadata, policy_published,
// org_name, report_id or the date range.
var ErrMalformed = errors.New("malformed dmarc aggregate report")

// Slice-typed fields make a bare element and a repeated list decode
// identically, so shape never leaks past the parse boundary.
type feedback struct {
	XMLName         xml.Name         `xml:"feedback"`
	ReportMetadata  *reportMetadata  `xml:"report_metadata"`
	PolicyPublished *policyPublished `xml:"policy_published"`
	Records         []record         `xml:"record"`
}

type reportMetadata struct {
	OrgName   string     `xml:"org_name"`
	Email     string     `xml:"email"`
	ReportID  string     `xml:"report_id"`
	DateRange *dateRange `xml:"date_range"`
}

type dateRange struct {
	Begin int64 `xml:"begin"`
	End   int64 `xml:"end"`
}

type policyPublished struct {
	Domain string `xml:"domain"`
	ADKIM  string `xml:"adkim"`
	ASPF   string `xml:"aspf"`
	P      string `xml:"p"`
	SP     string `xml:"sp"`
	PCT    int    `xml:"pct"`
}

type record struct {
	Row         *row         `xml:"row"`
	Identifiers *identifiers `xml:"identifiers"`
	AuthResults *authResults `xml:"auth_results"`
}

type row struct {
	SourceIP        string           `xml:"source_ip"`
	Count           int              `xml:"count"`
	PolicyEvaluated *policyEvaluated `xml:"policy_evaluated"`
}

type policyEvaluated struct {
	Disposition string `xml:"disposition"`
	DKIM        string `xml:"dkim"`
	SPF         string `xml:"spf"`
}

type identifiers struct {
	HeaderFrom   string  `xml:"header_from"`
	EnvelopeFrom *string `xml:"envelope_from"`
}

type authResults struct {
	DKIM []dkimAuthResult `xml:"dkim"`
	SPF  []spfAuthResult  `xml:"spf"`
}

type dkimAuthResult struct {
	Domain   string `xml:"domain"`
	Result   string `xml:"result"`
	Selector string `xml:"selector"`
}

type spfAuthResult struct {
	Domain string `xml:"domain"`
	Result string `xml:"result"`
	Scope  string `xml:"scope"`
}

// Parse decodes aggregate feedback XML into a normalized report.
// Returns ErrMalformed when mandatory attribution fields are missing;
// optional record fields take fixed defaults. Records lacking row or
// identifiers are dropped rather than failing the report.
func Parse(xmlText []byte) (*domain.ParsedReport, error) {
	var fb feedback
	dec := xml.NewDecoder(bytes.NewReader(xmlText))
	if err := dec.Decode(&fb); err != nil {
		return nil, ErrMalformed
	}

	if fb.ReportMetadata == nil || fb.PolicyPublished == nil {
		return nil, ErrMalformed
	}
	md := fb.ReportMetadata
	if md.OrgName == "" || md.ReportID == "" || md.DateRange == nil {
		return nil, ErrMalformed
	}
	if md.DateRange.Begin == 0 || md.DateRange.End == 0 {
		return nil, ErrMalformed
	}

	parsed := &domain.ParsedReport{
		OrgName:      md.OrgName,
		ReportID:     md.ReportID,
		BeginDate:    time.Unix(md.DateRange.Begin, 0).UTC(),
		EndDate:      time.Unix(md.DateRange.End, 0).UTC(),
		PolicyDomain: fb.PolicyPublished.Domain,
	}

	for _, rec := range fb.Records {
		if pr, ok := parseRecord(rec); ok {
			parsed.Records = append(parsed.Records, pr)
		}
	}

	return parsed, nil
}

func parseRecord(rec record) (domain.ParsedRecord, bool) {
	if rec.Row == nil || rec.Identifiers == nil {
		return domain.ParsedRecord{}, false
	}

	// Fail-closed defaults on the security verdicts, fail-open on the
	// informational fields.
	pr := domain.ParsedRecord{
		SourceIP:    "unknown",
		Disposition: domain.DispositionNone,
		DKIMResult:  "fail",
		SPFResult:   "fail",
	}

	if rec.Row.SourceIP != "" {
		pr.SourceIP = rec.Row.SourceIP
	}
	if rec.Row.Count > 0 {
		pr.Count = rec.Row.Count
	}
	if pe := rec.Row.PolicyEvaluated; pe != nil {
		if pe.Disposition != "" {
			pr.Disposition = domain.Disposition(pe.Disposition)
		}
		if pe.DKIM != "" {
			pr.DKIMResult = pe.DKIM
		}
		if pe.SPF != "" {
			pr.SPFResult = pe.SPF
		}
	}

	pr.HeaderFrom = rec.Identifiers.HeaderFrom
	pr.EnvelopeFrom = rec.Identifiers.EnvelopeFrom

	if ar := rec.AuthResults; ar != nil {
		for _, d := range ar.DKIM {
			pr.DKIMAuth = append(pr.DKIMAuth, domain.AuthResult{
				Domain:   d.Domain,
				Result:   d.Result,
				Selector: d.Selector,
			})
		}
		for _, s := range ar.SPF {
			pr.SPFAuth = append(pr.SPFAuth, domain.AuthResult{
				Domain: s.Domain,
				Result: s.Result,
			})
		}
	}

	return pr, true
}
