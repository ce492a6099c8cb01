package domain

import "fmt"

// RejectionKind classifies expected ingestion rejections. These are
// client-visible outcomes, not system failures: most mail arriving at a
// report address is not a DMARC report.
type RejectionKind string

const (
	RejectNoPayload       RejectionKind = "no_payload"
	RejectNoToken         RejectionKind = "no_token"
	RejectUnknownDomain   RejectionKind = "unknown_domain"
	RejectMalformedReport RejectionKind = "malformed_report"
)

// Rejection is a typed ingestion rejection.
type Rejection struct {
	Kind   RejectionKind
	Reason string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("ingestion rejected (%s): %s", r.Kind, r.Reason)
}

// Rejected builds a Rejection with the given kind and reason.
func Rejected(kind RejectionKind, reason string) *Rejection {
	return &Rejection{Kind: kind, Reason: reason}
}
