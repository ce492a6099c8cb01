package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blazmaric/DMARC-SAAS/internal/core/domain"
)

const fullReportXML = `<?xml version="1.0" encoding="UTF-8"?>
<feedback>
  <report_metadata>
    <org_name>google.com</org_name>
    <email>noreply-dmarc-support@google.com</email>
    <report_id>14789654329725112839</report_id>
    <date_range>
      <begin>1700000000</begin>
      <end>1700086400</end>
    </date_range>
  </report_metadata>
  <policy_published>
    <domain>example.com</domain>
    <adkim>r</adkim>
    <aspf>r</aspf>
    <p>quarantine</p>
    <sp>none</sp>
    <pct>100</pct>
  </policy_published>
  <record>
    <row>
      <source_ip>192.0.2.10</source_ip>
      <count>7</count>
      <policy_evaluated>
        <disposition>none</disposition>
        <dkim>pass</dkim>
        <spf>pass</spf>
      </policy_evaluated>
    </row>
    <identifiers>
      <envelope_from>mail.example.com</envelope_from>
      <header_from>example.com</header_from>
    </identifiers>
    <auth_results>
      <dkim>
        <domain>example.com</domain>
        <result>pass</result>
        <selector>s1</selector>
      </dkim>
      <spf>
        <domain>mail.example.com</domain>
        <result>pass</result>
        <scope>mfrom</scope>
      </spf>
    </auth_results>
  </record>
</feedback>`

func TestParse_FullReport(t *testing.T) {
	rep, err := Parse([]byte(fullReportXML))
	require.NoError(t, err)

	assert.Equal(t, "google.com", rep.OrgName)
	assert.Equal(t, "14789654329725112839", rep.ReportID)
	assert.Equal(t, "example.com", rep.PolicyDomain)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), rep.BeginDate)
	assert.Equal(t, time.Unix(1700086400, 0).UTC(), rep.EndDate)

	require.Len(t, rep.Records, 1)
	rec := rep.Records[0]
	assert.Equal(t, "192.0.2.10", rec.SourceIP)
	assert.Equal(t, 7, rec.Count)
	assert.Equal(t, domain.DispositionNone, rec.Disposition)
	assert.Equal(t, "pass", rec.DKIMResult)
	assert.Equal(t, "pass", rec.SPFResult)
	assert.Equal(t, "example.com", rec.HeaderFrom)
	require.NotNil(t, rec.EnvelopeFrom)
	assert.Equal(t, "mail.example.com", *rec.EnvelopeFrom)

	require.Len(t, rec.DKIMAuth, 1)
	assert.Equal(t, domain.AuthResult{Domain: "example.com", Result: "pass", Selector: "s1"}, rec.DKIMAuth[0])
	require.Len(t, rec.SPFAuth, 1)
	assert.Equal(t, "mail.example.com", rec.SPFAuth[0].Domain)
}

func TestParse_SingleAndRepeatedAuthResultsDecodeAlike(t *testing.T) {
	single := `<feedback>
  <report_metadata>
    <org_name>o</org_name><report_id>r1</report_id>
    <date_range><begin>1700000000</begin><end>1700086400</end></date_range>
  </report_metadata>
  <policy_published><domain>example.com</domain></policy_published>
  <record>
    <row><source_ip>192.0.2.1</source_ip><count>1</count></row>
    <identifiers><header_from>example.com</header_from></identifiers>
    <auth_results>
      <dkim><domain>example.com</domain><result>pass</result></dkim>
    </auth_results>
  </record>
</feedback>`

	repeated := `<feedback>
  <report_metadata>
    <org_name>o</org_name><report_id>r1</report_id>
    <date_range><begin>1700000000</begin><end>1700086400</end></date_range>
  </report_metadata>
  <policy_published><domain>example.com</domain></policy_published>
  <record>
    <row><source_ip>192.0.2.1</source_ip><count>1</count></row>
    <identifiers><header_from>example.com</header_from></identifiers>
    <auth_results>
      <dkim><domain>example.com</domain><result>pass</result></dkim>
      <dkim><domain>other.com</domain><result>fail</result></dkim>
    </auth_results>
  </record>
</feedback>`

	one, err := Parse([]byte(single))
	require.NoError(t, err)
	require.Len(t, one.Records, 1)
	require.Len(t, one.Records[0].DKIMAuth, 1)

	two, err := Parse([]byte(repeated))
	require.NoError(t, err)
	require.Len(t, two.Records, 1)
	require.Len(t, two.Records[0].DKIMAuth, 2)

	assert.Equal(t, one.Records[0].DKIMAuth[0], two.Records[0].DKIMAuth[0])
}

func TestParse_RecordDefaults(t *testing.T) {
	xmlText := `<feedback>
  <report_metadata>
    <org_name>o</org_name><report_id>r1</report_id>
    <date_range><begin>1700000000</begin><end>1700086400</end></date_range>
  </report_metadata>
  <policy_published><domain>example.com</domain></policy_published>
  <record>
    <row></row>
    <identifiers><header_from>example.com</header_from></identifiers>
  </record>
</feedback>`

	rep, err := Parse([]byte(xmlText))
	require.NoError(t, err)
	require.Len(t, rep.Records, 1)

	rec := rep.Records[0]
	assert.Equal(t, "unknown", rec.SourceIP)
	assert.Equal(t, 0, rec.Count)
	assert.Equal(t, domain.DispositionNone, rec.Disposition)
	assert.Equal(t, "fail", rec.DKIMResult)
	assert.Equal(t, "fail", rec.SPFResult)
	assert.Nil(t, rec.EnvelopeFrom)
	assert.Empty(t, rec.DKIMAuth)
	assert.Empty(t, rec.SPFAuth)
}

func TestParse_RecordsMissingRowOrIdentifiersDropped(t *testing.T) {
	xmlText := `<feedback>
  <report_metadata>
    <org_name>o</org_name><report_id>r1</report_id>
    <date_range><begin>1700000000</begin><end>1700086400</end></date_range>
  </report_metadata>
  <policy_published><domain>example.com</domain></policy_published>
  <record>
    <identifiers><header_from>example.com</header_from></identifiers>
  </record>
  <record>
    <row><source_ip>192.0.2.1</source_ip><count>1</count></row>
  </record>
  <record>
    <row><source_ip>192.0.2.2</source_ip><count>3</count></row>
    <identifiers><header_from>example.com</header_from></identifiers>
  </record>
</feedback>`

	rep, err := Parse([]byte(xmlText))
	require.NoError(t, err)
	require.Len(t, rep.Records, 1)
	assert.Equal(t, "192.0.2.2", rep.Records[0].SourceIP)
}

func TestParse_NoRecords(t *testing.T) {
	xmlText := `<feedback>
  <report_metadata>
    <org_name>o</org_name><report_id>r1</report_id>
    <date_range><begin>1700000000</begin><end>1700086400</end></date_range>
  </report_metadata>
  <policy_published><domain>example.com</domain></policy_published>
</feedback>`

	rep, err := Parse([]byte(xmlText))
	require.NoError(t, err)
	assert.Empty(t, rep.Records)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		xmlText string
	}{
		{"not xml", "this is not xml"},
		{"empty", ""},
		{"truncated", "<feedback><report_metadata>"},
		{
			"missing metadata",
			`<feedback><policy_published><domain>example.com</domain></policy_published></feedback>`,
		},
		{
			"missing policy_published",
			`<feedback><report_metadata><org_name>o</org_name><report_id>r1</report_id>
			<date_range><begin>1700000000</begin><end>1700086400</end></date_range>
			</report_metadata></feedback>`,
		},
		{
			"missing org_name",
			`<feedback><report_metadata><report_id>r1</report_id>
			<date_range><begin>1700000000</begin><end>1700086400</end></date_range>
			</report_metadata><policy_published><domain>d</domain></policy_published></feedback>`,
		},
		{
			"missing report_id",
			`<feedback><report_metadata><org_name>o</org_name>
			<date_range><begin>1700000000</begin><end>1700086400</end></date_range>
			</report_metadata><policy_published><domain>d</domain></policy_published></feedback>`,
		},
		{
			"missing date_range",
			`<feedback><report_metadata><org_name>o</org_name><report_id>r1</report_id>
			</report_metadata><policy_published><domain>d</domain></policy_published></feedback>`,
		},
		{
			"zero begin",
			`<feedback><report_metadata><org_name>o</org_name><report_id>r1</report_id>
			<date_range><begin>0</begin><end>1700086400</end></date_range>
			</report_metadata><policy_published><domain>d</domain></policy_published></feedback>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Parse([]byte(tt.xmlText))
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Nil(t, rep)
		})
	}
}
