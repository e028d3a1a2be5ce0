package burp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReport(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
	<issues>
		<issue>
			<serialNumber>7</serialNumber>
			<name>SQL Injection</name>
			<type>Injection</type>
			<host>https://example.com</host>
			<path>/login</path>
			<severity>High</severity>
			<confidence>Certain</confidence>
			<issueBackground>background text</issueBackground>
			<issueDetail>detail text</issueDetail>
		</issue>
		<issue>
			<serialNumber>8</serialNumber>
			<name>Cross-site scripting</name>
			<type>XSS</type>
			<host>https://example.com</host>
			<path>/search?q=1</path>
			<severity>Medium</severity>
			<confidence>Firm</confidence>
			<issueBackground>bg</issueBackground>
			<issueDetail>dt</issueDetail>
		</issue>
	</issues>`

	report, err := ParseReport([]byte(content))
	assert.NoError(t, err)
	assert.Len(t, report.Issues, 2)

	assert.Equal(t, "7", report.Issues[0].SerialNumber)
	assert.Equal(t, "SQL Injection", report.Issues[0].Name)
	assert.Equal(t, "Injection", report.Issues[0].Type)
	assert.Equal(t, "https://example.com", report.Issues[0].Host)
	assert.Equal(t, "/login", report.Issues[0].Path)
	assert.Equal(t, "High", report.Issues[0].Severity)
	assert.Equal(t, "Certain", report.Issues[0].Confidence)
	assert.Equal(t, "background text", report.Issues[0].IssueBackground)
	assert.Equal(t, "detail text", report.Issues[0].IssueDetail)

	assert.Equal(t, "8", report.Issues[1].SerialNumber)
	assert.Equal(t, "Cross-site scripting", report.Issues[1].Name)
}

func TestParseReportEmpty(t *testing.T) {
	report, err := ParseReport([]byte(`<issues></issues>`))
	assert.NoError(t, err)
	assert.Empty(t, report.Issues)
}

func TestParseReportMalformed(t *testing.T) {
	_, err := ParseReport([]byte(`<issues><issue>`))
	assert.Error(t, err)

	_, err = ParseReport([]byte(`not xml at all`))
	assert.Error(t, err)
}
