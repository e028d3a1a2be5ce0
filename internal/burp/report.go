// Package burp holds the data model and parser for the XML issue
// report produced by the Burp scanner.
package burp

import (
	"encoding/xml"
	"fmt"
)

// Issue is a single finding from the scan report. Fields map to the
// child elements of the report's issue element. Issues are read-only
// after parsing.
type Issue struct {
	SerialNumber    string `xml:"serialNumber"`
	Name            string `xml:"name"`
	Type            string `xml:"type"`
	Host            string `xml:"host"`
	Path            string `xml:"path"`
	Severity        string `xml:"severity"`
	Confidence      string `xml:"confidence"`
	IssueBackground string `xml:"issueBackground"`
	IssueDetail     string `xml:"issueDetail"`
}

// Report is the root of the scan report document. A report with no
// issue elements is valid and yields an empty slice.
type Report struct {
	XMLName xml.Name `xml:"issues"`
	Issues  []Issue  `xml:"issue"`
}

// ParseReport decodes raw scan report bytes. It fails only on
// malformed XML; severity values are validated later, by the
// transformer, so the error can name the offending issue.
func ParseReport(data []byte) (*Report, error) {
	report := &Report{}
	if err := xml.Unmarshal(data, report); err != nil {
		return nil, fmt.Errorf("error parsing scan report XML: %w", err)
	}
	return report, nil
}
