// Package report converts a Burp scan report into a JUnit XML document,
// marking as failed every test case whose issue severity meets the
// configured threshold.
package report

import (
	"fmt"

	"github.com/security-tools/burp-control/internal/burp"
	"github.com/security-tools/burp-control/internal/junit"
	"github.com/security-tools/burp-control/internal/severity"
)

// BuildJUnitReport parses the raw scan report and returns the
// serialized JUnit document. The conversion is a pure function of its
// arguments and is safe to run concurrently with other conversions.
//
// Failure modes: *ConfigurationError for an unknown threshold (checked
// before the report is read), *ParseError for malformed input, and
// *DataError for an issue with an unknown severity. Any failure aborts
// the whole conversion; no partial output is returned.
func BuildJUnitReport(src []byte, threshold string) ([]byte, error) {
	level, err := severity.Parse(threshold)
	if err != nil {
		return nil, &ConfigurationError{Threshold: threshold, Err: err}
	}

	parsed, err := burp.ParseReport(src)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	doc := &junit.TestSuites{}
	// Suites are keyed by issue name, first seen first. Input order is
	// preserved both across suites and within each suite.
	suites := map[string]int{}
	for _, issue := range parsed.Issues {
		sev, err := severity.Parse(issue.Severity)
		if err != nil {
			return nil, &DataError{SerialNumber: issue.SerialNumber, IssueName: issue.Name, Err: err}
		}

		index, ok := suites[issue.Name]
		if !ok {
			// The suite package is taken from whichever issue opened
			// the group; later issues may disagree and are ignored.
			doc.Suites = append(doc.Suites, junit.NewTestSuite(issue.Name, issue.Type))
			index = len(doc.Suites) - 1
			suites[issue.Name] = index
		}

		var failure *junit.Failure
		if sev.Meets(level) {
			failure = junit.NewFailure(issue.Name, failureText(issue))
		}
		doc.Suites[index].AddTestCase(junit.NewTestCase(
			fmt.Sprintf("Issue-%s", issue.SerialNumber),
			issue.Name,
			fmt.Sprintf("%s/%s", issue.Severity, issue.Confidence),
			failure,
		))
	}

	return doc.Marshal()
}

// failureText renders the fixed labelled description attached to a
// failing test case.
func failureText(issue burp.Issue) string {
	return fmt.Sprintf("Host: %s\nPath: %s\nSeverity: %s\nConfidence: %s\nType: %s\nSerial Number: %s\nBackground: %s\nDetail: %s",
		issue.Host,
		issue.Path,
		issue.Severity,
		issue.Confidence,
		issue.Type,
		issue.SerialNumber,
		issue.IssueBackground,
		issue.IssueDetail,
	)
}
