// Package junit builds and serializes the JUnit XML document consumed
// by CI systems.
package junit

import (
	"encoding/xml"
	"fmt"
)

// TestSuites is the document root. One TestSuite is emitted per group
// of issues sharing a name.
type TestSuites struct {
	XMLName xml.Name    `xml:"testsuites"`
	Suites  []TestSuite `xml:"testsuite"`
}

type TestSuite struct {
	Name      string     `xml:"name,attr"`
	Tests     int        `xml:"tests,attr"`
	Package   string     `xml:"package,attr"`
	TestCases []TestCase `xml:"testcase"`
}

type TestCase struct {
	Name      string   `xml:"name,attr"`
	Classname string   `xml:"classname,attr"`
	Status    string   `xml:"status,attr"`
	Failure   *Failure `xml:"failure,omitempty"`
}

// Failure marks a test case as failing. Text is the element body and
// is escaped by the encoder on output.
type Failure struct {
	Message string `xml:"message,attr"`
	Text    string `xml:",chardata"`
}

func NewTestSuite(name, pkg string) TestSuite {
	return TestSuite{
		Name:    name,
		Package: pkg,
	}
}

func NewTestCase(name, classname, status string, failure *Failure) TestCase {
	return TestCase{
		Name:      name,
		Classname: classname,
		Status:    status,
		Failure:   failure,
	}
}

func NewFailure(message, text string) *Failure {
	return &Failure{
		Message: message,
		Text:    text,
	}
}

// AddTestCase appends a case and bumps the suite counter.
func (ts *TestSuite) AddTestCase(tc TestCase) {
	ts.TestCases = append(ts.TestCases, tc)
	ts.Tests++
}

// Marshal serializes the document as indented XML with the standard
// header. Element and attribute order follows struct declaration
// order, so output is deterministic for a given tree.
func (t *TestSuites) Marshal() ([]byte, error) {
	out, err := xml.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error serializing JUnit XML: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
