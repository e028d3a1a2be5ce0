package report

import "fmt"

// ConfigurationError reports an unsupported severity threshold. It is
// raised before any issue is read.
type ConfigurationError struct {
	Threshold string
	Err       error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid severity threshold %q: %v", e.Threshold, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// ParseError reports a scan report that is not well-formed XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse scan report: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DataError reports a well-formed issue carrying an unrecognized
// severity value. SerialNumber and IssueName identify the offender.
type DataError struct {
	SerialNumber string
	IssueName    string
	Err          error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("issue %s (%q) carries an invalid severity: %v", e.SerialNumber, e.IssueName, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }
