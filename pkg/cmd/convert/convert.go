package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/security-tools/burp-control/internal/metrics"
	"github.com/security-tools/burp-control/internal/report"
	"github.com/security-tools/burp-control/internal/severity"
	log "github.com/sirupsen/logrus"
)

type Input struct {
	reports   []string
	threshold string
	output    string
	outputDir string
}

func NewCmdConvert() *cobra.Command {
	data := Input{}
	cmd := &cobra.Command{
		Use:   "convert report.xml [report.xml ...]",
		Short: "Convert Burp scan reports into JUnit XML.",
		Run: func(cmd *cobra.Command, args []string) {
			data.reports = args
			checkFlags(&data)
			if err := processReports(&data); err != nil {
				log.Error(errors.Wrap(err, "could not convert scan report"))
				os.Exit(1)
			}
		},
		Args: cobra.MinimumNArgs(1),
	}

	cmd.Flags().StringVarP(
		&data.threshold, "severity-threshold", "t", string(severity.Low),
		"Minimum severity marking a test case as failed. One of: Information, Low, Medium, High",
	)
	cmd.Flags().StringVarP(
		&data.output, "output", "o", "",
		"Output file for a single report. Default is stdout. Example: -o report.junit.xml",
	)
	cmd.Flags().StringVarP(
		&data.outputDir, "output-dir", "d", "",
		"Directory receiving one <report>.junit.xml per input. Default is next to each input",
	)

	return cmd
}

// checkFlags
func checkFlags(input *Input) {
	if input.output != "" && len(input.reports) > 1 {
		log.Warnf("--output is ignored when converting multiple reports, use --output-dir instead.")
		input.output = ""
	}
}

// processReports converts every report given on the command line. Each
// conversion is independent of the others, so multiple reports are
// converted concurrently.
func processReports(input *Input) error {
	timers := metrics.NewTimers()
	timers.Add("convert-total")
	defer func() {
		timers.Add("convert-total")
		log.Debugf("converted %d report(s) in %.3fs", len(input.reports), timers.Total("convert-total"))
	}()

	if len(input.reports) == 1 {
		return convertReport(input.reports[0], input.threshold, singleOutputPath(input))
	}

	g := new(errgroup.Group)
	for _, path := range input.reports {
		path := path
		g.Go(func() error {
			return convertReport(path, input.threshold, junitPath(input.outputDir, path))
		})
	}
	return g.Wait()
}

// convertReport reads one scan report, runs the conversion, and writes
// the JUnit document. An empty output path means stdout.
func convertReport(path, threshold, output string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "unable to read scan report %s", path)
	}

	junitXML, err := report.BuildJUnitReport(data, threshold)
	if err != nil {
		return errors.Wrapf(err, "unable to convert scan report %s", path)
	}

	if output == "" {
		fmt.Println(string(junitXML))
		return nil
	}
	if err := os.WriteFile(output, junitXML, 0644); err != nil {
		return errors.Wrapf(err, "unable to save JUnit report to %s", output)
	}
	log.Infof("JUnit report saved to %s", output)
	return nil
}

func singleOutputPath(input *Input) string {
	if input.output != "" {
		return input.output
	}
	if input.outputDir != "" {
		return junitPath(input.outputDir, input.reports[0])
	}
	return ""
}

func junitPath(dir, reportPath string) string {
	if dir == "" {
		dir = filepath.Dir(reportPath)
	}
	base := strings.TrimSuffix(filepath.Base(reportPath), filepath.Ext(reportPath))
	return filepath.Join(dir, base+".junit.xml")
}
