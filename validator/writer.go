package validator

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/russross/blackfriday/v2"
)

// ReportFilename derives the default report name from a timestamp
// with second precision.
func ReportFilename(t time.Time) string {
	return fmt.Sprintf("business_validation_report_%s.md",
		t.Format("20060102_150405"))
}

// SaveReport writes the report verbatim to filename, deriving a
// timestamped name when filename is empty. An existing file is
// silently overwritten. Returns the filename written.
func SaveReport(report, filename string) (string, error) {
	if filename == "" {
		filename = ReportFilename(time.Now())
	}
	if err := os.WriteFile(filename, []byte(report), 0o644); err != nil {
		return "", errors.Wrapf(err, "save report to %s", filename)
	}
	return filename, nil
}

// SaveReportHTML renders the markdown report to HTML next to the
// markdown file.
func SaveReportHTML(report, filename string) (string, error) {
	if filename == "" {
		filename = ReportFilename(time.Now())
	}
	filename = strings.TrimSuffix(filename, ".md") + ".html"
	html := blackfriday.Run([]byte(report))
	if err := os.WriteFile(filename, html, 0o644); err != nil {
		return "", errors.Wrapf(err, "save report to %s", filename)
	}
	return filename, nil
}
