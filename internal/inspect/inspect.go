// Package inspect performs structural verification of emitted chart documents.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// VerifyError represents a structural problem in an emitted chart document
type VerifyError struct {
	Path    string
	Message string
	Cause   error
}

func (e *VerifyError) Error() string {
	where := e.Path
	if where == "" {
		where = "document"
	}
	if e.Cause != nil {
		return fmt.Sprintf("chart verification failed for %s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("chart verification failed for %s: %s", where, e.Message)
}

func (e *VerifyError) Unwrap() error {
	return e.Cause
}

// VerifyChart checks that a chart document contains an ECharts container div
// with an element id and the bootstrap script that initializes it.
func VerifyChart(r io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return &VerifyError{Message: "failed to parse HTML", Cause: err}
	}

	container := doc.Find("div.container div.item")
	if container.Length() == 0 {
		return &VerifyError{Message: "no chart container div found"}
	}
	if id, ok := container.First().Attr("id"); !ok || id == "" {
		return &VerifyError{Message: "chart container has no element id"}
	}

	initialized := false
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), "echarts.init") {
			initialized = true
		}
	})
	if !initialized {
		return &VerifyError{Message: "no echarts.init script found"}
	}

	return nil
}

// VerifyChartFile opens the document at path and verifies its structure.
func VerifyChartFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &VerifyError{Path: path, Message: "failed to open document", Cause: err}
	}
	defer f.Close()

	err = VerifyChart(f)
	var verifyErr *VerifyError
	if errors.As(err, &verifyErr) {
		verifyErr.Path = path
	}
	return err
}
