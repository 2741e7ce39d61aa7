// Package snapshot captures PNG images of rendered chart documents with a
// headless browser. Requires Chrome/Chromium to be installed on the system.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single page capture.
const DefaultTimeout = 30 * time.Second

// renderSettle gives the chart script time to finish its entry animation
// before the screenshot is taken.
const renderSettle = 2 * time.Second

// CapturePNG renders the HTML document at htmlPath in a headless browser and
// writes a full-page PNG to outPath, creating parent directories as needed.
func CapturePNG(ctx context.Context, htmlPath, outPath string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return &CaptureError{Path: htmlPath, Message: "failed to resolve document path", Cause: err}
	}
	if _, err := os.Stat(abs); err != nil {
		return &CaptureError{Path: abs, Message: "document not found", Cause: err}
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var png []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+abs),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettle),
		chromedp.FullScreenshot(&png, 90),
	)
	if err != nil {
		return &CaptureError{Path: abs, Message: "browser capture failed", Cause: err}
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &CaptureError{Path: outPath, Message: "failed to create output directory", Cause: err}
		}
	}
	if err := os.WriteFile(outPath, png, 0o644); err != nil {
		return &CaptureError{Path: outPath, Message: "failed to write capture", Cause: err}
	}
	return nil
}

// CaptureCharts captures one PNG per chart name, reading <name>.html from
// htmlDir and writing <name>.png into outDir.
func CaptureCharts(ctx context.Context, names []string, htmlDir, outDir string, timeout time.Duration) error {
	for _, name := range names {
		htmlPath := filepath.Join(htmlDir, name+".html")
		outPath := filepath.Join(outDir, name+".png")
		if err := CapturePNG(ctx, htmlPath, outPath, timeout); err != nil {
			return fmt.Errorf("capturing %s: %w", name, err)
		}
	}
	return nil
}
