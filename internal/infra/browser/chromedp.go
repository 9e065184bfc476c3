package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// Extractor drives a fresh headless Chrome instance per call and reads the
// rendered page's visible text. Instances are never shared across requests,
// so no page state leaks between them.
type Extractor struct {
	settleDelay time.Duration
	userAgent   string
	execPath    string
}

func New(settleDelay time.Duration, userAgent, execPath string) *Extractor {
	return &Extractor{
		settleDelay: settleDelay,
		userAgent:   userAgent,
		execPath:    execPath,
	}
}

// Extract navigates to url, waits a fixed settle delay for scripted content
// (no readiness detection), then returns document.body.innerText trimmed.
// The browser process is torn down before returning, success or failure.
func (e *Extractor) Extract(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("start-maximized", true),
		chromedp.Flag("disable-infobars", true),
		// hide the automation fingerprint from bot detection
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.UserAgent(e.userAgent),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var text string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(e.settleDelay),
		chromedp.Evaluate("document.body.innerText", &text),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", url, err)
	}

	return strings.TrimSpace(text), nil
}
