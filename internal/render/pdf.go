package render

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFExporter converts a rendered HTML page into PDF bytes. The chromedp
// implementation is the only production one; tests substitute stubs.
type PDFExporter interface {
	ExportPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromePDF drives a headless Chrome instance through the DevTools protocol.
type ChromePDF struct {
	// ExecPath overrides the browser binary; empty means chromedp's default
	// lookup. Populated from CHROME_PATH at construction.
	ExecPath string
	Timeout  time.Duration
}

func NewChromePDF(execPath string) *ChromePDF {
	return &ChromePDF{ExecPath: execPath, Timeout: 60 * time.Second}
}

func (c *ChromePDF) ExportPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	// Chrome will not render data: URLs for PrintToPDF reliably; serve the
	// page from a temp file instead.
	tmpDir, err := os.MkdirTemp("", "prezumi-print-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 paper, 210mm x 297mm.
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

var _ PDFExporter = (*ChromePDF)(nil)
