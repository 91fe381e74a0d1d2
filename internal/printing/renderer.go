package printing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const defaultRenderTimeout = 30 * time.Second

// a4 paper dimensions in inches.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	marginInches   = 0.4
)

// PDFRenderer converts an HTML document into PDF bytes.
type PDFRenderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// ChromeRenderer renders HTML to PDF through a headless Chrome instance via
// the DevTools protocol. One allocator is shared across renders; each render
// gets its own browser context.
type ChromeRenderer struct {
	timeout     time.Duration
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

var _ PDFRenderer = (*ChromeRenderer)(nil)

// NewChromeRenderer creates a renderer backed by a locally launched headless
// Chrome. The timeout bounds each individual render.
func NewChromeRenderer(timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &ChromeRenderer{
		timeout:     timeout,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
	}
}

// Render converts the HTML document into A4 portrait PDF bytes.
func (r *ChromeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, fmt.Errorf("html document is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx)
	defer browserCancel()

	var pdfData []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(marginInches).
				WithMarginRight(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("pdf rendering timed out after %v: %w", r.timeout, err)
		}
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("generated pdf is empty")
	}
	return pdfData, nil
}

// Close releases the shared Chrome allocator.
func (r *ChromeRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}
