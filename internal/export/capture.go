package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// previewSelector is the id the HTML renderer assigns to the preview root.
const previewSelector = "#resume-preview"

// colorNormalizeJS rewrites any computed color the rasterizer cannot parse
// (lab, lch, oklab, oklch, color() functions) into plain RGB. Each suspect
// substring is resolved by assigning it to a throwaway element's color and
// reading back the browser's computed value.
const colorNormalizeJS = `(() => {
	const root = document.querySelector('#resume-preview');
	if (!root) return false;
	const modern = /(oklab|oklch|lab|lch|color)\(/;
	const probe = document.createElement('div');
	document.body.appendChild(probe);
	const resolve = (value) => value.replace(/(oklab|oklch|lab|lch|color)\([^)]*\)/g, (m) => {
		probe.style.color = '';
		probe.style.color = m;
		return getComputedStyle(probe).color;
	});
	const props = ['background-image', 'color', 'border-top-color', 'border-right-color', 'border-bottom-color', 'border-left-color', 'background-color'];
	for (const el of [root, ...root.querySelectorAll('*')]) {
		const cs = getComputedStyle(el);
		for (const p of props) {
			const v = cs.getPropertyValue(p);
			if (modern.test(v)) el.style.setProperty(p, resolve(v));
		}
	}
	probe.remove();
	return true;
})()`

// linkExtractJS collects every anchor's href and bounding box relative to the
// preview node's own top-left corner. This runs before the screenshot since
// rasterization keeps no interactivity.
const linkExtractJS = `(() => {
	const root = document.querySelector('#resume-preview');
	if (!root) return [];
	const origin = root.getBoundingClientRect();
	return [...root.querySelectorAll('a[href]')].map((a) => {
		const r = a.getBoundingClientRect();
		return {url: a.href, x: r.left - origin.left, y: r.top - origin.top, w: r.width, h: r.height};
	});
})()`

// metricsJS reads the preview node's CSS-pixel dimensions.
const metricsJS = `(() => {
	const root = document.querySelector('#resume-preview');
	if (!root) return null;
	const r = root.getBoundingClientRect();
	return {w: r.width, h: r.height};
})()`

// Snapshot is one raster capture of the preview: the PNG bytes, the node's
// CSS-pixel dimensions, and the anchors collected before rasterization.
type Snapshot struct {
	PNG    []byte
	Width  float64
	Height float64
	Links  []LinkRect
}

// CaptureOptions tunes the headless browser session.
type CaptureOptions struct {
	// Timeout bounds the whole capture including browser startup.
	Timeout time.Duration
	// ChromePath overrides the browser binary; empty uses the default lookup.
	ChromePath string
	// ViewportWidth is the emulated viewport width in CSS pixels. It must be
	// wide enough that the preview node lays out at its natural width.
	ViewportWidth int64
	// PixelDensity is the device scale factor for the screenshot.
	PixelDensity float64
}

func (o CaptureOptions) withDefaults() CaptureOptions {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	if o.ChromePath == "" {
		o.ChromePath = os.Getenv("CHROME_PATH")
	}
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = 900
	}
	if o.PixelDensity <= 0 {
		o.PixelDensity = 2
	}
	return o
}

type metrics struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Capture renders the standalone HTML document in a headless browser,
// normalizes unsupported color syntax, extracts anchor rectangles, and
// screenshots the preview node at the configured pixel density.
func Capture(ctx context.Context, html string, opts CaptureOptions) (*Snapshot, error) {
	opts = opts.withDefaults()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, opts.Timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-capture-")
	if err != nil {
		return nil, fmt.Errorf("failed to create capture directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write capture document: %w", err)
	}

	var (
		normalized bool
		size       *metrics
		links      []LinkRect
		png        []byte
	)
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(opts.ViewportWidth, 1200, chromedp.EmulateScale(opts.PixelDensity)),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(colorNormalizeJS, &normalized),
		chromedp.Evaluate(metricsJS, &size),
		chromedp.Evaluate(linkExtractJS, &links),
		// The probe results must be checked before Screenshot: Screenshot
		// waits for its selector, so an absent preview node would otherwise
		// burn the whole timeout instead of failing fast.
		chromedp.ActionFunc(func(context.Context) error {
			if !normalized || size == nil {
				return ErrMissingTarget
			}
			if size.W <= 0 || size.H <= 0 {
				return fmt.Errorf("capture produced an empty preview node")
			}
			return nil
		}),
		chromedp.Screenshot(previewSelector, &png, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture preview: %w", err)
	}

	return &Snapshot{PNG: png, Width: size.W, Height: size.H, Links: links}, nil
}
