package export

import (
	"context"
)

// Pipeline runs the full rasterized export: capture, paginate, annotate.
// Failures come back as *ExportError so callers can surface the right
// user-facing message.
type Pipeline struct {
	opts CaptureOptions
}

// NewPipeline creates a raster export pipeline with the given capture options.
func NewPipeline(opts CaptureOptions) *Pipeline {
	return &Pipeline{opts: opts}
}

// Export captures the rendered HTML document and returns the paginated,
// link-annotated PDF bytes.
func (p *Pipeline) Export(ctx context.Context, html string) ([]byte, error) {
	snap, err := Capture(ctx, html, p.opts)
	if err != nil {
		return nil, Classify(err)
	}

	out, err := BuildPDF(snap)
	if err != nil {
		return nil, Classify(err)
	}
	return out, nil
}
