package text

import (
	"context"
	"log/slog"
)

// Segmenter is the optional word-segmentation capability. Implementations
// live outside this package; the pipeline only needs the one operation.
type Segmenter interface {
	Segment(ctx context.Context, text string) (string, error)
}

// SegmentWords runs text through seg, degrading gracefully: a nil seg means
// the capability is absent and the input is returned unchanged; a runtime
// failure is logged as a warning and the input is returned unchanged.
// Failure never propagates to the caller.
func SegmentWords(ctx context.Context, seg Segmenter, text string) string {
	if seg == nil {
		return text
	}

	out, err := seg.Segment(ctx, text)
	if err != nil {
		slog.WarnContext(ctx, "word segmentation failed",
			slog.String("error", err.Error()),
		)
		return text
	}
	return out
}
