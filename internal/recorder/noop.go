package recorder

import "GoldTrack/internal/model"

// NoopRecorder is a no-op implementation used when export is disabled.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Record(_ *model.PriceSeries) error { return nil }
func (n *NoopRecorder) Close() error                      { return nil }
