package recorder

import "GoldTrack/internal/model"

// Recorder persists the fetched price series for later inspection.
type Recorder interface {
	Record(series *model.PriceSeries) error
	Close() error
}
