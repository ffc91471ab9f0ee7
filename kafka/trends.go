package kafka

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TrendRecorder turns consumed events into Prometheus counters, giving
// a live view of swipe sentiment and wardrobe growth per style.
type TrendRecorder struct {
	swipes prometheus.CounterVec
	items  prometheus.CounterVec
}

// NewTrendRecorder registers the trend metrics
func NewTrendRecorder() *TrendRecorder {
	return &TrendRecorder{
		swipes: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stylemind_swipes_consumed_total",
				Help: "Total number of swipe events consumed, by action and style category",
			},
			[]string{"action", "style_category"},
		),
		items: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stylemind_wardrobe_items_consumed_total",
				Help: "Total number of wardrobe item events consumed, by category",
			},
			[]string{"category"},
		),
	}
}

// HandleSwipe counts one swipe event
func (r *TrendRecorder) HandleSwipe(_ context.Context, event SwipeRecordedEvent) error {
	r.swipes.WithLabelValues(event.Action, event.StyleCategory).Inc()
	return nil
}

// HandleItem counts one wardrobe item event
func (r *TrendRecorder) HandleItem(_ context.Context, event ItemAddedEvent) error {
	r.items.WithLabelValues(event.Category).Inc()
	return nil
}
