package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"colorsync/internal/picker"
)

var (
	// MetricEditsTotal counts applied edits by source group
	MetricEditsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorsync_edits_total",
		Help: "Total applied edits by source group",
	}, []string{"group"})

	// MetricEditsRejected counts skipped edits by group and reason
	MetricEditsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorsync_edits_rejected_total",
		Help: "Total edits skipped because they could not be applied",
	}, []string{"group", "reason"})

	// MetricFieldsAdjusted counts fields stored differently from how they
	// were typed (defaulted to 0 or clamped)
	MetricFieldsAdjusted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorsync_fields_adjusted_total",
		Help: "Total input fields defaulted or clamped, by group",
	}, []string{"group"})

	// MetricPreviewChannel is the current preview color
	MetricPreviewChannel = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "colorsync_preview_channel",
		Help: "Current preview color channel value (0-255)",
	}, []string{"channel"})
)

func recordPreview(u picker.Update) {
	c := u.Preview()
	MetricPreviewChannel.WithLabelValues("r").Set(float64(c.R))
	MetricPreviewChannel.WithLabelValues("g").Set(float64(c.G))
	MetricPreviewChannel.WithLabelValues("b").Set(float64(c.B))
}

// MetricRateLimited counts API requests refused by the edit rate limit
var MetricRateLimited = promauto.NewCounter(prometheus.CounterOpts{
	Name: "colorsync_rate_limited_total",
	Help: "Total API edits refused because the client exceeded its rate",
})
