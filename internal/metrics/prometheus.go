package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	storeWrites     *prom.CounterVec
	coercions       *prom.CounterVec
	transitions     *prom.CounterVec
	overlayTriggers *prom.CounterVec
	frameRender     prom.Histogram
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		storeWrites: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "zonectl",
			Name:      "store_writes_total",
			Help:      "Configuration store writes by operation",
		}, []string{"op"}),
		coercions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "zonectl",
			Name:      "store_coercions_total",
			Help:      "Values silently corrected during store writes",
		}, []string{"kind"}),
		transitions: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "zonectl",
			Name:      "camera_transitions_total",
			Help:      "Camera transitions started, split by whether they redirected a running one",
		}, []string{"redirect"}),
		overlayTriggers: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "zonectl",
			Name:      "overlay_triggers_total",
			Help:      "Dimension annotations shown after a value change",
		}, []string{"dimension"}),
		frameRender: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "zonectl",
			Name:      "frame_render_seconds",
			Help:      "Time spent rasterizing one frame",
			Buckets:   prom.DefBuckets,
		}),
	}
	reg.MustRegister(pr.storeWrites, pr.coercions, pr.transitions, pr.overlayTriggers, pr.frameRender)
	return pr
}

func (p *PrometheusRecorder) IncStoreWrite(op string) {
	p.storeWrites.WithLabelValues(op).Inc()
}

func (p *PrometheusRecorder) IncCoercion(kind string) {
	p.coercions.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) IncTransition(redirect bool) {
	p.transitions.WithLabelValues(strconv.FormatBool(redirect)).Inc()
}

func (p *PrometheusRecorder) IncOverlayTrigger(dimension string) {
	p.overlayTriggers.WithLabelValues(dimension).Inc()
}

func (p *PrometheusRecorder) ObserveFrameRender(d time.Duration) {
	p.frameRender.Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
