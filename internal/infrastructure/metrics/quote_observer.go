package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/Precios-api/internal/application/pricing"
)

var _ pricing.QuoteObserver = (*QuoteObserver)(nil)

// QuoteObserver publica en Prometheus el resultado y la latencia de cada cotización.
type QuoteObserver struct {
	quotes   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewQuoteObserver registra los colectores en reg. Con reg nil usa el registro por defecto.
func NewQuoteObserver(reg prometheus.Registerer) (*QuoteObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &QuoteObserver{
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "precios",
			Subsystem: "pricing",
			Name:      "quotes_total",
			Help:      "Cotizaciones de línea por resultado (OK o código de error) y base de precio.",
		}, []string{"outcome", "basis"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "precios",
			Subsystem: "pricing",
			Name:      "quote_duration_seconds",
			Help:      "Duración de la cotización de una línea, lectura de repositorios incluida.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"outcome"}),
	}
	for _, c := range []prometheus.Collector{o.quotes, o.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// ObserveQuote implementa pricing.QuoteObserver. basis vacío (falla antes de resolver la lista) se publica como "NONE".
func (o *QuoteObserver) ObserveQuote(outcome, basis string, elapsed time.Duration) {
	if basis == "" {
		basis = "NONE"
	}
	o.quotes.WithLabelValues(outcome, basis).Inc()
	o.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
