package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteObserver_CuentaPorResultado(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewQuoteObserver(reg)
	require.NoError(t, err)

	o.ObserveQuote("OK", "EXCLUSIVE", 3*time.Millisecond)
	o.ObserveQuote("OK", "EXCLUSIVE", 2*time.Millisecond)
	o.ObserveQuote("NO_PRICE_TIER", "INCLUSIVE", time.Millisecond)
	o.ObserveQuote("PRODUCT_NOT_FOUND", "", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(o.quotes.WithLabelValues("OK", "EXCLUSIVE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.quotes.WithLabelValues("NO_PRICE_TIER", "INCLUSIVE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.quotes.WithLabelValues("PRODUCT_NOT_FOUND", "NONE")))
	assert.Equal(t, 3, testutil.CollectAndCount(o.duration))
}

func TestNewQuoteObserver_RegistroDuplicado(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewQuoteObserver(reg)
	require.NoError(t, err)

	_, err = NewQuoteObserver(reg)
	assert.Error(t, err, "registrar dos veces los mismos colectores debe fallar")
}
