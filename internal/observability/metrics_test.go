package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/products", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/products", "GET", 200, 30*time.Millisecond)
	m.RecordError("/products", "POST", "FORBIDDEN")

	snap := m.Snapshot()
	assert.EqualValues(t, 2, snap.Requests["GET /products|200"])
	assert.EqualValues(t, 20, snap.AvgLatencyMs["GET /products|200"])
	assert.EqualValues(t, 1, snap.Errors["POST /products|FORBIDDEN"])
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	assert.Empty(t, m.Snapshot().Requests)
}
