package server

import "sync"

// Metrics holds application metrics
type Metrics struct {
	mu sync.RWMutex

	// System metrics
	requestsTotal    int64
	requestErrors4xx int64
	requestErrors5xx int64

	// Media upload metrics
	uploadsTotal      int64
	uploadErrorsTotal int64
}

var globalMetrics = &Metrics{}

// GetMetrics returns the global metrics instance
func GetMetrics() *Metrics {
	return globalMetrics
}

// RecordRequest records a handled HTTP request by status class.
func (m *Metrics) RecordRequest(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestsTotal++
	switch {
	case status >= 500:
		m.requestErrors5xx++
	case status >= 400:
		m.requestErrors4xx++
	}
}

// RecordUpload records a successful media upload.
func (m *Metrics) RecordUpload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadsTotal++
}

// RecordUploadError records a failed media upload.
func (m *Metrics) RecordUploadError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadErrorsTotal++
}

// Snapshot returns the current counters for health reporting.
func (m *Metrics) Snapshot() map[string]int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return map[string]int64{
		"requests_total":      m.requestsTotal,
		"request_errors_4xx":  m.requestErrors4xx,
		"request_errors_5xx":  m.requestErrors5xx,
		"uploads_total":       m.uploadsTotal,
		"upload_errors_total": m.uploadErrorsTotal,
	}
}
