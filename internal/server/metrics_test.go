package server

import "testing"

func TestMetrics_RecordRequest(t *testing.T) {
	m := &Metrics{}
	m.RecordRequest(200)
	m.RecordRequest(404)
	m.RecordRequest(503)

	snap := m.Snapshot()
	if snap["requests_total"] != 3 {
		t.Errorf("requests_total = %d", snap["requests_total"])
	}
	if snap["request_errors_4xx"] != 1 || snap["request_errors_5xx"] != 1 {
		t.Errorf("error counters wrong: %v", snap)
	}
}

func TestMetrics_RecordUpload(t *testing.T) {
	m := &Metrics{}
	m.RecordUpload()
	m.RecordUpload()
	m.RecordUploadError()

	snap := m.Snapshot()
	if snap["uploads_total"] != 2 || snap["upload_errors_total"] != 1 {
		t.Errorf("upload counters wrong: %v", snap)
	}
}
