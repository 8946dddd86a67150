// Package testable provides a scripted stand-in for the aggregation endpoint
// so packages above fetch can be tested end to end over real HTTP.
package testable

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// SampleBody is a well-formed aggregation payload.
const SampleBody = `{
  "kpis": {"bed_occupancy": 82, "patient_census": 41, "ventilator_utilization": 37.5, "avg_los": 4.2},
  "charts": {
    "census_over_time": {"labels": ["Jan 01", "Jan 02", "Jan 03"], "datasets": [
      {"label": "Patient Census", "data": [40, 41, 39], "borderColor": "#4A90E2", "tension": 0.1},
      {"label": "Bed Availability", "data": [10, 9, 11], "borderDash": [5, 5]}
    ]},
    "acuity_levels": {"labels": ["Low", "High", "Critical"], "datasets": [
      {"label": "Patient Count", "data": [10, 20, 11], "backgroundColor": ["#4A90E2", "#F5A623", "#D0021B"]}
    ]},
    "admission_source": {"labels": ["ER", "OR", "Transfer"], "datasets": [
      {"data": [20, 15, 6]}
    ]}
  },
  "patient_details": [
    {"PatientID": "P-1001", "Unit": "MICU", "LengthOfStay": 3, "AcuityLevel": "High", "VentilatorStatus": "Yes"},
    {"PatientID": "P-1002", "Unit": "SICU", "LengthOfStay": 7, "AcuityLevel": "Critical", "VentilatorStatus": "No"}
  ]
}`

// Reply is one scripted response.
type Reply struct {
	Status int
	Body   string
}

// Aggregator is a test double for the aggregation endpoint. Replies are
// served in order; once exhausted, Default is served.
type Aggregator struct {
	mu sync.Mutex

	// Replies are consumed one per request.
	Replies []Reply

	// Default is served when Replies is empty. A zero Status means 200.
	Default Reply

	// Queries records the query of every request, for assertion purposes.
	Queries []url.Values

	// Headers records the headers of every request.
	Headers []http.Header
}

// NewAggregator returns an Aggregator that always answers SampleBody.
func NewAggregator() *Aggregator {
	return &Aggregator{Default: Reply{Status: http.StatusOK, Body: SampleBody}}
}

// ServeHTTP answers the next scripted reply.
func (a *Aggregator) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/data" {
		http.NotFound(w, r)
		return
	}
	a.mu.Lock()
	a.Queries = append(a.Queries, r.URL.Query())
	a.Headers = append(a.Headers, r.Header.Clone())
	reply := a.Default
	if len(a.Replies) > 0 {
		reply = a.Replies[0]
		a.Replies = a.Replies[1:]
	}
	a.mu.Unlock()

	if reply.Status == 0 {
		reply.Status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = w.Write([]byte(reply.Body))
}

// Enqueue appends scripted replies.
func (a *Aggregator) Enqueue(replies ...Reply) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Replies = append(a.Replies, replies...)
}

// LastQuery returns the most recent request's query, or nil.
func (a *Aggregator) LastQuery() url.Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.Queries) == 0 {
		return nil
	}
	return a.Queries[len(a.Queries)-1]
}

// Requests returns how many requests were served.
func (a *Aggregator) Requests() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.Queries)
}

// Start serves a on a new httptest server. Callers close it.
func (a *Aggregator) Start() *httptest.Server {
	return httptest.NewServer(a)
}
