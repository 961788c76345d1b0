package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func testClient(srv *httptest.Server) *Client {
	return New(Config{
		ComparisonURL: srv.URL + "/api/v1/comparison",
		TaxonomyURL:   srv.URL + "/api/v1/analytics/taxonomies",
		FunnelURL:     srv.URL + "/api/v1/analytics/funnel",
		MetricsURL:    srv.URL + "/api/v1/analytics/key-metrics",
		SynonymURL:    srv.URL + "/api/v1/synonyms",
	})
}

func TestCompareResumesPostsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s; want POST", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/compare-multiple") {
			t.Errorf("path = %s; want /compare-multiple suffix", r.URL.Path)
		}

		var req ComparisonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.ResumeIDs) != 3 || req.VacancyID != "v42" {
			t.Errorf("request = %+v", req)
		}

		_ = json.NewEncoder(w).Encode(ComparisonResponse{
			VacancyID: req.VacancyID,
			Comparisons: []ComparisonResult{
				{ResumeID: "r1", MatchPercentage: 85.5},
				{ResumeID: "r2", MatchPercentage: 65.0},
			},
		})
	}))
	defer srv.Close()

	resp, err := testClient(srv).CompareResumes(context.Background(), ComparisonRequest{
		ResumeIDs: []string{"r1", "r2", "r3"},
		VacancyID: "v42",
	})
	if err != nil {
		t.Fatalf("CompareResumes error: %v", err)
	}
	if len(resp.Comparisons) != 2 {
		t.Fatalf("got %d comparisons; want 2", len(resp.Comparisons))
	}
}

func TestCompareResumesValidatesBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := testClient(srv).CompareResumes(context.Background(), ComparisonRequest{
		ResumeIDs: []string{"only-one"},
		VacancyID: "v42",
	})
	if Classify(err).Kind != KindValidation {
		t.Fatalf("error kind = %v; want validation", Classify(err).Kind)
	}
	if calls.Load() != 0 {
		t.Fatalf("request was sent despite failing validation")
	}
}

func TestErrorClassification(t *testing.T) {
	t.Run("protocol from status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "backend exploded", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := testClient(srv).HiringFunnel(context.Background(), DateRange{})
		apiErr := Classify(err)
		if apiErr.Kind != KindProtocol {
			t.Fatalf("kind = %v; want protocol", apiErr.Kind)
		}
		if apiErr.Status != http.StatusInternalServerError {
			t.Fatalf("status = %d; want 500", apiErr.Status)
		}
		if !strings.Contains(apiErr.Message, "500 Internal Server Error") {
			t.Fatalf("message %q lacks status text", apiErr.Message)
		}
		if !apiErr.Retryable() {
			t.Fatalf("protocol errors should be retryable")
		}
	})

	t.Run("transport from dead server", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		_, err := testClient(srv).KeyMetrics(context.Background(), DateRange{})
		apiErr := Classify(err)
		if apiErr.Kind != KindTransport {
			t.Fatalf("kind = %v; want transport", apiErr.Kind)
		}
		if apiErr.Message == "" {
			t.Fatalf("transport error lost its message")
		}
	})

	t.Run("empty comparisons", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(ComparisonResponse{VacancyID: "v42"})
		}))
		defer srv.Close()

		_, err := testClient(srv).CompareResumes(context.Background(), ComparisonRequest{
			ResumeIDs: []string{"r1", "r2"},
			VacancyID: "v42",
		})
		apiErr := Classify(err)
		if apiErr.Kind != KindEmpty {
			t.Fatalf("kind = %v; want empty", apiErr.Kind)
		}
		if apiErr.Retryable() {
			t.Fatalf("empty results should not be flagged retryable")
		}
	})

	t.Run("nil error gets fallback message", func(t *testing.T) {
		apiErr := Classify(nil)
		if apiErr.Message == "" {
			t.Fatalf("fallback message missing")
		}
	})

	t.Run("classified errors pass through", func(t *testing.T) {
		orig := &Error{Kind: KindValidation, Message: "nope"}
		if got := Classify(orig); got != orig {
			t.Fatalf("Classify rewrapped an already classified error")
		}
		wrapped := errors.New("context: " + orig.Error())
		if got := Classify(wrapped); got.Kind != KindTransport {
			t.Fatalf("plain error should classify as transport, got %v", got.Kind)
		}
	})
}

func TestTaxonomyAnalyticsQueryParams(t *testing.T) {
	cases := []struct {
		name     string
		opts     TaxonomyOptions
		industry string
		limit    string
	}{
		{"none", TaxonomyOptions{}, "", ""},
		{"industry only", TaxonomyOptions{Industry: "finance"}, "finance", ""},
		{"both", TaxonomyOptions{Industry: "software", Limit: 10}, "software", "10"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if got := q.Get("industry"); got != c.industry {
					t.Errorf("industry = %q; want %q", got, c.industry)
				}
				if got := q.Get("limit"); got != c.limit {
					t.Errorf("limit = %q; want %q", got, c.limit)
				}
				if c.industry == "" {
					if _, present := q["industry"]; present {
						t.Errorf("empty industry must be omitted, not sent blank")
					}
				}

				_ = json.NewEncoder(w).Encode(TaxonomyAnalyticsResponse{
					MostUsed: []TaxonomyStat{{ID: "tx", Name: "Backend", UsageCount: 1}},
				})
			}))
			defer srv.Close()

			if _, err := testClient(srv).TaxonomyAnalytics(context.Background(), c.opts); err != nil {
				t.Fatalf("TaxonomyAnalytics error: %v", err)
			}
		})
	}
}

func TestDateRangeParamsOmittedWhenAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if _, present := q["start_date"]; present {
			t.Errorf("absent start date was sent")
		}
		if got := q.Get("end_date"); got != "2026-06-30" {
			t.Errorf("end_date = %q; want 2026-06-30", got)
		}

		_ = json.NewEncoder(w).Encode(FunnelResponse{
			Stages:       []FunnelStage{{Name: "applied", Count: 10, ConversionRate: 1}},
			TotalResumes: 10,
		})
	}))
	defer srv.Close()

	if _, err := testClient(srv).HiringFunnel(context.Background(), DateRange{End: "2026-06-30"}); err != nil {
		t.Fatalf("HiringFunnel error: %v", err)
	}
}
