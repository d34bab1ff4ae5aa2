package neon

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neoncost/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", 5*time.Second), server
}

func TestListProjectsSendsAuthHeader(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{"projects":[{"id":"p1","name":"alpha"}]}`)
	})

	projects, err := client.ListProjects(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "p1", projects[0].ID)
	assert.Equal(t, "alpha", projects[0].Name)
}

func TestListProjectsFollowsPagination(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Query().Get("cursor") {
		case "":
			// Full page with a cursor: another page follows.
			fmt.Fprint(w, fullPage("batch1-", "next-cursor"))
		case "next-cursor":
			fmt.Fprint(w, `{"projects":[{"id":"last","name":"last"}],"pagination":{"cursor":""}}`)
		default:
			t.Errorf("unexpected cursor %q", r.URL.Query().Get("cursor"))
		}
	})

	projects, err := client.ListProjects(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, projects, pageLimit+1)
	assert.Equal(t, "last", projects[pageLimit].ID)
}

func TestListProjectsPassesOrgID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "org-test-123", r.URL.Query().Get("org_id"))
		fmt.Fprint(w, `{"projects":[]}`)
	})

	_, err := client.ListProjects(context.Background(), "org-test-123")
	require.NoError(t, err)
}

func TestListProjectsRejectsBadOrgID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an invalid org id")
	})

	_, err := client.ListProjects(context.Background(), "not-an-org-id")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		status int
		want   errors.Type
	}{
		{http.StatusUnauthorized, errors.TypeAuth},
		{http.StatusForbidden, errors.TypeAuth},
		{http.StatusNotFound, errors.TypeNotFound},
		{http.StatusTooManyRequests, errors.TypeRateLimit},
		{http.StatusInternalServerError, errors.TypeAPI},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := client.ListProjects(context.Background(), "")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tc.want), "status %d should map to %s, got %v", tc.status, tc.want, err)
		})
	}
}

func TestConsumptionHistoryQueryWindow(t *testing.T) {
	from := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2026-08-01T00:00:00Z", q.Get("from"))
		assert.Equal(t, "2026-08-10T12:00:00Z", q.Get("to"))
		assert.Equal(t, "daily", q.Get("granularity"))
		fmt.Fprint(w, `{
			"projects":[{
				"project_id":"p1",
				"periods":[{"consumption":[{"metrics":[{"metric_name":"compute_time_seconds","value":42}]}]}]
			}]
		}`)
	})

	records, err := client.ConsumptionHistory(context.Background(), "", from, to)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "p1", records[0].ProjectID)
	require.Len(t, records[0].Periods, 1)
	assert.InDelta(t, 42.0, records[0].Periods[0].Consumption[0].Metrics[0].Value, 1e-9)
}

func TestConsumptionHistoryPermissiveDecoding(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// No periods key at all; must decode to an empty record.
		fmt.Fprint(w, `{"projects":[{"project_id":"p1"}]}`)
	})

	records, err := client.ConsumptionHistory(context.Background(), "", time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Periods)
}

func TestNetworkErrorClassification(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "test-key", 500*time.Millisecond)

	_, err := client.ListProjects(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNetwork))
}

func TestValidateProjectID(t *testing.T) {
	assert.NoError(t, ValidateProjectID("my-project.01"))
	assert.Error(t, ValidateProjectID(""))
	assert.Error(t, ValidateProjectID("../etc/passwd"))
	assert.Error(t, ValidateProjectID("-leading-dash"))
}

// fullPage builds a pageLimit-sized projects page with the given cursor.
func fullPage(prefix, cursor string) string {
	out := `{"projects":[`
	for i := 0; i < pageLimit; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"id":"%s%d","name":"%s%d"}`, prefix, i, prefix, i)
	}
	return out + fmt.Sprintf(`],"pagination":{"cursor":"%s"}}`, cursor)
}
