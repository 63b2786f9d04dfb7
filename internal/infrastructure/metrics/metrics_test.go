package metrics

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.InteractionReceived("alert")
	r.InteractionReceived("alert")
	r.InteractionReceived("confirm")
	r.InteractionResolved("confirm", "cancel")
	r.InteractionSuperseded("alert")
	r.NavigationRequested("requested")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.received.WithLabelValues("alert")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.received.WithLabelValues("confirm")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.resolved.WithLabelValues("confirm", "cancel")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.superseded.WithLabelValues("alert")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.navigation.WithLabelValues("requested")))
}

func TestHandler_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	r.InteractionReceived("confirm")

	srv := httptest.NewServer(NewHandler(reg, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `dumbshell_interactions_received_total{kind="confirm"} 1`)
}

func TestHandler_DebugDialogs(t *testing.T) {
	status := func() []DialogStatus {
		return []DialogStatus{
			{Kind: "alert"},
			{Kind: "confirm", Visible: true, InteractionID: "id-1", Title: "example.com", Queued: 2},
		}
	}
	srv := httptest.NewServer(NewHandler(prometheus.NewRegistry(), status))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/debug/dialogs")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json"))
	var got []DialogStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.True(t, got[1].Visible)
	assert.Equal(t, 2, got[1].Queued)
}

func TestHandler_DebugDialogsWithoutStatus(t *testing.T) {
	srv := httptest.NewServer(NewHandler(prometheus.NewRegistry(), nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/debug/dialogs")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(body))
}

func TestStart_ServesUntilContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Start(ctx, "127.0.0.1:0", NewHandler(prometheus.NewRegistry(), nil))
	require.NoError(t, err)

	resp, err := http.Get("http://" + s.Addr() + "/debug/dialogs")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Shutdown())
}
