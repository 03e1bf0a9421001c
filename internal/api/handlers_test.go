package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/liveboard/internal/services"
	"github.com/vytor/liveboard/internal/session"
	"github.com/vytor/liveboard/internal/testutil/mocks"
)

const twoPawnsBody = `[{"position": "21", "piece": "P"}, {"position": 28, "piece": "p"}]`

func newTestServer(ranker services.MoveRanker, repo *mocks.MockSnapshotRepository) *Server {
	var svc services.BoardService
	if repo != nil {
		svc = services.NewBoardService(session.NewStore(), ranker, repo, nil)
	} else {
		svc = services.NewBoardService(session.NewStore(), ranker, nil, nil)
	}
	return &Server{BoardService: svc, AllowedOrigin: "*"}
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func errorCode(t *testing.T, body map[string]any) string {
	t.Helper()
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "missing error object in %v", body)
	return e["code"].(string)
}

func TestUpdateThenGetBoard(t *testing.T) {
	h := newTestServer(nil, nil).Routes()

	rec, body := do(t, h, http.MethodPost, "/update_board", twoPawnsBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "success"}, body)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec, body = do(t, h, http.MethodGet, "/get_board", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "8/8/8/8/8/8/P6p/8 w - - 0 1", body["board"])
}

func TestGetBoard_EmptyAtStartup(t *testing.T) {
	h := newTestServer(nil, nil).Routes()

	_, body := do(t, h, http.MethodGet, "/get_board", "")
	assert.Equal(t, "8/8/8/8/8/8/8/8 w - - 0 1", body["board"])
}

func TestUpdateBoard_EmptyArrayClearsBoard(t *testing.T) {
	h := newTestServer(nil, nil).Routes()
	do(t, h, http.MethodPost, "/update_board", twoPawnsBody)

	rec, _ := do(t, h, http.MethodPost, "/update_board", `[]`)
	require.Equal(t, http.StatusOK, rec.Code)

	_, body := do(t, h, http.MethodGet, "/get_board", "")
	assert.Equal(t, "8/8/8/8/8/8/8/8 w - - 0 1", body["board"])
}

func TestUpdateBoard_PredictionMode(t *testing.T) {
	tests := []struct {
		name   string
		ranked []string
		want   string
	}{
		{name: "first legal candidate", ranked: []string{"e2e4", "a2a3", "h2h1q"}, want: "a2a3"},
		{name: "black move is legal too", ranked: []string{"h2h1q"}, want: "h2h1q"},
		{name: "nothing legal", ranked: []string{"e2e3", "a2b3"}, want: "None"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranker := new(mocks.MockMoveRanker)
			ranker.On("Rank", mock.Anything, mock.Anything).Return(tt.ranked, nil)
			h := newTestServer(ranker, nil).Routes()

			rec, body := do(t, h, http.MethodPost, "/update_board", twoPawnsBody)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "success", body["status"])
			assert.Equal(t, tt.want, body["predicted_move"])
		})
	}
}

func TestUpdateBoard_InferenceFailure(t *testing.T) {
	ranker := new(mocks.MockMoveRanker)
	ranker.On("Rank", mock.Anything, mock.Anything).Return(nil, stderrors.New("boom"))
	h := newTestServer(ranker, nil).Routes()

	rec, body := do(t, h, http.MethodPost, "/update_board", twoPawnsBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INFERENCE_FAILED", errorCode(t, body))
}

func TestUpdateBoard_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "not json", body: `{{`, code: "BAD_REQUEST"},
		{name: "object instead of array", body: `{"position": "21", "piece": "P"}`, code: "BAD_REQUEST"},
		{name: "empty body", body: ``, code: "BAD_REQUEST"},
		{name: "rank out of range", body: `[{"position": "91", "piece": "P"}]`, code: "INVALID_COORDINATE"},
		{name: "file out of range", body: `[{"position": "29", "piece": "P"}]`, code: "INVALID_COORDINATE"},
		{name: "position is a bool", body: `[{"position": true, "piece": "P"}]`, code: "INVALID_COORDINATE"},
		{name: "unknown piece", body: `[{"position": "21", "piece": "x"}]`, code: "UNKNOWN_PIECE_KIND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(nil, nil).Routes()
			rec, body := do(t, h, http.MethodPost, "/update_board", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, body))
		})
	}
}

func TestRoutingErrors(t *testing.T) {
	h := newTestServer(nil, nil).Routes()

	rec, body := do(t, h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, body))

	rec, body = do(t, h, http.MethodGet, "/update_board", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", errorCode(t, body))
}

func TestCORS(t *testing.T) {
	srv := newTestServer(nil, nil)
	srv.AllowedOrigin = "http://reader.local"
	h := srv.Routes()

	req := httptest.NewRequest(http.MethodOptions, "/update_board", nil)
	req.Header.Set("Origin", "http://reader.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://reader.local", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")

	rec, _ = do(t, h, http.MethodGet, "/get_board", "")
	assert.Equal(t, "http://reader.local", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHealthAndReady(t *testing.T) {
	repo := new(mocks.MockSnapshotRepository)
	repo.On("Ping", mock.Anything).Return(context.DeadlineExceeded).Once()
	repo.On("Ping", mock.Anything).Return(nil)
	h := newTestServer(nil, repo).Routes()

	rec, _ := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body := do(t, h, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "UNAVAILABLE", errorCode(t, body))

	rec, body = do(t, h, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", body["status"])
}

func TestUpdateBoard_SlowInferenceTimesOut(t *testing.T) {
	ranker := new(mocks.MockMoveRanker)
	ranker.On("Rank", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			select {
			case <-ctx.Done():
			case <-time.After(2 * time.Second):
			}
		}).
		Return([]string{"a2a3"}, nil)

	srv := newTestServer(ranker, nil)
	srv.RequestTimeout = 20 * time.Millisecond
	h := srv.Routes()

	rec, body := do(t, h, http.MethodPost, "/update_board", twoPawnsBody)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "TIMEOUT", errorCode(t, body))

	rec, _ = do(t, h, http.MethodGet, "/get_board", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
