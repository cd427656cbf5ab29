package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/repository"
)

type stubLogRepo struct {
	entries  []model.ActivityLog
	failLogs map[string]bool // log_id -> fail insert
}

func (r *stubLogRepo) Create(_ context.Context, entry *model.ActivityLog) error {
	if r.failLogs[entry.LogID] {
		return errors.New("duplicate key value violates unique constraint")
	}
	r.entries = append(r.entries, *entry)
	return nil
}

var _ repository.LogRepository = (*stubLogRepo)(nil)

func logsRouter(repo repository.LogRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/logs", NewLogsHandler(repo).CreateBatch)
	return r
}

func postLogs(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/logs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogBatchStoresAllEntries(t *testing.T) {
	repo := &stubLogRepo{}
	w := postLogs(t, logsRouter(repo), `{"logs":[
		{"log_id":"a1","action":"login","level":"WARN","category":"AUTH"},
		{"action":"product_view"}
	]}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
	require.Len(t, repo.entries, 2)

	assert.Equal(t, "a1", repo.entries[0].LogID)
	assert.Equal(t, "WARN", repo.entries[0].Level)
	assert.Equal(t, "AUTH", repo.entries[0].Category)

	// Missing fields fall back to server defaults.
	assert.NotEmpty(t, repo.entries[1].LogID, "server generates a log_id")
	assert.Equal(t, "INFO", repo.entries[1].Level)
	assert.Equal(t, "GENERAL", repo.entries[1].Category)
}

func TestLogBatchSkipsFailedEntries(t *testing.T) {
	repo := &stubLogRepo{failLogs: map[string]bool{"dup": true}}
	w := postLogs(t, logsRouter(repo), `{"logs":[
		{"log_id":"dup","action":"retry"},
		{"log_id":"ok","action":"login"}
	]}`)

	require.Equal(t, http.StatusCreated, w.Code, "one bad entry does not fail the batch")
	assert.Contains(t, w.Body.String(), `"count":1`)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, "ok", repo.entries[0].LogID)
}

func TestLogBatchEmptyList(t *testing.T) {
	repo := &stubLogRepo{}
	w := postLogs(t, logsRouter(repo), `{"logs":[]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestLogBatchEntryWithoutActionRejected(t *testing.T) {
	repo := &stubLogRepo{}
	w := postLogs(t, logsRouter(repo), `{"logs":[{"log_id":"x"}]}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, repo.entries)
}
