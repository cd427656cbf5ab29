package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/model"
	"github.com/kral14/mobilsayt/internal/repository"
)

type LogsHandler struct{ repo repository.LogRepository }

func NewLogsHandler(repo repository.LogRepository) *LogsHandler {
	return &LogsHandler{repo: repo}
}

// CreateBatch godoc
// @Summary      Ingest a batch of client activity logs
// @Description  Entries are inserted independently: a bad entry is skipped
// @Description  and the rest of the batch still lands.
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        body body dto.ActivityLogBatchRequest true "Log batch"
// @Success      201 {object} dto.ActivityLogBatchResponse
// @Router       /logs [post]
func (h *LogsHandler) CreateBatch(c *gin.Context) {
	var req dto.ActivityLogBatchRequest
	if !bindAndValidate(c, &req) {
		return
	}

	saved := 0
	for _, e := range req.Logs {
		entry := model.ActivityLog{
			LogID:     uuid.NewString(),
			UserID:    e.UserID,
			Timestamp: e.Timestamp,
			Level:     "INFO",
			Category:  "GENERAL",
			Action:    e.Action,
			Details:   e.Details,
			Metadata:  e.Metadata,
		}
		if e.LogID != nil && *e.LogID != "" {
			entry.LogID = *e.LogID
		}
		if e.Level != nil && *e.Level != "" {
			entry.Level = *e.Level
		}
		if e.Category != nil && *e.Category != "" {
			entry.Category = *e.Category
		}

		if err := h.repo.Create(c.Request.Context(), &entry); err != nil {
			// Duplicate log_id from a client retry lands here too.
			log.Warn().Err(err).Str("log_id", entry.LogID).Msg("failed to store activity log entry")
			continue
		}
		saved++
	}

	c.JSON(http.StatusCreated, dto.ActivityLogBatchResponse{
		Message: fmt.Sprintf("%d log entries saved", saved),
		Count:   saved,
	})
}
