package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskedge/internal/models"
	"taskedge/internal/summary"
)

type taskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// handleListTasks returns all tasks, newest first.
func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.tasks.ListTasks(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// handleCreateTask inserts a new task, summarizing the description when one
// is supplied. Summarization failure degrades to a null summary.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	title := strings.TrimSpace(getString(req.Title))
	if title == "" {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("title is required"))
		return
	}
	description := strings.TrimSpace(getString(req.Description))

	var aiSummary *string
	if description != "" {
		res := s.summarizer.Summarize(c.Request.Context(), description)
		if res.OK() {
			aiSummary = &res.Summary
		} else {
			s.logger.Warn("summarization failed", slog.String("error", res.Err.Error()))
		}
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      models.DefaultTaskStatus,
		Tags:        []string{},
		AISummary:   aiSummary,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.CreateTask(c.Request.Context(), task); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": task.ID, "ai_summary": task.AISummary})
}

// handleGetTask returns the full record for a single task.
func (s *Server) handleGetTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := s.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// handleUpdateTask merges the supplied fields into the stored task. The
// summary is regenerated only when the description actually changed; if the
// adapter fails the previous summary is kept.
func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Status != nil {
		trimmed := strings.TrimSpace(*req.Status)
		if _, valid := models.ValidTaskStatuses[trimmed]; !valid {
			s.respondError(c, http.StatusBadRequest, fmt.Errorf("status must be %s or %s", models.StatusPending, models.StatusDone))
			return
		}
		req.Status = &trimmed
	}

	existing, err := s.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		s.respondStoreError(c, err)
		return
	}

	updated := existing
	if req.Title != nil {
		if title := strings.TrimSpace(*req.Title); title != "" {
			updated.Title = title
		}
	}
	var description *string
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		description = &trimmed
		updated.Description = trimmed
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}

	if summary.ShouldRegenerate(existing.Description, description) {
		res := s.summarizer.Summarize(c.Request.Context(), *description)
		if res.OK() {
			updated.AISummary = &res.Summary
		} else {
			s.logger.Warn("summarization failed, keeping previous summary",
				slog.String("task", id), slog.String("error", res.Err.Error()))
		}
	}

	updated.UpdatedAt = time.Now().UTC()
	if err := s.tasks.UpdateTask(c.Request.Context(), updated); err != nil {
		s.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

// handleDeleteTask removes a task completely.
func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := parseTaskID(c)
	if !ok {
		return
	}
	if err := s.tasks.DeleteTask(c.Request.Context(), id); err != nil {
		s.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
