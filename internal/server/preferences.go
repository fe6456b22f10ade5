package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskedge/internal/models"
)

type preferenceRequest struct {
	Theme string `json:"theme"`
}

// handleGetPreference returns the stored theme, falling back to the default
// when none has been set yet.
func (s *Server) handleGetPreference(c *gin.Context) {
	theme, err := s.prefs.GetPreference(c.Request.Context(), models.PreferenceTheme)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	if theme == "" {
		theme = models.DefaultTheme
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// handleSetPreference validates and overwrites the theme, last write wins.
func (s *Server) handleSetPreference(c *gin.Context) {
	var req preferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	theme := strings.TrimSpace(req.Theme)
	if _, valid := models.ValidThemes[theme]; !valid {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("theme must be %s or %s", models.ThemeLight, models.ThemeDark))
		return
	}

	if err := s.prefs.SetPreference(c.Request.Context(), models.PreferenceTheme, theme); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}
