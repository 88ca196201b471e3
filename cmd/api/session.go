package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"homeprice/internal/form"
)

// loadSession returns the caller's session id and form state, starting a new
// session when the cookie is missing, malformed or expired.
func (app *App) loadSession(c *gin.Context) (string, *form.State) {
	id, err := c.Cookie(app.cfg.Session.CookieName)
	if _, parseErr := uuid.Parse(id); err != nil || parseErr != nil {
		id = uuid.NewString()
	}

	state, ok, err := app.sessions.Load(c.Request.Context(), id)
	if err != nil {
		app.logger.Error("failed to load session", "session_id", id, "error", err)
	}
	if !ok || state == nil {
		state = form.NewState()
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(app.cfg.Session.CookieName, id, int(app.cfg.Session.TTL.Seconds()), "/", "", false, true)

	return id, state
}

func (app *App) saveSession(c *gin.Context, id string, state *form.State) {
	if err := app.sessions.Save(c.Request.Context(), id, state); err != nil {
		app.logger.Error("failed to save session", "session_id", id, "error", err)
	}
}
