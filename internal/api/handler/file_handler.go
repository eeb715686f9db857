package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/core/ports"
)

// FileHandler proxies opaque Telegram file ids to downloadable URLs so
// the panel can render timetable images without bot credentials.
type FileHandler struct {
	sender ports.Sender
}

// NewFileHandler builds a FileHandler. sender may be nil when no bot is
// configured; lookups then answer 502.
func NewFileHandler(sender ports.Sender) *FileHandler {
	return &FileHandler{sender: sender}
}

// Get handles GET /file/:file_id.
//
// @Summary      Resolve a Telegram file id
// @Tags         schedule
// @Param        file_id  path  string  true  "Opaque Telegram file id"
// @Success      302
// @Failure      502  {object}  map[string]string
// @Router       /file/{file_id} [get]
func (h *FileHandler) Get(c echo.Context) error {
	if h.sender == nil {
		return echo.NewHTTPError(http.StatusBadGateway, "messaging channel not configured")
	}

	url, err := h.sender.FileURL(c.Request().Context(), c.Param("file_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "file lookup failed")
	}
	return c.Redirect(http.StatusFound, url)
}
