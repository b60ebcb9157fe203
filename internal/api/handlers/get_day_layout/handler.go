package get_day_layout

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getDayLayout "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_layout"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRowHeight = "некорректное значение rowHeight"
	msgInvalidInput     = "некорректные параметры запроса"
	msgSessionNotFound  = "сессия не найдена или истекла"
)

type Handler struct {
	useCase GetDayLayoutUseCase
	logger  Logger
}

func NewHandler(useCase GetDayLayoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/days/{date}/layout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/days/{date}/layout - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var rowHeight float64
	if raw := r.URL.Query().Get("rowHeight"); raw != "" {
		rowHeight, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.logger.Warn("GET /sessions/{id}/days/{date}/layout - Invalid rowHeight: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRowHeight)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getDayLayout.Request{
		SessionID: sessionID,
		Date:      date,
		RowHeight: rowHeight,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayLayout.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/days/{date}/layout - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getDayLayout.ErrInvalidInput):
			h.logger.Warn("GET /sessions/{id}/days/{date}/layout - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /sessions/{id}/days/{date}/layout - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/days/{date}/layout - Layout built: session_id=%s, date=%s, columns=%d",
		sessionID, vars["date"], len(result.Columns))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
