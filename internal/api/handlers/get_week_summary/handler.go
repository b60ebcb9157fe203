package get_week_summary

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getWeekSummary "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_summary"
)

const (
	msgMissingStart    = "отсутствует параметр start"
	msgInvalidStart    = "некорректный формат параметра start, ожидается YYYY-MM-DD"
	msgInvalidInput    = "некорректные параметры запроса"
	msgSessionNotFound = "сессия не найдена или истекла"
)

type Handler struct {
	useCase GetWeekSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/week
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	startRaw := r.URL.Query().Get("start")
	if startRaw == "" {
		h.logger.Warn("GET /sessions/{id}/week - Missing start parameter")
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startRaw)
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/week - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekSummary.Request{
		SessionID: sessionID,
		StartDate: startDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeekSummary.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/week - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getWeekSummary.ErrInvalidInput):
			h.logger.Warn("GET /sessions/{id}/week - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /sessions/{id}/week - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/week - Summary built: session_id=%s, start=%s", sessionID, startRaw)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
