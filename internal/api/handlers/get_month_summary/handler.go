package get_month_summary

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getMonthSummary "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_month_summary"
)

const (
	msgInvalidYear     = "некорректный параметр year"
	msgInvalidMonth    = "некорректный параметр month"
	msgInvalidPeek     = "некорректный формат параметра peek, ожидается YYYY-MM-DD"
	msgInvalidInput    = "некорректные параметры запроса"
	msgSessionNotFound = "сессия не найдена или истекла"
)

type Handler struct {
	useCase GetMonthSummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/month
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/month - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthNum, err := strconv.Atoi(query.Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		h.logger.Warn("GET /sessions/{id}/month - Invalid month: %q", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	var peekDate *time.Time
	if raw := query.Get("peek"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /sessions/{id}/month - Invalid peek: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeek)
			return
		}
		peekDate = &parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthSummary.Request{
		SessionID: sessionID,
		Year:      year,
		Month:     time.Month(monthNum),
		PeekDate:  peekDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthSummary.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/month - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getMonthSummary.ErrInvalidInput):
			h.logger.Warn("GET /sessions/{id}/month - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /sessions/{id}/month - Failed: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/month - Summary built: session_id=%s, year=%d, month=%d",
		sessionID, year, monthNum)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
