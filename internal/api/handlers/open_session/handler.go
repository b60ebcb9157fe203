package open_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	openSession "github.com/m04kA/SMC-ScheduleService/internal/usecase/open_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры сессии"
	msgInvalidDateRange   = "некорректный диапазон дат"
	msgNoResources        = "ресурсы не найдены"
)

type Handler struct {
	useCase OpenSessionUseCase
	logger  Logger
}

func NewHandler(useCase OpenSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /sessions - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, openSession.ErrInvalidDateRange):
			h.logger.Warn("POST /sessions - Invalid date range: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, openSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, openSession.ErrNoResources):
			h.logger.Warn("POST /sessions - No resources for roster: %v", req.ResourceIDs)
			handlers.RespondNotFound(w, msgNoResources)

		default:
			h.logger.Error("POST /sessions - Failed to open session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session opened: session_id=%s, resources=%d, items=%d",
		result.SessionID, len(result.Roster), result.ItemCount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
