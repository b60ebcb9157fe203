package create_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	createItem "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_item"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidInput       = "некорректные параметры элемента"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgInvalidTarget      = "ресурс отсутствует в ростере сессии"
	msgPersistenceFailure = "не удалось сохранить изменение, попробуйте ещё раз"
)

type Handler struct {
	useCase CreateItemUseCase
	logger  Logger
}

func NewHandler(useCase CreateItemUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	var req CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/items - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createItem.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/items - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createItem.ErrInvalidTarget):
			h.logger.Warn("POST /sessions/{id}/items - Resource not in roster: session_id=%s, resource_id=%d",
				sessionID, req.ResourceID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidTarget)

		case errors.Is(err, createItem.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/items - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createItem.ErrPersistenceFailure):
			h.logger.Error("POST /sessions/{id}/items - Persistence failure: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPersistenceFailure)

		default:
			h.logger.Error("POST /sessions/{id}/items - Failed to create item: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/items - Item created: session_id=%s, item_id=%d, conflicts=%d",
		sessionID, result.Item.ID, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
