package move_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	moveItem "github.com/m04kA/SMC-ScheduleService/internal/usecase/move_item"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidItemID      = "некорректный ID элемента"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput       = "некорректные параметры перемещения"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgItemNotFound       = "элемент не найден"
	msgInvalidTarget      = "ресурс отсутствует в ростере сессии, элемент остался на месте"
	msgPersistenceFailure = "не удалось сохранить изменение, попробуйте ещё раз"
)

type Handler struct {
	useCase MoveItemUseCase
	logger  Logger
}

func NewHandler(useCase MoveItemUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/items/{itemId}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/items/{itemId}/move - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req MoveItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /sessions/{id}/items/{itemId}/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID, itemID)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/items/{itemId}/move - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, moveItem.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/items/{itemId}/move - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, moveItem.ErrItemNotFound):
			h.logger.Warn("PATCH /sessions/{id}/items/{itemId}/move - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, moveItem.ErrInvalidTarget):
			h.logger.Warn("PATCH /sessions/{id}/items/{itemId}/move - Resource not in roster: resource_id=%d",
				req.NewResourceID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidTarget)

		case errors.Is(err, moveItem.ErrInvalidInput):
			h.logger.Warn("PATCH /sessions/{id}/items/{itemId}/move - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, moveItem.ErrPersistenceFailure):
			h.logger.Error("PATCH /sessions/{id}/items/{itemId}/move - Persistence failure: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPersistenceFailure)

		default:
			h.logger.Error("PATCH /sessions/{id}/items/{itemId}/move - Failed to move item: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/items/{itemId}/move - Item moved: session_id=%s, item_id=%d, conflicts=%d",
		sessionID, result.Item.ID, len(result.Conflicts))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
