package delete_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	deleteItem "github.com/m04kA/SMC-ScheduleService/internal/usecase/delete_item"
)

const (
	msgInvalidItemID      = "некорректный ID элемента"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgPersistenceFailure = "не удалось сохранить изменение, попробуйте ещё раз"
)

type Handler struct {
	useCase DeleteItemUseCase
	logger  Logger
}

func NewHandler(useCase DeleteItemUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id}/items/{itemId} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	err = h.useCase.Execute(r.Context(), &deleteItem.Request{
		SessionID: sessionID,
		ItemID:    itemID,
	})
	if err != nil {
		switch {
		case errors.Is(err, deleteItem.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id}/items/{itemId} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, deleteItem.ErrItemNotFound):
			// Удаление идемпотентно: элемента и так нет - для клиента это успех
			h.logger.Warn("DELETE /sessions/{id}/items/{itemId} - Item already absent: item_id=%d", itemID)
			handlers.RespondJSON(w, http.StatusNoContent, nil)

		case errors.Is(err, deleteItem.ErrInvalidInput):
			h.logger.Warn("DELETE /sessions/{id}/items/{itemId} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItemID)

		case errors.Is(err, deleteItem.ErrPersistenceFailure):
			h.logger.Error("DELETE /sessions/{id}/items/{itemId} - Persistence failure: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPersistenceFailure)

		default:
			h.logger.Error("DELETE /sessions/{id}/items/{itemId} - Failed to delete item: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id}/items/{itemId} - Item deleted: session_id=%s, item_id=%d",
		sessionID, itemID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
