package duplicate_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	duplicateItem "github.com/m04kA/SMC-ScheduleService/internal/usecase/duplicate_item"
)

const (
	msgInvalidItemID      = "некорректный ID элемента"
	msgSessionNotFound    = "сессия не найдена или истекла"
	msgItemNotFound       = "элемент не найден"
	msgPersistenceFailure = "не удалось сохранить изменение, попробуйте ещё раз"
)

type Handler struct {
	useCase DuplicateItemUseCase
	logger  Logger
}

func NewHandler(useCase DuplicateItemUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/items/{itemId}/duplicate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/items/{itemId}/duplicate - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &duplicateItem.Request{
		SessionID: sessionID,
		ItemID:    itemID,
	})
	if err != nil {
		switch {
		case errors.Is(err, duplicateItem.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/items/{itemId}/duplicate - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, duplicateItem.ErrItemNotFound):
			h.logger.Warn("POST /sessions/{id}/items/{itemId}/duplicate - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, duplicateItem.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/items/{itemId}/duplicate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItemID)

		case errors.Is(err, duplicateItem.ErrPersistenceFailure):
			h.logger.Error("POST /sessions/{id}/items/{itemId}/duplicate - Persistence failure: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPersistenceFailure)

		default:
			h.logger.Error("POST /sessions/{id}/items/{itemId}/duplicate - Failed to duplicate item: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/items/{itemId}/duplicate - Item duplicated: session_id=%s, source_id=%d, item_id=%d",
		sessionID, itemID, result.Item.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
