package move_item

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	moveItem "github.com/m04kA/SMC-ScheduleService/internal/usecase/move_item"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// MoveItemRequest HTTP request model
// newStartTime - уже квантованное время ("10:30"), не пиксельные координаты
type MoveItemRequest struct {
	NewResourceID int64  `json:"newResourceId"`
	NewStartTime  string `json:"newStartTime"`
}

// ItemResponse HTTP модель элемента расписания
type ItemResponse struct {
	ID              int64   `json:"id"`
	ResourceID      int64   `json:"resourceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Label           string  `json:"label"`
	Subtitle        *string `json:"subtitle,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// MoveItemResponse HTTP response model
type MoveItemResponse struct {
	Item      ItemResponse `json:"item"`
	Conflicts []int64      `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveItemRequest) ToUseCaseRequest(sessionID string, itemID int64) (*moveItem.Request, error) {
	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	return &moveItem.Request{
		SessionID:     sessionID,
		ItemID:        itemID,
		NewResourceID: r.NewResourceID,
		NewStartTime:  newStartTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *moveItem.Response) *MoveItemResponse {
	conflicts := resp.Conflicts
	if conflicts == nil {
		conflicts = []int64{}
	}

	return &MoveItemResponse{
		Item: ItemResponse{
			ID:              resp.Item.ID,
			ResourceID:      resp.Item.ResourceID,
			Date:            resp.Item.Date.Format(domain.DateFormat),
			StartTime:       resp.Item.StartTime.String(),
			DurationMinutes: resp.Item.DurationMinutes,
			Label:           resp.Item.Label,
			Subtitle:        resp.Item.Subtitle,
			CreatedAt:       resp.Item.CreatedAt.Format(time.RFC3339),
			UpdatedAt:       resp.Item.UpdatedAt.Format(time.RFC3339),
		},
		Conflicts: conflicts,
	}
}
