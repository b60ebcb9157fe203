package duplicate_item

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	duplicateItem "github.com/m04kA/SMC-ScheduleService/internal/usecase/duplicate_item"
)

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

// DuplicateItemResponse HTTP response model
type DuplicateItemResponse struct {
	Item      ItemResponse `json:"item"`
	Conflicts []int64      `json:"conflicts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *duplicateItem.Response) *DuplicateItemResponse {
	conflicts := resp.Conflicts
	if conflicts == nil {
		conflicts = []int64{}
	}

	return &DuplicateItemResponse{
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
