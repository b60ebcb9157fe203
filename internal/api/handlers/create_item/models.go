package create_item

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	createItem "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_item"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CreateItemRequest HTTP request model
type CreateItemRequest struct {
	ResourceID      int64   `json:"resourceId"`
	Date            string  `json:"date"`      // "2026-03-02"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Label           string  `json:"label"`
	Subtitle        *string `json:"subtitle,omitempty"`
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

// CreateItemResponse HTTP response model
// Conflicts - id пересекающихся элементов; конфликт не блокирует создание
type CreateItemResponse struct {
	Item      ItemResponse `json:"item"`
	Conflicts []int64      `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateItemRequest) ToUseCaseRequest(sessionID string) (*createItem.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createItem.Request{
		SessionID:       sessionID,
		ResourceID:      r.ResourceID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Label:           r.Label,
		Subtitle:        r.Subtitle,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createItem.Response) *CreateItemResponse {
	conflicts := resp.Conflicts
	if conflicts == nil {
		conflicts = []int64{}
	}

	return &CreateItemResponse{
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
