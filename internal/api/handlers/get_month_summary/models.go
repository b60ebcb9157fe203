package get_month_summary

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getMonthSummary "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_month_summary"
)

// DayResourceCountResponse счётчик элементов пары (дата, ресурс)
type DayResourceCountResponse struct {
	Date       string `json:"date"`
	ResourceID int64  `json:"resourceId"`
	Count      int    `json:"count"`
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
}

// PeekResponse отсортированный список элементов тапнутой даты
type PeekResponse struct {
	Date  string         `json:"date"`
	Items []ItemResponse `json:"items"`
}

// MonthSummaryResponse HTTP response model
type MonthSummaryResponse struct {
	Year   int                        `json:"year"`
	Month  int                        `json:"month"`
	Counts []DayResourceCountResponse `json:"counts"`
	Peek   *PeekResponse              `json:"peek,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthSummary.Response) *MonthSummaryResponse {
	counts := make([]DayResourceCountResponse, 0, len(resp.Counts))
	for _, c := range resp.Counts {
		counts = append(counts, DayResourceCountResponse{
			Date:       c.Date,
			ResourceID: c.ResourceID,
			Count:      c.Count,
		})
	}

	var peek *PeekResponse
	if resp.Peek != nil {
		items := make([]ItemResponse, 0, len(resp.Peek.Items))
		for _, item := range resp.Peek.Items {
			items = append(items, ItemResponse{
				ID:              item.ID,
				ResourceID:      item.ResourceID,
				Date:            item.Date.Format(domain.DateFormat),
				StartTime:       item.StartTime.String(),
				DurationMinutes: item.DurationMinutes,
				Label:           item.Label,
				Subtitle:        item.Subtitle,
			})
		}
		peek = &PeekResponse{
			Date:  resp.Peek.Date,
			Items: items,
		}
	}

	return &MonthSummaryResponse{
		Year:   resp.Year,
		Month:  int(resp.Month),
		Counts: counts,
		Peek:   peek,
	}
}
