package get_week_summary

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getWeekSummary "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_week_summary"
)

// ResourceCountResponse количество элементов ресурса за день
type ResourceCountResponse struct {
	ResourceID int64 `json:"resourceId"`
	Count      int   `json:"count"`
}

// DayResponse сводка одного дня недели
type DayResponse struct {
	Date        string                  `json:"date"`
	Total       int                     `json:"total"`
	Conflicting int                     `json:"conflicting"`
	PerResource []ResourceCountResponse `json:"perResource"`
}

// WeekSummaryResponse HTTP response model
type WeekSummaryResponse struct {
	StartDate string        `json:"startDate"`
	Days      []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekSummary.Response) *WeekSummaryResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		perResource := make([]ResourceCountResponse, 0, len(day.PerResource))
		for _, rc := range day.PerResource {
			perResource = append(perResource, ResourceCountResponse{
				ResourceID: rc.ResourceID,
				Count:      rc.Count,
			})
		}
		days = append(days, DayResponse{
			Date:        day.Date,
			Total:       day.Total,
			Conflicting: day.Conflicting,
			PerResource: perResource,
		})
	}

	return &WeekSummaryResponse{
		StartDate: resp.StartDate.Format(domain.DateFormat),
		Days:      days,
	}
}
