package get_day_layout

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getDayLayout "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_layout"
)

// PositionedItemResponse элемент расписания с геометрией блока
type PositionedItemResponse struct {
	ID              int64   `json:"id"`
	ResourceID      int64   `json:"resourceId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Label           string  `json:"label"`
	Subtitle        *string `json:"subtitle,omitempty"`
	TopOffset       float64 `json:"topOffset"`
	Height          float64 `json:"height"`
	Conflict        bool    `json:"conflict"`
}

// ColumnResponse колонка одного ресурса
type ColumnResponse struct {
	ResourceID   int64                    `json:"resourceId"`
	ResourceName string                   `json:"resourceName"`
	Color        string                   `json:"color,omitempty"`
	Items        []PositionedItemResponse `json:"items"`
}

// GridResponse параметры временной сетки сессии
type GridResponse struct {
	StartOfDay  string `json:"startOfDay"`
	SlotMinutes int    `json:"slotMinutes"`
	SlotCount   int    `json:"slotCount"`
}

// DayLayoutResponse HTTP response model
type DayLayoutResponse struct {
	Date      string           `json:"date"`
	Grid      GridResponse     `json:"grid"`
	RowHeight float64          `json:"rowHeight"`
	Columns   []ColumnResponse `json:"columns"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayLayout.Response) *DayLayoutResponse {
	columns := make([]ColumnResponse, 0, len(resp.Columns))
	for _, col := range resp.Columns {
		items := make([]PositionedItemResponse, 0, len(col.Items))
		for _, pi := range col.Items {
			items = append(items, PositionedItemResponse{
				ID:              pi.Item.ID,
				ResourceID:      pi.Item.ResourceID,
				Date:            pi.Item.Date.Format(domain.DateFormat),
				StartTime:       pi.Item.StartTime.String(),
				DurationMinutes: pi.Item.DurationMinutes,
				Label:           pi.Item.Label,
				Subtitle:        pi.Item.Subtitle,
				TopOffset:       pi.TopOffset,
				Height:          pi.Height,
				Conflict:        pi.Conflict,
			})
		}
		columns = append(columns, ColumnResponse{
			ResourceID:   col.Resource.ID,
			ResourceName: col.Resource.Name,
			Color:        col.Resource.Color,
			Items:        items,
		})
	}

	return &DayLayoutResponse{
		Date: resp.Date.Format(domain.DateFormat),
		Grid: GridResponse{
			StartOfDay:  resp.Grid.StartOfDay.String(),
			SlotMinutes: resp.Grid.SlotMinutes,
			SlotCount:   resp.Grid.SlotCount,
		},
		RowHeight: resp.RowHeight,
		Columns:   columns,
	}
}
