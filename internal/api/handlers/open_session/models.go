package open_session

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	openSession "github.com/m04kA/SMC-ScheduleService/internal/usecase/open_session"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// GridParamsRequest необязательные параметры сетки в теле запроса
type GridParamsRequest struct {
	DayStart    string `json:"dayStart"`    // "08:00"
	SlotMinutes int    `json:"slotMinutes"` // 30
	SlotCount   int    `json:"slotCount"`   // 24
}

// OpenSessionRequest HTTP request model
type OpenSessionRequest struct {
	ResourceIDs []int64            `json:"resourceIds,omitempty"` // пусто = весь ростер
	StartDate   string             `json:"startDate"`             // "2026-03-02"
	EndDate     string             `json:"endDate"`
	Grid        *GridParamsRequest `json:"grid,omitempty"`
}

// GridResponse параметры временной сетки сессии
type GridResponse struct {
	StartOfDay  string `json:"startOfDay"`
	SlotMinutes int    `json:"slotMinutes"`
	SlotCount   int    `json:"slotCount"`
}

// ResourceResponse HTTP модель ресурса
type ResourceResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// OpenSessionResponse HTTP response model
type OpenSessionResponse struct {
	SessionID string             `json:"sessionId"`
	Grid      GridResponse       `json:"grid"`
	Resources []ResourceResponse `json:"resources"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	ItemCount int                `json:"itemCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *OpenSessionRequest) ToUseCaseRequest() (*openSession.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	var grid *openSession.GridParams
	if r.Grid != nil {
		grid = &openSession.GridParams{
			SlotMinutes: r.Grid.SlotMinutes,
			SlotCount:   r.Grid.SlotCount,
		}
		if r.Grid.DayStart != "" {
			dayStart, err := types.NewTimeStringFromString(r.Grid.DayStart)
			if err != nil {
				return nil, err
			}
			grid.DayStart = dayStart
		}
	}

	return &openSession.Request{
		ResourceIDs: r.ResourceIDs,
		StartDate:   startDate,
		EndDate:     endDate,
		Grid:        grid,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *openSession.Response) *OpenSessionResponse {
	resources := make([]ResourceResponse, 0, len(resp.Roster))
	for _, res := range resp.Roster {
		resources = append(resources, ResourceResponse{
			ID:    res.ID,
			Name:  res.Name,
			Color: res.Color,
		})
	}

	return &OpenSessionResponse{
		SessionID: resp.SessionID,
		Grid: GridResponse{
			StartOfDay:  resp.Grid.StartOfDay.String(),
			SlotMinutes: resp.Grid.SlotMinutes,
			SlotCount:   resp.Grid.SlotCount,
		},
		Resources: resources,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		ItemCount: resp.ItemCount,
	}
}
