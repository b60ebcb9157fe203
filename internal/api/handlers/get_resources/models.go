package get_resources

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// ResourceResponse HTTP модель ресурса (колонка календаря)
type ResourceResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// RosterResponse HTTP модель ростера
type RosterResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// FromRoster конвертирует доменный ростер в HTTP response
func FromRoster(roster domain.Roster) *RosterResponse {
	resources := make([]ResourceResponse, 0, len(roster))
	for _, res := range roster {
		resources = append(resources, ResourceResponse{
			ID:    res.ID,
			Name:  res.Name,
			Color: res.Color,
		})
	}
	return &RosterResponse{Resources: resources}
}
