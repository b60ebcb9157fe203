package roster

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Service сервис чтения ростера ресурсов
// Ростер - единственный список мастеров на сессию, передаваемый явно во
// все компоненты ядра: никакого скрытого разделяемого состояния
type Service struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса ростера
func NewService(resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// List возвращает полный ростер в порядке отображения колонок
func (s *Service) List(ctx context.Context) (domain.Roster, error) {
	roster, err := s.resourceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d resources", len(roster))
	return roster, nil
}
