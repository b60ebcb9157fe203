package open_session

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("open_session: invalid input data")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("open_session: invalid date range")

	// ErrNoResources возвращается, когда для сессии не нашлось ни одного ресурса
	ErrNoResources = errors.New("open_session: no resources available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("open_session: internal error")
)
