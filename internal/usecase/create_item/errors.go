package create_item

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (неположительная длительность, битое время) - элемент не попадает
	// в рабочий набор даже частично
	ErrInvalidInput = errors.New("create_item: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("create_item: session not found")

	// ErrInvalidTarget возвращается, когда целевой ресурс отсутствует в ростере сессии
	ErrInvalidTarget = errors.New("create_item: resource is not in the session roster")

	// ErrPersistenceFailure возвращается, когда хранилище не подтвердило мутацию
	// Локальная мутация к этому моменту уже откачена; ошибка ретраябельна
	ErrPersistenceFailure = errors.New("create_item: failed to persist item")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_item: internal error")
)
