package duplicate_item

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("duplicate_item: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("duplicate_item: session not found")

	// ErrItemNotFound возвращается, когда исходный элемент отсутствует в рабочем наборе
	ErrItemNotFound = errors.New("duplicate_item: item not found")

	// ErrPersistenceFailure возвращается, когда хранилище не подтвердило мутацию
	// Локальная копия к этому моменту уже удалена; ошибка ретраябельна
	ErrPersistenceFailure = errors.New("duplicate_item: failed to persist item")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("duplicate_item: internal error")
)
