package move_item

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_item: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("move_item: session not found")

	// ErrItemNotFound возвращается, когда элемент отсутствует в рабочем наборе
	ErrItemNotFound = errors.New("move_item: item not found")

	// ErrInvalidTarget возвращается, когда целевой ресурс отсутствует в ростере сессии
	// Элемент остаётся на прежнем месте
	ErrInvalidTarget = errors.New("move_item: resource is not in the session roster")

	// ErrPersistenceFailure возвращается, когда хранилище не подтвердило мутацию
	// Локальная мутация к этому моменту уже откачена; ошибка ретраябельна
	ErrPersistenceFailure = errors.New("move_item: failed to persist item")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_item: internal error")
)
