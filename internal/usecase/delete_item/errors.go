package delete_item

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_item: invalid input data")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("delete_item: session not found")

	// ErrItemNotFound возвращается, когда элемент отсутствует в рабочем наборе
	// Для вызывающей стороны это нефатально: удаление идемпотентно
	ErrItemNotFound = errors.New("delete_item: item not found")

	// ErrPersistenceFailure возвращается, когда хранилище не подтвердило удаление
	// Элемент к этому моменту уже восстановлен в рабочем наборе; ошибка ретраябельна
	ErrPersistenceFailure = errors.New("delete_item: failed to delete item")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_item: internal error")
)
