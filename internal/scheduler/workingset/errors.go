package workingset

import "errors"

var (
	// ErrInvalidDuration возвращается при неположительной длительности
	ErrInvalidDuration = errors.New("workingset: duration must be positive")

	// ErrInvalidTime возвращается при некорректном времени начала
	ErrInvalidTime = errors.New("workingset: invalid start time")

	// ErrItemNotFound возвращается, когда элемент отсутствует в рабочем наборе
	ErrItemNotFound = errors.New("workingset: item not found")

	// ErrInvalidTarget возвращается, когда целевой ресурс отсутствует в ростере
	ErrInvalidTarget = errors.New("workingset: resource is not in the roster")
)
