package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrInternal возвращается при внутренних ошибках менеджера сессий
	ErrInternal = errors.New("sessions: internal error")
)
