package delete_item

// Request модель запроса на удаление элемента расписания
type Request struct {
	SessionID string
	ItemID    int64
}
