package apperrors

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// UserMessage возвращает сообщение, пригодное для показа пользователю.
// Страницы рендерят ошибки инлайн; неизвестные ошибки скрываются
// за общим текстом.
func UserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Message
	}
	return "Something went wrong"
}
