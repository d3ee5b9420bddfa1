package handlers

// AppHandlers - контейнер всех хендлеров приложения
type AppHandlers struct {
	PageHandler *PageHandler
	AuthHandler *AuthHandler
	JobHandler  *JobHandler
}
