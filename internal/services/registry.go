package services

// ServiceContainer - контейнер всех сервисов приложения
type ServiceContainer struct {
	SessionService SessionService
	JobService     JobService
}
