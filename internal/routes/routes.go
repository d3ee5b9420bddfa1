package routes

import (
	"github.com/gin-gonic/gin"

	"jobtrack/internal/handlers"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
) {
	// Страницы: единый GET / с диспетчеризацией по ?page=
	appHandlers.PageHandler.RegisterRoutes(ginRouter)

	// Действия форм (каждое отвечает редиректом на новое состояние)
	appHandlers.AuthHandler.RegisterRoutes(ginRouter)
	appHandlers.JobHandler.RegisterRoutes(ginRouter)

	// Неизвестный путь переписывается на страницу not-found,
	// как и неизвестное значение ?page=
	ginRouter.NoRoute(appHandlers.PageHandler.NotFound)
}
