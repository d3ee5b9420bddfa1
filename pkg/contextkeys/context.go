package contextkeys

// ContextKey - типизированный ключ для context / gin.Context
type ContextKey string

const (
	// StoreContextKey - ключ, под которым middleware кладет клиент
	// внешнего хранилища данных (аналог пула соединений БД)
	StoreContextKey ContextKey = "storeClient"
)
