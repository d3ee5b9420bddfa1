package handlers

import (
	"github.com/gin-gonic/gin"

	"jobtrack/internal/logger"
	"jobtrack/internal/middleware"
	"jobtrack/internal/models"
	"jobtrack/internal/navstate"
	"jobtrack/internal/services/dto"
	"jobtrack/internal/store"
	"jobtrack/internal/validator"
	"jobtrack/pkg/contextkeys"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// GetStore извлекает клиент внешнего хранилища из gin.Context.
// Вызывается в каждом хендлере, который обращается к сервисам.
func (h *BaseHandler) GetStore(c *gin.Context) *store.Client {
	storeKey := string(contextkeys.StoreContextKey)

	val, ok := c.Get(storeKey)
	if !ok {
		// Этого не должно случиться, если StoreMiddleware настроен
		logger.CtxError(c.Request.Context(), "critical error: store key not found in context", "key", storeKey)
		panic("critical error: StoreMiddleware did not set the store key")
	}

	client, ok := val.(*store.Client)
	if !ok {
		panic("critical error: unexpected store client type in context")
	}
	return client
}

// BindForm связывает форму и прогоняет кастомную валидацию.
// Возвращаемая ошибка (если это *validator.ValidationError)
// содержит карту поле -> сообщение для инлайн-рендера.
func (h *BaseHandler) BindForm(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil {
		return err
	}
	return h.validator.Validate(obj)
}

// FieldErrors достает карту ошибок валидации для шаблона.
func FieldErrors(err error) map[string]string {
	var vErr *validator.ValidationError
	if ok := asValidationError(err, &vErr); ok {
		return vErr.Errors
	}
	return map[string]string{"form": "Invalid input"}
}

func asValidationError(err error, target **validator.ValidationError) bool {
	v, ok := err.(*validator.ValidationError)
	if !ok {
		return false
	}
	*target = v
	return true
}

// PageData собирает общие для всех страниц данные шаблона.
func (h *BaseHandler) PageData(c *gin.Context, st navstate.State, extra gin.H) gin.H {
	user, loggedIn := middleware.CurrentUser(c)

	data := gin.H{
		"Nav": gin.H{
			"Page":   string(st.Page),
			"Search": st.Search,
			"Filter": string(st.Filter),
			"Sort":   string(st.Sort),
			"JobID":  st.JobID,
			"Query":  st.Encode(),
		},
		"User":        user,
		"LoggedIn":    loggedIn,
		"Loading":     h.GetStore(c).Loading(),
		"Statuses":    statusNames(),
		"Form":        dto.JobForm{},
		"Alert":       "",
		"Error":       "",
		"Username":    "",
		"FieldErrors": nil,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func statusNames() []string {
	names := make([]string, 0, len(models.JobStatuses))
	for _, s := range models.JobStatuses {
		names = append(names, string(s))
	}
	return names
}
