package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/algorithms"
	"jobtrack/internal/middleware"
	"jobtrack/internal/models"
	"jobtrack/internal/navstate"
	"jobtrack/internal/services"
	"jobtrack/internal/services/dto"
	"jobtrack/pkg/apperrors"
)

// PageHandler - диспетчер страниц. Весь рендер идет через GET /:
// состояние восстанавливается из query string, guard вычисляется
// перед выбором страницы, на каждом рендере.
type PageHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewPageHandler(base *BaseHandler, jobService services.JobService) *PageHandler {
	return &PageHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *PageHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Index)
}

// Index - единая точка входа всех страниц.
func (h *PageHandler) Index(c *gin.Context) {
	q := c.Request.URL.Query()
	st := navstate.Parse(q)

	// Адресная строка обязана нести каноническую сериализацию
	// состояния: невалидный page, посторонние ключи и выписанные
	// явно значения по умолчанию переписываются редиректом.
	if len(q) > 0 && q.Encode() != st.Encode() {
		c.Redirect(http.StatusSeeOther, st.Path())
		return
	}

	_, loggedIn := middleware.CurrentUser(c)
	if target, redirected := guard(st, loggedIn); redirected {
		c.Redirect(http.StatusSeeOther, target.Path())
		return
	}

	switch st.Page {
	case navstate.PageLanding:
		c.HTML(http.StatusOK, "landing.tmpl", h.PageData(c, st, nil))
	case navstate.PageLogin:
		c.HTML(http.StatusOK, "login.tmpl", h.PageData(c, st, nil))
	case navstate.PageRegister:
		c.HTML(http.StatusOK, "register.tmpl", h.PageData(c, st, nil))
	case navstate.PageHome:
		h.RenderHome(c, st, http.StatusOK, nil)
	case navstate.PageJobDetail:
		h.RenderDetail(c, st, http.StatusOK, nil)
	default:
		c.HTML(http.StatusNotFound, "not_found.tmpl", h.PageData(c, st, nil))
	}
}

// NotFound - ответ на незарегистрированный путь: адрес
// переписывается на страницу not-found, как при неизвестном ?page=.
func (h *PageHandler) NotFound(c *gin.Context) {
	st := navstate.Default().Merge(navstate.Partial{Page: navstate.PagePtr(navstate.PageNotFound)})
	c.Redirect(http.StatusSeeOther, st.Path())
}

// guard - защита маршрутов: защищенные страницы без сессии ведут
// на login. Вычисляется при каждом рендере, не только при переходе.
func guard(st navstate.State, loggedIn bool) (navstate.State, bool) {
	if st.Page.Protected() && !loggedIn {
		return st.Merge(navstate.Partial{Page: navstate.PagePtr(navstate.PageLogin)}), true
	}
	return st, false
}

// jobRow - строка списка с готовой ссылкой на детальную страницу.
type jobRow struct {
	models.JobApplication
	DetailPath string
}

// RenderHome перечитывает коллекцию, применяет конвейер
// поиск/фильтр/сортировка и рендерит список. Ошибка хранилища
// дает баннер и пустой список: состояние не меняется.
func (h *PageHandler) RenderHome(c *gin.Context, st navstate.State, status int, extra gin.H) {
	user, _ := middleware.CurrentUser(c)

	data := gin.H{}
	jobs, err := h.jobService.List(c.Request.Context(), h.GetStore(c), user.ID)
	if err != nil {
		data["Alert"] = apperrors.UserMessage(err)
		status = http.StatusBadGateway
	}

	visible := algorithms.FilterJobs(jobs, st)
	rows := make([]jobRow, 0, len(visible))
	for _, job := range visible {
		detail := st.Merge(navstate.Partial{
			Page:  navstate.PagePtr(navstate.PageJobDetail),
			JobID: navstate.JobIDPtr(job.ID),
		})
		rows = append(rows, jobRow{JobApplication: job, DetailPath: detail.Path()})
	}
	data["Jobs"] = rows

	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "home.tmpl", h.PageData(c, st, data))
}

// RenderDetail рендерит детальную страницу выбранного отклика.
// Отсутствующая или чужая запись - возврат на home (не ошибка).
func (h *PageHandler) RenderDetail(c *gin.Context, st navstate.State, status int, extra gin.H) {
	backHome := st.Merge(navstate.Partial{
		Page:  navstate.PagePtr(navstate.PageHome),
		JobID: navstate.JobIDPtr(0),
	})

	if st.JobID == 0 {
		c.Redirect(http.StatusSeeOther, backHome.Path())
		return
	}

	user, _ := middleware.CurrentUser(c)
	job, err := h.jobService.Get(c.Request.Context(), h.GetStore(c), user.ID, st.JobID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrJobNotFound) {
			c.Redirect(http.StatusSeeOther, backHome.Path())
			return
		}
		h.RenderHome(c, backHome, http.StatusBadGateway, gin.H{"Alert": apperrors.UserMessage(err)})
		return
	}

	data := gin.H{
		"Job":       job,
		"BackQuery": backHome.Encode(),
		"Form": dto.JobForm{
			Company:      job.Company,
			Role:         job.Role,
			Status:       string(job.Status),
			DateApplied:  job.DateApplied,
			Duties:       job.Duties,
			Requirements: job.Requirements,
			Address:      job.Address,
			Contact:      job.Contact,
		},
	}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "job_detail.tmpl", h.PageData(c, st, data))
}
