package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/middleware"
	"jobtrack/internal/navstate"
	"jobtrack/internal/services"
	"jobtrack/internal/services/dto"
	"jobtrack/pkg/apperrors"
)

// JobHandler - мутации коллекции откликов. Каждая мутация по
// протоколу сопровождается полной перезагрузкой коллекции (внутри
// JobService); оптимистичных правок нет.
type JobHandler struct {
	*BaseHandler
	jobService services.JobService
	pages      *PageHandler
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, pages *PageHandler) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
		pages:       pages,
	}
}

func (h *JobHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/jobs", h.Create)
	r.POST("/jobs/:id", h.Update)
	r.POST("/jobs/:id/delete", h.Delete)
}

// Create - добавление отклика с формы на home.
func (h *JobHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, loginState().Path())
		return
	}

	st := h.navFromQuery(c, navstate.PageHome)

	var form dto.JobForm
	if err := h.BindForm(c, &form); err != nil {
		h.pages.RenderHome(c, st, http.StatusBadRequest, gin.H{
			"FieldErrors": FieldErrors(err),
			"Form":        form,
		})
		return
	}

	if _, err := h.jobService.Add(c.Request.Context(), h.GetStore(c), user.ID, &form); err != nil {
		h.pages.RenderHome(c, st, http.StatusBadGateway, gin.H{
			"Alert": apperrors.UserMessage(err),
			"Form":  form,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, st.Path())
}

// Update - полная замена записи с детальной страницы.
func (h *JobHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, loginState().Path())
		return
	}

	jobID, ok := h.jobIDParam(c)
	if !ok {
		return
	}

	st := h.navFromQuery(c, navstate.PageJobDetail)
	st = st.Merge(navstate.Partial{JobID: navstate.JobIDPtr(jobID)})

	var form dto.JobForm
	if err := h.BindForm(c, &form); err != nil {
		h.pages.RenderDetail(c, st, http.StatusBadRequest, gin.H{
			"FieldErrors": FieldErrors(err),
			"Form":        form,
		})
		return
	}

	if _, err := h.jobService.Update(c.Request.Context(), h.GetStore(c), user.ID, jobID, &form); err != nil {
		if apperrors.Is(err, apperrors.ErrJobNotFound) {
			c.Redirect(http.StatusSeeOther, h.homePath(st))
			return
		}
		h.pages.RenderDetail(c, st, http.StatusBadGateway, gin.H{
			"Alert": apperrors.UserMessage(err),
			"Form":  form,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, st.Path())
}

// Delete - удаление за подтверждением. Без явного подтверждения
// состояние не меняется вовсе (ни одного обращения к хранилищу).
// Удаление открытой записи сбрасывает выбор и ведет на home.
func (h *JobHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, loginState().Path())
		return
	}

	jobID, ok := h.jobIDParam(c)
	if !ok {
		return
	}

	st := h.navFromQuery(c, navstate.PageJobDetail)
	st = st.Merge(navstate.Partial{JobID: navstate.JobIDPtr(jobID)})

	if c.PostForm("confirm") != "yes" {
		c.Redirect(http.StatusSeeOther, st.Path())
		return
	}

	if _, err := h.jobService.Delete(c.Request.Context(), h.GetStore(c), user.ID, jobID); err != nil {
		if apperrors.Is(err, apperrors.ErrJobNotFound) {
			c.Redirect(http.StatusSeeOther, h.homePath(st))
			return
		}
		h.pages.RenderDetail(c, st, http.StatusBadGateway, gin.H{
			"Alert": apperrors.UserMessage(err),
		})
		return
	}

	c.Redirect(http.StatusSeeOther, h.homePath(st))
}

// navFromQuery восстанавливает навигационное состояние из query
// POST-запроса (формы носят его в action), фиксируя страницу.
func (h *JobHandler) navFromQuery(c *gin.Context, page navstate.Page) navstate.State {
	st := navstate.Parse(c.Request.URL.Query())
	return st.Merge(navstate.Partial{Page: navstate.PagePtr(page)})
}

func (h *JobHandler) homePath(st navstate.State) string {
	home := st.Merge(navstate.Partial{
		Page:  navstate.PagePtr(navstate.PageHome),
		JobID: navstate.JobIDPtr(0),
	})
	return home.Path()
}

func (h *JobHandler) jobIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, navstate.Default().Merge(navstate.Partial{
			Page: navstate.PagePtr(navstate.PageHome),
		}).Path())
		return 0, false
	}
	return id, true
}
