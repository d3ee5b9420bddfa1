package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack/internal/auth"
	"jobtrack/internal/config"
	"jobtrack/internal/navstate"
	"jobtrack/internal/services"
	"jobtrack/internal/services/dto"
	"jobtrack/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	sessionService services.SessionService
}

func NewAuthHandler(base *BaseHandler, sessionService services.SessionService) *AuthHandler {
	return &AuthHandler{
		BaseHandler:    base,
		sessionService: sessionService,
	}
}

func (h *AuthHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)
}

func loginState() navstate.State {
	return navstate.Default().Merge(navstate.Partial{Page: navstate.PagePtr(navstate.PageLogin)})
}

func registerState() navstate.State {
	return navstate.Default().Merge(navstate.Partial{Page: navstate.PagePtr(navstate.PageRegister)})
}

// Login обрабатывает форму входа. Провал аутентификации - инлайн
// сообщение на той же странице, состояние не меняется; успех -
// cookie сессии и редирект на home.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := h.BindForm(c, &req); err != nil {
		c.HTML(http.StatusBadRequest, "login.tmpl", h.PageData(c, loginState(), gin.H{
			"FieldErrors": FieldErrors(err),
			"Username":    req.Username,
		}))
		return
	}

	account, err := h.sessionService.Login(c.Request.Context(), h.GetStore(c), &req)
	if err != nil {
		extra := gin.H{"Username": req.Username}
		status := http.StatusUnauthorized
		if apperrors.Is(err, apperrors.ErrInvalidCredentials) {
			extra["Error"] = "Invalid credentials"
		} else {
			extra["Alert"] = apperrors.UserMessage(err)
			status = http.StatusBadGateway
		}
		c.HTML(status, "login.tmpl", h.PageData(c, loginState(), extra))
		return
	}

	token, err := auth.GenerateToken(account.ID, account.Username)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "login.tmpl", h.PageData(c, loginState(), gin.H{
			"Alert":    apperrors.UserMessage(apperrors.InternalError(err)),
			"Username": req.Username,
		}))
		return
	}

	h.setSessionCookie(c, token)

	home := navstate.Default().Merge(navstate.Partial{Page: navstate.PagePtr(navstate.PageHome)})
	c.Redirect(http.StatusSeeOther, home.Path())
}

// Register обрабатывает форму регистрации. Занятое имя - инлайн
// конфликт без дальнейших обращений к хранилищу; успех - редирект
// на login (без автологина).
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := h.BindForm(c, &req); err != nil {
		c.HTML(http.StatusBadRequest, "register.tmpl", h.PageData(c, registerState(), gin.H{
			"FieldErrors": FieldErrors(err),
			"Username":    req.Username,
		}))
		return
	}

	_, err := h.sessionService.Register(c.Request.Context(), h.GetStore(c), &req)
	if err != nil {
		extra := gin.H{"Username": req.Username}
		status := http.StatusConflict
		switch {
		case apperrors.Is(err, apperrors.ErrUsernameTaken):
			extra["Error"] = "Username is already taken"
		case apperrors.Is(err, apperrors.ErrWeakPassword):
			extra["Error"] = apperrors.UserMessage(err)
			status = http.StatusBadRequest
		default:
			extra["Alert"] = apperrors.UserMessage(err)
			status = http.StatusBadGateway
		}
		c.HTML(status, "register.tmpl", h.PageData(c, registerState(), extra))
		return
	}

	c.Redirect(http.StatusSeeOther, loginState().Path())
}

// Logout стирает cookie сессии и всегда ведет на landing.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, navstate.Default().Path())
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	cfg := config.GetConfig()
	maxAge := cfg.Session.TTL * 60
	c.SetCookie(auth.SessionCookieName, token, maxAge, "/", "", false, true)
}
