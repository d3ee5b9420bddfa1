package app_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack/internal/app"
	"jobtrack/internal/auth"
	"jobtrack/internal/config"
	"jobtrack/internal/store"
	"jobtrack/internal/store/storetest"
)

// webTest - поднятое приложение поверх in-memory хранилища.
// client несет cookie jar (сессия), как браузер.
type webTest struct {
	store  *storetest.Server
	app    *httptest.Server
	client *http.Client
}

func newWebTest(t *testing.T) *webTest {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := storetest.New()
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Store.BaseURL = srv.URL
	cfg.Store.TimeoutSeconds = 5
	cfg.Session.Secret = "test-secret"
	cfg.Session.TTL = 60
	config.AppConfig = cfg

	storeClient, err := store.New(srv.URL, 5*time.Second)
	require.NoError(t, err)

	appServer := httptest.NewServer(app.SetupRouter(cfg, storeClient))
	t.Cleanup(appServer.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &webTest{
		store: srv,
		app:   appServer,
		client: &http.Client{
			Jar: jar,
			// Редиректы проверяются явно, клиент за ними не ходит
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (w *webTest) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := w.client.Get(w.app.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (w *webTest) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := w.client.PostForm(w.app.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// login проходит форму входа и проверяет, что cookie сессии выдан.
func (w *webTest) login(t *testing.T, username, password string) {
	t.Helper()
	resp, _ := w.postForm(t, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/?page=home", resp.Header.Get("Location"))
}

func (w *webTest) seedUser(t *testing.T, username, password string) int64 {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return w.store.SeedUser(username, hash).ID
}

func acmeValues() url.Values {
	return url.Values{
		"company":     {"Acme"},
		"role":        {"Engineer"},
		"status":      {"Applied"},
		"dateApplied": {"2024-01-10"},
		"duties":      {"Build things"},
		"contact":     {"hr@acme.test"},
	}
}

// TestLandingPage - корень без сессии рендерит landing
func TestLandingPage(t *testing.T) {
	w := newWebTest(t)

	resp, body := w.get(t, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Track every application")
	assert.Contains(t, body, "/?page=login")
}

// TestUnknownPageRewritten - невалидный page переписывает адрес
// на not-found, затем рендерится 404
func TestUnknownPageRewritten(t *testing.T) {
	w := newWebTest(t)

	resp, _ := w.get(t, "/?page=bogus")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?page=not-found", resp.Header.Get("Location"))

	resp, body := w.get(t, resp.Header.Get("Location"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "This page does not exist.")
}

// TestUnknownPathRewritten - незарегистрированный путь ведет на
// ту же страницу not-found, что и неизвестное значение page
func TestUnknownPathRewritten(t *testing.T) {
	w := newWebTest(t)

	resp, _ := w.get(t, "/no/such/path")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?page=not-found", resp.Header.Get("Location"))
}

// TestDefaultsStrippedFromQuery - явно выписанные значения по
// умолчанию (форма поиска шлет все поля) переписываются на
// каноническую сериализацию
func TestDefaultsStrippedFromQuery(t *testing.T) {
	w := newWebTest(t)
	w.seedUser(t, "alice", "super_password123")
	w.login(t, "alice", "super_password123")

	resp, _ := w.get(t, "/?page=home&search=&filter=all&sort=descending")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?page=home", resp.Header.Get("Location"))

	// Посторонний ключ тоже выпадает из адресной строки
	resp, _ = w.get(t, "/?page=home&utm_source=mail")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?page=home", resp.Header.Get("Location"))

	// Каноническое состояние рендерится без редиректа
	resp, _ = w.get(t, "/?page=home&filter=Rejected")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestGuardRedirectsAnonymous - защищенные страницы без сессии
// ведут на login; guard срабатывает на каждом рендере
func TestGuardRedirectsAnonymous(t *testing.T) {
	w := newWebTest(t)

	resp, _ := w.get(t, "/?page=home")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?page=login", resp.Header.Get("Location"))

	resp, _ = w.get(t, "/?jobId=3&page=job-detail")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?jobId=3&page=login", resp.Header.Get("Location"))
}

// TestRegisterFlow - регистрация, конфликт имени, вход
func TestRegisterFlow(t *testing.T) {
	w := newWebTest(t)

	resp, _ := w.postForm(t, "/register", url.Values{
		"username": {"bob"},
		"password": {"super_password123"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?page=login", resp.Header.Get("Location"))
	require.Len(t, w.store.Users(), 1)
	assert.NotEqual(t, "super_password123", w.store.Users()[0].PasswordHash)

	// Повторная регистрация того же имени - инлайн конфликт
	resp, body := w.postForm(t, "/register", url.Values{
		"username": {"bob"},
		"password": {"another_password"},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "Username is already taken")
	assert.Len(t, w.store.Users(), 1)

	w.login(t, "bob", "super_password123")

	resp, body = w.get(t, "/?page=home")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Signed in as bob")
	assert.Contains(t, body, "Nothing here yet.")
}

// TestLoginRejected - неверные учетные данные дают инлайн
// сообщение, без cookie и без смены страницы
func TestLoginRejected(t *testing.T) {
	w := newWebTest(t)
	w.seedUser(t, "alice", "super_password123")

	resp, body := w.postForm(t, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, body, "Invalid credentials")

	// Сессии нет - home по-прежнему за guard
	resp, _ = w.get(t, "/?page=home")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

// TestJobLifecycle - добавление, детальная страница,
// редактирование и удаление с подтверждением
func TestJobLifecycle(t *testing.T) {
	w := newWebTest(t)
	userID := w.seedUser(t, "alice", "super_password123")
	w.login(t, "alice", "super_password123")

	// Добавление: редирект на каноническое состояние home
	resp, _ := w.postForm(t, "/jobs?page=home", acmeValues())
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?page=home", resp.Header.Get("Location"))

	stored := w.store.Jobs()
	require.Len(t, stored, 1)
	assert.Equal(t, userID, stored[0].UserID)
	require.Equal(t, int64(1), stored[0].ID)

	resp, body := w.get(t, "/?page=home")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "Applications (1)")

	// Детальная страница выбранного отклика
	resp, body = w.get(t, "/?jobId=1&page=job-detail")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "Engineer")

	// Редактирование: полная замена записи
	form := acmeValues()
	form.Set("status", "Interviewed")
	resp, _ = w.postForm(t, "/jobs/1?jobId=1&page=job-detail", form)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?jobId=1&page=job-detail", resp.Header.Get("Location"))
	assert.Equal(t, "Interviewed", string(w.store.Jobs()[0].Status))

	// Без подтверждения удаление не происходит
	resp, _ = w.postForm(t, "/jobs/1/delete?jobId=1&page=job-detail", url.Values{})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?jobId=1&page=job-detail", resp.Header.Get("Location"))
	assert.Len(t, w.store.Jobs(), 1)

	// С подтверждением: запись удалена, jobId сброшен, возврат на home
	resp, _ = w.postForm(t, "/jobs/1/delete?jobId=1&page=job-detail", url.Values{
		"confirm": {"yes"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?page=home", resp.Header.Get("Location"))
	assert.Empty(t, w.store.Jobs())
}

// TestSearchFilterSortOnHome - навигационное состояние из query
// управляет видимой частью коллекции
func TestSearchFilterSortOnHome(t *testing.T) {
	w := newWebTest(t)
	w.seedUser(t, "alice", "super_password123")
	w.login(t, "alice", "super_password123")

	for _, f := range []url.Values{
		{"company": {"Acme"}, "role": {"Engineer"}, "status": {"Applied"}, "dateApplied": {"2024-01-10"}},
		{"company": {"Globex"}, "role": {"Manager"}, "status": {"Rejected"}, "dateApplied": {"2024-03-05"}},
	} {
		resp, _ := w.postForm(t, "/jobs?page=home", f)
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	}

	resp, body := w.get(t, "/?page=home&search=acme")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Acme")
	assert.NotContains(t, body, "Globex")
	assert.Contains(t, body, "Applications (1)")

	resp, body = w.get(t, "/?page=home&filter=Rejected")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Globex")
	assert.NotContains(t, body, "Acme")

	resp, body = w.get(t, "/?page=home")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Applications (2)")
}

// TestDetailOfMissingJob - отсутствующая запись возвращает на home
func TestDetailOfMissingJob(t *testing.T) {
	w := newWebTest(t)
	w.seedUser(t, "alice", "super_password123")
	w.login(t, "alice", "super_password123")

	resp, _ := w.get(t, "/?jobId=42&page=job-detail")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?page=home", resp.Header.Get("Location"))
}

// TestStoreDownAlert - недоступное хранилище дает баннер на home,
// состояние не меняется
func TestStoreDownAlert(t *testing.T) {
	w := newWebTest(t)
	w.seedUser(t, "alice", "super_password123")
	w.login(t, "alice", "super_password123")

	w.store.FailAll(true)

	resp, body := w.get(t, "/?page=home")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Data store is unavailable")
}

// TestLogout - выход стирает cookie, защищенные страницы снова
// за guard
func TestLogout(t *testing.T) {
	w := newWebTest(t)
	w.seedUser(t, "alice", "super_password123")
	w.login(t, "alice", "super_password123")

	resp, _ := w.postForm(t, "/logout", url.Values{})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?page=landing", resp.Header.Get("Location"))

	resp, _ = w.get(t, "/?page=home")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?page=login", resp.Header.Get("Location"))
}
