// Package storetest - in-memory имитация внешнего хранилища данных
// (generic-эндпоинты коллекций /users и /jobs) поверх httptest.
// Используется юнит- и сквозными тестами вместо реального хранилища.
package storetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"jobtrack/internal/models"
)

type Server struct {
	*httptest.Server

	mu         sync.Mutex
	users      []models.UserAccount
	jobs       []models.JobApplication
	nextUserID int64
	nextJobID  int64
	failAll    bool
}

func New() *Server {
	s := &Server{nextUserID: 1, nextJobID: 1}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// FailAll переводит хранилище в режим, когда каждый запрос
// отвечает 500 (моделирует недоступность коллаборатора).
func (s *Server) FailAll(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAll = fail
}

// SeedUser кладет учетную запись напрямую, минуя HTTP.
func (s *Server) SeedUser(username, passwordHash string) models.UserAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.UserAccount{ID: s.nextUserID, Username: username, PasswordHash: passwordHash}
	s.nextUserID++
	s.users = append(s.users, u)
	return u
}

// SeedJob кладет отклик напрямую, минуя HTTP.
func (s *Server) SeedJob(job models.JobApplication) models.JobApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.ID = s.nextJobID
	s.nextJobID++
	s.jobs = append(s.jobs, job)
	return job
}

// Jobs возвращает копию всей коллекции откликов.
func (s *Server) Jobs() []models.JobApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.JobApplication, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Users возвращает копию всей коллекции учетных записей.
func (s *Server) Users() []models.UserAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.UserAccount, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failAll {
		http.Error(w, `{"error":"store down"}`, http.StatusInternalServerError)
		return
	}

	switch {
	case r.URL.Path == "/users" && r.Method == http.MethodGet:
		s.listUsers(w, r)
	case r.URL.Path == "/users" && r.Method == http.MethodPost:
		s.createUser(w, r)
	case r.URL.Path == "/jobs" && r.Method == http.MethodGet:
		s.listJobs(w, r)
	case r.URL.Path == "/jobs" && r.Method == http.MethodPost:
		s.createJob(w, r)
	case strings.HasPrefix(r.URL.Path, "/jobs/") && r.Method == http.MethodPut:
		s.updateJob(w, r)
	case strings.HasPrefix(r.URL.Path, "/jobs/") && r.Method == http.MethodDelete:
		s.deleteJob(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	matched := []models.UserAccount{}
	for _, u := range s.users {
		if username == "" || u.Username == username {
			matched = append(matched, u)
		}
	}
	writeJSON(w, http.StatusOK, matched)
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var u models.UserAccount
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	u.ID = s.nextUserID
	s.nextUserID++
	s.users = append(s.users, u)
	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	rawUserID := r.URL.Query().Get("userId")
	matched := []models.JobApplication{}
	for _, j := range s.jobs {
		if rawUserID == "" || strconv.FormatInt(j.UserID, 10) == rawUserID {
			matched = append(matched, j)
		}
	}
	writeJSON(w, http.StatusOK, matched)
}

func (s *Server) createJob(w http.ResponseWriter, r *http.Request) {
	var j models.JobApplication
	if err := json.NewDecoder(r.Body).Decode(&j); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	j.ID = s.nextJobID
	s.nextJobID++
	s.jobs = append(s.jobs, j)
	writeJSON(w, http.StatusCreated, j)
}

func (s *Server) updateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	var j models.JobApplication
	if err := json.NewDecoder(r.Body).Decode(&j); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			j.ID = id
			s.jobs[i] = j
			writeJSON(w, http.StatusOK, j)
			return
		}
	}
	http.NotFound(w, r)
}

func (s *Server) deleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := jobID(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{})
			return
		}
	}
	http.NotFound(w, r)
}

func jobID(path string) (int64, bool) {
	raw := strings.TrimPrefix(path, "/jobs/")
	id, err := strconv.ParseInt(raw, 10, 64)
	return id, err == nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
