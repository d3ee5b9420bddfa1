package services

import (
	"context"

	"jobtrack/internal/logger"
	"jobtrack/internal/models"
	"jobtrack/internal/services/dto"
	"jobtrack/internal/store"
	"jobtrack/pkg/apperrors"
)

type JobService interface {
	List(ctx context.Context, st *store.Client, userID int64) ([]models.JobApplication, error)
	Get(ctx context.Context, st *store.Client, userID, jobID int64) (*models.JobApplication, error)
	Add(ctx context.Context, st *store.Client, userID int64, form *dto.JobForm) ([]models.JobApplication, error)
	Update(ctx context.Context, st *store.Client, userID, jobID int64, form *dto.JobForm) ([]models.JobApplication, error)
	Delete(ctx context.Context, st *store.Client, userID, jobID int64) ([]models.JobApplication, error)
}

type JobServiceImpl struct{}

func NewJobService() JobService {
	return &JobServiceImpl{}
}

// List - полная перезагрузка коллекции пользователя.
// Список в памяти всегда является результатом последней успешной
// перезагрузки, оптимистичных локальных правок нет.
func (s *JobServiceImpl) List(ctx context.Context, st *store.Client, userID int64) ([]models.JobApplication, error) {
	return st.ListJobs(ctx, userID)
}

// Get находит отклик в перезагруженной коллекции пользователя.
// Чтение через коллекцию (а не GET /jobs/{id}) гарантирует
// инвариант владения: чужая запись неотличима от отсутствующей.
func (s *JobServiceImpl) Get(ctx context.Context, st *store.Client, userID, jobID int64) (*models.JobApplication, error) {
	jobs, err := st.ListJobs(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == jobID {
			return &jobs[i], nil
		}
	}
	return nil, apperrors.ErrJobNotFound
}

// Add создает отклик и возвращает перезагруженную коллекцию.
func (s *JobServiceImpl) Add(ctx context.Context, st *store.Client, userID int64, form *dto.JobForm) ([]models.JobApplication, error) {
	job := jobFromForm(userID, form)

	created, err := st.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "job application created", "job_id", created.ID)

	return st.ListJobs(ctx, userID)
}

// Update заменяет запись целиком и возвращает перезагруженную
// коллекцию. Перед записью проверяется владение.
func (s *JobServiceImpl) Update(ctx context.Context, st *store.Client, userID, jobID int64, form *dto.JobForm) ([]models.JobApplication, error) {
	if _, err := s.Get(ctx, st, userID, jobID); err != nil {
		return nil, err
	}

	job := jobFromForm(userID, form)
	job.ID = jobID

	if _, err := st.UpdateJob(ctx, job); err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "job application updated", "job_id", jobID)

	return st.ListJobs(ctx, userID)
}

// Delete удаляет запись и возвращает перезагруженную коллекцию.
// Подтверждение удаления - ответственность слоя обработчиков.
func (s *JobServiceImpl) Delete(ctx context.Context, st *store.Client, userID, jobID int64) ([]models.JobApplication, error) {
	if _, err := s.Get(ctx, st, userID, jobID); err != nil {
		return nil, err
	}

	if err := st.DeleteJob(ctx, jobID); err != nil {
		return nil, err
	}
	logger.CtxInfo(ctx, "job application deleted", "job_id", jobID)

	return st.ListJobs(ctx, userID)
}

func jobFromForm(userID int64, form *dto.JobForm) *models.JobApplication {
	return &models.JobApplication{
		Company:      form.Company,
		Role:         form.Role,
		Status:       models.JobStatus(form.Status),
		DateApplied:  form.DateApplied,
		Duties:       form.Duties,
		Requirements: form.Requirements,
		Address:      form.Address,
		Contact:      form.Contact,
		UserID:       userID,
	}
}
