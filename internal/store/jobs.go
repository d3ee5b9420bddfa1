package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"jobtrack/internal/models"
)

// ListJobs возвращает все отклики пользователя.
// GET /jobs?userId=N - единственный способ чтения коллекции: после
// каждой мутации список перечитывается целиком, кэша нет.
func (c *Client) ListJobs(ctx context.Context, userID int64) ([]models.JobApplication, error) {
	q := url.Values{}
	q.Set("userId", fmt.Sprintf("%d", userID))

	var jobs []models.JobApplication
	if err := c.doJSON(ctx, http.MethodGet, "/jobs", q, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateJob сохраняет новый отклик, хранилище присваивает id.
func (c *Client) CreateJob(ctx context.Context, job *models.JobApplication) (*models.JobApplication, error) {
	var created models.JobApplication
	if err := c.doJSON(ctx, http.MethodPost, "/jobs", nil, job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateJob полностью заменяет запись по id.
func (c *Client) UpdateJob(ctx context.Context, job *models.JobApplication) (*models.JobApplication, error) {
	var updated models.JobApplication
	path := fmt.Sprintf("/jobs/%d", job.ID)
	if err := c.doJSON(ctx, http.MethodPut, path, nil, job, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteJob удаляет запись по id.
func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/jobs/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}
