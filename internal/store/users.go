package store

import (
	"context"
	"net/http"
	"net/url"

	"jobtrack/internal/models"
	"jobtrack/pkg/apperrors"
)

// FindUserByUsername ищет учетную запись по имени.
// GET /users?username=X - список из нуля или одной записи.
func (c *Client) FindUserByUsername(ctx context.Context, username string) (*models.UserAccount, error) {
	q := url.Values{}
	q.Set("username", username)

	var users []models.UserAccount
	if err := c.doJSON(ctx, http.MethodGet, "/users", q, nil, &users); err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return &users[0], nil
}

// CreateUser создает учетную запись. Идентификатор присваивает хранилище.
func (c *Client) CreateUser(ctx context.Context, account *models.UserAccount) (*models.UserAccount, error) {
	var created models.UserAccount
	if err := c.doJSON(ctx, http.MethodPost, "/users", nil, account, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
