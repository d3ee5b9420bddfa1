package models

// UserAccount - учетная запись в внешнем хранилище.
// Поле password хранит bcrypt-хеш, а не открытый пароль:
// сравнение выполняется локально, эндпоинт
// GET /users?username=X&password=Y хранилища не используется.
type UserAccount struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
}

// PublicUser - представление пользователя без хеша пароля
// (для логов, шаблонов и claims сессии).
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (u *UserAccount) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
