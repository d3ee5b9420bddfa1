package models

// JobApplication - запись об отклике на вакансию.
// Идентификатор присваивается внешним хранилищем и отсутствует
// до первого сохранения. Инвариант: UserID всегда равен
// идентификатору текущего пользователя сессии.
type JobApplication struct {
	ID           int64     `json:"id"`
	Company      string    `json:"company"`
	Role         string    `json:"role"`
	Status       JobStatus `json:"status"`
	DateApplied  string    `json:"dateApplied"`
	Duties       string    `json:"duties"`
	Requirements string    `json:"requirements"`
	Address      string    `json:"address"`
	Contact      string    `json:"contact"`
	UserID       int64     `json:"userId"`
}
