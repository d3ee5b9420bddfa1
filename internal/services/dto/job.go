package dto

// JobForm - форма создания/редактирования отклика.
// Одна и та же форма обслуживает add и update.
type JobForm struct {
	Company      string `form:"company" validate:"required,max=200"`
	Role         string `form:"role" validate:"required,max=200"`
	Status       string `form:"status" validate:"required,oneof=Applied Interviewed Rejected"`
	DateApplied  string `form:"dateApplied" validate:"required"`
	Duties       string `form:"duties" validate:"max=5000"`
	Requirements string `form:"requirements" validate:"max=5000"`
	Address      string `form:"address" validate:"max=500"`
	Contact      string `form:"contact" validate:"max=500"`
}
