package dto

type CreateNotificationRequest struct {
	UserID  int    `json:"user_id"`
	Type    string `json:"type"    validate:"required"`
	Title   string `json:"title"   validate:"required"`
	Message string `json:"message" validate:"required"`
}
