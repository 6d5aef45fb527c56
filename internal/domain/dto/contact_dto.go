package dto

// ContactRequest is the public contact-form payload. Phone is optional but
// capped so the notification stays a sane size.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"omitempty,max=15"`
	Message string `json:"message" binding:"required"`
}
