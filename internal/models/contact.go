package models

// ContactRequest represents a contact form submission. Field constraints use
// inclusive bounds; min/max count characters, not bytes.
type ContactRequest struct {
	Email       string `json:"email" binding:"required,email"`
	FirstName   string `json:"firstName" binding:"required,min=1,max=100"`
	LastName    string `json:"lastName" binding:"required,min=1,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=10,max=20"`
	Message     string `json:"message" binding:"required,min=1,max=1000"`
}

// ContactResponse is the acknowledgment returned for every submission that
// reaches the email gateway, whether or not the send succeeded. ID is the
// correlation id minted for the submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}
