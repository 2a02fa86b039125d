package request

type IssueRequest struct {
	Description string `json:"description" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
