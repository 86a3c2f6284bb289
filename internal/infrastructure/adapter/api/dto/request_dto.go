package dto

// DepositRequest is the body of POST /api/user/deposit
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// PurchaseServerRequest is the body of POST /api/user/servers
type PurchaseServerRequest struct {
	ConfigID   uint64 `json:"config_id" binding:"required"`
	ServerName string `json:"server_name" binding:"required,min=3,max=50"`
	Months     int    `json:"months" binding:"omitempty,min=1,max=24"`
}

// ExtendServerRequest is the body of POST /api/user/servers/:id/extend
type ExtendServerRequest struct {
	Months int `json:"months" binding:"omitempty,min=1,max=24"`
}

// ContactRequest is the body of POST /api/contact
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Message string `json:"message" binding:"required,min=10,max=2000"`
}
