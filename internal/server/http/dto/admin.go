package dto

// ValidateAdminRequest describes operator credential payload.
type ValidateAdminRequest struct {
	AdminID  string `json:"adminId"`
	Password string `json:"password"`
}

// ValidateAdminResponse reports the outcome of credential validation.
type ValidateAdminResponse struct {
	IsValid bool `json:"isValid"`
}
