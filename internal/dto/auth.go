package dto

type RegisterRequestDTO struct {
	Email          string `json:"email" validate:"required,email" example:"alice@example.com"`
	PhoneNumber    string `json:"phone_number" example:"+15550100"`
	Password       string `json:"password" validate:"required,min=8"`
	TransactionPIN string `json:"transaction_pin" validate:"required,min=4"`
	FullName       string `json:"full_name" example:"Alice Smith"`
	Role           string `json:"role" example:"PERSONAL"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
