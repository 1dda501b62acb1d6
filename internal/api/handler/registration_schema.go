package handler

// Presence and password equality are the only checks: phone, CRM and price
// accept free-form text, and email has no format validation.
type patientSignUpRequest struct {
	Name            string `json:"name"             validate:"required"`
	Email           string `json:"email"            validate:"required"`
	Phone           string `json:"phone"            validate:"required"`
	Password        string `json:"password"         validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type doctorSignUpRequest struct {
	Name            string `json:"name"             validate:"required"`
	CRM             string `json:"crm"              validate:"required"`
	Specialty       string `json:"specialty"        validate:"required"`
	Email           string `json:"email"            validate:"required"`
	Phone           string `json:"phone"            validate:"required"`
	Price           string `json:"price"            validate:"required"`
	Password        string `json:"password"         validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type signUpResponse struct {
	Message string `json:"message"`
	// ClearFields tells the client to reset the form after success.
	ClearFields bool `json:"clear_fields"`
}
