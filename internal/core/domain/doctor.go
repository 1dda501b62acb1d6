package domain

// Specialties is the fixed catalog offered by the doctor onboarding form.
var Specialties = []string{
	"Cardiologia",
	"Dermatologia",
	"Neurologia",
	"Ortopedia",
	"Pediatria",
	"Ginecologia",
	"Urologia",
	"Oftalmologia",
	"Otorrinolaringologia",
	"Psiquiatria",
}

// Doctor is a validated doctor-onboarding submission. CRM, phone and price
// stay free-form text; the intake performs presence checks only.
type Doctor struct {
	Name      string `json:"name"`
	CRM       string `json:"crm"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Price     string `json:"price"`
}
