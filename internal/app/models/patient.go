package models

type Gender string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
	BloodTypeUnknown    BloodType = "unknown"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type ContactInfo struct {
	Phone            string            `json:"phone"`
	AlternatePhone   string            `json:"alternatePhone,omitempty"`
	Email            string            `json:"email,omitempty"`
	Address          Address           `json:"address"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

type PrimaryInsured struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	DateOfBirth  Date   `json:"dateOfBirth"`
}

type Insurance struct {
	Provider       string          `json:"provider"`
	PolicyNumber   string          `json:"policyNumber"`
	GroupNumber    string          `json:"groupNumber,omitempty"`
	ExpirationDate *Date           `json:"expirationDate,omitempty"`
	PrimaryInsured *PrimaryInsured `json:"primaryInsured,omitempty"`
}

type MedicalHistoryItem struct {
	Condition     string `json:"condition"`
	DiagnosedDate *Date  `json:"diagnosedDate,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type Medication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	StartDate    Date   `json:"startDate"`
	EndDate      *Date  `json:"endDate,omitempty"`
	PrescribedBy string `json:"prescribedBy,omitempty"`
}

type Allergy struct {
	Allergen  string `json:"allergen"`
	Reaction  string `json:"reaction"`
	Severity  string `json:"severity"`
	Diagnosed Date   `json:"diagnosed"`
}

// Patient is read-only from the client's point of view.
type Patient struct {
	ID                  ID                   `json:"id"`
	MedicalRecordNumber string               `json:"medicalRecordNumber"`
	FirstName           string               `json:"firstName"`
	LastName            string               `json:"lastName"`
	DateOfBirth         Date                 `json:"dateOfBirth"`
	Gender              Gender               `json:"gender"`
	BloodType           BloodType            `json:"bloodType,omitempty"`
	ContactInfo         ContactInfo          `json:"contactInfo"`
	Insurance           *Insurance           `json:"insurance,omitempty"`
	MedicalHistory      []MedicalHistoryItem `json:"medicalHistory,omitempty"`
	Medications         []Medication         `json:"medications,omitempty"`
	Allergies           []Allergy            `json:"allergies,omitempty"`
	AssignedDoctor      string               `json:"assignedDoctor,omitempty"`
	Notes               string               `json:"notes,omitempty"`
	CreatedAt           Date                 `json:"createdAt"`
	UpdatedAt           Date                 `json:"updatedAt"`
}

func (p *Patient) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
