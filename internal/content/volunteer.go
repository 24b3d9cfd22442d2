package content

// Application is a volunteer application submitted from the join-a-unit form.
// Write-once: created on submission, never updated or deleted through the
// public surface. SubmittedAt is server-assigned at write time.
type Application struct {
	ID          string `json:"id"`
	SubmittedAt string `json:"submittedAt"`

	// Identity
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`

	// Ministry choice
	SelectedUnit     string `json:"selectedUnit"`
	SecondChoiceUnit string `json:"secondChoiceUnit"`

	// Availability
	AvailableSunday      bool   `json:"availableSunday"`
	AvailableTuesday     bool   `json:"availableTuesday"`
	AvailableThursday    bool   `json:"availableThursday"`
	PreferredServiceTime string `json:"preferredServiceTime"`

	// Experience
	PreviousExperience string `json:"previousExperience"`
	RelevantSkills     string `json:"relevantSkills"`

	// Spiritual background
	MembershipStatus string `json:"membershipStatus"`
	SalvationStatus  string `json:"salvationStatus"`
	BaptismStatus    string `json:"baptismStatus"`
	HowLongAttending string `json:"howLongAttending"`
	ReasonForJoining string `json:"reasonForJoining"`

	// Emergency contact
	EmergencyName         string `json:"emergencyName"`
	EmergencyPhone        string `json:"emergencyPhone"`
	EmergencyRelationship string `json:"emergencyRelationship"`

	AgreedToCommitment bool `json:"agreedToCommitment"`
}

// MissingRequired returns the JSON names of required fields that are empty.
// The form cannot be submitted without name, email, phone and a chosen unit.
func (a *Application) MissingRequired() []string {
	var missing []string
	if a.FullName == "" {
		missing = append(missing, "fullName")
	}
	if a.Email == "" {
		missing = append(missing, "email")
	}
	if a.Phone == "" {
		missing = append(missing, "phone")
	}
	if a.SelectedUnit == "" {
		missing = append(missing, "selectedUnit")
	}
	return missing
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
