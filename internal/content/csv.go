package content

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVHeader is the fixed 23-column export layout for volunteer applications.
var CSVHeader = []string{
	"Submitted At",
	"Full Name",
	"Email",
	"Phone",
	"Address",
	"Date of Birth",
	"Gender",
	"Primary Ministry",
	"Second Choice",
	"Available Sunday",
	"Available Tuesday",
	"Available Thursday",
	"Preferred Frequency",
	"Previous Experience",
	"Relevant Skills",
	"Membership Status",
	"Salvation Status",
	"Baptism Status",
	"Time Attending",
	"Reason for Joining",
	"Emergency Contact Name",
	"Emergency Contact Phone",
	"Emergency Contact Relationship",
}

// CSVRow renders one application as an export row, columns matching CSVHeader.
func (a *Application) CSVRow() []string {
	return []string{
		a.SubmittedAt,
		a.FullName,
		a.Email,
		a.Phone,
		a.Address,
		a.DateOfBirth,
		a.Gender,
		a.SelectedUnit,
		a.SecondChoiceUnit,
		yesNo(a.AvailableSunday),
		yesNo(a.AvailableTuesday),
		yesNo(a.AvailableThursday),
		a.PreferredServiceTime,
		a.PreviousExperience,
		a.RelevantSkills,
		a.MembershipStatus,
		a.SalvationStatus,
		a.BaptismStatus,
		a.HowLongAttending,
		a.ReasonForJoining,
		a.EmergencyName,
		a.EmergencyPhone,
		a.EmergencyRelationship,
	}
}

// ApplicationsCSV renders all applications as a CSV document with the fixed
// header row. Quoting and escaping follow RFC 4180 (encoding/csv).
func ApplicationsCSV(apps []*Application) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, app := range apps {
		if err := w.Write(app.CSVRow()); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
