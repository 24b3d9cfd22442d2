package ministry

// File is the top-level structure of ministries.yaml.
type File struct {
	Units []Unit `yaml:"units"`
}

// Unit is one ministry unit volunteers can apply to join.
type Unit struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	MeetingDay  string `yaml:"meetingDay,omitempty" json:"meetingDay,omitempty"`
	Leader      string `yaml:"leader,omitempty" json:"leader,omitempty"`
}
