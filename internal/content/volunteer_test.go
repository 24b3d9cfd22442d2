package content

import (
	"strings"
	"testing"
)

func TestMissingRequired(t *testing.T) {
	tests := []struct {
		name string
		app  Application
		want []string
	}{
		{
			name: "complete",
			app: Application{
				FullName:     "Grace Okafor",
				Email:        "grace@example.com",
				Phone:        "+234 801 234 5678",
				SelectedUnit: "Choir",
			},
			want: nil,
		},
		{
			name: "everything missing",
			app:  Application{},
			want: []string{"fullName", "email", "phone", "selectedUnit"},
		},
		{
			name: "only unit missing",
			app: Application{
				FullName: "Grace Okafor",
				Email:    "grace@example.com",
				Phone:    "+234 801 234 5678",
			},
			want: []string{"selectedUnit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.app.MissingRequired()
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("MissingRequired() = %v, want %v", got, tt.want)
			}
		})
	}
}
