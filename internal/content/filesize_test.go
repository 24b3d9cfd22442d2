package content

import "testing"

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{name: "zero", size: 0, want: "0 Bytes"},
		{name: "negative", size: -5, want: "0 Bytes"},
		{name: "bytes", size: 512, want: "512 Bytes"},
		{name: "exact kilobyte", size: 1024, want: "1 KB"},
		{name: "fractional kilobyte", size: 1536, want: "1.5 KB"},
		{name: "exact megabytes", size: 2097152, want: "2 MB"},
		{name: "rounded megabytes", size: 2621440, want: "2.5 MB"},
		{name: "gigabytes", size: 1073741824, want: "1 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFileSize(tt.size)
			if got != tt.want {
				t.Errorf("FormatFileSize(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}
