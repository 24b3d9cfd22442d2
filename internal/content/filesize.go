package content

import (
	"math"
	"strconv"
)

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatFileSize renders a byte count in binary units, matching the display
// format used on the resources page (2097152 -> "2 MB", 1536 -> "1.5 KB").
// Values are rounded to two decimals with trailing zeros dropped.
func FormatFileSize(size int64) string {
	if size <= 0 {
		return "0 Bytes"
	}

	i := int(math.Floor(math.Log(float64(size)) / math.Log(1024)))
	if i >= len(fileSizeUnits) {
		i = len(fileSizeUnits) - 1
	}

	v := float64(size) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100

	return strconv.FormatFloat(v, 'f', -1, 64) + " " + fileSizeUnits[i]
}
