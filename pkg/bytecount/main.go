package bytecount

import (
	"fmt"
)

// units from kibibytes up.
var units = [...]byte{'K', 'M', 'G', 'T', 'P', 'E', 'Z'}

// Format renders a byte count in binary units with two decimals,
// starting at kibibytes: 1536 -> "1.50K".
func Format(bytes uint64) string {
	value := float64(bytes) / 1024.0
	n := 0
	for value >= 1024.0 && n < len(units)-1 {
		value /= 1024.0
		n++
	}
	return fmt.Sprintf("%.2f%c", value, units[n])
}
