// ABOUTME: Pace and duration math for run entries.
// ABOUTME: Converts distance plus elapsed time into a M'SS" pace string.
package pace

import (
	"fmt"
	"math"
)

// Sentinel is returned when no meaningful pace can be computed.
const Sentinel = `0'00"`

// Format renders minutes-per-kilometer as M'SS". A zero or negative distance
// yields the sentinel. When the seconds component rounds up to 60 it carries
// into the minutes, so 59.6 displays as the next full minute.
func Format(distanceKm float64, hours, minutes, seconds int) string {
	if distanceKm <= 0 {
		return Sentinel
	}

	totalMinutes := float64(hours)*60 + float64(minutes) + float64(seconds)/60
	paceDecimal := totalMinutes / distanceKm

	paceMin := int(paceDecimal)
	paceSec := int(math.Round((paceDecimal - float64(paceMin)) * 60))
	if paceSec == 60 {
		paceMin++
		paceSec = 0
	}

	return fmt.Sprintf("%d'%02d\"", paceMin, paceSec)
}

// TotalSeconds flattens an hours/minutes/seconds split into seconds.
func TotalSeconds(hours, minutes, seconds int) int {
	return hours*3600 + minutes*60 + seconds
}
