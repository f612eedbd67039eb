package network

import (
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ScheduleEntry is one timestamped stop of a scheduled journey, as read from
// the relational snapshot. NextStationID is negative when the row is the
// last stop of its journey.
type ScheduleEntry struct {
	JourneyID     int
	Line          string
	StationID     int
	NextStationID int
	Timestamp     string // time of day, "HH:MM:SS"
}

// TravelTimeRow is the averaged travel time for one (line, station, next
// station) key. TravelTime is in minutes and never below 1.0.
type TravelTimeRow struct {
	Line       string
	FromID     int
	ToID       int
	TravelTime float64
}

type timedEntry struct {
	ScheduleEntry
	departure float64 // minutes since midnight
	arrival   float64
	hasNext   bool
}

// ComputeTravelTimes reduces raw schedule rows to one averaged travel time
// per (line, station, next station) key.
//
// Within a journey the arrival time at the next stop is the departure of the
// following row. A minute of dwell overhead is added to every hop, negative
// gaps are reinterpreted modulo 24h to survive day rollovers, and every
// value is floored at one minute. Rows with no parsable timestamp or no next
// station are dropped rather than failing the batch.
func ComputeTravelTimes(rows []ScheduleEntry) []TravelTimeRow {
	entries := make([]timedEntry, 0, len(rows))
	dropped := 0
	for _, r := range rows {
		dep, ok := parseTimeOfDay(r.Timestamp)
		if !ok {
			dropped++
			continue
		}
		entries = append(entries, timedEntry{ScheduleEntry: r, departure: dep})
	}
	if dropped > 0 {
		log.Printf("travel time: dropped %d schedule rows without a valid timestamp", dropped)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].JourneyID != entries[j].JourneyID {
			return entries[i].JourneyID < entries[j].JourneyID
		}
		return entries[i].departure < entries[j].departure
	})

	// Arrival at the next stop is the next row's departure within the same
	// journey. Terminal rows keep hasNext false and are dropped below.
	for i := range entries {
		if entries[i].NextStationID < 0 {
			continue
		}
		if i+1 < len(entries) && entries[i+1].JourneyID == entries[i].JourneyID {
			entries[i].arrival = entries[i+1].departure
			entries[i].hasNext = true
		}
	}

	type key struct {
		line     string
		from, to int
	}
	type journeyKey struct {
		journey  int
		line     string
		from, to int
	}
	sums := map[key]float64{}
	counts := map[key]int{}
	seen := map[journeyKey]bool{}
	order := []key{}

	for _, e := range entries {
		if !e.hasNext {
			continue
		}
		jk := journeyKey{e.JourneyID, e.Line, e.StationID, e.NextStationID}
		if seen[jk] {
			continue
		}
		seen[jk] = true

		travel := hopMinutes(e.departure, e.arrival)

		k := key{e.Line, e.StationID, e.NextStationID}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] += travel
		counts[k]++
	}

	out := make([]TravelTimeRow, 0, len(order))
	for _, k := range order {
		out = append(out, TravelTimeRow{
			Line:       k.line,
			FromID:     k.from,
			ToID:       k.to,
			TravelTime: sums[k] / float64(counts[k]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		if out[i].FromID != out[j].FromID {
			return out[i].FromID < out[j].FromID
		}
		return out[i].ToID < out[j].ToID
	})
	return out
}

// hopMinutes computes the travel time for one hop, including one minute of
// dwell overhead. A negative gap is read as a day rollover and wrapped
// modulo 24h; this also masks out-of-order data, which is accepted rather
// than extended (the upstream feeds are known to contain such rows).
func hopMinutes(departure, arrival float64) float64 {
	diff := arrival - departure
	travel := diff + 1
	if travel < 0 {
		wrapped := math.Mod(diff, minutesPerDay)
		if wrapped < 0 {
			wrapped += minutesPerDay
		}
		travel = wrapped + 1
	}
	return math.Max(1.0, travel)
}

// parseTimeOfDay parses "HH:MM:SS" (seconds optional) into fractional
// minutes since midnight.
func parseTimeOfDay(s string) (float64, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	sec := 0
	if len(parts) == 3 {
		sec, err = strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, false
		}
	}
	return float64(h)*60 + float64(m) + float64(sec)/60, true
}
