package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStationsCSV(t *testing.T) {
	src := strings.NewReader(`id,name,latitude,longitude
1,Chatelet,48.8588,2.3470
2,Bastille,48.8532,2.3692
bad-id,Nowhere,0,0
3,,48.0,2.0
`)
	rows, report, err := parseStationsCSV(src)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 2, report.Dropped)
	require.Len(t, rows, 2)
	assert.Equal(t, "Chatelet", rows[0].Name)
	assert.Equal(t, 48.8532, rows[1].Latitude)
}

func TestParseStationsCSV_HeaderOrderIndependent(t *testing.T) {
	src := strings.NewReader(`name,longitude,latitude,id
Chatelet,2.3470,48.8588,1
`)
	rows, report, err := parseStationsCSV(src)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, rows[0].ID)
	assert.Equal(t, 48.8588, rows[0].Latitude)
}

func TestParseSchedulesCSV(t *testing.T) {
	src := strings.NewReader(`transport_id,station_id,next_station_id,timestamp,journey_id
M1,1,2,08:00:00,100
M1,2,,08:04:00,100
M1,garbage,3,08:08:00,100
`)
	rows, report, err := parseSchedulesCSV(src)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 1, report.Dropped)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].NextStationID)
	assert.Equal(t, 2, *rows[0].NextStationID)
	// Empty next_station_id marks the journey's last stop.
	assert.Nil(t, rows[1].NextStationID)
}

func TestParseSchedulesCSV_NetworkEntryConversion(t *testing.T) {
	src := strings.NewReader(`transport_id,station_id,next_station_id,timestamp,journey_id
M1,2,,08:04:00,100
`)
	rows, _, err := parseSchedulesCSV(src)
	require.NoError(t, err)
	entry := rows[0].NetworkEntry()
	assert.Equal(t, -1, entry.NextStationID)
	assert.Equal(t, "M1", entry.Line)
	assert.Equal(t, 100, entry.JourneyID)
}

func TestParseCSV_MissingHeader(t *testing.T) {
	_, _, err := parseStationsCSV(strings.NewReader(""))
	assert.Error(t, err)
	_, _, err = parseSchedulesCSV(strings.NewReader(""))
	assert.Error(t, err)
}
