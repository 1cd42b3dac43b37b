package usecase

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/visual-twin/internal/domain"
)

var stationPopupTmpl = template.Must(template.New("station").Parse(`<div>
<h4>{{.Name}}</h4>
<p>Entries/Exits: {{.Activity}}</p>
{{if .Video}}<video controls width="300"><source src="{{.Video}}" type="video/mp4"></video>{{else}}<p>Video unavailable</p>{{end}}
</div>`))

var zonePopupTmpl = template.Must(template.New("zone").Parse(`<div>
<h4>High Vibration Area</h4>
<p>Continuous vibration: &gt; {{.Threshold}}</p>
<p>Length: {{printf "%.0f" .LengthMeters}} m, peak {{printf "%.2f" .MaxVibration}}</p>
{{if .Image}}<img src="{{.Image}}" width="300" alt="Image">{{end}}
</div>`))

type stationPopup struct {
	Name     string
	Activity int64
	Video    string
}

type zonePopup struct {
	Threshold    float64
	LengthMeters float64
	MaxVibration float64
	Image        string
}

// stationTooltip - подсказка при наведении: "<name>: <n> entries/exits"
func stationTooltip(s domain.Station) string {
	return fmt.Sprintf("%s: %d entries/exits", s.Name, int64(s.Activity))
}

func renderStationPopup(s domain.Station, video string) (string, error) {
	var buf bytes.Buffer
	err := stationPopupTmpl.Execute(&buf, stationPopup{
		Name:     s.Name,
		Activity: int64(s.Activity),
		Video:    video,
	})
	if err != nil {
		return "", fmt.Errorf("render station popup: %w", err)
	}
	return buf.String(), nil
}

func renderZonePopup(lengthMeters, maxVibration float64, image string) (string, error) {
	var buf bytes.Buffer
	err := zonePopupTmpl.Execute(&buf, zonePopup{
		Threshold:    domain.HighVibrationThreshold,
		LengthMeters: lengthMeters,
		MaxVibration: maxVibration,
		Image:        image,
	})
	if err != nil {
		return "", fmt.Errorf("render zone popup: %w", err)
	}
	return buf.String(), nil
}
