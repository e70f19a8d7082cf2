// Package charts renders the dashboard panels as PNG images.
package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
)

type Entry struct {
	Label string
	Value float64
}

type Bin struct {
	Low   float64
	High  float64
	Count int
}

// TopRolesBar renders mean salary per job title. Entries are expected in
// ascending order of mean salary, mirroring the dashboard series.
func TopRolesBar(entries []Entry) ([]byte, error) {
	if len(entries) == 0 {
		return noData(800, 400)
	}

	bars := make([]chart.Value, len(entries))
	for i, e := range entries {
		bars[i] = chart.Value{
			Label: e.Label,
			Value: e.Value,
		}
	}

	bc := chart.BarChart{
		Title:      "Top roles by mean salary (USD)",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 60}},
		Width:      1024,
		Height:     420,
		BarWidth:   56,
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SalaryHistogram renders the salary distribution. Only every fifth bin
// is labelled so thirty bins stay readable.
func SalaryHistogram(bins []Bin) ([]byte, error) {
	if len(bins) == 0 {
		return noData(800, 400)
	}

	bars := make([]chart.Value, len(bins))
	for i, b := range bins {
		label := ""
		if i%5 == 0 {
			label = fmt.Sprintf("%.0fk", b.Low/1000)
		}
		bars[i] = chart.Value{
			Label: label,
			Value: float64(b.Count),
		}
	}

	bc := chart.BarChart{
		Title:      "Annual salary distribution (USD)",
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 40}},
		Width:      1024,
		Height:     420,
		BarWidth:   18,
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RemoteDonut renders the share of each work arrangement.
func RemoteDonut(entries []Entry) ([]byte, error) {
	if len(entries) == 0 {
		return noData(512, 400)
	}

	values := make([]chart.Value, len(entries))
	for i, e := range entries {
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s (%.0f)", e.Label, e.Value),
			Value: e.Value,
		}
	}

	dc := chart.DonutChart{
		Title:  "Work arrangement share",
		Width:  512,
		Height: 420,
		Values: values,
	}

	var buf bytes.Buffer
	if err := dc.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// noData produces a blank placeholder so an empty filter selection still
// yields a valid image instead of a render error.
func noData(w, h int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, bg)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
