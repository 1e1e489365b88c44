package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/statewatch/weather"
)

// scenarioFile is the YAML layout for a replayable reading sequence:
//
//	readings:
//	  - temperature: 25.5
//	    humidity: 65
//	    pressure: 1013.2
type scenarioFile struct {
	Readings []scenarioReading `yaml:"readings"`
}

type scenarioReading struct {
	Temperature float64 `yaml:"temperature"`
	Humidity    float64 `yaml:"humidity"`
	Pressure    float64 `yaml:"pressure"`
}

func loadScenario(path string) ([]weather.Reading, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	if len(f.Readings) == 0 {
		return nil, errors.New("scenario file contains no readings")
	}

	readings := make([]weather.Reading, 0, len(f.Readings))
	for _, r := range f.Readings {
		readings = append(readings, weather.Reading{
			Temperature: r.Temperature,
			Humidity:    r.Humidity,
			Pressure:    r.Pressure,
		})
	}
	return readings, nil
}
