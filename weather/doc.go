// Package weather applies the statewatch broadcast core to environmental
// monitoring. A Station is a subject over a Reading (temperature, humidity,
// pressure); display observers react to every new reading: one keeps running
// temperature statistics, one derives the apparent heat index, one tracks
// the pressure trend for a coarse forecast, and one simply reports current
// conditions.
//
//	log := logger.New(logger.WithTextFormatter())
//	station := weather.NewStation(observer.WithLogger(log))
//
//	statistics := weather.NewStatisticsDisplay(log)
//	station.Register(statistics)
//	station.Register(weather.NewCurrentConditionsDisplay(log))
//
//	station.SetMeasurements(25.5, 65, 1013.2)
//
//	summary, _ := statistics.TemperatureStats()
//	fmt.Println(summary.Mean)
package weather
