// Package domain models the global land-surface temperature dataset.
//
// # Data Source
//
// The dataset is a static JSON document published with the freeCodeCamp
// project reference data:
//
//	https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json
//
// Shape:
//
//	{
//	  "baseTemperature": 8.66,
//	  "monthlyVariance": [
//	    {"year": 1753, "month": 1, "variance": -1.366},
//	    ...
//	  ]
//	}
//
// # Conventions
//
// Months are 1-based (1 = January). Month names are resolved from the 0-based
// index month-1 in UTC; values outside 1..12 wrap onto the neighbouring year
// the way a calendar month setter does, so 13 reads as January and 0 as
// December.
//
// Variance is expressed in degrees Celsius relative to baseTemperature. The
// absolute temperature of a record is baseTemperature + variance, see
// [Record.Temperature].
//
// The dataset is loaded once and never mutated afterwards.
package domain
