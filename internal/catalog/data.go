package catalog

import "unitconv/internal/domain"

// entry couples a category with its factor table. factors is nil for
// categories whose strategy is not domain.Linear.
type entry struct {
	category domain.Category
	factors  map[string]float64
}

var entries = []entry{
	{
		category: domain.Category{Name: "Length", Strategy: domain.Linear,
			Units: []string{"meters", "kilometers", "centimeters", "millimeters", "inches", "feet", "yards", "miles"}},
		factors: map[string]float64{
			"meters": 1, "kilometers": 0.001, "centimeters": 100, "millimeters": 1000,
			"inches": 39.3701, "feet": 3.28084, "yards": 1.09361, "miles": 0.000621371,
		},
	},
	{
		category: domain.Category{Name: "Weight", Strategy: domain.Linear,
			Units: []string{"grams", "kilograms", "milligrams", "pounds", "ounces"}},
		factors: map[string]float64{
			"grams": 1, "kilograms": 0.001, "milligrams": 1000, "pounds": 0.00220462, "ounces": 0.035274,
		},
	},
	{
		category: domain.Category{Name: "Temperature", Strategy: domain.Affine,
			Units: []string{"Celsius", "Fahrenheit", "Kelvin"}},
	},
	{
		category: domain.Category{Name: "Volume", Strategy: domain.Linear,
			Units: []string{"liters", "milliliters", "cubic meters", "cubic centimeters", "cubic feet",
				"cubic inches", "gallons", "quarts", "pints", "cups"}},
		factors: map[string]float64{
			"liters": 1, "milliliters": 1000, "cubic meters": 0.001, "cubic centimeters": 1000,
			"cubic feet": 35.3147, "cubic inches": 61023.7, "gallons": 0.264172, "quarts": 1.05669,
			"pints": 2.11338, "cups": 4.22675,
		},
	},
	{
		category: domain.Category{Name: "Speed", Strategy: domain.Linear,
			Units: []string{"meters/second", "kilometers/hour", "miles/hour", "feet/second", "knots"}},
		factors: map[string]float64{
			"meters/second": 1, "kilometers/hour": 3.6, "miles/hour": 2.23694, "feet/second": 3.28084, "knots": 1.94384,
		},
	},
	{
		category: domain.Category{Name: "Area", Strategy: domain.Linear,
			Units: []string{"square meters", "square kilometers", "square centimeters", "square millimeters",
				"square feet", "square inches", "square yards", "acres", "hectares"}},
		factors: map[string]float64{
			"square meters": 1, "square kilometers": 1e-6, "square centimeters": 10000, "square millimeters": 1e6,
			"square feet": 10.7639, "square inches": 1550.0031, "square yards": 1.19599,
			"acres": 0.000247105, "hectares": 1e-4,
		},
	},
	{
		category: domain.Category{Name: "Time", Strategy: domain.Linear,
			Units: []string{"seconds", "minutes", "hours", "days", "weeks", "months", "years"}},
		// Months and years use the mean Gregorian lengths.
		factors: map[string]float64{
			"seconds": 1, "minutes": 1.0 / 60, "hours": 1.0 / 3600, "days": 1.0 / 86400,
			"weeks": 1.0 / 604800, "months": 1.0 / 2629746, "years": 1.0 / 31556952,
		},
	},
	{
		category: domain.Category{Name: "Pressure", Strategy: domain.Linear,
			Units: []string{"pascals", "kilopascals", "bars", "atmospheres", "psi"}},
		factors: map[string]float64{
			"pascals": 1, "kilopascals": 0.001, "bars": 1e-5, "atmospheres": 9.8692e-6, "psi": 0.000145038,
		},
	},
	{
		category: domain.Category{Name: "Frequency", Strategy: domain.Linear,
			Units: []string{"hertz", "kilohertz", "megahertz", "gigahertz"}},
		factors: map[string]float64{
			"hertz": 1, "kilohertz": 1e-3, "megahertz": 1e-6, "gigahertz": 1e-9,
		},
	},
	{
		category: domain.Category{Name: "Energy", Strategy: domain.Linear,
			Units: []string{"joules", "kilojoules", "calories", "kilocalories", "kilowatt-hours"}},
		factors: map[string]float64{
			"joules": 1, "kilojoules": 0.001, "calories": 0.239006, "kilocalories": 0.000239006, "kilowatt-hours": 2.7778e-7,
		},
	},
	{
		category: domain.Category{Name: "Digital Storage", Strategy: domain.Linear,
			Units: []string{"bytes", "kilobytes", "megabytes", "gigabytes", "terabytes"}},
		factors: map[string]float64{
			"bytes": 1, "kilobytes": 1e-3, "megabytes": 1e-6, "gigabytes": 1e-9, "terabytes": 1e-12,
		},
	},
	{
		category: domain.Category{Name: "Data Transfer Rate", Strategy: domain.Linear,
			Units: []string{"bits/second", "kilobits/second", "megabits/second", "gigabits/second", "bytes/second"}},
		// One byte is eight bits.
		factors: map[string]float64{
			"bits/second": 1, "kilobits/second": 1e-3, "megabits/second": 1e-6, "gigabits/second": 1e-9,
			"bytes/second": 0.125,
		},
	},
	{
		category: domain.Category{Name: "Currency", Strategy: domain.ExternalRate,
			Units: []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "CNY", "INR", "PKR"}},
	},
}
