// Package booking holds the slot catalog and the in-memory registry of
// occupied (date, time) pairs behind the scheduling endpoints.
package booking

// The shop runs the same hours every day; per-date variation is expressed
// only through the occupied list.
var TimeSlots = []string{
	"08:00 AM",
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
}

var ServiceDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var ApplianceTypes = []string{
	"Refrigerator",
	"Oven/Range",
	"Dryer",
	"Washer",
	"Microwave",
	"Dishwasher",
	"Water heater",
	"Window AC",
}
