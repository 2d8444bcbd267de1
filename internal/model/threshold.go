package model

import "fmt"

// Threshold identifies one of the six WRED threshold fields of a profile.
// Declaration order is the order multi-field updates are applied in: green
// before yellow before red, max before min within each color.
type Threshold int

const (
	GreenMax Threshold = iota
	GreenMin
	YellowMax
	YellowMin
	RedMax
	RedMin
)

// Thresholds lists every threshold in apply order.
var Thresholds = []Threshold{GreenMax, GreenMin, YellowMax, YellowMin, RedMax, RedMin}

// thresholdCodes maps thresholds to the short codes used on the command line.
var thresholdCodes = [...]string{
	GreenMax:  "gmax",
	GreenMin:  "gmin",
	YellowMax: "ymax",
	YellowMin: "ymin",
	RedMax:    "rmax",
	RedMin:    "rmin",
}

// thresholdFields maps thresholds to the canonical field names stored in the
// configuration store.
var thresholdFields = [...]string{
	GreenMax:  "green_max_threshold",
	GreenMin:  "green_min_threshold",
	YellowMax: "yellow_max_threshold",
	YellowMin: "yellow_min_threshold",
	RedMax:    "red_max_threshold",
	RedMin:    "red_min_threshold",
}

// Code returns the threshold's command-line short code (e.g. "gmin").
func (t Threshold) Code() string {
	return thresholdCodes[t]
}

// Field returns the canonical field name stored for this threshold
// (e.g. "green_min_threshold").
func (t Threshold) Field() string {
	return thresholdFields[t]
}

func (t Threshold) String() string {
	return thresholdCodes[t]
}

// UnknownThresholdError reports a short code that names no known threshold.
type UnknownThresholdError struct {
	Code string
}

func (e *UnknownThresholdError) Error() string {
	return fmt.Sprintf("unknown threshold parameter %q", e.Code)
}

// ParseThreshold resolves a short code to its Threshold. Unknown codes fail
// with an UnknownThresholdError; values are never inspected here.
func ParseThreshold(code string) (Threshold, error) {
	for _, t := range Thresholds {
		if thresholdCodes[t] == code {
			return t, nil
		}
	}
	return 0, &UnknownThresholdError{Code: code}
}
