// Package types provides type definitions for the passenger data and survival statistics
// shared across the titanic-survival packages.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Sex is the categorical sex column of the passenger manifest.
type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
)

// PassengerClass is the ticket class, a proxy for socio-economic status.
type PassengerClass int

const (
	FirstClass  PassengerClass = 1
	SecondClass PassengerClass = 2
	ThirdClass  PassengerClass = 3
)

// Ordinal returns the short label used in tables ("1st", "2nd", "3rd").
func (c PassengerClass) Ordinal() string {
	switch c {
	case FirstClass:
		return "1st"
	case SecondClass:
		return "2nd"
	case ThirdClass:
		return "3rd"
	default:
		return fmt.Sprintf("class %d", int(c))
	}
}

// Status returns the socio-economic stratum the class stands for.
func (c PassengerClass) Status() string {
	switch c {
	case FirstClass:
		return "Upper"
	case SecondClass:
		return "Middle"
	case ThirdClass:
		return "Lower"
	default:
		return "Unknown"
	}
}

// Ports maps the embarkation code to the port name.
var Ports = map[string]string{
	"C": "Cherbourg",
	"Q": "Queenstown",
	"S": "Southampton",
}

// PassengerRecord is one row of the manifest restricted to the consumed columns.
// Name, Ticket and Cabin are never materialized.
type PassengerRecord struct {
	PassengerID     int            `json:"passenger_id" validate:"gte=1"`
	Survived        bool           `json:"survived"`
	Class           PassengerClass `json:"pclass" validate:"oneof=1 2 3"`
	Sex             Sex            `json:"sex" validate:"oneof=female male"`
	Age             *float64       `json:"age,omitempty" validate:"omitempty,gte=0"`
	SiblingsSpouses int            `json:"sibsp" validate:"gte=0"`
	ParentsChildren int            `json:"parch" validate:"gte=0"`
	Fare            float64        `json:"fare" validate:"gte=0"`
	Embarked        string         `json:"embarked,omitempty" validate:"omitempty,oneof=C Q S"`
}

// Validate validates the PassengerRecord using the validator.
func (r *PassengerRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Dataset is the ordered, read-only sequence of passengers loaded from one file.
type Dataset struct {
	Source  string            `json:"source"`
	ByName  bool              `json:"by_name"` // false when legacy positional columns were used
	Records []PassengerRecord `json:"records"`
}

// Len returns the number of passengers.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
