package mconstraint

import (
	"fmt"

	"github.com/go-logr/logr"
)

// Option is a function that configures a Constrainer
type Option func(*Constrainer)

// WithLogr sets the logger
var WithLogr = func(log logr.Logger) Option {
	return func(c *Constrainer) {
		c.log = log
	}
}

// WithNaming sets the node naming templates. Empty fields keep their default.
var WithNaming = func(n Naming) Option {
	return func(c *Constrainer) {
		c.naming = n.withDefaults()
	}
}

// Naming holds the fmt templates used to name created nodes and attributes.
// Node templates receive the driven name and the channel as %[1]s and %[2]s;
// Offset also receives the driver as %[3]s. Weight receives the driver.
type Naming struct {
	Settings    string
	WeightedSum string
	Composite   string
	Decompose   string
	Offset      string
	Weight      string
}

// DefaultNaming returns the conventional names, e.g. "C_point_wtMatrix".
func DefaultNaming() Naming {
	return Naming{
		Settings:    "%[1]s_%[2]s_ConstraintSettings",
		WeightedSum: "%[1]s_%[2]s_wtMatrix",
		Composite:   "%[1]s_%[2]s_multMatrix",
		Decompose:   "%[1]s_%[2]s_decompMatrix",
		Offset:      "%[1]s_%[2]s_%[3]s_offsetMatrix",
		Weight:      "%s_Weight",
	}
}

func (n Naming) withDefaults() Naming {
	def := DefaultNaming()
	if n.Settings == "" {
		n.Settings = def.Settings
	}
	if n.WeightedSum == "" {
		n.WeightedSum = def.WeightedSum
	}
	if n.Composite == "" {
		n.Composite = def.Composite
	}
	if n.Decompose == "" {
		n.Decompose = def.Decompose
	}
	if n.Offset == "" {
		n.Offset = def.Offset
	}
	if n.Weight == "" {
		n.Weight = def.Weight
	}
	return n
}

func (n Naming) settings(driven string, c Channel) string {
	return fmt.Sprintf(n.Settings, driven, c)
}

func (n Naming) weightedSum(driven string, c Channel) string {
	return fmt.Sprintf(n.WeightedSum, driven, c)
}

func (n Naming) composite(driven string, c Channel) string {
	return fmt.Sprintf(n.Composite, driven, c)
}

func (n Naming) decompose(driven string, c Channel) string {
	return fmt.Sprintf(n.Decompose, driven, c)
}

func (n Naming) offset(driven string, c Channel, driver string) string {
	return fmt.Sprintf(n.Offset, driven, c, driver)
}

func (n Naming) weight(driver string) string {
	return fmt.Sprintf(n.Weight, driver)
}
