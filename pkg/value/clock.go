package value

import (
	"fmt"
	"time"
)

// ClockValue is a SMIL timing clock value, rendered in the full
// "HH:MM:SS.mmm" form.
type ClockValue time.Duration

func (c ClockValue) String() string {
	d := time.Duration(c)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond

	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// SignedClockValue is a clock value with an explicit sign, used for
// timing offsets.
type SignedClockValue struct {
	Negative bool
	Clock    ClockValue
}

func (c SignedClockValue) String() string {
	sign := "+"
	if c.Negative {
		sign = "-"
	}

	return sign + c.Clock.String()
}
