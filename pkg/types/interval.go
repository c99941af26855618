package types

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var ErrInvalidWindow = errors.New("indicator window must be greater than zero")

var ErrUnsupportedInterval = errors.New("unsupported interval")

type Interval string

func (i Interval) String() string {
	return string(i)
}

var Interval1m = Interval("1m")
var Interval5m = Interval("5m")
var Interval15m = Interval("15m")
var Interval30m = Interval("30m")
var Interval1h = Interval("1h")
var Interval4h = Interval("4h")
var Interval1d = Interval("1d")

// SupportedIntervals maps the interval to its length in minutes
var SupportedIntervals = map[Interval]int{
	Interval1m:  1,
	Interval5m:  5,
	Interval15m: 15,
	Interval30m: 30,
	Interval1h:  60,
	Interval4h:  60 * 4,
	Interval1d:  60 * 24,
}

// IntervalWindow is used by the indicators
type IntervalWindow struct {
	// The interval of the sampled data, optional
	Interval Interval `json:"interval,omitempty" yaml:"interval,omitempty"`

	// The window size of the indicator
	Window int `json:"window" yaml:"window"`
}

func (iw IntervalWindow) String() string {
	if iw.Interval == "" {
		return fmt.Sprintf("(%d)", iw.Window)
	}

	return fmt.Sprintf("%s (%d)", iw.Interval, iw.Window)
}

// Validate reports every problem of the setting at once.
func (iw IntervalWindow) Validate() (err error) {
	if iw.Window <= 0 {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidWindow, "window: %d", iw.Window))
	}

	if iw.Interval != "" {
		if _, ok := SupportedIntervals[iw.Interval]; !ok {
			err = multierr.Append(err, errors.Wrapf(ErrUnsupportedInterval, "interval: %q", iw.Interval))
		}
	}

	return err
}

// ParseIntervalWindow decodes a YAML (or JSON) indicator setting and validates it.
func ParseIntervalWindow(data []byte) (iw IntervalWindow, err error) {
	if err = yaml.Unmarshal(data, &iw); err != nil {
		return iw, errors.Wrap(err, "unable to decode interval window")
	}

	return iw, iw.Validate()
}
