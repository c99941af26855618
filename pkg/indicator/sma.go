package indicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/meandev/pkg/datatype/queue"
	"github.com/c9s/meandev/pkg/types"
)

var ErrInvalidWindow = types.ErrInvalidWindow

// SMA is the simple moving average of the last `window` inputs.
type SMA struct {
	window    int
	rawValues *queue.FixedQueue[float64]
}

func NewSMA(window int) (*SMA, error) {
	if window <= 0 {
		return nil, errors.Wrapf(ErrInvalidWindow, "sma window: %d", window)
	}

	rawValues, err := queue.NewFixedQueue[float64](window)
	if err != nil {
		return nil, err
	}

	return &SMA{
		window:    window,
		rawValues: rawValues,
	}, nil
}

// Next records v and returns the average of the last `window` inputs.
// ok is false until `window` inputs have been recorded.
func (inc *SMA) Next(v float64) (sma float64, ok bool) {
	inc.rawValues.Add(v)
	if !inc.rawValues.IsFull() {
		return 0, false
	}

	sum := 0.0
	for i := 0; i < inc.rawValues.Size(); i++ {
		x, _ := inc.rawValues.At(i)
		sum += x
	}

	return sum / float64(inc.window), true
}

func (inc *SMA) Reset() {
	inc.rawValues.Clear()
}

func (inc *SMA) Window() int {
	return inc.window
}
