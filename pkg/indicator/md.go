package indicator

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/meandev/pkg/datatype/queue"
	"github.com/c9s/meandev/pkg/types"
)

var log = logrus.WithField("indicator", "md")

// MD is the mean deviation indicator: the average absolute distance of the
// last `window` inputs from their simple moving average.
//
// The SMA and the history queue share the window and are fed the same inputs,
// neither of them is exposed so they can not drift apart.
//
//go:generate callbackgen -type MD
type MD struct {
	window  int
	sma     *SMA
	history *queue.FixedQueue[float64]

	last  float64
	ready bool

	updateCallbacks []func(value float64)
}

func NewMD(window int) (*MD, error) {
	if window <= 0 {
		return nil, errors.Wrapf(ErrInvalidWindow, "md window: %d", window)
	}

	sma, err := NewSMA(window)
	if err != nil {
		return nil, err
	}

	history, err := queue.NewFixedQueue[float64](window)
	if err != nil {
		return nil, err
	}

	return &MD{
		window:  window,
		sma:     sma,
		history: history,
	}, nil
}

// NewMDFromConfig validates the setting and creates the indicator with its window.
func NewMDFromConfig(iw types.IntervalWindow) (*MD, error) {
	if err := iw.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid md setting %s", iw)
	}

	return NewMD(iw.Window)
}

// Next consumes one input. ok is false while the window is warming up.
func (inc *MD) Next(v float64) (md float64, ok bool) {
	inc.history.Add(v)
	mean, smaReady := inc.sma.Next(v)

	if !inc.history.IsFull() {
		return 0, false
	}

	if !smaReady {
		panic(fmt.Sprintf("md: history of window %d is full but the sma is not ready", inc.window))
	}

	sum := 0.0
	for i := 0; i < inc.history.Size(); i++ {
		p, _ := inc.history.At(i)
		sum += math.Abs(p - mean)
	}

	md = sum / float64(inc.window)

	if !inc.ready {
		inc.ready = true
		log.Debugf("md window %d is ready", inc.window)
	}

	inc.last = md
	inc.EmitUpdate(md)
	return md, true
}

// Reset clears the sma and the history window, the indicator warms up again from scratch.
func (inc *MD) Reset() {
	inc.sma.Reset()
	inc.history.Clear()
	inc.last = 0
	inc.ready = false
	log.Debugf("md window %d reset", inc.window)
}

// Last returns the latest emitted value, ok is false before the window is ready.
func (inc *MD) Last() (float64, bool) {
	return inc.last, inc.ready
}

func (inc *MD) Ready() bool {
	return inc.ready
}

func (inc *MD) Window() int {
	return inc.window
}

// Bind feeds every update of the source into the indicator.
func (inc *MD) Bind(source types.Float64Source) {
	source.OnUpdate(func(v float64) {
		inc.Next(v)
	})
}

var _ types.Float64Source = &MD{}
