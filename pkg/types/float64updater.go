package types

// Float64Source is anything that emits float64 updates, e.g. a price feed or an indicator.
type Float64Source interface {
	OnUpdate(f func(v float64))
}

//go:generate callbackgen -type Float64Updater
type Float64Updater struct {
	updateCallbacks []func(v float64)
}

var _ Float64Source = &Float64Updater{}
