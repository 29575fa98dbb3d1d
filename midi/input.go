package midi

import (
	"errors"
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

var ErrNoInputSource = errors.New("No midi devices found")

// ConnectionError means the input port exists but could not be opened or
// listened to, for example because another program holds it.
type ConnectionError struct {
	Device string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to %s: %v", e.Device, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

type Handler func(msg gomidi.Message, timestampms int32)

// Ports abstracts the registered driver so device selection can be tested.
type Ports interface {
	Ins() []drivers.In
}

type driverPorts struct{}

func (driverPorts) Ins() []drivers.In {
	return gomidi.GetInPorts()
}

// DriverPorts enumerates inputs of the registered driver.
var DriverPorts Ports = driverPorts{}

// FirstInput picks the first enumerated input.
func FirstInput(p Ports) (drivers.In, error) {
	ins := p.Ins()
	if len(ins) == 0 {
		return nil, ErrNoInputSource
	}
	return ins[0], nil
}

// Connect starts delivering messages from in to h. Messages arrive on the
// driver's goroutine in the order they were received.
func Connect(in drivers.In, h Handler) (stop func(), err error) {
	stop, err = gomidi.ListenTo(in, h)
	if err != nil {
		return nil, &ConnectionError{Device: in.String(), Err: err}
	}
	return stop, nil
}

func Close() {
	gomidi.CloseDriver()
}
