package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// OutputPin is a single digital output line, claimed low.
// It implements the indicator.Pin interface.
type OutputPin struct {
	line *gpiocdev.Line
}

// RequestOutput claims offset on chip as an output driven low.
func RequestOutput(chip string, offset int) (*OutputPin, error) {
	line, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer(consumer),
	)
	if err != nil {
		return nil, fmt.Errorf("request output line %s:%d: %w", chip, offset, err)
	}

	return &OutputPin{line: line}, nil
}

// Set drives the line high (true) or low (false).
func (p *OutputPin) Set(high bool) error {
	value := 0
	if high {
		value = 1
	}
	return p.line.SetValue(value)
}

// Close releases the line claim.
func (p *OutputPin) Close() error {
	return p.line.Close()
}
