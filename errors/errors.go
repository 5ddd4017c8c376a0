package errors

import "fmt"

var (
	ErrNegativeDelay     = fmt.Errorf("negative delay")
	ErrDuplicateRole     = fmt.Errorf("role kind already registered on this actor")
	ErrUnknownActor      = fmt.Errorf("no actor registered for this identity")
	ErrInsufficientStock = fmt.Errorf("insufficient stock")
	ErrNoRoute           = fmt.Errorf("no transport route between locations")
	ErrInvalidScenario   = fmt.Errorf("invalid scenario")
	ErrUnknownProduct    = fmt.Errorf("unknown product")
)
