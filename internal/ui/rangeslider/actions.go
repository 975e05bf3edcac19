package rangeslider

import (
	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/ui/action"
)

// Changed reports a new slider value.
type Changed struct {
	Value float64
	// TriggeredByUser is true for pointer-down and externally applied
	// values, false for drag moves.
	TriggeredByUser bool
}

// ActionType implements action.Action.
func (a Changed) ActionType() string { return "rangeslider.changed" }

// Diagnostic reports a pointer or value update the slider skipped.
type Diagnostic struct {
	Op  errmsg.Op
	Err error
}

// ActionType implements action.Action.
func (a Diagnostic) ActionType() string { return "rangeslider.diagnostic" }

// ActionMsg creates an action.Msg for a slider action.
func ActionMsg(id string, a action.Action) action.Msg {
	return action.Msg{Source: id, Action: a}
}
