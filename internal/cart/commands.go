package cart

import "time"

// Typed command set for the order builder. The UI dispatches these instead of
// calling engine methods from event handlers directly, which keeps the engine
// independent of any particular rendering layer.

type Command interface{ isCommand() }

type AddLine struct {
	ProductID int
}

type RemoveLine struct {
	ProductID int
}

type AdjustQuantity struct {
	ProductID int
	Delta     int
}

type Clear struct{}

type SubmitImmediate struct{}

type SubmitScheduled struct {
	CompleteAt time.Time
	Note       string
}

func (AddLine) isCommand()         {}
func (RemoveLine) isCommand()      {}
func (AdjustQuantity) isCommand()  {}
func (Clear) isCommand()           {}
func (SubmitImmediate) isCommand() {}
func (SubmitScheduled) isCommand() {}

// Apply executes a mutation command against the cart and reports whether
// anything changed. Submit commands are not mutations; they go through the
// Service so the network round-trip stays out of the engine.
func (c *Cart) Apply(cmd Command) bool {
	switch cmd := cmd.(type) {
	case AddLine:
		_, ok := c.AddLine(cmd.ProductID)
		return ok
	case RemoveLine:
		return c.RemoveLine(cmd.ProductID)
	case AdjustQuantity:
		return c.AdjustQuantity(cmd.ProductID, cmd.Delta)
	case Clear:
		return c.Clear()
	}
	return false
}
