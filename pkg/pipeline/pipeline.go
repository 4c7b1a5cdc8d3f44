package pipeline

import (
	"github.com/Laky-64/gologging"
	"github.com/amarnathcjd/gogram/telegram"
)

// Decision is the outcome of one interceptor for one message.
type Decision int

const (
	// Continue hands the message to the next interceptor in the chain.
	Continue Decision = iota
	// Stop ends processing for this message; later interceptors never observe it.
	Stop
)

// Interceptor is one ordered stage of the enforcement chain. It inspects a
// message, may act on it, and decides whether the chain continues.
type Interceptor interface {
	Name() string
	Handle(m *telegram.NewMessage) (Decision, error)
}

// Chain is a fixed, explicitly ordered sequence of interceptors evaluated for
// every incoming group message before ordinary command dispatch. A Stop from
// any stage short-circuits the rest; a stage error is logged and the chain
// moves on, so one broken stage cannot take down enforcement for the message.
type Chain struct {
	stages []Interceptor
}

// NewChain builds a chain that evaluates the given interceptors in order.
func NewChain(stages ...Interceptor) *Chain {
	return &Chain{stages: stages}
}

// Handle runs the chain for one message.
func (c *Chain) Handle(m *telegram.NewMessage) error {
	for _, stage := range c.stages {
		decision, err := stage.Handle(m)
		if err != nil {
			gologging.WarnF("[pipeline] The %s stage failed: %v", stage.Name(), err)
			continue
		}
		if decision == Stop {
			gologging.DebugF("[pipeline] The %s stage stopped the chain.", stage.Name())
			return nil
		}
	}
	return nil
}

// Register wires the enforcement chain and the new-member gate onto the client.
// The chain order is fixed: lock enforcement runs first so a deleted message is
// never logged or matched against filters.
func Register(c *telegram.Client) {
	chain := NewChain(
		&LockEnforcer{},
		&ActivityRecorder{},
		&FilterResponder{},
	)

	c.On(telegram.OnNewMessage, chain.Handle)
	c.On(telegram.OnParticipant, (&NameGate{}).HandleJoin)
	gologging.Debug("The enforcement pipeline has been registered.")
}
