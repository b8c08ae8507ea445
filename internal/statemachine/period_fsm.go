package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/finware/glcore/internal/core/domain"
)

// PeriodFSM wraps a period with its status state machine. Transitions are
// forward-only; there is no reopen event, an administrative reopen is an
// audited override outside this machine.
type PeriodFSM struct {
	period *domain.Period
	fsm    *fsm.FSM
}

// NewPeriodFSM creates a state machine seeded with the period's current status.
func NewPeriodFSM(period *domain.Period) *PeriodFSM {
	p := &PeriodFSM{period: period}

	p.fsm = fsm.NewFSM(
		string(period.Status),
		fsm.Events{
			// future → open
			{Name: "open", Src: []string{string(domain.PeriodFuture)}, Dst: string(domain.PeriodOpen)},

			// open → closing (close processing begins; closing-specific entries still allowed)
			{Name: "begin_close", Src: []string{string(domain.PeriodOpen)}, Dst: string(domain.PeriodClosing)},

			// open/closing → closed
			{Name: "close", Src: []string{string(domain.PeriodOpen), string(domain.PeriodClosing)}, Dst: string(domain.PeriodClosed)},

			// closed → permanently closed
			{Name: "permanently_close", Src: []string{string(domain.PeriodClosed)}, Dst: string(domain.PeriodPermanentlyClosed)},
		},
		fsm.Callbacks{},
	)

	return p
}

// Open transitions the period from future to open.
func (p *PeriodFSM) Open(ctx context.Context) error {
	if err := p.fsm.Event(ctx, "open"); err != nil {
		return fmt.Errorf("period %s cannot open from status %s: %w", p.period.Name, p.period.Status, err)
	}
	p.period.Status = domain.PeriodStatus(p.fsm.Current())
	return nil
}

// BeginClose transitions the period from open to closing.
func (p *PeriodFSM) BeginClose(ctx context.Context) error {
	if err := p.fsm.Event(ctx, "begin_close"); err != nil {
		return fmt.Errorf("period %s cannot begin close from status %s: %w", p.period.Name, p.period.Status, err)
	}
	p.period.Status = domain.PeriodStatus(p.fsm.Current())
	return nil
}

// Close transitions the period to closed. The close gate (checklist and
// exception rollup) is the caller's responsibility; the machine only enforces
// legal source states.
func (p *PeriodFSM) Close(ctx context.Context) error {
	if err := p.fsm.Event(ctx, "close"); err != nil {
		return fmt.Errorf("period %s cannot close from status %s: %w", p.period.Name, p.period.Status, err)
	}
	p.period.Status = domain.PeriodStatus(p.fsm.Current())
	return nil
}

// PermanentlyClose transitions the period from closed to permanently closed.
func (p *PeriodFSM) PermanentlyClose(ctx context.Context) error {
	if err := p.fsm.Event(ctx, "permanently_close"); err != nil {
		return fmt.Errorf("period %s cannot permanently close from status %s: %w", p.period.Name, p.period.Status, err)
	}
	p.period.Status = domain.PeriodStatus(p.fsm.Current())
	return nil
}

// Current returns the current status.
func (p *PeriodFSM) Current() domain.PeriodStatus {
	return domain.PeriodStatus(p.fsm.Current())
}

// Can checks whether an event is possible from the current status.
func (p *PeriodFSM) Can(event string) bool {
	return p.fsm.Can(event)
}
