package tracker

import "context"

// CheckAndResetIfNewDay archives current under the last recorded date and
// resets the stored intake to zero when today differs from that date. It
// reports whether a reset happened.
//
// A gap of several days still produces a single history entry, dated with
// the last recorded day. Days that ended at zero leave no entry. A history
// that cannot be read or written loses the archived day but the counter is
// still reset. Failing to read the date or to reset the intake is logged and
// reported as no reset.
func (p *Persistence) CheckAndResetIfNewDay(ctx context.Context, current float64) bool {
	reset, err := p.rollover(ctx, current)
	if err != nil {
		p.log.Error("checking date", "error", err)
		return false
	}
	return reset
}

func (p *Persistence) rollover(ctx context.Context, current float64) (bool, error) {
	last, err := p.lastRecordedDate(ctx)
	if err != nil {
		return false, err
	}
	today := p.Today()
	if last == today {
		return false, nil
	}

	p.log.Debug("day rollover", "from", last, "to", today, "intake", current)
	if current > 0 {
		if err := p.appendHistory(ctx, last, current); err != nil {
			p.log.Error("saving to history", "date", last, "glasses", current, "error", err)
		}
	}
	if err := p.saveIntake(ctx, 0); err != nil {
		return false, err
	}
	return true, nil
}
