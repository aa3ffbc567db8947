package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	ErrRejectionReason      = errors.New("rejection reason is required")
	ErrDeliveryEvidence     = errors.New("insufficient delivery evidence")
	ErrUnsupportedTarget    = errors.New("unsupported guarded transition target")
	ErrBlankStatus          = errors.New("status is required")
)

// StatusCommand changes the lifecycle status of a freight.
//
// There are exactly two variants:
//   - GuardedTransition goes through the state machine (accept, reject, deliver).
//   - RawOverride writes any non-blank status string without checks (manual corrections, bulk edits).
type StatusCommand interface {
	isStatusCommand()
}

// GuardedTransition moves a freight to Target if the current status allows it.
type GuardedTransition struct {
	Target   FreightStatus
	Reason   string
	Evidence []string
}

// RawOverride overwrites the status unconditionally.
type RawOverride struct {
	Status string
}

func (GuardedTransition) isStatusCommand() {}
func (RawOverride) isStatusCommand()       {}

// allowedFrom lists, per guarded target, the statuses the freight may be in.
var allowedFrom = map[FreightStatus][]FreightStatus{
	// A refused freight goes back to the office, which reassigns it; the next
	// driver accepts from REJECTED.
	FreightStatusAssigned: {
		FreightStatusQuoted,
		FreightStatusRecruiting,
		FreightStatusAssigned,
		FreightStatusLoading,
		FreightStatusInTransit,
		FreightStatusRejected,
	},
	FreightStatusRejected: {
		FreightStatusQuoted,
		FreightStatusRecruiting,
		FreightStatusAssigned,
		FreightStatusLoading,
		FreightStatusInTransit,
	},
	FreightStatusDelivered: {
		FreightStatusQuoted,
		FreightStatusRecruiting,
		FreightStatusAssigned,
		FreightStatusLoading,
		FreightStatusInTransit,
	},
}

// CanTransition reports whether a guarded transition from -> to is permitted.
func CanTransition(from, to FreightStatus) bool {
	for _, s := range allowedFrom[to] {
		if s == from {
			return true
		}
	}
	return false
}

// Apply executes cmd against the freight, stamping timestamps with now.
func (f *Freight) Apply(cmd StatusCommand, now time.Time) error {
	switch c := cmd.(type) {
	case GuardedTransition:
		return f.applyGuarded(c, now)
	case RawOverride:
		return f.applyRaw(c, now)
	default:
		return fmt.Errorf("unknown status command %T", cmd)
	}
}

func (f *Freight) applyGuarded(c GuardedTransition, now time.Time) error {
	if _, ok := allowedFrom[c.Target]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedTarget, c.Target)
	}
	if !CanTransition(f.Status, c.Target) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, f.Status, c.Target)
	}

	switch c.Target {
	case FreightStatusAssigned:
		// Repeated accepts re-stamp the acceptance time.
		f.AcceptedAt = timePtr(now)
	case FreightStatusRejected:
		reason := strings.TrimSpace(c.Reason)
		if reason == "" {
			return ErrRejectionReason
		}
		f.RejectionReason = reason
	case FreightStatusDelivered:
		if len(c.Evidence) < MinDeliveryEvidence {
			return fmt.Errorf("%w: got %d, need %d", ErrDeliveryEvidence, len(c.Evidence), MinDeliveryEvidence)
		}
		f.DeliveredAt = timePtr(now)
		f.DeliveryEvidence = append([]string(nil), c.Evidence...)
	}

	f.setStatus(c.Target, now)
	return nil
}

func (f *Freight) applyRaw(c RawOverride, now time.Time) error {
	status := strings.TrimSpace(c.Status)
	if status == "" {
		return ErrBlankStatus
	}
	f.setStatus(FreightStatus(status), now)
	return nil
}

func (f *Freight) setStatus(s FreightStatus, now time.Time) {
	if s != FreightStatusDelivered {
		f.DeliveredAt = nil
		f.DeliveryEvidence = nil
	}
	if s != FreightStatusRejected {
		f.RejectionReason = ""
	}
	f.Status = s
	f.UpdatedAt = now
}

func timePtr(t time.Time) *time.Time {
	return &t
}
