package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"consultation-booking/internal/domain/draft"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/pkg/ical"
	"consultation-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const ContentTypeICS = "text/calendar; charset=utf-8"

type DraftConfig struct {
	WindowDays int
	Location   *time.Location
}

type DraftCommands interface {
	Create() *draft.Draft
	Get(id uuid.UUID) (*draft.Draft, error)
	SelectDate(id uuid.UUID, date time.Time) (*draft.Draft, error)
	SelectTime(id uuid.UUID, value string) (*draft.Draft, error)
	SubmitDetails(ctx context.Context, id uuid.UUID, in draft.Details) (*draft.Draft, error)
	Back(id uuid.UUID) (*draft.Draft, error)
	Reset(id uuid.UUID) (*draft.Draft, error)
	CalendarFile(id uuid.UUID) (*queries.ExportFile, error)
}

type draftCommandsImpl struct {
	store        DraftStore
	orchestrator *Orchestrator
	clock        clock.Clock
	cfg          DraftConfig
}

func NewDraftCommands(store DraftStore, orchestrator *Orchestrator, clock clock.Clock, cfg DraftConfig) DraftCommands {
	return &draftCommandsImpl{
		store:        store,
		orchestrator: orchestrator,
		clock:        clock,
		cfg:          cfg,
	}
}

func (c *draftCommandsImpl) Create() *draft.Draft {
	d := draft.New(c.clock.Now())
	c.store.Create(d)
	return d.Clone()
}

func (c *draftCommandsImpl) Get(id uuid.UUID) (*draft.Draft, error) {
	d, ok := c.store.Get(id)
	if !ok {
		return nil, errs.ErrDraftNotFound
	}
	return d, nil
}

func (c *draftCommandsImpl) SelectDate(id uuid.UUID, date time.Time) (*draft.Draft, error) {
	now := c.clock.Now()
	d, err := c.store.Update(id, func(d *draft.Draft) error {
		return d.SelectDate(date, draft.Availability{
			Now:        now,
			WindowDays: c.cfg.WindowDays,
			Location:   c.cfg.Location,
		})
	})
	return d, translateDraftErr(err)
}

func (c *draftCommandsImpl) SelectTime(id uuid.UUID, value string) (*draft.Draft, error) {
	now := c.clock.Now()
	d, err := c.store.Update(id, func(d *draft.Draft) error {
		return d.SelectTime(value, now)
	})
	return d, translateDraftErr(err)
}

// SubmitDetails moves the draft into Confirming under the store lock, so only one
// caller ever wins the transition and runs the orchestrator. The orchestrator
// itself runs outside the lock.
func (c *draftCommandsImpl) SubmitDetails(ctx context.Context, id uuid.UUID, in draft.Details) (*draft.Draft, error) {
	now := c.clock.Now()
	confirming, err := c.store.Update(id, func(d *draft.Draft) error {
		return d.SubmitDetails(in, c.cfg.Location, now)
	})
	if err != nil {
		return nil, translateDraftErr(err)
	}

	res := c.orchestrator.Confirm(ctx, confirming)

	confirmed, err := c.store.Update(id, func(d *draft.Draft) error {
		return d.Confirm(res.Booking, res.Confirmation, c.clock.Now())
	})
	if err != nil {
		// reset or expired while confirming; the booking already went out
		slog.Warn("Could not attach confirmation to draft", "draft_id", id, "error", err.Error())
		if cerr := confirming.Confirm(res.Booking, res.Confirmation, c.clock.Now()); cerr != nil {
			return nil, translateDraftErr(cerr)
		}
		return confirming, nil
	}
	return confirmed, nil
}

func (c *draftCommandsImpl) Back(id uuid.UUID) (*draft.Draft, error) {
	now := c.clock.Now()
	d, err := c.store.Update(id, func(d *draft.Draft) error {
		return d.Back(now)
	})
	return d, translateDraftErr(err)
}

func (c *draftCommandsImpl) Reset(id uuid.UUID) (*draft.Draft, error) {
	now := c.clock.Now()
	d, err := c.store.Update(id, func(d *draft.Draft) error {
		d.Reset(now)
		return nil
	})
	return d, translateDraftErr(err)
}

func (c *draftCommandsImpl) CalendarFile(id uuid.UUID) (*queries.ExportFile, error) {
	d, ok := c.store.Get(id)
	if !ok {
		return nil, errs.ErrDraftNotFound
	}
	if d.Booking() == nil {
		return nil, errs.Mark(draft.ErrNotConfirming, errs.ErrInvalidTransition)
	}
	return &queries.ExportFile{
		FileName:    ical.FileName(d.Booking().Client().Name.String()),
		ContentType: ContentTypeICS,
		Data:        []byte(ical.Build(CalendarEvent(d), c.clock.Now())),
	}, nil
}

// translateDraftErr leaves FieldErrors untouched so handlers can render them.
func translateDraftErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, draft.ErrInvalidTransition),
		errors.Is(err, draft.ErrNotConfirming),
		errors.Is(err, draft.ErrAlreadyConfirmed):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, draft.ErrDateOutsideWindow),
		errors.Is(err, draft.ErrUnknownSlot),
		errors.Is(err, draft.ErrSlotUnavailable):
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return err
	}
}
