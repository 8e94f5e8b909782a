package selection

import (
	"context"
	"fmt"
	"time"

	"bookie/models"
	"bookie/services/slots"
	"bookie/utils"

	"go.uber.org/zap"
)

const invalidatedMessage = "Selection cleared: a selected slot is no longer available"

// state is a loaded session with its selection replayed against fresh availability.
type state struct {
	session     *models.SelectionSession
	day         slots.Day
	timeline    slots.Timeline
	selection   *slots.Selection
	invalidated bool
}

func (s *DefaultSelectionService) Start(ctx context.Context, userID, roomID string, day slots.Day, now time.Time) (*models.SelectionResponse, error) {
	tl, err := s.Bookings.RoomTimeline(ctx, roomID, day, now)
	if err != nil {
		return nil, err
	}
	session := &models.SelectionSession{
		ID:        utils.NewID(),
		User:      userID,
		Room:      roomID,
		Date:      day.String(),
		Slots:     []float64{},
		CreatedAt: now.UTC(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("Selection session started",
		zap.String("sessionID", session.ID),
		zap.String("room", roomID),
		zap.String("date", session.Date))

	st := &state{session: session, day: day, timeline: tl, selection: s.Engine.NewSelection()}
	return st.response(), nil
}

func (s *DefaultSelectionService) Get(ctx context.Context, userID, sessionID string, now time.Time) (*models.SelectionResponse, error) {
	st, err := s.load(ctx, userID, sessionID, now)
	if err != nil {
		return nil, err
	}
	return st.response(), nil
}

// Click applies a click on slot. A rejected range leaves the stored selection untouched.
func (s *DefaultSelectionService) Click(ctx context.Context, userID, sessionID string, slot slots.Slot, now time.Time) (*models.SelectionResponse, error) {
	st, err := s.load(ctx, userID, sessionID, now)
	if err != nil {
		return nil, err
	}
	if err := st.selection.Click(slot, st.timeline.Available); err != nil {
		return nil, err
	}
	if err := s.save(ctx, st); err != nil {
		return nil, err
	}
	return st.response(), nil
}

func (s *DefaultSelectionService) Clear(ctx context.Context, userID, sessionID string, now time.Time) (*models.SelectionResponse, error) {
	st, err := s.load(ctx, userID, sessionID, now)
	if err != nil {
		return nil, err
	}
	st.selection.Clear()
	if err := s.save(ctx, st); err != nil {
		return nil, err
	}
	return st.response(), nil
}

// ChangeDay moves the session to day and empties the selection.
func (s *DefaultSelectionService) ChangeDay(ctx context.Context, userID, sessionID string, day slots.Day, now time.Time) (*models.SelectionResponse, error) {
	session, err := s.session(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	tl, err := s.Bookings.RoomTimeline(ctx, session.Room, day, now)
	if err != nil {
		return nil, err
	}
	session.Date = day.String()
	st := &state{session: session, day: day, timeline: tl, selection: s.Engine.NewSelection()}
	if err := s.save(ctx, st); err != nil {
		return nil, err
	}
	return st.response(), nil
}

// Submit books the current selection and empties it on success.
func (s *DefaultSelectionService) Submit(ctx context.Context, userID, sessionID string, now time.Time) (*models.Booking, error) {
	st, err := s.load(ctx, userID, sessionID, now)
	if err != nil {
		return nil, err
	}
	req, err := s.Engine.ToBookingRequest(st.selection.Slots(), st.day, userID, st.session.Room, now)
	if err != nil {
		return nil, err
	}
	booking, err := s.Bookings.CreateBooking(ctx, userID, models.BookingCreate{
		Room:     req.Room,
		Start:    req.Start,
		Duration: req.Duration,
	}, now)
	if err != nil {
		return nil, err
	}

	st.selection.Clear()
	if err := s.save(ctx, st); err != nil {
		utils.GetLogger().Warn("Booking created but selection could not be cleared",
			zap.String("sessionID", sessionID), zap.String("bookingID", booking.ID), zap.Error(err))
	}
	return booking, nil
}

func (s *DefaultSelectionService) Cancel(ctx context.Context, userID, sessionID string) error {
	if _, err := s.session(ctx, userID, sessionID); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel selection session: %w", err)
	}
	return nil
}

func (s *DefaultSelectionService) session(ctx context.Context, userID, sessionID string) (*models.SelectionSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.User != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// load fetches the session, recomputes availability and delivers it to the
// selection. An invalidated selection is persisted immediately.
func (s *DefaultSelectionService) load(ctx context.Context, userID, sessionID string, now time.Time) (*state, error) {
	session, err := s.session(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	day, err := slots.ParseDay(session.Date)
	if err != nil {
		return nil, fmt.Errorf("corrupt selection session %s: %w", sessionID, err)
	}
	tl, err := s.Bookings.RoomTimeline(ctx, session.Room, day, now)
	if err != nil {
		return nil, err
	}

	st := &state{session: session, day: day, timeline: tl, selection: s.Engine.NewSelection()}
	if err := st.selection.Restore(slots.FromHours(session.Slots)); err != nil {
		utils.GetLogger().Warn("Discarding unreadable selection", zap.String("sessionID", sessionID), zap.Error(err))
		st.invalidated = true
	} else {
		st.invalidated = st.selection.AvailabilityChanged(tl.Available)
	}
	if st.invalidated {
		if err := s.save(ctx, st); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func (s *DefaultSelectionService) save(ctx context.Context, st *state) error {
	st.session.Slots = slots.Hours(st.selection.Slots())
	return s.Store.Save(ctx, st.session)
}

func (st *state) response() *models.SelectionResponse {
	resp := &models.SelectionResponse{
		Session:     *st.session,
		State:       st.selection.State().String(),
		Available:   slots.Hours(st.timeline.Available),
		Invalidated: st.invalidated,
	}
	resp.Session.Slots = slots.Hours(st.selection.Slots())
	if st.invalidated {
		resp.Message = invalidatedMessage
	}
	return resp
}
