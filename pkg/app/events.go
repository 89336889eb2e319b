package app

import (
	"context"
	"strings"

	"tableflip.dev/studyhub/pkg/entity"
)

// EventInput carries the editable event fields.
type EventInput struct {
	EventName            string      `json:"eventName"`
	RegistrationDeadline entity.Date `json:"registrationDeadline"`
	ParticipationDate    entity.Date `json:"participationDate"`
	Notes                string      `json:"notes"`
}

func (s *Service) normalizeEvent(in EventInput) (EventInput, error) {
	in.EventName = strings.TrimSpace(in.EventName)
	if in.EventName == "" {
		return in, required("eventName")
	}
	in.Notes = strings.TrimSpace(in.Notes)
	if in.RegistrationDeadline.IsZero() {
		in.RegistrationDeadline = s.today()
	}
	if in.ParticipationDate.IsZero() {
		in.ParticipationDate = s.today()
	}
	if in.RegistrationDeadline.After(in.ParticipationDate.Time) {
		s.log().Warn("registration closes after the event",
			"event", in.EventName,
			"registrationDeadline", in.RegistrationDeadline,
			"participationDate", in.ParticipationDate)
	}
	return in, nil
}

// Events returns every event in storage order.
func (s *Service) Events(_ context.Context) ([]entity.Event, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Store.Events(), nil
}

// Event returns the event with id.
func (s *Service) Event(_ context.Context, id string) (entity.Event, error) {
	if err := s.ready(); err != nil {
		return entity.Event{}, err
	}
	events := s.Store.Events()
	i := entity.IndexOf(events, id)
	if i < 0 {
		return entity.Event{}, &NotFoundError{Kind: "event", ID: id}
	}
	return events[i], nil
}

// CreateEvent validates in and appends a new event.
func (s *Service) CreateEvent(ctx context.Context, in EventInput) (entity.Event, error) {
	if err := s.ready(); err != nil {
		return entity.Event{}, err
	}
	in, err := s.normalizeEvent(in)
	if err != nil {
		return entity.Event{}, err
	}
	ev := entity.Event{
		ID:                   entity.NewID(),
		EventName:            in.EventName,
		RegistrationDeadline: in.RegistrationDeadline,
		ParticipationDate:    in.ParticipationDate,
		Notes:                in.Notes,
		CreatedAt:            entity.Stamp(s.clk().Now()),
	}
	err = s.Store.UpdateEvents(ctx, func(events []entity.Event) ([]entity.Event, error) {
		return append(events, ev), nil
	})
	if err != nil {
		return entity.Event{}, err
	}
	s.log().Info("event created", "id", ev.ID, "eventName", ev.EventName)
	return ev, nil
}

// UpdateEvent replaces the editable fields of event id, keeping its id and
// creation time.
func (s *Service) UpdateEvent(ctx context.Context, id string, in EventInput) (entity.Event, error) {
	if err := s.ready(); err != nil {
		return entity.Event{}, err
	}
	in, err := s.normalizeEvent(in)
	if err != nil {
		return entity.Event{}, err
	}
	var updated entity.Event
	err = s.Store.UpdateEvents(ctx, func(events []entity.Event) ([]entity.Event, error) {
		i := entity.IndexOf(events, id)
		if i < 0 {
			return nil, &NotFoundError{Kind: "event", ID: id}
		}
		updated = entity.Event{
			ID:                   events[i].ID,
			EventName:            in.EventName,
			RegistrationDeadline: in.RegistrationDeadline,
			ParticipationDate:    in.ParticipationDate,
			Notes:                in.Notes,
			CreatedAt:            events[i].CreatedAt,
		}
		events[i] = updated
		return events, nil
	})
	if err != nil {
		return entity.Event{}, err
	}
	s.log().Info("event updated", "id", id)
	return updated, nil
}

// DeleteEvent removes event id. A missing id is not an error.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if entity.IndexOf(s.Store.Events(), id) < 0 {
		return nil
	}
	err := s.Store.UpdateEvents(ctx, func(events []entity.Event) ([]entity.Event, error) {
		return without(events, id), nil
	})
	if err != nil {
		return err
	}
	s.log().Info("event deleted", "id", id)
	return nil
}
