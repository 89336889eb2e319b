package app

import (
	"context"
	"strings"

	"tableflip.dev/studyhub/pkg/entity"
)

// NoteInput carries the editable note fields.
type NoteInput struct {
	Content string      `json:"content"`
	Date    entity.Date `json:"date"`
}

func (s *Service) normalizeNote(in NoteInput) (NoteInput, error) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return in, required("content")
	}
	if in.Date.IsZero() {
		in.Date = s.today()
	}
	return in, nil
}

// Notes returns every note in storage order.
func (s *Service) Notes(_ context.Context) ([]entity.Note, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.Store.Notes(), nil
}

// Note returns the note with id.
func (s *Service) Note(_ context.Context, id string) (entity.Note, error) {
	if err := s.ready(); err != nil {
		return entity.Note{}, err
	}
	notes := s.Store.Notes()
	i := entity.IndexOf(notes, id)
	if i < 0 {
		return entity.Note{}, &NotFoundError{Kind: "note", ID: id}
	}
	return notes[i], nil
}

// CreateNote validates in and appends a new note.
func (s *Service) CreateNote(ctx context.Context, in NoteInput) (entity.Note, error) {
	if err := s.ready(); err != nil {
		return entity.Note{}, err
	}
	in, err := s.normalizeNote(in)
	if err != nil {
		return entity.Note{}, err
	}
	n := entity.Note{
		ID:        entity.NewID(),
		Content:   in.Content,
		Date:      in.Date,
		CreatedAt: entity.Stamp(s.clk().Now()),
	}
	err = s.Store.UpdateNotes(ctx, func(notes []entity.Note) ([]entity.Note, error) {
		return append(notes, n), nil
	})
	if err != nil {
		return entity.Note{}, err
	}
	s.log().Info("note created", "id", n.ID)
	return n, nil
}

// UpdateNote replaces the content and date of note id.
func (s *Service) UpdateNote(ctx context.Context, id string, in NoteInput) (entity.Note, error) {
	if err := s.ready(); err != nil {
		return entity.Note{}, err
	}
	in, err := s.normalizeNote(in)
	if err != nil {
		return entity.Note{}, err
	}
	var updated entity.Note
	err = s.Store.UpdateNotes(ctx, func(notes []entity.Note) ([]entity.Note, error) {
		i := entity.IndexOf(notes, id)
		if i < 0 {
			return nil, &NotFoundError{Kind: "note", ID: id}
		}
		updated = entity.Note{
			ID:        notes[i].ID,
			Content:   in.Content,
			Date:      in.Date,
			CreatedAt: notes[i].CreatedAt,
		}
		notes[i] = updated
		return notes, nil
	})
	if err != nil {
		return entity.Note{}, err
	}
	s.log().Info("note updated", "id", id)
	return updated, nil
}

// DeleteNote removes note id. A missing id is not an error.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if entity.IndexOf(s.Store.Notes(), id) < 0 {
		return nil
	}
	err := s.Store.UpdateNotes(ctx, func(notes []entity.Note) ([]entity.Note, error) {
		return without(notes, id), nil
	})
	if err != nil {
		return err
	}
	s.log().Info("note deleted", "id", id)
	return nil
}
