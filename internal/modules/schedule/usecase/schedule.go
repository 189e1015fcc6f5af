package usecase

import (
	"context"
	"fmt"

	"timetable/internal/modules/schedule/domain"
	"timetable/internal/modules/schedule/dto"
	schedulein "timetable/internal/modules/schedule/port/in"
	scheduleout "timetable/internal/modules/schedule/port/out"
	"timetable/internal/modules/schedule/service"
	apperrors "timetable/internal/platform/errors"
)

type Interactor struct {
	svc    *service.ScheduleService
	opener scheduleout.URLOpener
}

func NewInteractor(svc *service.ScheduleService, opener scheduleout.URLOpener) schedulein.Usecase {
	return &Interactor{svc: svc, opener: opener}
}

func (i *Interactor) Days(_ context.Context) ([]dto.DayOutput, error) {
	days := i.svc.Dataset().Days()
	out := make([]dto.DayOutput, 0, len(days))
	for _, d := range days {
		out = append(out, dto.DayOutput{Date: d.Date, DisplayName: d.DisplayName})
	}
	return out, nil
}

func (i *Interactor) Grid(_ context.Context, date string) (dto.GridOutput, error) {
	ds := i.svc.Dataset()
	g := i.svc.BuildGrid(date)

	out := dto.GridOutput{
		Date:        g.Date,
		DisplayName: ds.DayDisplayName(g.Date),
		TimeSlots:   append([]string(nil), g.TimeSlots...),
	}
	for _, v := range g.Venues {
		out.Venues = append(out.Venues, dto.VenueOutput{ID: v.ID, Name: v.Name})
	}
	for _, slot := range g.TimeSlots {
		for _, v := range g.Venues {
			p, ok := g.Cell(slot, v.ID)
			if !ok {
				continue
			}
			out.Cells = append(out.Cells, dto.CellOutput{
				VenueID: v.ID,
				Row:     p.Row,
				Span:    p.Span,
				Session: toSessionOutput(ds, p.Session),
			})
		}
	}
	return out, nil
}

func (i *Interactor) ListSessions(_ context.Context, date string) ([]dto.SessionOutput, error) {
	ds := i.svc.Dataset()
	sessions := ds.Sessions()
	if date != "" {
		sessions = ds.SessionsOn(date)
	}
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionOutput(ds, s))
	}
	return out, nil
}

func (i *Interactor) GetSession(_ context.Context, id string) (dto.SessionOutput, error) {
	ds := i.svc.Dataset()
	s, ok := ds.Session(id)
	if !ok {
		return dto.SessionOutput{}, fmt.Errorf("session %s: %w", id, apperrors.ErrNotFound)
	}
	return toSessionOutput(ds, s), nil
}

func (i *Interactor) OpenURL(ctx context.Context, id string) (dto.OpenURLOutput, error) {
	s, ok := i.svc.Dataset().Session(id)
	if !ok {
		return dto.OpenURLOutput{}, fmt.Errorf("session %s: %w", id, apperrors.ErrNotFound)
	}
	if !s.HasURL() {
		return dto.OpenURLOutput{}, fmt.Errorf("session %s: %w", id, apperrors.ErrNoSessionURL)
	}
	if i.opener == nil {
		return dto.OpenURLOutput{}, fmt.Errorf("url opener is not configured")
	}
	if err := i.opener.Open(ctx, s.URL); err != nil {
		return dto.OpenURLOutput{}, err
	}
	return dto.OpenURLOutput{SessionID: s.ID, URL: s.URL}, nil
}

func toSessionOutput(ds *domain.Dataset, s domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		ID:          s.ID,
		Title:       s.Title,
		Presenter:   s.Presenter,
		Affiliation: s.Affiliation,
		Date:        s.Date,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		VenueID:     ds.VenueIndex().CanonicalID(s.Venue),
		VenueName:   ds.VenueName(s.Venue),
		SessionType: s.SessionType,
		URL:         s.URL,
	}
}
