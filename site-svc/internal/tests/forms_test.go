package tests

import (
	"testing"
	"time"

	"sabor-autentico/site-svc/internal/clock"
	"sabor-autentico/site-svc/internal/domain"
	"sabor-autentico/site-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReservation() domain.Reservation {
	return domain.Reservation{
		Date:   "2025-03-12",
		Time:   "20:30",
		Guests: 4,
		Name:   "Lucía",
		Email:  "lucia@example.com",
		Phone:  "555-0101",
	}
}

func TestValidateReservation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *domain.Reservation)
		wantErr error
	}{
		{name: "valid", modify: func(r *domain.Reservation) {}},
		{name: "today_is_allowed", modify: func(r *domain.Reservation) { r.Date = "2025-03-10" }},
		{name: "known_occasion", modify: func(r *domain.Reservation) { r.Occasion = "Aniversario" }},
		{name: "occasion_with_spaces", modify: func(r *domain.Reservation) { r.Occasion = "Reunión de negocios" }},
		{name: "max_guests", modify: func(r *domain.Reservation) { r.Guests = 12 }},
		{name: "partial_occasion", modify: func(r *domain.Reservation) { r.Occasion = "Reunión" }, wantErr: service.ErrInvalidField},
		{name: "missing_time", modify: func(r *domain.Reservation) { r.Time = "" }, wantErr: service.ErrMissingField},
		{name: "missing_date", modify: func(r *domain.Reservation) { r.Date = "" }, wantErr: service.ErrMissingField},
		{name: "missing_email", modify: func(r *domain.Reservation) { r.Email = " " }, wantErr: service.ErrMissingField},
		{name: "past_date", modify: func(r *domain.Reservation) { r.Date = "2025-03-09" }, wantErr: service.ErrInvalidField},
		{name: "malformed_date", modify: func(r *domain.Reservation) { r.Date = "12/03/2025" }, wantErr: service.ErrInvalidField},
		{name: "time_outside_slots", modify: func(r *domain.Reservation) { r.Time = "16:00" }, wantErr: service.ErrInvalidField},
		{name: "too_many_guests", modify: func(r *domain.Reservation) { r.Guests = 13 }, wantErr: service.ErrInvalidField},
		{name: "negative_guests", modify: func(r *domain.Reservation) { r.Guests = -1 }, wantErr: service.ErrInvalidField},
		{name: "unknown_occasion", modify: func(r *domain.Reservation) { r.Occasion = "Bautizo" }, wantErr: service.ErrInvalidField},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r := validReservation()
			testCase.modify(&r)

			err := service.ValidateReservation(&r, testStart)

			if testCase.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, testCase.wantErr)
			}
		})
	}
}

func TestValidateReservation_DefaultsGuests(t *testing.T) {
	r := validReservation()
	r.Guests = 0

	require.NoError(t, service.ValidateReservation(&r, testStart))
	assert.Equal(t, 2, r.Guests)
}

func TestValidateReservation_AcceptsEveryOption(t *testing.T) {
	for _, occasion := range service.Occasions {
		r := validReservation()
		r.Occasion = occasion
		assert.NoError(t, service.ValidateReservation(&r, testStart), occasion)
	}
	for _, slot := range service.TimeSlots {
		r := validReservation()
		r.Time = slot
		assert.NoError(t, service.ValidateReservation(&r, testStart), slot)
	}
}

func TestValidateReservation_ReportsFieldName(t *testing.T) {
	r := validReservation()
	r.Phone = ""

	err := service.ValidateReservation(&r, testStart)

	require.ErrorIs(t, err, service.ErrMissingField)
	assert.Contains(t, err.Error(), "phone")

	r = validReservation()
	r.Time = "16:00"

	err = service.ValidateReservation(&r, testStart)

	require.ErrorIs(t, err, service.ErrInvalidField)
	assert.Contains(t, err.Error(), "time")
}

func TestValidateContact(t *testing.T) {
	valid := domain.ContactMessage{Name: "Ana", Email: "ana@example.com", Subject: "evento", Message: "Hola"}

	assert.NoError(t, service.ValidateContact(&valid))

	missing := valid
	missing.Message = ""
	assert.ErrorIs(t, service.ValidateContact(&missing), service.ErrMissingField)

	unknown := valid
	unknown.Subject = "queja"
	assert.ErrorIs(t, service.ValidateContact(&unknown), service.ErrInvalidField)

	for _, subject := range service.ContactSubjects {
		m := valid
		m.Subject = subject.Value
		assert.NoError(t, service.ValidateContact(&m), subject.Value)
	}
}

func TestNewReservationOptions(t *testing.T) {
	opts := service.NewReservationOptions(testStart)

	assert.Len(t, opts.TimeSlots, 16)
	assert.Equal(t, "11:00", opts.TimeSlots[0])
	assert.Equal(t, "22:30", opts.TimeSlots[15])
	assert.Len(t, opts.Occasions, 7)
	assert.Equal(t, 1, opts.MinGuests)
	assert.Equal(t, 12, opts.MaxGuests)
	assert.Equal(t, 2, opts.DefaultGuests)
	assert.Equal(t, "2025-03-10", opts.MinDate)
}

func TestNotice_HidesAfterTTL(t *testing.T) {
	clk := clock.NewFake(testStart)
	notice := service.NewNotice[domain.ContactMessage](clk, service.ContactNoticeTTL)

	_, ok := notice.Current()
	assert.False(t, ok)

	shown := notice.Show(domain.ContactMessage{Name: "Ana"})
	assert.Len(t, shown.Code, 8)
	assert.Equal(t, testStart.Add(3*time.Second), shown.ShownUntil)

	clk.Advance(2999 * time.Millisecond)
	current, ok := notice.Current()
	require.True(t, ok)
	assert.Equal(t, shown, current)

	clk.Advance(time.Millisecond)
	_, ok = notice.Current()
	assert.False(t, ok)
}

func TestNotice_ResubmitRestartsTimer(t *testing.T) {
	clk := clock.NewFake(testStart)
	notice := service.NewNotice[domain.Reservation](clk, service.ReservationNoticeTTL)

	notice.Show(domain.Reservation{Name: "first"})
	clk.Advance(4 * time.Second)
	second := notice.Show(domain.Reservation{Name: "second"})

	clk.Advance(2 * time.Second)
	current, ok := notice.Current()
	require.True(t, ok)
	assert.Equal(t, second.Code, current.Code)
	assert.Equal(t, "second", current.Record.Name)

	clk.Advance(3 * time.Second)
	_, ok = notice.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, clk.Pending())
}

func TestNotice_StopClearsAndCancels(t *testing.T) {
	clk := clock.NewFake(testStart)
	notice := service.NewNotice[domain.Reservation](clk, service.ReservationNoticeTTL)

	notice.Show(domain.Reservation{Name: "x"})
	notice.Stop()

	_, ok := notice.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, clk.Pending())
}
