package presentation

import (
	"testing"
	"time"

	"github.com/diretrix/helpdesk/internal/domain"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.March, 15, 9, 5, 0, 0, time.UTC)

	if got := FormatDate(ts, false); got != "15/03/2024 09:05" {
		t.Errorf("FormatDate = %q, want %q", got, "15/03/2024 09:05")
	}

	want := "sexta-feira, 15 de março de 2024 09:05"
	if got := FormatDate(ts, true); got != want {
		t.Errorf("FormatDate with weekday = %q, want %q", got, want)
	}
}

func TestFormatDueDate(t *testing.T) {
	if got := FormatDueDate(nil); got != "" {
		t.Errorf("FormatDueDate(nil) = %q, want empty", got)
	}

	due := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatDueDate(&due); got != "15/03/2024" {
		t.Errorf("FormatDueDate = %q, want %q", got, "15/03/2024")
	}
}

func TestIsOverdue(t *testing.T) {
	due := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	sameDayMorning := time.Date(2024, time.June, 10, 10, 0, 0, 0, time.UTC)
	nextDayEarly := time.Date(2024, time.June, 11, 0, 1, 0, 0, time.UTC)

	cases := []struct {
		name   string
		ticket domain.Ticket
		now    time.Time
		want   bool
	}{
		{
			name:   "no due date",
			ticket: domain.Ticket{Status: domain.TicketStatusOpen},
			now:    nextDayEarly,
			want:   false,
		},
		{
			name:   "closed ticket with past due date",
			ticket: domain.Ticket{Status: domain.TicketStatusClosed, DueDate: &due},
			now:    nextDayEarly,
			want:   false,
		},
		{
			name:   "due today at 10:00",
			ticket: domain.Ticket{Status: domain.TicketStatusOpen, DueDate: &due},
			now:    sameDayMorning,
			want:   false,
		},
		{
			name:   "due yesterday at 00:01",
			ticket: domain.Ticket{Status: domain.TicketStatusOpen, DueDate: &due},
			now:    nextDayEarly,
			want:   true,
		},
		{
			name:   "in progress past due",
			ticket: domain.Ticket{Status: domain.TicketStatusInProgress, DueDate: &due},
			now:    nextDayEarly,
			want:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsOverdue(&tc.ticket, tc.now); got != tc.want {
				t.Errorf("IsOverdue = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsOverdueEndOfDayBoundary(t *testing.T) {
	due := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	ticket := domain.Ticket{Status: domain.TicketStatusOpen, DueDate: &due}

	endOfDay := time.Date(2024, time.June, 10, 23, 59, 59, 999_000_000, time.UTC)
	if IsOverdue(&ticket, endOfDay) {
		t.Error("ticket overdue at exactly end of due day")
	}
	if !IsOverdue(&ticket, endOfDay.Add(time.Millisecond)) {
		t.Error("ticket not overdue just past end of due day")
	}
}
