package presentation

import (
	"fmt"
	"time"

	"github.com/diretrix/helpdesk/internal/domain"
)

var weekdayNames = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var monthNames = [...]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

// FormatDate renders a timestamp as DD/MM/YYYY HH:MM. With includeWeekday
// the weekday and month are spelled out in pt-BR.
func FormatDate(t time.Time, includeWeekday bool) string {
	if includeWeekday {
		return fmt.Sprintf("%s, %02d de %s de %d %02d:%02d",
			weekdayNames[t.Weekday()], t.Day(), monthNames[t.Month()], t.Year(), t.Hour(), t.Minute())
	}
	return t.Format("02/01/2006 15:04")
}

// FormatDueDate renders a due date as DD/MM/YYYY, or "" when absent.
func FormatDueDate(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Format("02/01/2006")
}

// IsOverdue reports whether the ticket should carry an overdue warning at
// the given instant. Closed tickets and tickets without a due date are
// never overdue. The due date counts as met through the end of its
// calendar day, so the flag flips strictly after 23:59:59.999.
func IsOverdue(ticket *domain.Ticket, now time.Time) bool {
	if ticket.DueDate == nil || ticket.Status == domain.TicketStatusClosed {
		return false
	}
	due := *ticket.DueDate
	endOfDay := time.Date(due.Year(), due.Month(), due.Day(), 23, 59, 59, 999_000_000, due.Location())
	return endOfDay.Before(now)
}
