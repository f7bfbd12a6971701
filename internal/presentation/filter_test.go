package presentation

import (
	"reflect"
	"testing"

	"github.com/diretrix/helpdesk/internal/domain"
)

func sampleTickets() []domain.Ticket {
	return []domain.Ticket{
		{
			ID:          "1",
			Title:       "Login bug",
			Description: "Error 500 on sign in",
			Type:        domain.TicketTypeBug,
			Status:      domain.TicketStatusOpen,
			Creator:     &domain.UserInfo{Name: "Maria Santos"},
		},
		{
			ID:          "2",
			Title:       "Password question",
			Description: "How do I reset my password",
			Type:        domain.TicketTypeQuestion,
			Status:      domain.TicketStatusClosed,
			Creator:     &domain.UserInfo{Name: "Carlos Lima"},
		},
		{
			ID:          "3",
			Title:       "Export feature",
			Description: "Need CSV export of reports",
			Type:        domain.TicketTypeDevelopment,
			Status:      domain.TicketStatusInProgress,
			Creator:     &domain.UserInfo{Name: "Maria Santos"},
		},
	}
}

func ids(tickets []domain.Ticket) []string {
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ID)
	}
	return out
}

func TestFilterNoCriteriaKeepsAll(t *testing.T) {
	tickets := sampleTickets()
	got := Filter(tickets, "", FilterAll, FilterAll)
	if !reflect.DeepEqual(ids(got), []string{"1", "2", "3"}) {
		t.Errorf("got %v, want all tickets in order", ids(got))
	}
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(sampleTickets(), "LOGIN", FilterAll, FilterAll)
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Errorf("search LOGIN got %v, want [1]", ids(got))
	}
}

func TestFilterSearchMatchesDescription(t *testing.T) {
	got := Filter(sampleTickets(), "csv", FilterAll, FilterAll)
	if !reflect.DeepEqual(ids(got), []string{"3"}) {
		t.Errorf("search csv got %v, want [3]", ids(got))
	}
}

func TestFilterSearchMatchesCreatorName(t *testing.T) {
	got := Filter(sampleTickets(), "maria", FilterAll, FilterAll)
	if !reflect.DeepEqual(ids(got), []string{"1", "3"}) {
		t.Errorf("search maria got %v, want [1 3]", ids(got))
	}
}

func TestFilterIsConjunctive(t *testing.T) {
	tickets := sampleTickets()

	got := Filter(tickets, "bug", FilterAll, FilterAll)
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Fatalf("search bug got %v, want [1]", ids(got))
	}

	got = Filter(tickets, "bug", FilterAll, string(domain.TicketStatusClosed))
	if len(got) != 0 {
		t.Errorf("search bug + status closed got %v, want empty", ids(got))
	}
}

func TestFilterByTypeAndStatus(t *testing.T) {
	tickets := sampleTickets()

	got := Filter(tickets, "", string(domain.TicketTypeQuestion), FilterAll)
	if !reflect.DeepEqual(ids(got), []string{"2"}) {
		t.Errorf("type question got %v, want [2]", ids(got))
	}

	got = Filter(tickets, "", FilterAll, string(domain.TicketStatusInProgress))
	if !reflect.DeepEqual(ids(got), []string{"3"}) {
		t.Errorf("status in_progress got %v, want [3]", ids(got))
	}
}

func TestFilterPreservesOrderAndIsIdempotent(t *testing.T) {
	tickets := sampleTickets()
	first := Filter(tickets, "maria", FilterAll, FilterAll)
	second := Filter(tickets, "maria", FilterAll, FilterAll)
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Errorf("repeated filter differs: %v vs %v", ids(first), ids(second))
	}
}

func TestFilterNilCreatorDoesNotPanic(t *testing.T) {
	tickets := []domain.Ticket{{ID: "1", Title: "Orphan", Description: "no creator joined"}}
	got := Filter(tickets, "orphan", FilterAll, FilterAll)
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Errorf("got %v, want [1]", ids(got))
	}
}
