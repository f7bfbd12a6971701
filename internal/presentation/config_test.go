package presentation

import (
	"testing"

	"github.com/diretrix/helpdesk/internal/domain"
)

func TestStatusConfigLabels(t *testing.T) {
	cases := []struct {
		status domain.TicketStatus
		label  string
	}{
		{domain.TicketStatusOpen, "Aberto"},
		{domain.TicketStatusInProgress, "Em andamento"},
		{domain.TicketStatusClosed, "Concluído"},
	}
	for _, tc := range cases {
		cfg, ok := StatusConfig(tc.status)
		if !ok {
			t.Errorf("StatusConfig(%q) reported unknown", tc.status)
		}
		if cfg.Label != tc.label {
			t.Errorf("StatusConfig(%q).Label = %q, want %q", tc.status, cfg.Label, tc.label)
		}
	}
}

func TestStatusConfigDistinctTokens(t *testing.T) {
	seenColors := map[string]domain.TicketStatus{}
	seenIcons := map[string]domain.TicketStatus{}
	for _, status := range []domain.TicketStatus{domain.TicketStatusOpen, domain.TicketStatusInProgress, domain.TicketStatusClosed} {
		cfg, _ := StatusConfig(status)
		if prev, dup := seenColors[cfg.Color]; dup {
			t.Errorf("color %q shared by %q and %q", cfg.Color, prev, status)
		}
		if prev, dup := seenIcons[cfg.Icon]; dup {
			t.Errorf("icon %q shared by %q and %q", cfg.Icon, prev, status)
		}
		seenColors[cfg.Color] = status
		seenIcons[cfg.Icon] = status
	}
}

func TestStatusConfigUnknownFallsBackToOpen(t *testing.T) {
	cfg, ok := StatusConfig(domain.TicketStatus("archived"))
	if ok {
		t.Error("unknown status reported as known")
	}
	open, _ := StatusConfig(domain.TicketStatusOpen)
	if cfg != open {
		t.Errorf("unknown status config = %+v, want open config %+v", cfg, open)
	}
}

func TestTypeConfigLabels(t *testing.T) {
	cases := []struct {
		ticketType domain.TicketType
		label      string
	}{
		{domain.TicketTypeQuestion, "Dúvida"},
		{domain.TicketTypeBug, "Bug"},
		{domain.TicketTypeDevelopment, "Solicitação de Desenvolvimento"},
	}
	for _, tc := range cases {
		if got := TypeConfig(tc.ticketType).Label; got != tc.label {
			t.Errorf("TypeConfig(%q).Label = %q, want %q", tc.ticketType, got, tc.label)
		}
	}
}

func TestTypeConfigUnknownFallsBackToQuestion(t *testing.T) {
	got := TypeConfig(domain.TicketType("legacy"))
	want := TypeConfig(domain.TicketTypeQuestion)
	if got != want {
		t.Errorf("TypeConfig(legacy) = %+v, want question config %+v", got, want)
	}
}
