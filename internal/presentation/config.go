// Package presentation maps ticket enums and timestamps to the display
// metadata every client view renders identically: fixed pt-BR labels,
// color tokens and icon tokens, due-date formatting and the overdue flag.
// Everything here is a pure function; "now" is always an explicit input.
package presentation

import "github.com/diretrix/helpdesk/internal/domain"

// Config is the {label, color token, icon token} triple for one enum value.
type Config struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var statusConfigs = map[domain.TicketStatus]Config{
	domain.TicketStatusOpen: {
		Label: "Aberto",
		Color: "status-open",
		Icon:  "alert-circle",
	},
	domain.TicketStatusInProgress: {
		Label: "Em andamento",
		Color: "status-progress",
		Icon:  "clock",
	},
	domain.TicketStatusClosed: {
		Label: "Concluído",
		Color: "status-completed",
		Icon:  "check-circle",
	},
}

var typeConfigs = map[domain.TicketType]Config{
	domain.TicketTypeQuestion: {
		Label: "Dúvida",
		Color: "type-doubt",
		Icon:  "help-circle",
	},
	domain.TicketTypeBug: {
		Label: "Bug",
		Color: "type-bug",
		Icon:  "bug",
	},
	domain.TicketTypeDevelopment: {
		Label: "Solicitação de Desenvolvimento",
		Color: "type-development",
		Icon:  "code",
	},
}

// StatusConfig returns display metadata for a ticket status. A value
// outside the known set returns the open mapping with ok=false so callers
// can surface the defect instead of rendering garbage.
func StatusConfig(status domain.TicketStatus) (Config, bool) {
	cfg, ok := statusConfigs[status]
	if !ok {
		return statusConfigs[domain.TicketStatusOpen], false
	}
	return cfg, true
}

// TypeConfig returns display metadata for a ticket type. Unknown or legacy
// values map to the question config; that fallback is part of the contract.
func TypeConfig(ticketType domain.TicketType) Config {
	if cfg, ok := typeConfigs[ticketType]; ok {
		return cfg
	}
	return typeConfigs[domain.TicketTypeQuestion]
}
