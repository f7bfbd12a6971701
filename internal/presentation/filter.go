package presentation

import (
	"strings"

	"github.com/diretrix/helpdesk/internal/domain"
)

// FilterAll is the sentinel that disables a type or status criterion.
const FilterAll = "all"

// Filter returns the visible subset of tickets for a list view. The three
// criteria compose conjunctively, text matching is case-insensitive over
// title, description and creator display name, and input order is kept.
func Filter(tickets []domain.Ticket, searchTerm, typeFilter, statusFilter string) []domain.Ticket {
	filtered := tickets

	if searchTerm != "" {
		term := strings.ToLower(searchTerm)
		matched := make([]domain.Ticket, 0, len(filtered))
		for _, ticket := range filtered {
			if matchesSearch(&ticket, term) {
				matched = append(matched, ticket)
			}
		}
		filtered = matched
	}

	if typeFilter != "" && typeFilter != FilterAll {
		matched := make([]domain.Ticket, 0, len(filtered))
		for _, ticket := range filtered {
			if string(ticket.Type) == typeFilter {
				matched = append(matched, ticket)
			}
		}
		filtered = matched
	}

	if statusFilter != "" && statusFilter != FilterAll {
		matched := make([]domain.Ticket, 0, len(filtered))
		for _, ticket := range filtered {
			if string(ticket.Status) == statusFilter {
				matched = append(matched, ticket)
			}
		}
		filtered = matched
	}

	return filtered
}

func matchesSearch(ticket *domain.Ticket, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(ticket.Title), lowerTerm) {
		return true
	}
	if strings.Contains(strings.ToLower(ticket.Description), lowerTerm) {
		return true
	}
	if ticket.Creator != nil && strings.Contains(strings.ToLower(ticket.Creator.Name), lowerTerm) {
		return true
	}
	return false
}
