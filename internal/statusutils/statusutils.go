// Package statusutils maps free-text payment-status labels, in any of the
// spellings and languages seen in vendor spreadsheets, onto the fixed set
// of stored payment states.
package statusutils

import (
	"fmt"
	"strings"

	"akhmetov/rassrochka-crm/internal/models"
)

// SynonymRule pairs a lower-case substring pattern with the state it maps
// to. Rules are evaluated in order and the first match wins, so the slice
// order is the tie-break; never convert this to a map.
type SynonymRule struct {
	Pattern string               `yaml:"pattern"`
	State   models.PaymentStatus `yaml:"state"`
}

// DefaultSynonyms is the built-in rule table. Russian spellings come
// first because that is what the source spreadsheets contain.
func DefaultSynonyms() []SynonymRule {
	return []SynonymRule{
		{Pattern: "оплачен", State: models.StatusPaid},
		{Pattern: "выплачен", State: models.StatusPaid},
		{Pattern: "paid", State: models.StatusPaid},
		{Pattern: "просрочен", State: models.StatusOverdue},
		{Pattern: "overdue", State: models.StatusOverdue},
	}
}

// Resolver resolves status labels against an ordered synonym table.
type Resolver struct {
	rules []SynonymRule
}

// NewResolver creates a Resolver with the built-in synonym table.
func NewResolver() *Resolver {
	return &Resolver{rules: DefaultSynonyms()}
}

// NewResolverWithRules creates a Resolver with a custom ordered table,
// typically loaded from statuses.yaml.
func NewResolverWithRules(rules []SynonymRule) (*Resolver, error) {
	for i, rule := range rules {
		if rule.Pattern == "" {
			return nil, fmt.Errorf("synonym rule %d has an empty pattern", i)
		}
		switch rule.State {
		case models.StatusPending, models.StatusPaid, models.StatusOverdue:
		default:
			return nil, fmt.Errorf("synonym rule %d maps to unknown state '%s'", i, rule.State)
		}
	}
	return &Resolver{rules: rules}, nil
}

// Resolve maps a free-text label to a stored payment state. The label is
// lower-cased and trimmed, then matched by substring against the table in
// order. Empty and unrecognized labels resolve to pending; resolution
// never fails.
func (r *Resolver) Resolve(label interface{}) models.PaymentStatus {
	text := strings.ToLower(strings.TrimSpace(toString(label)))
	if text == "" {
		return models.StatusPending
	}
	for _, rule := range r.rules {
		if strings.Contains(text, rule.Pattern) {
			return rule.State
		}
	}
	return models.StatusPending
}

var defaultResolver = NewResolver()

// Resolve maps a label to a payment state using the built-in table.
func Resolve(label interface{}) models.PaymentStatus {
	return defaultResolver.Resolve(label)
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
