// Package triggers maps user-facing trigger types to the Mercury webhook
// events they subscribe to and the resource fetched for each delivery.
package triggers

import (
	"fmt"
	"net/url"
	"strings"
)

// ResourceIDPlaceholder is substituted with the delivery's resourceId.
const ResourceIDPlaceholder = "{resourceId}"

type Type string

const (
	TransactionCreated    Type = "transactionCreated"
	TransactionSettled    Type = "transactionSettled"
	TransactionUpdated    Type = "transactionUpdated"
	TransactionFailed     Type = "transactionFailed"
	TransactionCancelled  Type = "transactionCancelled"
	AccountBalanceUpdated Type = "accountBalanceUpdated"
)

// Mercury webhook event types.
const (
	EventTransactionCreated     = "transaction.created"
	EventTransactionUpdated     = "transaction.updated"
	EventCheckingBalanceUpdated = "checkingAccount.balance.updated"
	EventSavingsBalanceUpdated  = "savingsAccount.balance.updated"
	transactionEndpoint         = "/transaction/" + ResourceIDPlaceholder
	accountEndpoint             = "/account/" + ResourceIDPlaceholder
	transactionStatusFilterPath = "transaction.status"
)

// Rule describes how a trigger type subscribes and resolves deliveries.
type Rule struct {
	Type        Type
	Name        string
	Description string
	// EventTypes is never empty.
	EventTypes []string
	// StatusFilter, when set, must equal mergePatch.status for a delivery to pass.
	StatusFilter string
	// FilterPaths is sent to Mercury as a delivery hint only.
	FilterPaths []string
	// ResourceEndpoint always contains ResourceIDPlaceholder.
	ResourceEndpoint string
}

// Endpoint returns the API path of the resource a delivery refers to.
func (r Rule) Endpoint(resourceID string) string {
	return strings.Replace(r.ResourceEndpoint, ResourceIDPlaceholder, url.PathEscape(resourceID), 1)
}

// order is the stable listing order for All.
var order = []Type{
	AccountBalanceUpdated,
	TransactionCancelled,
	TransactionCreated,
	TransactionFailed,
	TransactionSettled,
	TransactionUpdated,
}

var rules = map[Type]Rule{
	TransactionCreated: {
		Name:             "Transaction Created",
		Description:      "Triggers when a new transaction is created",
		EventTypes:       []string{EventTransactionCreated},
		ResourceEndpoint: transactionEndpoint,
	},
	TransactionSettled: {
		Name:             "Transaction Settled",
		Description:      "Triggers when a transaction status changes to settled",
		EventTypes:       []string{EventTransactionUpdated},
		StatusFilter:     "settled",
		FilterPaths:      []string{transactionStatusFilterPath},
		ResourceEndpoint: transactionEndpoint,
	},
	TransactionUpdated: {
		Name:             "Transaction Updated",
		Description:      "Triggers when any transaction field is updated",
		EventTypes:       []string{EventTransactionUpdated},
		ResourceEndpoint: transactionEndpoint,
	},
	TransactionFailed: {
		Name:             "Transaction Failed",
		Description:      "Triggers when a transaction status changes to failed",
		EventTypes:       []string{EventTransactionUpdated},
		StatusFilter:     "failed",
		FilterPaths:      []string{transactionStatusFilterPath},
		ResourceEndpoint: transactionEndpoint,
	},
	TransactionCancelled: {
		Name:             "Transaction Cancelled",
		Description:      "Triggers when a transaction status changes to cancelled",
		EventTypes:       []string{EventTransactionUpdated},
		StatusFilter:     "cancelled",
		FilterPaths:      []string{transactionStatusFilterPath},
		ResourceEndpoint: transactionEndpoint,
	},
	AccountBalanceUpdated: {
		Name:        "Account Balance Updated",
		Description: "Triggers when a checking or savings account balance changes",
		EventTypes: []string{
			EventCheckingBalanceUpdated,
			EventSavingsBalanceUpdated,
		},
		ResourceEndpoint: accountEndpoint,
	},
}

func init() {
	for t, r := range rules {
		r.Type = t
		rules[t] = r
	}
}

// Lookup returns the rule for t. ok is false only for values outside the
// enumeration.
func Lookup(t Type) (Rule, bool) {
	r, ok := rules[t]
	if !ok {
		return Rule{}, false
	}
	return r.clone(), true
}

// MustLookup is Lookup for values already validated by ParseType.
func MustLookup(t Type) Rule {
	r, ok := Lookup(t)
	if !ok {
		panic(fmt.Sprintf("triggers: no rule for trigger type %q", t))
	}
	return r
}

// ParseType validates s against the enumeration.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if _, ok := rules[t]; !ok {
		return "", fmt.Errorf("triggers: unknown trigger type %q", s)
	}
	return t, nil
}

// All returns every rule in display order.
func All() []Rule {
	out := make([]Rule, 0, len(order))
	for _, t := range order {
		out = append(out, MustLookup(t))
	}
	return out
}

// Types returns every trigger type as strings, for enum validation.
func Types() []string {
	out := make([]string, 0, len(order))
	for _, t := range order {
		out = append(out, string(t))
	}
	return out
}

// Enum lists the allowed values for generated API schemas.
func (Type) Enum() []any {
	out := make([]any, 0, len(order))
	for _, t := range order {
		out = append(out, t)
	}
	return out
}

// clone keeps callers from mutating the shared slices.
func (r Rule) clone() Rule {
	r.EventTypes = append([]string(nil), r.EventTypes...)
	if r.FilterPaths != nil {
		r.FilterPaths = append([]string(nil), r.FilterPaths...)
	}
	return r
}
