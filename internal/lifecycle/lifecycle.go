// Package lifecycle holds the named status transitions each entity accepts
// and the validation applied to bulk action requests.
package lifecycle

import (
	"strings"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
)

type Action string

const (
	Activate   Action = "activate"
	Deactivate Action = "deactivate"
	Verify     Action = "verify"
	Unverify   Action = "unverify"
	Reject     Action = "reject"
	Publish    Action = "publish"
	Unpublish  Action = "unpublish"
	Delete     Action = "delete"
)

// aliases maps alternate action names onto their canonical action.
var aliases = map[string]Action{
	"approve": Verify,
}

// Transition is the single column write an action performs.
type Transition struct {
	Column string
	Value  any
}

// Policy is the allow-list of actions for one entity type.
type Policy struct {
	Entity      string
	transitions map[Action]Transition
	order       []Action
	deletable   bool
}

type rule struct {
	action     Action
	transition Transition
}

func on(a Action, column string, value any) rule {
	return rule{action: a, transition: Transition{Column: column, Value: value}}
}

func newPolicy(entity string, deletable bool, rules ...rule) Policy {
	p := Policy{Entity: entity, transitions: map[Action]Transition{}, deletable: deletable}
	for _, r := range rules {
		p.transitions[r.action] = r.transition
		p.order = append(p.order, r.action)
	}
	if deletable {
		p.order = append(p.order, Delete)
	}
	return p
}

var (
	Organizations = newPolicy(model.EntityOrganization, true,
		on(Activate, "active_status", model.StatusActive),
		on(Deactivate, "active_status", model.StatusInactive),
		on(Verify, "verified_status", model.VerifiedVerified),
		on(Unverify, "verified_status", model.VerifiedPending),
		on(Reject, "verified_status", model.VerifiedRejected),
	)

	Freelancers = newPolicy(model.EntityFreelancer, true,
		on(Verify, "verified_status", model.VerifiedVerified),
		on(Unverify, "verified_status", model.VerifiedPending),
		on(Reject, "verified_status", model.VerifiedRejected),
	)

	Maintainers = newPolicy(model.EntityMaintainer, true,
		on(Activate, "status", model.StatusActive),
		on(Deactivate, "status", model.StatusInactive),
	)

	Trainings = newPolicy(model.EntityTraining, true,
		on(Publish, "is_published", true),
		on(Unpublish, "is_published", false),
		on(Activate, "is_active", true),
		on(Deactivate, "is_active", false),
	)

	Categories = newPolicy(model.EntityCategory, true,
		on(Activate, "is_active", true),
		on(Deactivate, "is_active", false),
	)

	Locations = newPolicy(model.EntityLocation, true,
		on(Activate, "is_active", true),
		on(Deactivate, "is_active", false),
	)

	Stacks = newPolicy(model.EntityStack, true,
		on(Activate, "is_active", true),
		on(Deactivate, "is_active", false),
	)

	Users = newPolicy(model.EntityUser, true)
)

// Resolve normalizes name and checks it against the allow-list. Unknown
// names are an error, never a silent no-op.
func (p Policy) Resolve(name string) (Action, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	a := Action(key)
	if alias, ok := aliases[key]; ok {
		a = alias
	}
	if a == Delete && p.deletable {
		return a, nil
	}
	if _, ok := p.transitions[a]; ok {
		return a, nil
	}
	return "", domain.ErrInvalidAction.WithDetails("allowed actions: " + p.allowedList())
}

// Transition returns the column write for a. Delete has none.
func (p Policy) Transition(a Action) (Transition, bool) {
	t, ok := p.transitions[a]
	return t, ok
}

// Allowed lists the canonical actions in declaration order.
func (p Policy) Allowed() []Action {
	out := make([]Action, len(p.order))
	copy(out, p.order)
	return out
}

func (p Policy) allowedList() string {
	names := make([]string, len(p.order))
	for i, a := range p.order {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

// BulkRequest is a parsed and validated bulk action.
type BulkRequest struct {
	IDs    []uuid.UUID
	Action Action
}

// ParseBulk validates a bulk action. The checks run in a fixed order: the id
// list must be non-empty, then the action must be allowed, then each id must
// parse. Duplicate ids are collapsed.
func ParseBulk(p Policy, ids []string, action string) (*BulkRequest, error) {
	if len(ids) == 0 {
		return nil, domain.ErrEmptyIDs
	}

	a, err := p.Resolve(action)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	parsed := make([]uuid.UUID, 0, len(ids))
	var bad []string
	for _, raw := range ids {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			bad = append(bad, raw)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		parsed = append(parsed, id)
	}
	if len(bad) > 0 {
		return nil, domain.ErrInvalidID.WithDetails(bad...)
	}

	return &BulkRequest{IDs: parsed, Action: a}, nil
}

// BulkResult is reported back to the caller after a bulk action.
type BulkResult struct {
	Action   Action      `json:"action"`
	Affected int64       `json:"affected"`
	IDs      []uuid.UUID `json:"ids"`
}

// MissingIDs returns the ids in want that are absent from found.
func MissingIDs(want, found []uuid.UUID) []string {
	have := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		have[id] = struct{}{}
	}
	var missing []string
	for _, id := range want {
		if _, ok := have[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	return missing
}
