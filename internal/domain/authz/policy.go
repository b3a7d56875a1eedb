package authz

import (
	"fmt"

	"github.com/coopcredit/credit-application-service/internal/domain/domainerr"
	"github.com/coopcredit/credit-application-service/pkg/auth"
)

// Action is a named operation subject to role-based authorization.
type Action string

const (
	ActionCreateApplication    Action = "application:create"
	ActionCreateApplicationAny Action = "application:create_any"
	ActionViewOwnApplications  Action = "application:view_own"
	ActionViewAnyApplication   Action = "application:view_any"
	ActionViewPendingQueue     Action = "application:view_pending"
	ActionRequestEvaluation    Action = "application:request_evaluation"
	ActionRecordDecision       Action = "application:record_decision"
	ActionManageMembers        Action = "member:manage"
	ActionViewMembers          Action = "member:view"
	ActionPreviewAmortization  Action = "application:preview_amortization"
)

// Actor is the authenticated caller as seen by the policy.
type Actor struct {
	Username       string
	DocumentNumber string
	Roles          []string
}

// matrix is the static role-to-action grant table. Affiliates act on their own
// applications only; analysts work the decision queue; admins do everything.
var matrix = map[string]map[Action]bool{
	auth.RoleAffiliate: {
		ActionCreateApplication:   true,
		ActionViewOwnApplications: true,
		ActionPreviewAmortization: true,
	},
	auth.RoleAnalyst: {
		ActionViewPendingQueue:    true,
		ActionRequestEvaluation:   true,
		ActionRecordDecision:      true,
		ActionViewMembers:         true,
		ActionPreviewAmortization: true,
	},
	auth.RoleAdmin: {
		ActionCreateApplication:    true,
		ActionCreateApplicationAny: true,
		ActionViewOwnApplications:  true,
		ActionViewAnyApplication:   true,
		ActionViewPendingQueue:     true,
		ActionRequestEvaluation:    true,
		ActionRecordDecision:       true,
		ActionManageMembers:        true,
		ActionViewMembers:          true,
		ActionPreviewAmortization:  true,
	},
}

// Can reports whether any of the actor's roles grants the action.
func Can(actor Actor, action Action) bool {
	for _, role := range actor.Roles {
		if matrix[role][action] {
			return true
		}
	}
	return false
}

// Authorize returns a domainerr.ErrForbidden-wrapping error when no role
// grants the action.
func Authorize(actor Actor, action Action) error {
	if Can(actor, action) {
		return nil
	}
	return fmt.Errorf("%w: %s is not allowed to %s", domainerr.ErrForbidden, actor.Username, action)
}

// AuthorizeOwn grants the action when the actor may act on any application, or
// when the actor owns the resource (matching document number) and may act on
// their own.
func AuthorizeOwn(actor Actor, ownAction, anyAction Action, ownerDocument string) error {
	if Can(actor, anyAction) {
		return nil
	}
	if Can(actor, ownAction) && actor.DocumentNumber != "" && actor.DocumentNumber == ownerDocument {
		return nil
	}
	return fmt.Errorf("%w: %s is not allowed to access this resource", domainerr.ErrForbidden, actor.Username)
}
