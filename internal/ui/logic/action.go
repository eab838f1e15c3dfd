package logic

import (
	"strings"

	"schemegrip/internal/domain"
)

// ResolveActiveAction returns the first action, in declaration order and other
// than def, whose route appears in path. Without a match it returns def.
func ResolveActiveAction(path string, actions []domain.Action, def domain.Action) domain.Action {
	for _, action := range actions {
		if action.Route == def.Route {
			continue
		}
		if strings.Contains(path, action.Route) {
			return action
		}
	}
	return def
}

// ActionIndex returns the position of action in actions, or 0
func ActionIndex(actions []domain.Action, action domain.Action) int {
	for i, a := range actions {
		if a.Route == action.Route {
			return i
		}
	}
	return 0
}

// CycleAction returns the action delta steps away from current, wrapping around
func CycleAction(actions []domain.Action, current domain.Action, delta int) domain.Action {
	if len(actions) == 0 {
		return current
	}
	i := (ActionIndex(actions, current) + delta) % len(actions)
	if i < 0 {
		i += len(actions)
	}
	return actions[i]
}
