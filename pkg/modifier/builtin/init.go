package builtin

import (
	"github.com/AccelByte/extend-dynamic-difficulty/pkg/modifier"
)

// RegisterBuiltinModifiers registers all built-in modifier types with the
// factory.
func RegisterBuiltinModifiers() {
	modifier.RegisterModifierType(TypeWinStreak, NewWinStreakModifier)
	modifier.RegisterModifierType(TypeLosingStreak, NewLosingStreakModifier)
	modifier.RegisterModifierType(TypeTimeDecay, NewTimeDecayModifier)
	modifier.RegisterModifierType(TypeRageQuit, NewRageQuitModifier)
	modifier.RegisterModifierType(TypeCompletionRate, NewCompletionRateModifier)
	modifier.RegisterModifierType(TypeSessionLength, NewSessionLengthModifier)
	modifier.RegisterModifierType(TypeComeback, NewComebackModifier)
}
