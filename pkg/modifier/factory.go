package modifier

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Factory is a function that creates a modifier from a configuration.
type Factory func(config Config) (Modifier, error)

// factories stores registered modifier factories by type
var factories = make(map[string]Factory)

// RegisterModifierType registers a factory function for a modifier type.
// This allows external packages to register their modifier types without
// creating import cycles.
func RegisterModifierType(modifierType string, factory Factory) {
	factories[modifierType] = factory
	logrus.Debugf("registered modifier type: %s", modifierType)
}

// CreateModifier creates a modifier instance based on the configuration.
// Disabled configurations yield nil; an unknown type is an error.
func CreateModifier(config Config) (Modifier, error) {
	if !config.Enabled {
		logrus.Infof("skipping disabled modifier: %s", config.ID)
		return nil, nil
	}

	logrus.Infof("creating modifier: id=%s, type=%s", config.ID, config.Type)

	factory, exists := factories[config.Type]
	if !exists {
		return nil, fmt.Errorf("unknown modifier type: %s", config.Type)
	}

	return factory(config)
}

// CreateModifiers creates modifier instances from an ordered list of
// configurations, preserving the list order.
func CreateModifiers(configs []Config) ([]Modifier, []error) {
	var modifiers []Modifier
	var errors []error

	for _, config := range configs {
		m, err := CreateModifier(config)
		if err != nil {
			errors = append(errors, fmt.Errorf("failed to create modifier %s: %w", config.ID, err))
			continue
		}

		if m != nil {
			modifiers = append(modifiers, m)
		}
	}

	return modifiers, errors
}

// RegisterModifiers creates and registers modifiers with the provided
// registry in configuration order.
func RegisterModifiers(registry *Registry, configs []Config) error {
	modifiers, errors := CreateModifiers(configs)

	if len(errors) > 0 {
		for _, err := range errors {
			logrus.Warnf("modifier creation error: %v", err)
		}
		return fmt.Errorf("encountered %d errors while creating modifiers", len(errors))
	}

	for _, m := range modifiers {
		if err := registry.Register(m); err != nil {
			return fmt.Errorf("failed to register modifier %s: %w", m.ID(), err)
		}
	}

	logrus.Infof("registered %d modifiers", registry.Count())
	return nil
}
