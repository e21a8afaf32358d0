//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/sevigo/review-assistant/internal/app"
	"github.com/sevigo/review-assistant/internal/core"
)

// InitializeApp builds the HTTP service.
func InitializeApp() (*app.App, func(), error) {
	wire.Build(AppSet)
	return &app.App{}, nil, nil
}

// InitializeAssistant builds the assistant alone, for the CLI.
func InitializeAssistant() (core.CodeAssistant, func(), error) {
	wire.Build(AssistantSet)
	return nil, nil, nil
}
