// Package application provides internal application plumbing for commands,
// including the Mock used in command tests.
package application

import (
	cmdapp "github.com/agentstation/labelsync/cmd/application"
)

// Application is an alias to the public command interface so internal
// packages and the Mock share one definition.
type Application = cmdapp.Application
