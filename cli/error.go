package cli

import "github.com/ardnew/jsonify/cli/cmd"

// ErrLogFile reports a log file that could not be created.
var ErrLogFile = cmd.NewError("create log file")
