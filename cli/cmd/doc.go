// Package cmd implements the jsonify subcommands.
//
// [Emit] reads an inventory and writes its records, and [Init] saves the
// current flag values as the configuration file. Both receive their inputs
// through the [context.Context] bound by the cli package: the parsed
// [kong.Context] ([WithContext]), the shared [Options] ([WithOptions]) and
// the output writer ([WithOutput]).
package cmd

// ConfigIdentifier is the kong variable holding the path of the
// configuration file.
const ConfigIdentifier = "config_file"
