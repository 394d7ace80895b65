// Package commands defines the unitconv CLI and wires dependencies for subcommands.
//
// Commands
//
//   - categories     List unit categories in display order
//   - units          List the units of one category
//   - convert        Convert one value and print the formula
//   - interactive    Run a conversion session driven by stdin
//   - key            Store, fingerprint or clear the exchange-rate API key
//
// # Implementation
//
// The root command loads configuration from the environment, applies flag
// overrides, starts tracing and builds the app (key resolution, rate client,
// dispatcher, printer) before any subcommand runs. The key subcommands only
// need the keystore and skip the rest of the wiring.
package commands
