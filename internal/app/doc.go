// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, resolves the exchange-rate API key
// (explicit value first, then the encrypted keystore), and builds the rate
// client, the conversion dispatcher and the display printer, exposing them via
// the App struct for commands to use.
package app
