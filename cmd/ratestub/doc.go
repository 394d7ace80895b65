// Package main runs a local stand-in for the ExchangeRate-API v6 provider,
// used during development and demos to exercise currency conversions without
// network access or a real API key.
//
// HTTP API
//
//	GET /v6/{key}/pair/{from}/{to}/{amount}
//	    Convert amount of {from} into {to} using a fixed USD-based rate table.
//	    Success bodies carry "result": "success", "conversion_rate" and
//	    "conversion_result". Failures carry "result": "error" and an
//	    "error-type" of invalid-key, unsupported-code or malformed-request.
//
// Behaviour
//
//   - Any key is accepted except the literal "invalid".
//   - Rates never change while the process runs.
//   - A lightweight access log records method, path, status and duration for
//     each request.
//   - The default listen address is :8090 (UNITCONV_STUB_ADDR or -addr).
//
// Point the CLI at it with --exchange-url http://127.0.0.1:8090/v6.
package main
