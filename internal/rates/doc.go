// Package rates provides an HTTP implementation of the domain.RateLookup
// interface backed by the ExchangeRate-API v6 "pair" endpoint.
//
// A lookup is a single GET request to
//
//	{base}/{apiKey}/pair/{FROM}/{TO}/{amount}
//
// whose JSON body is either
//
//	{"result": "success", "conversion_rate": r, "conversion_result": x}
//
// or
//
//	{"result": "error", "error-type": "invalid-key"}
//
// Transport failures, non-2xx statuses, malformed bodies and provider error
// payloads are all returned as EXTERNAL_RATE_UNAVAILABLE errors. There is no
// retry and no caching; the HTTP client's timeout bounds each call.
//
// Every lookup runs inside an OpenTelemetry span named "rates.LookupRate".
package rates
