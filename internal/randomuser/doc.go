// Package randomuser provides an HTTP client for the randomuser.me API, the
// upstream source of roster's employee records.
//
// # Client Usage
//
//	client, err := randomuser.NewClient(randomuser.Options{
//		Endpoint: cfg.Endpoint,
//		Seed:     cfg.Seed,
//		Results:  cfg.FetchSize,
//		Total:    cfg.TotalResults,
//	})
//	if err != nil {
//		return err
//	}
//
//	page, err := client.FetchPage(ctx, 3)
//
// # Requests
//
// Each call issues GET {endpoint}?page=N&results=R&seed=S. The fixed seed
// makes the upstream deterministic: the same page number always yields the
// same records. Requests advertise "br, gzip" and the body is decoded with
// brotli or compress/gzip as the response declares.
//
// Concurrent calls for the same page number share one request through a
// singleflight group. Nothing is cached between calls and nothing is retried.
//
// # Validation
//
// A page is accepted only when every record carries a UUID identity, a first
// or last name, an email and a non-negative age, and identities are unique
// within the page. Any violation rejects the whole page with a *SchemaError
// wrapped as "validate response: ...". A payload whose info block names a
// different page than the one requested is rejected too. Non-2xx responses
// return a *StatusError whose message reads "api /api/ returned status 500".
//
// # Thread Safety
//
// The Client is safe for concurrent use. A coalesced request runs under its
// own timeout rather than the first caller's context: cancelling one caller
// returns ctx.Err() to that caller only, while the others still receive the
// page.
package randomuser
