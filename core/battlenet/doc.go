// Package battlenet is the client for the Battle.net game-data and profile APIs.
//
// The client obtains a client-credentials OAuth token, caches it until shortly
// before expiry, and signs every GET with it. Each failed call returns an *Error
// whose Kind tells the caller what to do:
//
//   - KindTransient: a configured retryable status (429, 502 by default). The
//     client retries with exponential backoff plus jitter and, once attempts are
//     exhausted, returns a KindFatal error wrapping the last transient failure.
//   - KindNotFound: a configured not-found status (404 by default). Returned
//     immediately so orchestrators can skip a single entity.
//   - KindFatal: token failures, network failures, and every other status.
//
// # Usage
//
//	client, err := battlenet.NewClient(cfg.Battlenet, logger)
//	roster, err := client.GetGuildRoster(ctx, "area-52", "rally")
//	if battlenet.IsNotFound(err) {
//	    // skip
//	}
package battlenet
