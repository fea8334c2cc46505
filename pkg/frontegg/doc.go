// Package frontegg defines the public surface of the Frontegg vendor API
// client: the Client interface, typed resources, configuration, errors, the
// pagination iterator, and the optional response cache.
//
// Construct clients with the fronteggclient package:
//
//	client, err := fronteggclient.New(ctx, &frontegg.Config{
//		ClientID:  os.Getenv("FRONTEGG_CLIENT_ID"),
//		SecretKey: os.Getenv("FRONTEGG_SECRET_KEY"),
//	})
//
// The client authenticates lazily with the vendor token endpoint, caches the
// bearer token, and refreshes it at half of its reported lifetime. GET and
// HEAD requests are retried on transient failures with exponential backoff;
// mutating requests are issued exactly once.
package frontegg
