// Package domoclient provides the primary entry point for constructing a
// Domo platform API client that implements the domo.Client interface.
//
// It layers host normalization, HTTP transport, and client-credentials
// authentication on top of the resource interfaces and types defined in the
// domo package. Most applications should import domoclient to build a client,
// then use the returned domo.Client to access resource-specific clients, for
// example DataSets(), Streams(), Users(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/domo-cli/pkg/domo"
//	  "github.com/fivetwenty-io/domo-cli/pkg/domoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := domoclient.New(&domo.Config{
//	    Host:         "api.domo.com", // "https://" is added when missing
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Every call requests a fresh token for the scope its family needs.
//	  datasets, err := cli.DataSets().ListAll(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = datasets
//	}
//
// Webhook endpoints are unauthenticated and addressed by absolute URL, so
// NewWebhooks needs no host or credentials.
package domoclient
