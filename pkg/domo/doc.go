// Package domo provides types, interfaces, and helpers for working with the
// Domo public REST API.
//
// # Overview
//
// The domo package defines the domain types (e.g., DataSet, Stream, Page,
// User, Project) and the interfaces for resource-oriented clients (e.g.,
// DataSetsClient, StreamsClient). A concrete implementation of these clients is
// provided by the domoclient package, which wires configuration, transport, and
// authentication. Most consumers should import domoclient to construct a client
// and then interact with the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := domoclient.New(&domo.Config{
//	    Host:         "https://api.domo.com",
//	    ClientID:     "id",
//	    ClientSecret: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Fetch every dataset, 50 at a time
//	  datasets, err := cli.DataSets().ListAll(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = datasets
//	}
//
// # Optional fields
//
// Every field of every resource is optional on the wire. Fields are pointers
// (or nil-able slices and maps) so that an absent field stays nil after
// decoding and is omitted when encoding. Use the Ptr helper to build values.
//
// # Authentication
//
// Each request obtains a fresh client-credentials token for the scope of the
// resource family it targets (see the Scope constants). Tokens are never
// cached or reused.
//
// # Errors
//
// A non-2xx response is returned as *APIError. A non-2xx response whose body
// cannot be decoded is returned as *ResponseDecodeError. Use errors.As to
// inspect either.
package domo
