// Package albert provides types, interfaces, and helpers for working with the
// Albert V3 API.
//
// # Overview
//
// The albert package defines the domain types (e.g., Project, InventoryItem,
// Tag, Company, Cas) and the interfaces for resource-oriented collection
// clients (e.g., ProjectsClient, InventoryClient). A concrete implementation
// of these clients is provided by the albertclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// albertclient to construct a client and then interact with the collection
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/albertinvent/albert-go/pkg/albert"
//	  "github.com/albertinvent/albert-go/pkg/albertclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := albertclient.New(&albert.Config{
//	    BaseURL:      "https://app.albertinvent.com",
//	    ClientID:     "my-client",
//	    ClientSecret: "my-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  pager := cli.Projects().List(ctx, nil)
//	  for pager.HasNext() {
//	    project, err := pager.Next()
//	    if err != nil { log.Fatal(err) }
//	    _ = project
//	  }
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (limit, name filters, order,
// exact matching). List and Search operations return a Paginator, a lazy
// forward-only iterator over the server's pages. The Albert API paginates in
// two conventions: an opaque "startKey" cursor and a numeric offset; the
// Paginator hides both behind HasNext/Next/All/ForEach.
//
// # Updates
//
// Update operations re-fetch the current server state, compute a minimal
// add/update/delete instruction list (see PatchBuilder and PatchPayload),
// PATCH it, and return a freshly fetched resource. PATCH responses are often
// empty, so the re-fetch is authoritative.
//
// # Errors
//
// API errors are represented by APIError, which retains the HTTP status and
// the server's structured error list. Helpers such as IsNotFound,
// IsUnauthorized, and IsForbidden make it easy to branch on common cases.
package albert
