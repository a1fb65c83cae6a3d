// Package cchub provides a client for the CCHub CRM/helpdesk API.
//
// The client dispatches HTTP verbs against a fixed catalog of resource
// models under https://{host}/api/v{version}/{model}[/{id}].json,
// authenticating every request with an accessToken query parameter.
//
// # Usage
//
// Create a client and read a collection:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := cchub.NewClient("https://crm.example.com", "1", "token", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Get(ctx, cchub.ModelContacts, cchub.WithParams(&cchub.Params{
//		Take: 20,
//		Sort: []cchub.SortSpec{{Field: "lastname", Dir: "asc"}},
//	}))
//
// FetchAll walks every page of a listing into one aggregated result:
//
//	res, err := client.FetchAll(ctx, cchub.ModelTickets, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !res.Completed {
//		// a page failed; res holds what was fetched before that
//	}
//
// # Error handling
//
// Transport-level failures never surface as panics or raw exceptions:
// verb operations return a *transport.Error, and FetchAll swallows
// them, returning the partial result with Completed=false. HTTP error
// statuses are returned as normal responses for the caller to
// interpret. Unknown models or verbs fail at call time with
// ErrUnknownModel or ErrUnknownVerb.
//
// Some environments block non-GET methods; WithSimulate routes a
// request through a GET carrying a _method verb override instead.
package cchub
