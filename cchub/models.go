package cchub

import "fmt"

// Model is a named resource collection exposed by the CCHub API.
type Model string

// Models known to the API. The catalog is fixed; requests against any
// other name fail at dispatch time.
const (
	ModelAccounts    Model = "accounts"
	ModelContacts    Model = "contacts"
	ModelTickets     Model = "tickets"
	ModelTasks       Model = "tasks"
	ModelUsers       Model = "users"
	ModelCalls       Model = "calls"
	ModelNotes       Model = "notes"
	ModelAttachments Model = "attachments"
)

// Catalog lists every known model in a fixed order.
var Catalog = []Model{
	ModelAccounts,
	ModelContacts,
	ModelTickets,
	ModelTasks,
	ModelUsers,
	ModelCalls,
	ModelNotes,
	ModelAttachments,
}

var catalog = func() map[Model]struct{} {
	m := make(map[Model]struct{}, len(Catalog))
	for _, model := range Catalog {
		m[model] = struct{}{}
	}
	return m
}()

// Known reports whether the model is part of the catalog.
func (m Model) Known() bool {
	_, ok := catalog[m]
	return ok
}

// collectionPath is the listing endpoint for the model.
func (m Model) collectionPath() string {
	return fmt.Sprintf("/%s.json", m)
}

// recordPath is the single-record endpoint for the model.
func (m Model) recordPath(id string) string {
	return fmt.Sprintf("/%s/%s.json", m, id)
}
