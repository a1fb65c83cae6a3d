package cchub

import (
	"bytes"
	"net/url"

	"github.com/ajg/form"
)

// SortSpec orders results by one field. Custom fields use dotted
// paths, e.g. "customFields.telefon".
type SortSpec struct {
	Field string `form:"field"`
	Dir   string `form:"dir"`
}

// FilterSpec restricts results to records matching one condition.
// Values travel as query-string text, so non-string operands are
// written in their string form.
type FilterSpec struct {
	Field    string `form:"field"`
	Operator string `form:"operator"`
	Value    string `form:"value"`
}

// Params is the query parameter set accepted by listing endpoints.
// Sort, Filter and Fields are nested structures; they are encoded
// with a structure-aware encoder so the server can reconstruct them.
type Params struct {
	Skip   int          `form:"skip"`
	Take   int          `form:"take"`
	Sort   []SortSpec   `form:"sort,omitempty"`
	Filter []FilterSpec `form:"filter,omitempty"`
	Fields []string     `form:"fields,omitempty"`
}

// Values encodes the parameters into query string values. Zero values
// are kept so the aggregator's skip=0 first page goes out explicitly;
// the omitempty tags still drop the nested specs when they are empty.
func (p *Params) Values() (url.Values, error) {
	var buf bytes.Buffer
	if err := form.NewEncoder(&buf).KeepZeros(true).Encode(p); err != nil {
		return nil, err
	}
	return url.ParseQuery(buf.String())
}
