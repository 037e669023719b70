package documents

import (
	"net/url"
	"time"

	"github.com/JaimeStill/file-flow/pkg/query"
	"github.com/JaimeStill/file-flow/pkg/validation"
)

// Filters contains optional criteria for filtering document queries.
// Entry dates are UTC calendar days and both bounds are inclusive.
type Filters struct {
	NameKeyword     *string
	DocumentNumber  *string
	OriginatingUnit *string
	Category        *string
	Status          *string
	EntryDateFrom   *time.Time
	EntryDateTo     *time.Time
}

// FiltersFromQuery extracts document filters from URL query parameters.
// Malformed dates fail with a validation error.
func FiltersFromQuery(values url.Values) (Filters, error) {
	var f Filters

	f.NameKeyword = param(values, "name_keyword")
	f.DocumentNumber = param(values, "document_number")
	f.OriginatingUnit = param(values, "originating_unit")
	f.Category = param(values, "category")
	f.Status = param(values, "status")

	var err error
	if f.EntryDateFrom, err = dateParam(values, "entry_date_from"); err != nil {
		return Filters{}, err
	}
	if f.EntryDateTo, err = dateParam(values, "entry_date_to"); err != nil {
		return Filters{}, err
	}

	return f, nil
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Name", f.NameKeyword).
		WhereContains("DocumentNumber", f.DocumentNumber).
		WhereContains("OriginatingUnit", f.OriginatingUnit).
		WhereEquals("Category", f.Category).
		WhereEquals("Status", f.Status).
		WhereAtLeast("EntryTime", f.EntryDateFrom)

	if f.EntryDateTo != nil {
		end := f.EntryDateTo.AddDate(0, 0, 1)
		b.WhereBefore("EntryTime", &end)
	}
	return b
}

func param(values url.Values, key string) *string {
	if v := values.Get(key); v != "" {
		return &v
	}
	return nil
}

func dateParam(values url.Values, key string) (*time.Time, error) {
	v := values.Get(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, v, time.UTC)
	if err != nil {
		return nil, validation.Invalid(key, "expected format YYYY-MM-DD")
	}
	return &t, nil
}
