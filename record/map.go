package record

// Map returns the record as a JSON-compatible nested structure made only
// of map[string]any, []any, string and bool values. Absent fields have
// no key. An empty record yields an empty, non-nil map.
func (r *Record) Map() map[string]any {
	m := make(map[string]any)
	if r == nil {
		return m
	}

	if len(r.Authors) > 0 {
		m["authors"] = mapEach(r.Authors, Author.Map)
	}
	if len(r.Affiliations) > 0 {
		m["affiliations"] = mapEach(r.Affiliations, Affiliation.Map)
	}
	if len(r.Keywords) > 0 {
		m["keywords"] = mapEach(r.Keywords, func(k Keyword) map[string]any {
			return map[string]any{"keyword": k.Keyword}
		})
	}
	if len(r.Abstract) > 0 {
		m["abstract"] = mapEach(r.Abstract, func(a Abstract) map[string]any {
			return map[string]any{"abstract": a.Abstract}
		})
	}
	if len(r.Acknowledgments) > 0 {
		m["acknowledgments"] = mapEach(r.Acknowledgments, func(a Acknowledgment) map[string]any {
			return map[string]any{"acknowledgments": a.Acknowledgments}
		})
	}
	if len(r.References) > 0 {
		m["references"] = mapEach(r.References, func(ref Reference) map[string]any {
			return map[string]any{"doi": ref.DOI}
		})
	}
	if r.HasAvailabilityStatement != nil {
		m["has_availability_statement"] = *r.HasAvailabilityStatement
	}

	return m
}

// Map returns the author as a JSON-compatible map.
func (a Author) Map() map[string]any {
	m := make(map[string]any)
	setString(m, "first_name", a.FirstName)
	setString(m, "last_name", a.LastName)
	setString(m, "email", a.Email)
	setString(m, "orcid", a.ORCID)
	if len(a.Affiliations) > 0 {
		m["affiliations"] = mapEach(a.Affiliations, Affiliation.Map)
	}
	return m
}

// Map returns the affiliation as a JSON-compatible map.
func (a Affiliation) Map() map[string]any {
	m := map[string]any{"name": a.Name}
	if len(a.Orgs) > 0 {
		m["orgs"] = mapEach(a.Orgs, func(o Org) map[string]any {
			return map[string]any{"name": o.Name}
		})
	}
	setString(m, "address", a.Address)
	setString(m, "city", a.City)
	setString(m, "zipcode", a.Zipcode)
	setString(m, "country", a.Country)
	return m
}

func setString(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func mapEach[T any](items []T, fn func(T) map[string]any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
