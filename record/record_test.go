package record

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAffiliationEqual(t *testing.T) {
	base := Affiliation{
		Name:    "Dept of Physics, Acme University, Springfield",
		Orgs:    []Org{{Name: "Dept of Physics"}, {Name: "Acme University"}},
		City:    "Springfield",
		Country: "USA",
	}

	tests := []struct {
		name  string
		other Affiliation
		want  bool
	}{
		{name: "identical copy", other: Affiliation{
			Name:    base.Name,
			Orgs:    []Org{{Name: "Dept of Physics"}, {Name: "Acme University"}},
			City:    "Springfield",
			Country: "USA",
		}, want: true},
		{name: "same name different city", other: Affiliation{
			Name:    base.Name,
			Orgs:    base.Orgs,
			City:    "Shelbyville",
			Country: "USA",
		}, want: false},
		{name: "orgs reordered", other: Affiliation{
			Name:    base.Name,
			Orgs:    []Org{{Name: "Acme University"}, {Name: "Dept of Physics"}},
			City:    "Springfield",
			Country: "USA",
		}, want: false},
		{name: "missing orgs", other: Affiliation{
			Name:    base.Name,
			City:    "Springfield",
			Country: "USA",
		}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Equal(base); got != tt.want {
				t.Errorf("Equal() is not symmetric: %v", got)
			}
		})
	}
}

func TestAppendUnique(t *testing.T) {
	a := Affiliation{Name: "A", Orgs: []Org{{Name: "A"}}}
	b := Affiliation{Name: "B"}
	aCopy := Affiliation{Name: "A", Orgs: []Org{{Name: "A"}}}
	aOther := Affiliation{Name: "A", Country: "France"}

	var list []Affiliation
	list = AppendUnique(list, a, b)
	list = AppendUnique(list, aCopy, aOther, b)

	want := []Affiliation{a, b, aOther}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("AppendUnique mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthorIsEmpty(t *testing.T) {
	if !(Author{}).IsEmpty() {
		t.Error("zero Author should be empty")
	}
	if (Author{Email: "x@example.org"}).IsEmpty() {
		t.Error("author with email should not be empty")
	}
	if (Author{Affiliations: []Affiliation{{Name: "Acme"}}}).IsEmpty() {
		t.Error("author with only an affiliation should not be empty")
	}
}

func TestEmptyRecord(t *testing.T) {
	rec := &Record{}
	if !rec.IsEmpty() {
		t.Error("zero Record should be empty")
	}

	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "{}" {
		t.Errorf("empty record JSON: got %s, want {}", out)
	}
	if m := rec.Map(); len(m) != 0 {
		t.Errorf("empty record Map: got %v", m)
	}

	rec.SetAvailabilityStatement(false)
	if rec.IsEmpty() {
		t.Error("record with availability flag should not be empty")
	}
	out, err = json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"has_availability_statement":false}` {
		t.Errorf("extracted record JSON: got %s", out)
	}
}

func TestRecordJSONKeyOrder(t *testing.T) {
	rec := &Record{
		Authors: []Author{{
			FirstName:    "Jane",
			LastName:     "Doe",
			Affiliations: []Affiliation{{Name: "Acme", Orgs: []Org{{Name: "Acme"}}}},
		}},
		Affiliations: []Affiliation{{Name: "Acme", Orgs: []Org{{Name: "Acme"}}}},
		References:   []Reference{{DOI: "10.1000/abc"}},
	}
	rec.SetAvailabilityStatement(false)

	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}

	want := `{"authors":[{"first_name":"Jane","last_name":"Doe","affiliations":[{"name":"Acme","orgs":[{"name":"Acme"}]}]}],` +
		`"affiliations":[{"name":"Acme","orgs":[{"name":"Acme"}]}],` +
		`"references":[{"doi":"10.1000/abc"}],"has_availability_statement":false}`
	if string(out) != want {
		t.Errorf("JSON mismatch:\n got %s\nwant %s", out, want)
	}
}

func TestRecordMap(t *testing.T) {
	rec := &Record{
		Authors: []Author{{
			LastName:     "Doe",
			ORCID:        "0000-0002-1825-0097",
			Affiliations: []Affiliation{{Name: "Acme, Paris", City: "Paris"}},
		}},
		Keywords:        []Keyword{{Keyword: "tei"}},
		Abstract:        []Abstract{{Abstract: "Short."}},
		Acknowledgments: []Acknowledgment{{Acknowledgments: "Thanks."}},
	}
	rec.SetAvailabilityStatement(false)

	want := map[string]any{
		"authors": []any{map[string]any{
			"last_name": "Doe",
			"orcid":     "0000-0002-1825-0097",
			"affiliations": []any{map[string]any{
				"name": "Acme, Paris",
				"city": "Paris",
			}},
		}},
		"keywords":                   []any{map[string]any{"keyword": "tei"}},
		"abstract":                   []any{map[string]any{"abstract": "Short."}},
		"acknowledgments":            []any{map[string]any{"acknowledgments": "Thanks."}},
		"has_availability_statement": false,
	}

	if diff := cmp.Diff(want, rec.Map()); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}
