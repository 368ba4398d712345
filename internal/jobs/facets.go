package jobs

// Facets summarizes the distinct values found in a record set. It is what
// the filter controls are populated from.
type Facets struct {
	Roles        []string
	Technologies []string
	Experience   []string
	MinCTC       float64
	MaxCTC       float64
}

// Empty reports whether the facets were computed from an empty set.
func (f Facets) Empty() bool {
	return len(f.Roles) == 0 && len(f.Technologies) == 0 && len(f.Experience) == 0 &&
		f.MinCTC == 0 && f.MaxCTC == 0
}

// CollectFacets returns distinct roles, technologies and experience labels in
// first-seen order together with the observed compensation bounds. Empty
// strings are skipped.
func CollectFacets(records []Record) Facets {
	var f Facets
	roles := make(map[string]bool)
	techs := make(map[string]bool)
	exp := make(map[string]bool)

	for i, r := range records {
		if r.Role != "" && !roles[r.Role] {
			roles[r.Role] = true
			f.Roles = append(f.Roles, r.Role)
		}
		for _, t := range r.Technologies {
			if t != "" && !techs[t] {
				techs[t] = true
				f.Technologies = append(f.Technologies, t)
			}
		}
		if r.Experience != "" && !exp[r.Experience] {
			exp[r.Experience] = true
			f.Experience = append(f.Experience, r.Experience)
		}
		if i == 0 || r.CTC < f.MinCTC {
			f.MinCTC = r.CTC
		}
		if i == 0 || r.CTC > f.MaxCTC {
			f.MaxCTC = r.CTC
		}
	}
	return f
}
