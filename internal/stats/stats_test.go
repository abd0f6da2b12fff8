package stats

// districtRow is the test double for a district-scoped measurement; it
// mirrors the shape the model layer adapts into the Record contract.
type districtRow struct {
	districtID uint
	fields     Fields
}

func (r districtRow) StatFields() Fields { return r.fields }
func (r districtRow) DistrictKey() uint  { return r.districtID }

func pct(v float64) *float64 { return &v }

func intp(v int) *int { return &v }

func row(year int, subject, subgroup, grade *Ref, p *float64, exception string) districtRow {
	return districtRow{fields: Fields{
		Year:               year,
		Subject:            subject,
		Subgroup:           subgroup,
		Grade:              grade,
		AboveProficientPct: p,
		Exception:          exception,
	}}
}

func ref(id int, name string) *Ref { return &Ref{ID: id, Name: name} }
