package directory

import "strings"

// Employee is one directory entry. Records are immutable once fetched; ID is
// the only key used to address them.
type Employee struct {
	ID          string
	First       string
	Last        string
	Email       string
	Phone       string
	City        string
	Country     string
	Age         int
	Gender      string
	Nationality string
	AvatarURL   string
}

// FullName joins first and last name with a single space.
func (e Employee) FullName() string {
	return e.First + " " + e.Last
}

// DisplayName is FullName without stray padding for one-sided names.
func (e Employee) DisplayName() string {
	return strings.TrimSpace(e.FullName())
}

// Location formats city and country the way the table shows them.
func (e Employee) Location() string {
	city := strings.TrimSpace(e.City)
	country := strings.TrimSpace(e.Country)
	switch {
	case city == "":
		return country
	case country == "":
		return city
	}
	return city + ", " + country
}

// IndexByID returns the position of id in records, or -1.
func IndexByID(records []Employee, id string) int {
	for i, rec := range records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// Without returns a copy of records minus the entry with the given id.
func Without(records []Employee, id string) []Employee {
	out := make([]Employee, 0, len(records))
	for _, rec := range records {
		if rec.ID != id {
			out = append(out, rec)
		}
	}
	return out
}

// Clone copies a record slice; nil stays nil.
func Clone(records []Employee) []Employee {
	if len(records) == 0 {
		return nil
	}
	dup := make([]Employee, len(records))
	copy(dup, records)
	return dup
}
