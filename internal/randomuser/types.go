package randomuser

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/five82/roster/internal/directory"
)

// Page is one upstream batch of records.
type Page struct {
	// Number is the page the records were served for.
	Number    int
	Employees []directory.Employee
	// Total is the configured result count; the API does not report one.
	Total int
}

// pageResponse mirrors the subset of the randomuser.me payload roster reads.
type pageResponse struct {
	Results []userRecord `json:"results"`
	Info    pageInfo     `json:"info"`
	Error   string       `json:"error"`
}

// pageInfo is the payload's echo of the request.
type pageInfo struct {
	Page int `json:"page"`
}

type userRecord struct {
	Gender string `json:"gender"`
	Name   struct {
		Title string `json:"title"`
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Location struct {
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"location"`
	Email string `json:"email"`
	Login struct {
		UUID string `json:"uuid"`
	} `json:"login"`
	Dob *struct {
		Age *int `json:"age"`
	} `json:"dob"`
	Phone   string `json:"phone"`
	Picture struct {
		Large     string `json:"large"`
		Medium    string `json:"medium"`
		Thumbnail string `json:"thumbnail"`
	} `json:"picture"`
	Nat string `json:"nat"`
}

// SchemaError reports a record that does not match the expected shape.
// One bad record rejects the whole page.
type SchemaError struct {
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("record %d: %s %s", e.Index, e.Field, e.Reason)
}

// toEmployees validates every record and converts the page. Identities must be
// unique within the batch.
func toEmployees(records []userRecord) ([]directory.Employee, error) {
	out := make([]directory.Employee, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		emp, err := rec.toEmployee(i)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(emp.ID)
		if _, dup := seen[key]; dup {
			return nil, &SchemaError{Index: i, Field: "login.uuid", Reason: "is a duplicate identity"}
		}
		seen[key] = struct{}{}
		out = append(out, emp)
	}
	return out, nil
}

func (u userRecord) toEmployee(index int) (directory.Employee, error) {
	id := strings.TrimSpace(u.Login.UUID)
	if id == "" {
		return directory.Employee{}, &SchemaError{Index: index, Field: "login.uuid", Reason: "is missing"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return directory.Employee{}, &SchemaError{Index: index, Field: "login.uuid", Reason: "is not a UUID"}
	}

	first := strings.TrimSpace(u.Name.First)
	last := strings.TrimSpace(u.Name.Last)
	if first == "" && last == "" {
		return directory.Employee{}, &SchemaError{Index: index, Field: "name", Reason: "is missing"}
	}

	email := strings.TrimSpace(u.Email)
	if email == "" {
		return directory.Employee{}, &SchemaError{Index: index, Field: "email", Reason: "is missing"}
	}

	if u.Dob == nil || u.Dob.Age == nil {
		return directory.Employee{}, &SchemaError{Index: index, Field: "dob.age", Reason: "is missing"}
	}
	if *u.Dob.Age < 0 {
		return directory.Employee{}, &SchemaError{Index: index, Field: "dob.age", Reason: "is negative"}
	}

	avatar := strings.TrimSpace(u.Picture.Large)
	if avatar == "" {
		avatar = strings.TrimSpace(u.Picture.Medium)
	}

	return directory.Employee{
		ID:          id,
		First:       first,
		Last:        last,
		Email:       email,
		Phone:       strings.TrimSpace(u.Phone),
		City:        strings.TrimSpace(u.Location.City),
		Country:     strings.TrimSpace(u.Location.Country),
		Age:         *u.Dob.Age,
		Gender:      strings.TrimSpace(u.Gender),
		Nationality: strings.ToUpper(strings.TrimSpace(u.Nat)),
		AvatarURL:   avatar,
	}, nil
}
