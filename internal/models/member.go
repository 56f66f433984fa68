package models

// Wire types for the kaonavi member and sheet endpoints.

// Department holds the organizational placement of a member. Name is
// the joined unit path, Names the individual levels ordered from
// headquarters down.
type Department struct {
	Code  string   `json:"code,omitempty"`
	Name  string   `json:"name"`
	Names []string `json:"names"`
}

// CustomField is a schema-defined, optionally-present field. Member
// records carry it keyed by name, sheet records by numeric id.
type CustomField struct {
	ID     int      `json:"id,omitempty"`
	Name   string   `json:"name,omitempty"`
	Values []string `json:"values"`
}

// Member is one employee as the upstream directory returns it.
type Member struct {
	Code           string        `json:"code"`
	Name           string        `json:"name"`
	NameKana       string        `json:"name_kana"`
	Mail           string        `json:"mail"`
	EnteredDate    string        `json:"entered_date"`
	Gender         string        `json:"gender"`
	Birthday       string        `json:"birthday"`
	Age            int           `json:"age"`
	YearsOfService string        `json:"years_of_service"`
	Department     Department    `json:"department"`
	SubDepartments []Department  `json:"sub_departments,omitempty"`
	CustomFields   []CustomField `json:"custom_fields"`
}

// MemberList is the body of GET /members.
type MemberList struct {
	MemberData []Member `json:"member_data"`
}

// SheetRecord is one entry of a member's sheet. The self-introduction
// sheet is single-record; only Records[0] is ever consulted.
type SheetRecord struct {
	CustomFields []CustomField `json:"custom_fields"`
}

// SheetMember carries the sheet entries of a single member.
type SheetMember struct {
	Code    string        `json:"code"`
	Records []SheetRecord `json:"records"`
}

// SheetCollection is the body of GET /sheets/{id} and the payload of
// the sheet create/update endpoints.
type SheetCollection struct {
	MemberData []SheetMember `json:"member_data"`
}
