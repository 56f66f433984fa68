package kaonavi

import (
	"MemberDirectory_UnityProject/internal/models"
)

// ListItem is one row of the user list response: a member record
// joined with its local account and the self-introduction sheet.
type ListItem struct {
	UserID         string `json:"user_id"`
	ChatworkID     string `json:"chatwork_id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	NameKana       string `json:"name_kana"`
	Headquarters   string `json:"headquarters"`
	Department     string `json:"department"`
	Group          string `json:"group"`
	Role           string `json:"role"`
	JobDescription string `json:"job_description"`
}

// Overview is the header block of the user detail response.
type Overview struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	NameKana     string `json:"name_kana"`
	ChatworkID   string `json:"chatwork_id"`
	Headquarters string `json:"headquarters"`
	Department   string `json:"department"`
	Group        string `json:"group"`
}

// DetailField is one self-introduction slot: a preset human-readable
// title plus whatever the member wrote, empty when they wrote nothing.
type DetailField struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// DetailFields are the seven fixed self-introduction slots. All seven
// are always present in the response.
type DetailFields struct {
	JobDescription DetailField `json:"job_description"`
	BirthPlace     DetailField `json:"birth_place"`
	Career         DetailField `json:"career"`
	Hobby          DetailField `json:"hobby"`
	Specialty      DetailField `json:"specialty"`
	Strengths      DetailField `json:"strengths"`
	Message        DetailField `json:"message"`
}

// Detail is the user detail response.
type Detail struct {
	Overview Overview     `json:"overview"`
	Tags     []string     `json:"tags"`
	Details  DetailFields `json:"details"`
}

// MemberSummary is the flattened member record served by the raw
// proxy endpoints, without the local-account join.
type MemberSummary struct {
	Code           string               `json:"code"`
	Name           string               `json:"name"`
	NameKana       string               `json:"name_kana"`
	Mail           string               `json:"mail"`
	EnteredDate    string               `json:"entered_date"`
	Gender         string               `json:"gender"`
	Birthday       string               `json:"birthday"`
	Age            int                  `json:"age"`
	YearsOfService string               `json:"years_of_service"`
	Department     string               `json:"department"`
	CustomFields   []models.CustomField `json:"custom_fields"`
}

// NormalizeListItem joins one member record with its local user and
// the sheet collection into a list row.
func (s Schema) NormalizeListItem(member models.Member, user models.User, sheets []models.SheetMember) ListItem {
	headquarters, department, group := splitOrgLevels(member.Department.Names)
	role, _ := customFieldByName(member.CustomFields, s.RoleFieldName)

	jobDescription := ""
	if sheet, ok := sheetByCode(sheets, member.Code); ok {
		jobDescription, _ = sheetFieldByID(sheet, s.JobDescriptionFieldID)
	}

	return ListItem{
		UserID:         user.ID,
		ChatworkID:     user.ChatworkID,
		Email:          user.Email,
		Name:           member.Name,
		NameKana:       member.NameKana,
		Headquarters:   headquarters,
		Department:     department,
		Group:          group,
		Role:           role,
		JobDescription: jobDescription,
	}
}

// NormalizeDetail builds the detail view of one member.
func (s Schema) NormalizeDetail(member models.Member, user models.User, sheets []models.SheetMember) Detail {
	headquarters, department, group := splitOrgLevels(member.Department.Names)
	return Detail{
		Overview: Overview{
			Email:        user.Email,
			Name:         member.Name,
			NameKana:     member.NameKana,
			ChatworkID:   user.ChatworkID,
			Headquarters: headquarters,
			Department:   department,
			Group:        group,
		},
		Tags:    s.Tags(member),
		Details: s.SelfIntroduction(member, sheets),
	}
}

// Tags builds the short labels shown next to a member's profile:
// years of service, role, recruitment category, gender, in that
// order. Entries whose source field is absent are omitted entirely,
// never replaced with a placeholder.
func (s Schema) Tags(member models.Member) []string {
	tags := make([]string, 0, 4)
	tags = append(tags, "勤続"+member.YearsOfService)
	if role, ok := customFieldByName(member.CustomFields, s.RoleFieldName); ok {
		tags = append(tags, s.RoleFieldName+"："+role)
	}
	if category, ok := customFieldByName(member.CustomFields, s.RecruitCategoryFieldName); ok {
		tags = append(tags, category)
	}
	tags = append(tags, member.Gender)
	return tags
}

// SelfIntroduction fills the seven fixed slots from the member's
// sheet. Without a sheet every slot keeps its preset title and an
// empty value. When the upstream returns duplicate field ids the
// first match wins; later duplicates are dropped silently.
func (s Schema) SelfIntroduction(member models.Member, sheets []models.SheetMember) DetailFields {
	fields := DetailFields{
		JobDescription: DetailField{Title: "業務内容、役割"},
		BirthPlace:     DetailField{Title: "出身地"},
		Career:         DetailField{Title: "経歴、職歴"},
		Hobby:          DetailField{Title: "趣味"},
		Specialty:      DetailField{Title: "特技"},
		Strengths:      DetailField{Title: "アピールポイント"},
		Message:        DetailField{Title: "最後にひとこと"},
	}

	sheet, ok := sheetByCode(sheets, member.Code)
	if !ok || len(sheet.Records) == 0 {
		return fields
	}

	slots := map[int]*DetailField{
		s.JobDescriptionFieldID: &fields.JobDescription,
		s.BirthPlaceFieldID:     &fields.BirthPlace,
		s.CareerFieldID:         &fields.Career,
		s.HobbyFieldID:          &fields.Hobby,
		s.SpecialtyFieldID:      &fields.Specialty,
		s.StrengthsFieldID:      &fields.Strengths,
		s.MessageFieldID:        &fields.Message,
	}
	written := make(map[int]bool, len(slots))
	for _, field := range sheet.Records[0].CustomFields {
		slot := slots[field.ID]
		if slot == nil || written[field.ID] {
			continue
		}
		slot.Value = firstValue(field)
		written[field.ID] = true
	}
	return fields
}

// NormalizeMemberSummary flattens a raw member record for the proxy
// endpoints.
func NormalizeMemberSummary(member models.Member) MemberSummary {
	return MemberSummary{
		Code:           member.Code,
		Name:           member.Name,
		NameKana:       member.NameKana,
		Mail:           member.Mail,
		EnteredDate:    member.EnteredDate,
		Gender:         member.Gender,
		Birthday:       member.Birthday,
		Age:            member.Age,
		YearsOfService: member.YearsOfService,
		Department:     member.Department.Name,
		CustomFields:   member.CustomFields,
	}
}

// splitOrgLevels maps the ordered unit names onto the three fixed
// levels. Missing positions yield empty strings.
func splitOrgLevels(names []string) (headquarters, department, group string) {
	if len(names) >= 1 {
		headquarters = names[0]
	}
	if len(names) >= 2 {
		department = names[1]
	}
	if len(names) >= 3 {
		group = names[2]
	}
	return headquarters, department, group
}

// customFieldByName returns the first value of the first custom field
// whose label matches exactly. ok is false when no field matches.
func customFieldByName(fields []models.CustomField, name string) (string, bool) {
	for _, field := range fields {
		if field.Name == name {
			return firstValue(field), true
		}
	}
	return "", false
}

// sheetFieldByID looks a field up in Records[0] of a sheet entry by
// its numeric id.
func sheetFieldByID(sheet models.SheetMember, id int) (string, bool) {
	if len(sheet.Records) == 0 {
		return "", false
	}
	for _, field := range sheet.Records[0].CustomFields {
		if field.ID == id {
			return firstValue(field), true
		}
	}
	return "", false
}

func sheetByCode(sheets []models.SheetMember, code string) (models.SheetMember, bool) {
	for _, sheet := range sheets {
		if sheet.Code == code {
			return sheet, true
		}
	}
	return models.SheetMember{}, false
}

func firstValue(field models.CustomField) string {
	if len(field.Values) == 0 {
		return ""
	}
	return field.Values[0]
}
