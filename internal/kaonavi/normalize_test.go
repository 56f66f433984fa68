package kaonavi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"MemberDirectory_UnityProject/internal/models"
)

func testSchema() Schema { return DefaultSchema() }

func memberWithUnits(names ...string) models.Member {
	return models.Member{
		Code:           "A0001",
		Name:           "山田太郎",
		NameKana:       "ヤマダタロウ",
		Gender:         "男性",
		YearsOfService: "5年2ヶ月",
		Department:     models.Department{Names: names},
	}
}

func localUser() models.User {
	return models.User{
		ID:          "3f1c9a2e-0000-4000-8000-000000000001",
		Email:       "taro@example.com",
		ChatworkID:  "1234567",
		KaonaviCode: "A0001",
	}
}

func TestSplitOrgLevels(t *testing.T) {
	cases := []struct {
		names                           []string
		headquarters, department, group string
	}{
		{nil, "", "", ""},
		{[]string{"営業本部"}, "営業本部", "", ""},
		{[]string{"営業本部", "第一営業部"}, "営業本部", "第一営業部", ""},
		{[]string{"営業本部", "第一営業部", "第一グループ"}, "営業本部", "第一営業部", "第一グループ"},
		{[]string{"営業本部", "第一営業部", "第一グループ", "第一チーム"}, "営業本部", "第一営業部", "第一グループ"},
	}
	for _, tc := range cases {
		headquarters, department, group := splitOrgLevels(tc.names)
		assert.Equal(t, tc.headquarters, headquarters)
		assert.Equal(t, tc.department, department)
		assert.Equal(t, tc.group, group)
	}
}

func TestNormalizeListItemJoinsUserAndSheet(t *testing.T) {
	schema := testSchema()
	member := memberWithUnits("営業本部", "第一営業部", "第一グループ")
	member.CustomFields = []models.CustomField{
		{Name: "役職", Values: []string{"部長"}},
	}
	sheets := []models.SheetMember{
		{
			Code: "A0001",
			Records: []models.SheetRecord{
				{CustomFields: []models.CustomField{
					{ID: schema.JobDescriptionFieldID, Values: []string{"新規開拓"}},
				}},
			},
		},
	}

	item := schema.NormalizeListItem(member, localUser(), sheets)

	assert.Equal(t, "3f1c9a2e-0000-4000-8000-000000000001", item.UserID)
	assert.Equal(t, "1234567", item.ChatworkID)
	assert.Equal(t, "taro@example.com", item.Email)
	assert.Equal(t, "山田太郎", item.Name)
	assert.Equal(t, "ヤマダタロウ", item.NameKana)
	assert.Equal(t, "営業本部", item.Headquarters)
	assert.Equal(t, "第一営業部", item.Department)
	assert.Equal(t, "第一グループ", item.Group)
	assert.Equal(t, "部長", item.Role)
	assert.Equal(t, "新規開拓", item.JobDescription)
}

func TestNormalizeListItemMissingFieldsDefaultToEmpty(t *testing.T) {
	schema := testSchema()
	member := memberWithUnits("営業本部")

	item := schema.NormalizeListItem(member, localUser(), nil)

	assert.Equal(t, "営業本部", item.Headquarters)
	assert.Equal(t, "", item.Department)
	assert.Equal(t, "", item.Group)
	assert.Equal(t, "", item.Role)
	assert.Equal(t, "", item.JobDescription)
}

func TestTagsFullSet(t *testing.T) {
	schema := testSchema()
	member := memberWithUnits()
	member.CustomFields = []models.CustomField{
		{Name: "役職", Values: []string{"部長"}},
		{Name: "採用区分", Values: []string{"新卒"}},
	}

	tags := schema.Tags(member)

	assert.Equal(t, []string{"勤続5年2ヶ月", "役職：部長", "新卒", "男性"}, tags)
}

func TestTagsOmitAbsentEntries(t *testing.T) {
	schema := testSchema()
	member := memberWithUnits()

	tags := schema.Tags(member)

	// role and recruitment category are dropped, not replaced;
	// the remaining order is preserved
	assert.Equal(t, []string{"勤続5年2ヶ月", "男性"}, tags)
}

func TestTagsFirstMatchingLabelWins(t *testing.T) {
	schema := testSchema()
	member := memberWithUnits()
	member.CustomFields = []models.CustomField{
		{Name: "役職", Values: []string{"部長"}},
		{Name: "役職", Values: []string{"課長"}},
	}

	tags := schema.Tags(member)
	assert.Contains(t, tags, "役職：部長")
	assert.NotContains(t, tags, "役職：課長")
}

func TestSelfIntroductionWithoutSheetKeepsTitledEmptySlots(t *testing.T) {
	schema := testSchema()
	fields := schema.SelfIntroduction(memberWithUnits(), nil)

	assert.Equal(t, DetailField{Title: "業務内容、役割"}, fields.JobDescription)
	assert.Equal(t, DetailField{Title: "出身地"}, fields.BirthPlace)
	assert.Equal(t, DetailField{Title: "経歴、職歴"}, fields.Career)
	assert.Equal(t, DetailField{Title: "趣味"}, fields.Hobby)
	assert.Equal(t, DetailField{Title: "特技"}, fields.Specialty)
	assert.Equal(t, DetailField{Title: "アピールポイント"}, fields.Strengths)
	assert.Equal(t, DetailField{Title: "最後にひとこと"}, fields.Message)
}

func TestSelfIntroductionFillsSlotsByFieldID(t *testing.T) {
	schema := testSchema()
	sheets := []models.SheetMember{
		{
			Code: "A0001",
			Records: []models.SheetRecord{
				{CustomFields: []models.CustomField{
					{ID: schema.BirthPlaceFieldID, Values: []string{"北海道"}},
					{ID: schema.HobbyFieldID, Values: []string{"登山"}},
					{ID: 999, Values: []string{"unknown field is ignored"}},
				}},
			},
		},
	}

	fields := schema.SelfIntroduction(memberWithUnits(), sheets)

	assert.Equal(t, DetailField{Title: "出身地", Value: "北海道"}, fields.BirthPlace)
	assert.Equal(t, DetailField{Title: "趣味", Value: "登山"}, fields.Hobby)
	assert.Equal(t, "", fields.Career.Value)
}

func TestSelfIntroductionFirstMatchWinsOnDuplicateIDs(t *testing.T) {
	schema := testSchema()
	sheets := []models.SheetMember{
		{
			Code: "A0001",
			Records: []models.SheetRecord{
				{CustomFields: []models.CustomField{
					{ID: schema.HobbyFieldID, Values: []string{"登山"}},
					{ID: schema.HobbyFieldID, Values: []string{"釣り"}},
				}},
			},
		},
	}

	fields := schema.SelfIntroduction(memberWithUnits(), sheets)
	assert.Equal(t, "登山", fields.Hobby.Value)
}

func TestSelfIntroductionEmptyValuesNeverPanic(t *testing.T) {
	schema := testSchema()
	sheets := []models.SheetMember{
		{Code: "A0001", Records: []models.SheetRecord{
			{CustomFields: []models.CustomField{{ID: schema.HobbyFieldID, Values: nil}}},
		}},
	}

	fields := schema.SelfIntroduction(memberWithUnits(), sheets)
	assert.Equal(t, "", fields.Hobby.Value)

	// a sheet entry with no records behaves like no sheet at all
	fields = schema.SelfIntroduction(memberWithUnits(), []models.SheetMember{{Code: "A0001"}})
	assert.Equal(t, "趣味", fields.Hobby.Title)
	assert.Equal(t, "", fields.Hobby.Value)
}

func TestNormalizeDetail(t *testing.T) {
	schema := testSchema()
	member := memberWithUnits("営業本部", "第一営業部")
	member.CustomFields = []models.CustomField{
		{Name: "役職", Values: []string{"部長"}},
	}

	detail := schema.NormalizeDetail(member, localUser(), nil)

	assert.Equal(t, "taro@example.com", detail.Overview.Email)
	assert.Equal(t, "山田太郎", detail.Overview.Name)
	assert.Equal(t, "営業本部", detail.Overview.Headquarters)
	assert.Equal(t, "第一営業部", detail.Overview.Department)
	assert.Equal(t, "", detail.Overview.Group)
	assert.Equal(t, []string{"勤続5年2ヶ月", "役職：部長", "男性"}, detail.Tags)
	assert.Equal(t, "業務内容、役割", detail.Details.JobDescription.Title)
}

func TestNormalizeMemberSummaryFlattensDepartment(t *testing.T) {
	member := models.Member{
		Code:           "A0001",
		Name:           "山田太郎",
		Mail:           "taro@example.com",
		Age:            30,
		YearsOfService: "5年2ヶ月",
		Department: models.Department{
			Name:  "営業本部 第一営業部",
			Names: []string{"営業本部", "第一営業部"},
		},
		CustomFields: []models.CustomField{{Name: "役職", Values: []string{"部長"}}},
	}

	summary := NormalizeMemberSummary(member)

	assert.Equal(t, "営業本部 第一営業部", summary.Department)
	assert.Equal(t, member.CustomFields, summary.CustomFields)
	assert.Equal(t, 30, summary.Age)
}
