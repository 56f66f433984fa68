package kaonavi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"MemberDirectory_UnityProject/internal/models"
)

func testMembers() []models.Member {
	return []models.Member{
		{
			Code:   "A0001",
			Name:   "山田太郎",
			Gender: "男性",
			Department: models.Department{
				Name:  "営業本部 第一営業部 第一グループ",
				Names: []string{"営業本部", "第一営業部", "第一グループ"},
			},
		},
		{
			Code:   "A0002",
			Name:   "佐藤花子",
			Gender: "女性",
			Department: models.Department{
				Name:  "営業本部 第二営業部",
				Names: []string{"営業本部", "第二営業部"},
			},
		},
		{
			Code:   "A0003",
			Name:   "山田次郎",
			Gender: "男性",
			Department: models.Department{
				Name:  "開発本部 基盤開発部 SREグループ",
				Names: []string{"開発本部", "基盤開発部", "SREグループ"},
			},
		},
	}
}

func TestFilterMembersEmptyCriteriaIsIdentity(t *testing.T) {
	members := testMembers()
	filtered := FilterMembers(FilterCriteria{}, members)
	assert.Equal(t, members, filtered)
}

func TestFilterMembersByName(t *testing.T) {
	filtered := FilterMembers(FilterCriteria{Name: "山田"}, testMembers())
	assert.Len(t, filtered, 2)
	for _, m := range filtered {
		assert.Contains(t, m.Name, "山田")
	}
}

func TestFilterMembersOrgCriteriaMatchDepartmentPath(t *testing.T) {
	filtered := FilterMembers(FilterCriteria{Headquarters: "営業本部"}, testMembers())
	assert.Len(t, filtered, 2)

	filtered = FilterMembers(FilterCriteria{Department: "基盤開発部"}, testMembers())
	assert.Len(t, filtered, 1)
	assert.Equal(t, "A0003", filtered[0].Code)

	filtered = FilterMembers(FilterCriteria{Group: "第一グループ"}, testMembers())
	assert.Len(t, filtered, 1)
	assert.Equal(t, "A0001", filtered[0].Code)
}

func TestFilterMembersByGender(t *testing.T) {
	filtered := FilterMembers(FilterCriteria{Gender: "女性"}, testMembers())
	assert.Len(t, filtered, 1)
	assert.Equal(t, "A0002", filtered[0].Code)
}

func TestFilterMembersCriteriaCombineWithAnd(t *testing.T) {
	filtered := FilterMembers(FilterCriteria{Name: "山田", Headquarters: "営業本部"}, testMembers())
	assert.Len(t, filtered, 1)
	assert.Equal(t, "A0001", filtered[0].Code)

	// every record must satisfy every predicate
	filtered = FilterMembers(FilterCriteria{Name: "山田", Gender: "女性"}, testMembers())
	assert.Empty(t, filtered)
}

func TestFilterMembersIsCaseSensitive(t *testing.T) {
	members := []models.Member{{Code: "B0001", Name: "John Smith"}}
	assert.Empty(t, FilterMembers(FilterCriteria{Name: "john"}, members))
	assert.Len(t, FilterMembers(FilterCriteria{Name: "John"}, members), 1)
}

func TestFilterMembersEmptyResultIsNotAnError(t *testing.T) {
	filtered := FilterMembers(FilterCriteria{Name: "存在しない"}, testMembers())
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}
