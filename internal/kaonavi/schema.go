package kaonavi

// Schema binds the pipeline to the upstream sheet/field layout. The
// numeric ids and field labels are defined by the kaonavi tenant, so
// they live in configuration and only default here.
type Schema struct {
	SelfIntroSheetID int

	BirthPlaceFieldID     int
	JobDescriptionFieldID int
	CareerFieldID         int
	HobbyFieldID          int
	SpecialtyFieldID      int
	StrengthsFieldID      int
	MessageFieldID        int

	RoleFieldName            string
	RecruitCategoryFieldName string
}

func DefaultSchema() Schema {
	return Schema{
		SelfIntroSheetID:         20,
		BirthPlaceFieldID:        286,
		JobDescriptionFieldID:    287,
		CareerFieldID:            288,
		HobbyFieldID:             289,
		SpecialtyFieldID:         290,
		StrengthsFieldID:         291,
		MessageFieldID:           292,
		RoleFieldName:            "役職",
		RecruitCategoryFieldName: "採用区分",
	}
}
