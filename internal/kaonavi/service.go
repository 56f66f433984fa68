package kaonavi

import (
	"fmt"

	"go.uber.org/zap"

	"MemberDirectory_UnityProject/internal/models"
)

// Connector is the upstream surface the service depends on. *Client
// implements it; tests substitute a stub.
type Connector interface {
	Token() (string, error)
	Members(token string) ([]models.Member, error)
	Sheets(token string, sheetID int) ([]models.SheetMember, error)
	AddSheet(token string, sheetID int, payload models.SheetCollection) error
	UpdateSheet(token string, sheetID int, payload models.SheetCollection) error
}

// UserFinder resolves local account rows. found is false when no row
// matches; err is reserved for storage failures.
type UserFinder interface {
	UserByID(id string) (user models.User, found bool, err error)
	UserByKaonaviCode(code string) (user models.User, found bool, err error)
}

// ListQuery is the parsed query of the user list endpoint. PerPage
// and Page are nil when the parameter was absent and fall back to the
// configured defaults; an explicit value, including 0, is passed
// through to pagination as-is.
type ListQuery struct {
	Criteria FilterCriteria
	PerPage  *int
	Page     *int
}

// SheetContents is the writable part of a self-introduction sheet.
type SheetContents struct {
	BirthPlace     string `json:"birth_place"`
	JobDescription string `json:"job_description"`
	Career         string `json:"career"`
	Hobby          string `json:"hobby"`
	Specialty      string `json:"specialty"`
	Strengths      string `json:"strengths"`
	Message        string `json:"message"`
}

// Ack is the payload of operations that carry no data on success.
type Ack struct{}

// ServiceConfig fixes the schema binding and pagination defaults.
type ServiceConfig struct {
	Schema         Schema
	DefaultPerPage int
	DefaultPage    int
}

// Service runs the directory pipeline: filter the raw member list,
// fetch sheets when needed, normalize per record, paginate, and wrap
// the outcome. All state is request-local; nothing is cached between
// calls.
type Service struct {
	cfg       ServiceConfig
	connector Connector
	users     UserFinder
	logger    *zap.Logger
}

func NewService(cfg ServiceConfig, connector Connector, users UserFinder, logger *zap.Logger) *Service {
	if cfg.DefaultPerPage < 1 {
		cfg.DefaultPerPage = 30
	}
	if cfg.DefaultPage < 1 {
		cfg.DefaultPage = 1
	}
	return &Service{cfg: cfg, connector: connector, users: users, logger: logger}
}

// ListUsers returns the filtered, normalized, paginated user list.
// When the filter matches nothing the sheet fetch is skipped and a
// nil page is returned; the handler serves that as a bare empty JSON
// array. A member with no local account row fails the whole
// operation, no partial list is returned.
func (s *Service) ListUsers(query ListQuery) Result[*Page[ListItem]] {
	token, err := s.connector.Token()
	if err != nil {
		return Fail[*Page[ListItem]](err)
	}
	members, err := s.connector.Members(token)
	if err != nil {
		return Fail[*Page[ListItem]](err)
	}

	members = FilterMembers(query.Criteria, members)
	if len(members) == 0 {
		return OK[*Page[ListItem]](nil)
	}

	sheets, err := s.connector.Sheets(token, s.cfg.Schema.SelfIntroSheetID)
	if err != nil {
		return Fail[*Page[ListItem]](err)
	}

	items := make([]ListItem, 0, len(members))
	for _, member := range members {
		user, found, err := s.users.UserByKaonaviCode(member.Code)
		if err != nil {
			return Fail[*Page[ListItem]](fmt.Errorf("user lookup for code %s: %w", member.Code, err))
		}
		if !found {
			return Fail[*Page[ListItem]](&NotFoundError{Identifier: "code:" + member.Code})
		}
		items = append(items, s.cfg.Schema.NormalizeListItem(member, user, sheets))
	}

	perPage := s.cfg.DefaultPerPage
	if query.PerPage != nil {
		perPage = *query.PerPage
	}
	page := s.cfg.DefaultPage
	if query.Page != nil {
		page = *query.Page
	}

	result, err := Paginate(items, perPage, page)
	if err != nil {
		return Fail[*Page[ListItem]](err)
	}
	return OK(&result)
}

// GetUser builds the detail view for a local user id.
func (s *Service) GetUser(userID string) Result[Detail] {
	user, found, err := s.users.UserByID(userID)
	if err != nil {
		return Fail[Detail](fmt.Errorf("user lookup for id %s: %w", userID, err))
	}
	if !found {
		return Fail[Detail](&NotFoundError{Identifier: "id:" + userID})
	}

	token, err := s.connector.Token()
	if err != nil {
		return Fail[Detail](err)
	}
	members, err := s.connector.Members(token)
	if err != nil {
		return Fail[Detail](err)
	}

	member, ok := memberByCode(members, user.KaonaviCode)
	if !ok {
		return Fail[Detail](&NotFoundError{Identifier: "id:" + userID})
	}

	sheets, err := s.connector.Sheets(token, s.cfg.Schema.SelfIntroSheetID)
	if err != nil {
		return Fail[Detail](err)
	}

	return OK(s.cfg.Schema.NormalizeDetail(member, user, sheets))
}

// UpsertSelfIntroduction creates or updates the user's sheet entry.
// The create-vs-update choice is a read-then-write sequence, not a
// server-side upsert: two concurrent writers against the same member
// code can race, and the last writer wins. Accepted limitation.
func (s *Service) UpsertSelfIntroduction(userID string, contents SheetContents) Result[Ack] {
	user, found, err := s.users.UserByID(userID)
	if err != nil {
		return Fail[Ack](fmt.Errorf("user lookup for id %s: %w", userID, err))
	}
	if !found {
		return Fail[Ack](&NotFoundError{Identifier: "id:" + userID})
	}

	token, err := s.connector.Token()
	if err != nil {
		return Fail[Ack](err)
	}
	sheets, err := s.connector.Sheets(token, s.cfg.Schema.SelfIntroSheetID)
	if err != nil {
		return Fail[Ack](err)
	}

	payload := s.sheetPayload(user.KaonaviCode, contents)
	if _, exists := sheetByCode(sheets, user.KaonaviCode); exists {
		err = s.connector.UpdateSheet(token, s.cfg.Schema.SelfIntroSheetID, payload)
	} else {
		err = s.connector.AddSheet(token, s.cfg.Schema.SelfIntroSheetID, payload)
	}
	if err != nil {
		return Fail[Ack](err)
	}

	s.logger.Info("self-introduction sheet saved",
		zap.String("user_id", userID),
		zap.String("kaonavi_code", user.KaonaviCode),
	)
	return OK(Ack{})
}

// ListMembers serves the raw proxy endpoint: every upstream member,
// flattened, no local join. An empty upstream list is a failure on
// this surface.
func (s *Service) ListMembers() Result[[]MemberSummary] {
	token, err := s.connector.Token()
	if err != nil {
		return Fail[[]MemberSummary](err)
	}
	members, err := s.connector.Members(token)
	if err != nil {
		return Fail[[]MemberSummary](err)
	}
	if len(members) == 0 {
		return Fail[[]MemberSummary](&UpstreamError{Op: "members", Errors: []string{"社員情報の取得に失敗しました"}})
	}

	summaries := make([]MemberSummary, 0, len(members))
	for _, member := range members {
		summaries = append(summaries, NormalizeMemberSummary(member))
	}
	return OK(summaries)
}

// GetMember resolves a single member by code on the proxy surface.
// The payload stays a one-element list, matching what the front-end
// already consumes. Exactly one record must carry the code; zero or
// several matches both fail the lookup.
func (s *Service) GetMember(code string) Result[[]MemberSummary] {
	listed := s.ListMembers()
	if !listed.IsSuccess() {
		return listed
	}
	matches := make([]MemberSummary, 0, 1)
	for _, summary := range listed.Data() {
		if summary.Code == code {
			matches = append(matches, summary)
		}
	}
	if len(matches) != 1 {
		return Fail[[]MemberSummary](&NotFoundError{Identifier: "code:" + code})
	}
	return OK(matches)
}

// sheetPayload builds the write body for the sheet endpoints, one
// record with all seven slots keyed by their configured ids.
func (s *Service) sheetPayload(code string, contents SheetContents) models.SheetCollection {
	return models.SheetCollection{
		MemberData: []models.SheetMember{
			{
				Code: code,
				Records: []models.SheetRecord{
					{
						CustomFields: []models.CustomField{
							{ID: s.cfg.Schema.BirthPlaceFieldID, Values: []string{contents.BirthPlace}},
							{ID: s.cfg.Schema.JobDescriptionFieldID, Values: []string{contents.JobDescription}},
							{ID: s.cfg.Schema.CareerFieldID, Values: []string{contents.Career}},
							{ID: s.cfg.Schema.HobbyFieldID, Values: []string{contents.Hobby}},
							{ID: s.cfg.Schema.SpecialtyFieldID, Values: []string{contents.Specialty}},
							{ID: s.cfg.Schema.StrengthsFieldID, Values: []string{contents.Strengths}},
							{ID: s.cfg.Schema.MessageFieldID, Values: []string{contents.Message}},
						},
					},
				},
			},
		},
	}
}

func memberByCode(members []models.Member, code string) (models.Member, bool) {
	for _, member := range members {
		if member.Code == code {
			return member, true
		}
	}
	return models.Member{}, false
}
