package services

// Payload field names as stored by the indexing pipeline. Contribution
// fields carry the upstream Hansard casing; parliamentary question fields
// use the written-questions API casing.
const (
	fieldText            = "text"
	fieldSittingDate     = "SittingDate"
	fieldHouse           = "House"
	fieldMemberID        = "MemberId"
	fieldMemberName      = "MemberName"
	fieldDebateSection   = "DebateSection"
	fieldDebateExtID     = "DebateSectionExtId"
	fieldOrderInDebate   = "OrderInDebateSection"
	fieldDebateParents   = "debate_parents"
	fieldDebateURL       = "debate_url"
	fieldContributionURL = "contribution_url"

	fieldDocumentURI     = "document_uri"
	fieldChunkIndex      = "chunk_index"
	fieldChunkType       = "chunk_type"
	fieldCreatedAt       = "created_at"
	fieldUIN             = "uin"
	fieldAskingMember    = "askingMember"
	fieldAnsweringMember = "answeringMember"
	fieldAskingParty     = "askingMember.party"
	fieldAskingMemberID  = "askingMember.id"
	fieldAnsweringBody   = "answeringBodyName"
	fieldDateTabled      = "dateTabled"
	fieldDateAnswered    = "dateAnswered"
)
