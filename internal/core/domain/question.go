package domain

import "time"

// Member is a parliamentary member as embedded in question payloads.
type Member struct {
	// ID is the member's Parliament id.
	ID int64 `json:"id"`

	// Name is the member's full name.
	Name string `json:"name,omitempty"`

	// Party is the member's party affiliation.
	Party string `json:"party,omitempty"`

	// MemberFrom is the constituency or area represented.
	MemberFrom string `json:"member_from,omitempty"`
}

// QuestionRecord is a parliamentary written question reassembled into its
// public shape. Unanswered questions have an empty AnswerText; that is a
// normal state of the parliamentary process, not an error.
type QuestionRecord struct {
	// UIN is the question's unique identifier number.
	UIN string `json:"uin"`

	// QuestionText is the full tabled question.
	QuestionText string `json:"question_text"`

	// AnswerText is the full answer, empty when not yet answered.
	AnswerText string `json:"answer_text"`

	// AskingMember is the member who tabled the question.
	AskingMember Member `json:"asking_member"`

	// AnsweringMember is the minister who answered, zero-valued when
	// unanswered.
	AnsweringMember Member `json:"answering_member"`

	// AnsweringBodyName is the government department the question was
	// directed to.
	AnsweringBodyName string `json:"answering_body_name"`

	// DateTabled is when the question was submitted.
	DateTabled time.Time `json:"date_tabled"`

	// DateAnswered is when the answer was published, zero when unanswered.
	DateAnswered time.Time `json:"date_answered"`

	// RelevanceScore is the sum of the record's chunk-hit scores. Only
	// meaningful when the search carried a free-text query.
	RelevanceScore float64 `json:"relevance_score,omitempty"`
}

// Chunk types for stored question fragments.
const (
	ChunkTypeQuestion = "question"
	ChunkTypeAnswer   = "answer"
)

// QuestionChunk is a stored fragment of a question or its answer. Long
// texts are split for embedding-size limits and must be stitched back
// together before a QuestionRecord is emitted.
type QuestionChunk struct {
	// ChunkIndex orders chunks within the parent question.
	ChunkIndex int

	// ChunkType is ChunkTypeQuestion or ChunkTypeAnswer.
	ChunkType string

	// Text is the fragment text.
	Text string

	// CreatedAt is when the chunk was written. The most recently written
	// chunk is authoritative for metadata that does not vary by chunk.
	CreatedAt time.Time

	// Score is the chunk's hit score within the search that returned it.
	Score float64

	// UIN, members, body and dates mirror the parent question's metadata
	// as denormalised onto every chunk at load time.
	UIN               string
	AskingMember      Member
	AnsweringMember   Member
	AnsweringBodyName string
	DateTabled        time.Time
	DateAnswered      time.Time
}
