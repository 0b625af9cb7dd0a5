package services

import (
	"sort"
	"strings"

	"github.com/openparl/parliament-mcp/internal/core/domain"
)

// reassembleQuestion stitches the retrieved chunks of one question
// document back into a whole record. Question and answer chunks are
// partitioned, ordered by chunk index and joined; shared metadata is
// taken from the most recently written chunk so that a late answer
// supersedes stale question-side fields. The result is independent of
// the order the chunks arrive in.
func reassembleQuestion(chunks []domain.QuestionChunk) domain.QuestionRecord {
	var record domain.QuestionRecord
	if len(chunks) == 0 {
		return record
	}

	newest := chunks[0]
	var questionParts, answerParts []domain.QuestionChunk
	for _, c := range chunks {
		record.RelevanceScore += c.Score
		if c.CreatedAt.After(newest.CreatedAt) ||
			(c.CreatedAt.Equal(newest.CreatedAt) && c.ChunkIndex > newest.ChunkIndex) {
			newest = c
		}
		switch c.ChunkType {
		case domain.ChunkTypeAnswer:
			answerParts = append(answerParts, c)
		default:
			questionParts = append(questionParts, c)
		}
	}

	record.QuestionText = joinChunks(questionParts)
	record.AnswerText = joinChunks(answerParts)
	record.UIN = newest.UIN
	record.AskingMember = newest.AskingMember
	record.AnsweringMember = newest.AnsweringMember
	record.AnsweringBodyName = newest.AnsweringBodyName
	record.DateTabled = newest.DateTabled
	record.DateAnswered = newest.DateAnswered
	return record
}

func joinChunks(chunks []domain.QuestionChunk) string {
	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].ChunkIndex < chunks[j].ChunkIndex
	})
	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = c.Text
	}
	return strings.Join(parts, "\n")
}
