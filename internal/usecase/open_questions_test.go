package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentpad/agentpad/internal/domain"
)

func question(agent, id, body string) *domain.Entry {
	e := testEntry(domain.EntryQuestion, agent, body)
	e.ID = id
	return e
}

func answer(agent, closes, body string) *domain.Entry {
	e := testEntry(domain.EntryAnswer, agent, body)
	e.Closes = closes
	return e
}

func TestOpenQuestions_Execute_AnsweredQuestionIsClosed(t *testing.T) {
	pad := newMockEntryLog()
	pad.addEntry(question("a1", "Q-1", "which region?"))
	pad.addEntry(testEntry(domain.EntryNote, "a2", "unrelated"))
	pad.addEntry(answer("a3", "Q-1", "us-east"))
	uc := NewOpenQuestions(pad, nil)

	out, err := uc.Execute(context.Background(), OpenQuestionsInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Questions)
}

func TestOpenQuestions_Execute_UnansweredStaysOpen(t *testing.T) {
	pad := newMockEntryLog()
	pad.addEntry(question("a1", "Q-1", "which region?"))
	pad.addEntry(question("a2", "Q-2", "which schema?"))
	pad.addEntry(answer("a3", "Q-1", "us-east"))
	uc := NewOpenQuestions(pad, nil)

	out, err := uc.Execute(context.Background(), OpenQuestionsInput{})

	require.NoError(t, err)
	require.Len(t, out.Questions, 1)
	assert.Equal(t, "Q-2", out.Questions[0].ID)
}

func TestOpenQuestions_Execute_PhantomAnswerResolvesNothing(t *testing.T) {
	pad := newMockEntryLog()
	pad.addEntry(question("a1", "Q-1", "open"))
	pad.addEntry(answer("a2", "Q-does-not-exist", "noise"))
	uc := NewOpenQuestions(pad, nil)

	out, err := uc.Execute(context.Background(), OpenQuestionsInput{})

	require.NoError(t, err)
	require.Len(t, out.Questions, 1)
	assert.Equal(t, "Q-1", out.Questions[0].ID)
}

func TestOpenQuestions_Execute_FirstAppearanceOrder(t *testing.T) {
	pad := newMockEntryLog()
	pad.addEntry(question("a1", "Q-3", "third id, first asked"))
	pad.addEntry(question("a2", "Q-1", "first id, second asked"))
	pad.addEntry(question("a3", "Q-2", "second id, third asked"))
	uc := NewOpenQuestions(pad, nil)

	out, err := uc.Execute(context.Background(), OpenQuestionsInput{})

	require.NoError(t, err)
	require.Len(t, out.Questions, 3)
	assert.Equal(t, "Q-3", out.Questions[0].ID)
	assert.Equal(t, "Q-1", out.Questions[1].ID)
	assert.Equal(t, "Q-2", out.Questions[2].ID)
}

func TestOpenQuestions_Execute_EmptyPad(t *testing.T) {
	pad := newMockEntryLog()
	pad.exists = true
	uc := NewOpenQuestions(pad, nil)

	out, err := uc.Execute(context.Background(), OpenQuestionsInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Questions)
}

func TestOpenQuestions_Execute_NotInitialized(t *testing.T) {
	uc := NewOpenQuestions(newMockEntryLog(), nil)

	_, err := uc.Execute(context.Background(), OpenQuestionsInput{})

	assert.ErrorIs(t, err, domain.ErrPadNotInitialized)
}
