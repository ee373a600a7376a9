package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentpad/agentpad/internal/app"
	"github.com/agentpad/agentpad/internal/usecase"
)

// seedEntries appends n NOTE entries through the use case layer.
func seedEntries(t *testing.T, container *app.Container, n int) {
	t.Helper()
	for i := range n {
		_, err := container.AddEntryUseCase().Execute(t.Context(), usecase.AddEntryInput{
			Type:  "NOTE",
			Agent: "seeder",
			Body:  fmt.Sprintf("note %d", i),
		})
		require.NoError(t, err)
	}
}

func TestNewTailCommand_LastN(t *testing.T) {
	container := newTestContainer(t)
	seedEntries(t, container, 5)

	cmd := newTailCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-n", "2"})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.NotContains(t, out, "note 2")
	assert.Contains(t, out, "note 3")
	assert.Contains(t, out, "note 4")
}

func TestNewTailCommand_JSONOutput(t *testing.T) {
	container := newTestContainer(t)
	seedEntries(t, container, 1)

	cmd := newTailCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-o", "json"})

	require.NoError(t, cmd.Execute())

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "NOTE", docs[0]["type"])
	assert.Equal(t, "seeder", docs[0]["agent"])
	assert.NotContains(t, docs[0], "id", "empty optional fields are omitted")
}

func TestNewTailCommand_UnknownFormat(t *testing.T) {
	container := newTestContainer(t)
	seedEntries(t, container, 1)

	cmd := newTailCommand(container)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"-o", "xml"})

	assert.Error(t, cmd.Execute())
}

func TestNewTailCommand_NotInitialized(t *testing.T) {
	container := newTestContainer(t)

	cmd := newTailCommand(container)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	assert.Error(t, cmd.Execute())
}

func TestNewOpenQuestionsCommand_Empty(t *testing.T) {
	container := newTestContainer(t)
	seedEntries(t, container, 1)

	cmd := newOpenQuestionsCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "(no open questions)")
}

func TestNewOpenQuestionsCommand_ListsOpen(t *testing.T) {
	container := newTestContainer(t)
	_, err := container.AddEntryUseCase().Execute(t.Context(), usecase.AddEntryInput{
		Type:  "QUESTION",
		Agent: "a1",
		Body:  "which region?",
		ID:    "Q-region",
	})
	require.NoError(t, err)

	cmd := newOpenQuestionsCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Q-region")
	assert.NotContains(t, buf.String(), "(no open questions)")
}

func TestNewListCommand_FiltersByType(t *testing.T) {
	container := newTestContainer(t)
	seedEntries(t, container, 2)
	_, err := container.AddEntryUseCase().Execute(t.Context(), usecase.AddEntryInput{
		Type:  "TASK",
		Agent: "a1",
		Body:  "the only task",
	})
	require.NoError(t, err)

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--type", "task"})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "the only task")
	assert.NotContains(t, out, "note 0")
}
