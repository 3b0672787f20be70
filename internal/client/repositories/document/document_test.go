package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/client/models"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/filex"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// legacyFile is a data file from earlier releases: sequential ids,
// no completed_at on never-completed tasks, null completed_at on reopened ones.
const legacyFile = `{
  "lists": {
    "list_20240501100000123456": {
      "name": "Groceries",
      "tasks": [
        {"id": "task_1", "text": "Milk", "completed": true, "created_at": "2024-05-01 10:00:01",
         "priority": "High", "emoji": "•", "completed_at": "2024-05-01 11:00:00"},
        {"id": "task_2", "text": "Eggs", "completed": false, "created_at": "2024-05-01 10:00:02",
         "priority": "Low", "emoji": "→"},
        {"id": "task_3", "text": "Bread", "completed": false, "created_at": "2024-05-01 10:00:03",
         "priority": "Medium", "emoji": "○", "completed_at": null}
      ],
      "emoji": "📝",
      "created_at": "2024-05-01 10:00:00",
      "owner": "alice"
    }
  },
  "current_list": "list_20240501100000123456",
  "users": {
    "alice": {
      "password_hash": {"salt": "c2FsdA==", "key": "a2V5"},
      "created_at": "2024-05-01 09:59:00"
    }
  }
}`

func sampleDocument() *models.Document {
	at := models.NewTimestamp(time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local))
	doc := models.NewDocument()
	doc.Users["alice"] = &models.User{
		Username:     "alice",
		PasswordHash: models.PasswordHash{Salt: []byte("salt-bytes"), Key: []byte("key-bytes")},
		CreatedAt:    at,
	}
	doc.Lists["list_a"] = &models.List{
		ID: "list_a", Name: "Groceries", Owner: "alice", Emoji: "📝", CreatedAt: at,
		Tasks: []*models.Task{
			{ID: "task_1", Text: "Milk", Completed: true, Priority: models.PriorityHigh, CreatedAt: at, CompletedAt: &at, Emoji: "•"},
			{ID: "task_2", Text: "Eggs", Priority: models.PriorityLow, CreatedAt: at, Emoji: "→"},
		},
	}
	doc.Lists["list_b"] = &models.List{ID: "list_b", Name: "Empty", Owner: "alice", CreatedAt: at, Tasks: []*models.Task{}}
	return doc
}

func newFileRepo(t *testing.T) (*JSONFileRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "todo_data.json")
	return NewJSONFileRepository(path, logging.NewNopLogger()), path
}

func TestJSONFileRepository_LoadMissingFileReturnsEmptyDocument(t *testing.T) {
	repo, _ := newFileRepo(t)

	doc, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, doc.Users)
	assert.Empty(t, doc.Lists)
	assert.NotNil(t, doc.Users)
	assert.NotNil(t, doc.Lists)
	assert.Nil(t, doc.CurrentList)
}

func TestJSONFileRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newFileRepo(t)

	tests := []struct {
		name string
		doc  func() *models.Document
	}{
		{"empty", models.NewDocument},
		{"no selection, empty task list", sampleDocument},
		{"with selection", func() *models.Document {
			d := sampleDocument()
			d.Select("list_a")
			return d
		}},
		{"dangling selection", func() *models.Document {
			d := sampleDocument()
			d.Select("list_gone")
			return d
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.doc()
			require.NoError(t, repo.Save(ctx, want))

			got, err := repo.Load(ctx)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(want, got))
		})
	}
}

func TestEncode_SaveLoadSaveIsByteStable(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	require.NoError(t, repo.Save(ctx, sampleDocument()))
	first := append([]byte(nil), repo.Bytes()...)

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, doc))

	assert.Equal(t, string(first), string(repo.Bytes()))
}

func TestEncode_WireFormat(t *testing.T) {
	data, err := Encode(sampleDocument())
	require.NoError(t, err)
	s := string(data)

	for _, want := range []string{
		`"current_list": null`,
		`"tasks": []`,
		`"password_hash": {`,
		`"salt": "c2FsdC1ieXRlcw=="`,
		`"completed_at": "2024-05-01 10:00:00"`,
		`"completed_at": null`,
		`"owner": "alice"`,
	} {
		assert.Contains(t, s, want)
	}
	assert.NotContains(t, s, `"ID"`)
	assert.NotContains(t, s, `"Username"`)
}

func TestDecode_LegacyFile(t *testing.T) {
	doc, err := Decode([]byte(legacyFile))
	require.NoError(t, err)

	l := doc.Lists["list_20240501100000123456"]
	require.NotNil(t, l)
	assert.Equal(t, "list_20240501100000123456", l.ID)
	assert.Equal(t, "alice", l.Owner)
	require.Len(t, l.Tasks, 3)
	assert.NotNil(t, l.Tasks[0].CompletedAt)
	assert.Nil(t, l.Tasks[1].CompletedAt)
	assert.Nil(t, l.Tasks[2].CompletedAt)
	assert.Equal(t, "list_20240501100000123456", doc.Selected())

	u := doc.Users["alice"]
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, []byte("salt"), u.PasswordHash.Salt)
	assert.Equal(t, []byte("key"), u.PasswordHash.Key)
}

func TestDecode_MissingSectionsDefaultToEmpty(t *testing.T) {
	doc, err := Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, doc.Lists)
	assert.NotNil(t, doc.Users)
	assert.Nil(t, doc.CurrentList)
}

func TestDecode_RejectsMalformedContent(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		problem string
	}{
		{"not json", `{"lists": `, "invalid JSON"},
		{"trailing garbage", `{} {}`, "unexpected data"},
		{"top level array", `[]`, "document"},
		{"null document", `null`, "document"},
		{"lists is a string", `{"lists": "x"}`, "lists"},
		{"unknown priority", `{"lists": {"l": {"name": "n", "tasks": [
			{"id": "t", "text": "x", "completed": false, "priority": "Urgent"}]}}}`, "lists.l.tasks.0.priority"},
		{"blank list name", `{"lists": {"l": {"name": "  ", "tasks": []}}}`, "lists.l.name"},
		{"missing tasks", `{"lists": {"l": {"name": "n"}}}`, "lists.l"},
		{"completed not bool", `{"lists": {"l": {"name": "n", "tasks": [
			{"id": "t", "text": "x", "completed": "yes", "priority": "Low"}]}}}`, "lists.l.tasks.0.completed"},
		{"user without hash", `{"users": {"bob": {"created_at": "2024-05-01 10:00:00"}}}`, "users.bob"},
		{"salt not base64", `{"users": {"bob": {"password_hash": {"salt": "%%%", "key": "a2V5"}}}}`, "base64"},
		{"bad timestamp", `{"users": {"bob": {"password_hash": {"salt": "c2FsdA==", "key": "a2V5"},
			"created_at": "last tuesday"}}}`, "timestamp"},
		{"duplicate task id", `{"lists": {"l": {"name": "n", "tasks": [
			{"id": "t", "text": "x", "completed": false, "priority": "Low"},
			{"id": "t", "text": "y", "completed": false, "priority": "Low"}]}}}`, "duplicate task id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			require.Error(t, err)
			require.ErrorIs(t, err, common.ErrCorruptState)

			var cse *CorruptStateError
			require.ErrorAs(t, err, &cse)
			assert.Contains(t, err.Error(), tt.problem)
		})
	}
}

func TestJSONFileRepository_CorruptFileIsReportedAndKept(t *testing.T) {
	ctx := context.Background()
	repo, path := newFileRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(`{"lists": [}`), 0o600))

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, common.ErrCorruptState)

	var cse *CorruptStateError
	require.ErrorAs(t, err, &cse)
	assert.Equal(t, path, cse.Path)
	assert.True(t, strings.Contains(err.Error(), path))

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, `{"lists": [}`, string(data), "user data must not be discarded")
}

func TestJSONFileRepository_Reset(t *testing.T) {
	ctx := context.Background()
	repo, path := newFileRepo(t)

	require.NoError(t, repo.Reset(ctx), "resetting a missing file is fine")

	require.NoError(t, repo.Save(ctx, sampleDocument()))
	_, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, repo.Reset(ctx))
	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Lists)
}

func TestJSONFileRepository_SaveHonoursCancelledContext(t *testing.T) {
	repo, path := newFileRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, repo.Save(ctx, sampleDocument()), context.Canceled)
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()

	repo := NewInMemoryRepositoryWithData([]byte(legacyFile))
	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Lists, 1)

	require.NoError(t, repo.Reset(ctx))
	assert.Nil(t, repo.Bytes())

	doc, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Lists)

	_, err = NewInMemoryRepositoryWithData([]byte("nope")).Load(ctx)
	require.ErrorIs(t, err, common.ErrCorruptState)
}

func stubWriteFile(t *testing.T, fn func(path string, data []byte, perm os.FileMode) error) {
	t.Helper()
	orig := writeFileAtomic
	writeFileAtomic = fn
	t.Cleanup(func() { writeFileAtomic = orig })
}

func TestJSONFileRepository_SaveSucceedsWhenOnlyDirSyncFails(t *testing.T) {
	ctx := context.Background()
	repo, _ := newFileRepo(t)
	stubWriteFile(t, func(path string, data []byte, perm os.FileMode) error {
		if err := filex.WriteFileAtomic(path, data, perm); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s: %w", filex.ErrDirNotSynced, filepath.Dir(path), errors.New("input/output error"))
	})

	want := sampleDocument()
	require.NoError(t, repo.Save(ctx, want), "the new document is already in place")

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(want, got))
}

func TestJSONFileRepository_SaveReportsWriteFailure(t *testing.T) {
	boom := errors.New("disk full")
	repo, _ := newFileRepo(t)
	stubWriteFile(t, func(string, []byte, os.FileMode) error { return boom })

	require.ErrorIs(t, repo.Save(context.Background(), sampleDocument()), boom)
}
