package chat

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return NewStore(c, 42)
}

func TestStore_CreatesAndReusesSessions(t *testing.T) {
	store := newTestStore(t)

	created := store.Session("")
	require.NotNil(t, created)
	_, err := uuid.Parse(created.ID)
	assert.NoError(t, err, "generated session IDs are UUIDs")

	same := store.Session(created.ID)
	assert.Same(t, created, same)

	other := store.Session("")
	assert.NotEqual(t, created.ID, other.ID)
}

func TestSession_LogsTurnsAndSummarizes(t *testing.T) {
	store := newTestStore(t)
	session := store.Session("")

	session.ProcessMessage("How do I negotiate salary?", nil)
	session.ProcessMessage("And how do I prepare for the interview?", nil)
	session.ProcessMessage("More salary advice please", nil)

	summary := session.Summary()
	assert.Equal(t, 6, summary.TotalMessages)
	assert.Equal(t, 3, summary.UserMessages)
	assert.Equal(t, []types.Intent{
		types.IntentSalaryNegotiation,
		types.IntentInterviewPrep,
	}, summary.IntentsDiscussed)
}

func TestSession_ContextMergesAcrossCalls(t *testing.T) {
	store := newTestStore(t)
	session := store.Session("")

	session.ProcessMessage("hello", &types.ChatContext{ExperienceLevel: types.ExperienceEntry})
	response := session.ProcessMessage("thinking about a career change", nil)

	// The context from the first call personalizes the second reply.
	assert.Contains(t, response, "Personalized tip")
	assert.Contains(t, response, "early in your career")

	// Later context overwrites field-wise.
	response = session.ProcessMessage("career change again",
		&types.ChatContext{ExperienceLevel: types.ExperienceSenior})
	assert.Contains(t, response, "leverage your existing expertise")
}

func TestSession_ResetClearsLogAndContext(t *testing.T) {
	store := newTestStore(t)
	session := store.Session("")

	session.ProcessMessage("salary help", &types.ChatContext{ExperienceLevel: types.ExperienceMid})
	session.Reset()

	summary := session.Summary()
	assert.Zero(t, summary.TotalMessages)
	assert.Zero(t, summary.UserMessages)
	assert.Empty(t, summary.IntentsDiscussed)

	// Context no longer personalizes replies.
	response := session.ProcessMessage("career change plans", nil)
	assert.NotContains(t, response, "Personalized tip")
}

func TestSession_ConcurrentMessagesDoNotRace(t *testing.T) {
	store := newTestStore(t)
	session := store.Session("")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			session.ProcessMessage(fmt.Sprintf("salary question %d", n), nil)
		}(i)
	}
	wg.Wait()

	summary := session.Summary()
	assert.Equal(t, 40, summary.TotalMessages)
	assert.Equal(t, 20, summary.UserMessages)
}
