package chat

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

// Session holds one conversation's append-only turn log and merged
// personalization context. All methods are safe for concurrent use.
type Session struct {
	ID string

	composer *Composer

	mu      sync.Mutex
	history []types.ConversationTurn
	context types.ChatContext
}

// Store creates and tracks chat sessions keyed by ID.
type Store struct {
	catalog *catalog.Catalog
	seed    int64

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates a session store. A non-zero seed makes every new
// session's template selection deterministic.
func NewStore(c *catalog.Catalog, seed int64) *Store {
	return &Store{
		catalog:  c,
		seed:     seed,
		sessions: make(map[string]*Session),
	}
}

// Session returns the session with the given ID, creating it when the ID
// is empty or unknown.
func (s *Store) Session(id string) *Session {
	if id != "" {
		s.mu.RLock()
		session, ok := s.sessions[id]
		s.mu.RUnlock()
		if ok {
			return session
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	if session, ok := s.sessions[id]; ok {
		return session
	}

	seed := s.seed
	if seed == 0 {
		seed = rand.Int63()
	}
	session := &Session{
		ID:       id,
		composer: NewComposer(s.catalog, rand.New(rand.NewSource(seed))),
	}
	s.sessions[id] = session
	return session
}

// ProcessMessage classifies the message, merges the optional context,
// appends both turns to the log, and returns the composed reply.
func (sess *Session) ProcessMessage(message string, context *types.ChatContext) string {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.context.Merge(context)
	sess.history = append(sess.history, types.ConversationTurn{
		Role:    types.RoleUser,
		Message: message,
	})

	intent := Classify(message)
	response := sess.composer.Respond(intent, &sess.context)

	sess.history = append(sess.history, types.ConversationTurn{
		Role:    types.RoleAssistant,
		Message: response,
	})

	return response
}

// Summary reports message counts and the deduplicated ordered intents
// discussed, recomputed by reclassifying every stored user turn.
func (sess *Session) Summary() types.ConversationSummary {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	var intents []types.Intent
	seen := make(map[types.Intent]bool)
	userMessages := 0

	for _, turn := range sess.history {
		if turn.Role != types.RoleUser {
			continue
		}
		userMessages++
		intent := Classify(turn.Message)
		if !seen[intent] {
			seen[intent] = true
			intents = append(intents, intent)
		}
	}

	return types.ConversationSummary{
		TotalMessages:    len(sess.history),
		IntentsDiscussed: intents,
		UserMessages:     userMessages,
	}
}

// Reset clears the session's turn log and context.
func (sess *Session) Reset() {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.history = nil
	sess.context = types.ChatContext{}
}
