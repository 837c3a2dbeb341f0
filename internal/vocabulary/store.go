// Package vocabulary holds the authoritative in-memory vocabulary state.
//
// Every state-changing action follows the same sequence under one lock:
// apply the change, refresh the search view with the last query, then save
// the snapshot and run the after-mutation hooks. Loading never saves.
package vocabulary

import (
	"log"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/mrlokans/wordbank/internal/entities"
	"github.com/mrlokans/wordbank/internal/quiz"
	"github.com/mrlokans/wordbank/internal/search"
)

// Store is the vocabulary state container. Create it with New and share
// the pointer; all methods are safe for concurrent use.
type Store struct {
	mu sync.Mutex

	words []entities.Word
	tags  []entities.Tag

	searchQuery string
	queryResult []entities.Word
	currentQuiz *entities.Quiz

	persister Persister
	engine    search.Engine
	rng       *rand.Rand
	newWordID func() string
	newTagID  func() string
	now       func() time.Time
	seed      SeedProvider
	hooks     []Hook
}

func New(opts ...Option) *Store {
	s := &Store{
		words:       []entities.Word{},
		tags:        []entities.Tag{},
		queryResult: []entities.Word{},
		engine:      search.NewLinear(),
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		newWordID:   entities.NewWordID,
		newTagID:    entities.NewTagID,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the state with the persisted snapshot when one exists and
// is non-empty. Otherwise the current state is kept, seeded from the seed
// provider if one is configured and the store is empty. It reports whether
// persisted data was used.
func (s *Store) Load() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := false
	if s.persister != nil {
		if snap, ok := s.persister.Load(); ok && !snap.IsEmpty() {
			s.replace(snap)
			loaded = true
			log.Printf("[STORE] Loaded %d words and %d tags", len(s.words), len(s.tags))
		}
	}

	if !loaded && s.seed != nil && len(s.words) == 0 && len(s.tags) == 0 {
		snap, err := s.seed()
		if err != nil {
			log.Printf("[STORE] Failed to load seed data: %v", err)
		} else {
			s.replace(snap)
			log.Printf("[STORE] Seeded %d words and %d tags", len(s.words), len(s.tags))
		}
	}

	s.refresh()
	return loaded
}

// AddWord appends a new word with a fresh id and zero unfamiliarity.
func (s *Store) AddWord(in entities.WordInput) (entities.Word, error) {
	if err := in.Validate(); err != nil {
		return entities.Word{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	word := entities.Word{
		ID:         s.freshWordID(),
		Term:       strings.TrimSpace(in.Term),
		Definition: in.Definition,
		TagIDs:     entities.UniqueTagIDs(in.TagIDs),
		Notes:      in.Notes,
		CreatedAt:  s.now(),
	}
	s.words = append(s.words, word)

	s.afterMutation()
	return word.Clone(), nil
}

// UpdateWord replaces the word with the same id, keeping its position.
// It returns false without saving when no such word exists.
func (s *Store) UpdateWord(w entities.Word) (bool, error) {
	if err := w.Validate(); err != nil {
		return false, err
	}

	_, ok, err := s.ModifyWord(w.ID, func(current *entities.Word) bool {
		*current = w.Clone()
		return true
	})
	return ok, err
}

// ModifyWord applies fn to a copy of the word with id and stores the result
// under the store lock, so changes made by other actions in between are not
// lost. fn reports whether it changed anything; when it did not, or the
// word does not exist, nothing is saved and ok is false. The id cannot be
// changed. The modified word is validated before it replaces the original.
func (s *Store) ModifyWord(id string, fn func(w *entities.Word) bool) (entities.Word, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.wordIndex(id)
	if i < 0 {
		return entities.Word{}, false, nil
	}

	original := s.words[i]
	updated := original.Clone()
	if !fn(&updated) {
		return original.Clone(), false, nil
	}
	if err := updated.Validate(); err != nil {
		return entities.Word{}, false, err
	}

	updated.ID = original.ID
	updated.Term = strings.TrimSpace(updated.Term)
	updated.TagIDs = entities.UniqueTagIDs(updated.TagIDs)
	if updated.CreatedAt.IsZero() {
		updated.CreatedAt = original.CreatedAt
	}
	s.words[i] = updated

	s.afterMutation()
	return updated.Clone(), true, nil
}

// DeleteWord removes the word with id. It reports whether a word was removed.
func (s *Store) DeleteWord(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.wordIndex(id)
	if i < 0 {
		return false
	}
	s.words = append(s.words[:i], s.words[i+1:]...)

	s.afterMutation()
	return true
}

// AddTag creates a tag from a name or an entities.Tag. A tag whose name
// matches an existing one case-insensitively is not created; the existing
// tag is returned instead.
func (s *Store) AddTag(input any) (entities.Tag, error) {
	tag, _, err := s.CreateTag(input)
	return tag, err
}

// CreateTag is AddTag that also reports whether a new tag was created.
func (s *Store) CreateTag(input any) (entities.Tag, bool, error) {
	tag, err := entities.ToTag(input)
	if err != nil {
		return entities.Tag{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.tags {
		if existing.SameName(tag.Name) {
			return existing, false, nil
		}
	}

	if tag.ID == "" || s.tagIndex(tag.ID) >= 0 {
		tag.ID = s.freshTagID()
	}
	s.tags = append(s.tags, tag)

	s.afterMutation()
	return tag, true, nil
}

// DeleteTag removes the tag and strips its id from every word in one step.
func (s *Store) DeleteTag(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.tagIndex(id)
	if i < 0 {
		return false
	}
	s.tags = append(s.tags[:i], s.tags[i+1:]...)

	for wi := range s.words {
		if !s.words[wi].HasTag(id) {
			continue
		}
		kept := make([]string, 0, len(s.words[wi].TagIDs)-1)
		for _, t := range s.words[wi].TagIDs {
			if t != id {
				kept = append(kept, t)
			}
		}
		s.words[wi].TagIDs = kept
	}

	s.afterMutation()
	return true
}

// ReplaceAllData swaps in snap wholesale and saves it before returning.
// A save failure is returned as the persister's error; the new state stays
// in memory either way.
func (s *Store) ReplaceAllData(snap entities.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replace(snap)
	s.refresh()

	current := s.snapshot()
	var err error
	if s.persister != nil {
		err = s.persister.SaveSync(current)
	}
	s.runHooks(current)
	return err
}

// ClearAllData removes every word and tag, the search view and the current quiz.
func (s *Store) ClearAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = []entities.Word{}
	s.tags = []entities.Tag{}
	s.currentQuiz = nil
	s.searchQuery = ""

	s.afterMutation()
}

// GenerateQuiz samples a quiz and makes it the current quiz. The quiz is
// session state and is not saved.
func (s *Store) GenerateQuiz(cfg entities.QuizConfig) (entities.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := quiz.Generate(s.words, cfg, s.rng, s.now())
	if err != nil {
		return entities.Quiz{}, err
	}
	s.currentQuiz = &q
	return q.Clone(), nil
}

// RecordQuizResults adds one to the unfamiliarity of each listed word that
// exists, resets its streak and stamps the test time. Unknown ids are
// ignored. It returns the number of words updated.
func (s *Store) RecordQuizResults(incorrect []string) int {
	return s.recordReview(incorrect, func(w *entities.Word) {
		w.Unfamiliarity++
		w.CorrectStreak = 0
	})
}

// RecordQuizCorrect extends the streak of each listed word that exists and
// stamps the test time. It returns the number of words updated.
func (s *Store) RecordQuizCorrect(correct []string) int {
	return s.recordReview(correct, func(w *entities.Word) {
		w.CorrectStreak++
	})
}

func (s *Store) recordReview(ids []string, apply func(w *entities.Word)) int {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	matched := 0
	for i := range s.words {
		if _, ok := set[s.words[i].ID]; !ok {
			continue
		}
		apply(&s.words[i])
		tested := now
		s.words[i].LastTestedAt = &tested
		matched++
	}

	if matched > 0 {
		s.afterMutation()
	}
	return matched
}

// Search runs query against the current words, remembers it as the last
// query and returns the matches.
func (s *Store) Search(query string) []entities.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchQuery = query
	s.refresh()
	return cloneWords(s.queryResult)
}

// Words returns a copy of all words in order.
func (s *Store) Words() []entities.Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneWords(s.words)
}

// Tags returns a copy of all tags in order.
func (s *Store) Tags() []entities.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Tag{}, s.tags...)
}

// Word returns the word with id.
func (s *Store) Word(id string) (entities.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.wordIndex(id)
	if i < 0 {
		return entities.Word{}, false
	}
	return s.words[i].Clone(), true
}

// Tag returns the tag with id.
func (s *Store) Tag(id string) (entities.Tag, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.tagIndex(id)
	if i < 0 {
		return entities.Tag{}, false
	}
	return s.tags[i], true
}

// QueryResult returns the words matching the last search.
func (s *Store) QueryResult() []entities.Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneWords(s.queryResult)
}

// SearchQuery returns the last search query.
func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// CurrentQuiz returns the last generated quiz, if any.
func (s *Store) CurrentQuiz() (entities.Quiz, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentQuiz == nil {
		return entities.Quiz{}, false
	}
	return s.currentQuiz.Clone(), true
}

// Snapshot returns a copy of the primary state.
func (s *Store) Snapshot() entities.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// --- internals, all called with s.mu held ---

func (s *Store) afterMutation() {
	s.refresh()

	current := s.snapshot()
	if s.persister != nil {
		s.persister.Save(current)
	}
	s.runHooks(current)
}

func (s *Store) runHooks(current entities.Snapshot) {
	for _, hook := range s.hooks {
		hook(current.Clone())
	}
}

func (s *Store) refresh() {
	s.queryResult = s.engine.Search(s.searchQuery, s.words, s.tags)
}

func (s *Store) snapshot() entities.Snapshot {
	return entities.Snapshot{Words: s.words, Tags: s.tags}.Clone()
}

// replace installs snap and makes it consistent. Tags whose name repeats an
// earlier tag case-insensitively are merged into it and word references are
// redirected. Records without an id, or with an id already used by an
// earlier record, get a fresh one; references to a repeated tag id keep
// pointing at its first holder.
func (s *Store) replace(snap entities.Snapshot) {
	snap = snap.Clone()

	takenTagIDs := make(map[string]struct{}, len(snap.Tags))
	for _, t := range snap.Tags {
		takenTagIDs[t.ID] = struct{}{}
	}

	// redirect maps every tag id seen so far to the id of the kept tag.
	redirect := make(map[string]string, len(snap.Tags))
	tags := make([]entities.Tag, 0, len(snap.Tags))
	merged, renamed := 0, 0
	for _, t := range snap.Tags {
		if kept := sameNameTag(tags, t.Name); kept >= 0 {
			if _, seen := redirect[t.ID]; t.ID != "" && !seen {
				redirect[t.ID] = tags[kept].ID
			}
			merged++
			continue
		}
		if _, seen := redirect[t.ID]; t.ID == "" || seen {
			if t.ID != "" {
				renamed++
			}
			t.ID = uniqueID(s.newTagID, takenTagIDs)
		}
		redirect[t.ID] = t.ID
		tags = append(tags, t)
	}

	takenWordIDs := make(map[string]struct{}, len(snap.Words))
	for _, w := range snap.Words {
		takenWordIDs[w.ID] = struct{}{}
	}
	seenWordIDs := make(map[string]struct{}, len(snap.Words))
	for i := range snap.Words {
		w := &snap.Words[i]
		if _, seen := seenWordIDs[w.ID]; w.ID == "" || seen {
			if w.ID != "" {
				renamed++
			}
			w.ID = uniqueID(s.newWordID, takenWordIDs)
		}
		seenWordIDs[w.ID] = struct{}{}

		for j, id := range w.TagIDs {
			if to, ok := redirect[id]; ok {
				w.TagIDs[j] = to
			}
		}
		w.TagIDs = entities.UniqueTagIDs(w.TagIDs)
	}

	if merged > 0 || renamed > 0 {
		log.Printf("[STORE] Normalized snapshot: merged %d tags with repeated names, re-keyed %d records with repeated ids", merged, renamed)
	}

	s.words = snap.Words
	s.tags = tags
}

func sameNameTag(tags []entities.Tag, name string) int {
	for i, t := range tags {
		if t.SameName(name) {
			return i
		}
	}
	return -1
}

// uniqueID draws ids from gen until one is not in taken, and records it.
func uniqueID(gen func() string, taken map[string]struct{}) string {
	for {
		id := gen()
		if _, used := taken[id]; id != "" && !used {
			taken[id] = struct{}{}
			return id
		}
	}
}

func (s *Store) freshWordID() string {
	for {
		id := s.newWordID()
		if id != "" && s.wordIndex(id) < 0 {
			return id
		}
	}
}

func (s *Store) freshTagID() string {
	for {
		id := s.newTagID()
		if id != "" && s.tagIndex(id) < 0 {
			return id
		}
	}
}

func (s *Store) wordIndex(id string) int {
	for i, w := range s.words {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) tagIndex(id string) int {
	for i, t := range s.tags {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneWords(words []entities.Word) []entities.Word {
	out := make([]entities.Word, len(words))
	for i, w := range words {
		out[i] = w.Clone()
	}
	return out
}
