package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/engine"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"
	"github.com/harshgajera101/SmartSanstha-sub001/internal/storage"
)

type mockRepo struct {
	mu        sync.Mutex
	sessions  map[string]*game.Session
	decisions []game.Decision
	results   []game.Result
	nextID    uint
	cutoff    time.Time
	failSave  error
	// beforeGet runs at the start of every GetSessionByCode, outside mu.
	beforeGet func(code string)
}

func newMockRepo() *mockRepo {
	return &mockRepo{sessions: map[string]*game.Session{}}
}

func (m *mockRepo) CreateSession(s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = m.nextID
	cp := *s
	m.sessions[s.Code] = &cp
	return nil
}

func (m *mockRepo) GetSessionByCode(code string) (*game.Session, error) {
	if m.beforeGet != nil {
		m.beforeGet(code)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[code]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *mockRepo) UpdateSession(s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave != nil {
		return m.failSave
	}
	cp := *s
	m.sessions[s.Code] = &cp
	return nil
}

func (m *mockRepo) RecordDecision(s *game.Session, d *game.Decision) error {
	if err := m.UpdateSession(s); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d.SessionID = s.ID
	m.decisions = append(m.decisions, *d)
	return nil
}

func (m *mockRepo) RecordResult(s *game.Session, r *game.Result) error {
	if err := m.UpdateSession(s); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r.SessionID = s.ID
	m.results = append(m.results, *r)
	return nil
}

func (m *mockRepo) ListDecisions(sessionID uint) ([]game.Decision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []game.Decision
	for _, d := range m.decisions {
		if d.SessionID == sessionID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockRepo) DeleteIdleSessions(cutoff time.Time) (int64, error) {
	m.cutoff = cutoff
	return 2, nil
}

func (m *mockRepo) GetStats(topTokens int) (*game.Stats, error) {
	return &game.Stats{SessionsStarted: int64(len(m.sessions)), Verdicts: map[game.Verdict]int64{}}, nil
}

var noEvent = engine.RollerFunc(func() float64 { return 0.999 })
var alwaysEvent = engine.RollerFunc(func() float64 { return 0 })

func start(t *testing.T, repo *mockRepo, pack *game.Pack) *game.Session {
	t.Helper()
	s, err := StartSession(repo, pack)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func TestStartSession(t *testing.T) {
	repo := newMockRepo()
	s := start(t, repo, game.BuiltinPack())
	if s.Code == "" || s.Freedom != 50 || s.Order != 50 || s.Phase != game.PhasePlaying || s.Playthrough != 1 {
		t.Fatalf("unexpected session: %+v", s)
	}
	if _, err := StartSession(repo, &game.Pack{Name: "empty"}); !errors.Is(err, ErrEmptyPack) {
		t.Fatalf("expected ErrEmptyPack, got %v", err)
	}
}

func TestCommitToken_RecordsDecision(t *testing.T) {
	repo := newMockRepo()
	pack := game.BuiltinPack()
	s := start(t, repo, pack)

	got, err := CommitToken(repo, pack, s.Code, "duty_order", alwaysEvent, nil)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got.Freedom != 37 || got.Order != 47 || got.Phase != game.PhaseDebrief {
		t.Fatalf("expected (37,47) in debrief, got (%d,%d) %s", got.Freedom, got.Order, got.Phase)
	}
	if got.Debrief == nil || got.Debrief.Event == nil {
		t.Fatalf("expected debrief with event, got %+v", got.Debrief)
	}
	if len(repo.decisions) != 1 {
		t.Fatalf("expected one decision, got %d", len(repo.decisions))
	}
	d := repo.decisions[0]
	if d.TokenID != "duty_order" || d.ScenarioID != "university_protest" || d.FreedomBefore != 50 || d.FreedomAfter != 37 || d.EventDescription == "" {
		t.Fatalf("unexpected decision: %+v", d)
	}
}

func TestCommitToken_Errors(t *testing.T) {
	repo := newMockRepo()
	pack := game.BuiltinPack()
	s := start(t, repo, pack)

	if _, err := CommitToken(repo, pack, "nope", "right_speech", noEvent, nil); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := CommitToken(repo, pack, s.Code, "not_a_token", noEvent, nil); !errors.Is(err, engine.ErrUnknownToken) {
		t.Fatalf("expected ErrUnknownToken, got %v", err)
	}
	if _, err := CommitToken(repo, pack, s.Code, "right_speech", noEvent, nil); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if _, err := CommitToken(repo, pack, s.Code, "right_speech", noEvent, nil); !errors.Is(err, engine.ErrNotPlaying) {
		t.Fatalf("expected ErrNotPlaying on second commit, got %v", err)
	}
	other := &game.Pack{Name: "other", Scenarios: pack.Scenarios}
	if _, err := CommitToken(repo, other, s.Code, "right_speech", noEvent, nil); !errors.Is(err, ErrPackMismatch) {
		t.Fatalf("expected ErrPackMismatch, got %v", err)
	}
	if len(repo.decisions) != 1 {
		t.Fatalf("failed commits must not record decisions, got %d", len(repo.decisions))
	}
}

func TestAdvanceSession_ThroughToEnd(t *testing.T) {
	repo := newMockRepo()
	pack := game.BuiltinPack()
	s := start(t, repo, pack)

	if _, err := AdvanceSession(repo, pack, s.Code, nil); !errors.Is(err, engine.ErrNoDebrief) {
		t.Fatalf("expected ErrNoDebrief before any commit, got %v", err)
	}

	var last *game.Session
	for i, sc := range pack.Scenarios {
		if _, err := CommitToken(repo, pack, s.Code, sc.Tokens[2].ID, noEvent, nil); err != nil {
			t.Fatalf("commit %d: %v", i, err)
		}
		got, err := AdvanceSession(repo, pack, s.Code, nil)
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if i < pack.Len()-1 && (got.ScenarioIndex != i+1 || got.Phase != game.PhasePlaying || got.Debrief != nil) {
			t.Fatalf("advance %d: unexpected %+v", i, got)
		}
		last = got
	}

	if last.Phase != game.PhaseEnd || last.CompletedAt == nil {
		t.Fatalf("expected finished session, got %+v", last)
	}
	if want := engine.Judge(last.Freedom, last.Order); last.Verdict != want {
		t.Fatalf("expected verdict %s, got %s", want, last.Verdict)
	}
	if len(repo.results) != 1 || repo.results[0].Verdict != last.Verdict {
		t.Fatalf("expected one result row, got %+v", repo.results)
	}
	if _, err := CommitToken(repo, pack, s.Code, "right_speech", noEvent, nil); !errors.Is(err, engine.ErrNotPlaying) {
		t.Fatalf("end must be terminal, got %v", err)
	}
}

func TestRestartSession(t *testing.T) {
	repo := newMockRepo()
	pack := game.BuiltinPack()
	s := start(t, repo, pack)
	if _, err := CommitToken(repo, pack, s.Code, "right_speech", noEvent, nil); err != nil {
		t.Fatalf("commit: %v", err)
	}

	got, err := RestartSession(repo, pack, s.Code, nil)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if got.Freedom != 50 || got.Order != 50 || got.ScenarioIndex != 0 || got.Phase != game.PhasePlaying || got.Debrief != nil {
		t.Fatalf("unexpected state after restart: %+v", got)
	}
	if got.Playthrough != 2 || got.Verdict != game.VerdictNone || got.CompletedAt != nil {
		t.Fatalf("expected playthrough 2 with no verdict, got %+v", got)
	}

	other := &game.Pack{Name: "other", Scenarios: pack.Scenarios}
	rebound, err := RestartSession(repo, other, s.Code, nil)
	if err != nil || rebound.PackName != "other" {
		t.Fatalf("expected restart to rebind pack, got %+v (%v)", rebound, err)
	}
}

func TestRestartSession_SaveError(t *testing.T) {
	repo := newMockRepo()
	pack := game.BuiltinPack()
	s := start(t, repo, pack)
	repo.failSave = errors.New("disk full")
	if _, err := RestartSession(repo, pack, s.Code, nil); err == nil || err.Error() != "disk full" {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestGetSessionAndHistory(t *testing.T) {
	repo := newMockRepo()
	pack := game.BuiltinPack()
	s := start(t, repo, pack)
	if _, err := CommitToken(repo, pack, s.Code, "balance_dialogue", noEvent, nil); err != nil {
		t.Fatalf("commit: %v", err)
	}

	got, err := GetSession(repo, s.Code)
	if err != nil || got.Freedom != 55 || got.Order != 55 {
		t.Fatalf("unexpected session: %+v (%v)", got, err)
	}
	if _, err := GetSession(repo, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	hist, err := History(repo, s.Code)
	if err != nil || len(hist) != 1 || hist[0].TokenID != "balance_dialogue" {
		t.Fatalf("unexpected history: %+v (%v)", hist, err)
	}
}

func TestBuildView(t *testing.T) {
	pack := game.BuiltinPack()
	s := &game.Session{Code: "c", PackName: pack.Name, Freedom: 50, Order: 50, Phase: game.PhasePlaying}
	v := BuildView(s, pack)
	if v.Scenario == nil || v.Scenario.ID != "university_protest" || len(v.Scenario.Tokens) != 3 {
		t.Fatalf("expected current scenario in view, got %+v", v.Scenario)
	}
	if v.ScenarioCount != pack.Len() || v.Verdict != nil {
		t.Fatalf("unexpected view: %+v", v)
	}

	s.Phase = game.PhaseEnd
	s.Verdict = game.VerdictBalanced
	v = BuildView(s, pack)
	if v.Scenario != nil || v.Verdict == nil || v.Verdict.Title == "" {
		t.Fatalf("expected verdict and no scenario at end, got %+v", v)
	}
}

func TestPurgeIdleSessions(t *testing.T) {
	repo := newMockRepo()
	at := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	n, err := PurgeIdleSessions(repo, at, time.Hour)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 purged, got %d (%v)", n, err)
	}
	if !repo.cutoff.Equal(at.Add(-time.Hour)) {
		t.Fatalf("unexpected cutoff %s", repo.cutoff)
	}
}

func TestStats(t *testing.T) {
	repo := newMockRepo()
	start(t, repo, game.BuiltinPack())
	st, err := Stats(repo)
	if err != nil || st.SessionsStarted != 1 {
		t.Fatalf("unexpected stats: %+v (%v)", st, err)
	}
}

func TestKeyedMutexReleasesEntries(t *testing.T) {
	var k keyedMutex
	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.lock("same")
			counter++
			unlock()
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Fatalf("expected 50 increments, got %d", counter)
	}
	if len(k.locks) != 0 {
		t.Fatalf("expected lock table to drain, got %d entries", len(k.locks))
	}
}

func TestGetSessionAfterCommitSeesCommit(t *testing.T) {
	repo := newMockRepo()
	pack := game.BuiltinPack()
	s := start(t, repo, pack)

	// The first read stalls inside the repository until released.
	entered := make(chan struct{})
	release := make(chan struct{})
	var stalled int32
	repo.beforeGet = func(string) {
		if atomic.CompareAndSwapInt32(&stalled, 0, 1) {
			close(entered)
			<-release
		}
	}
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		if _, err := GetSession(repo, s.Code); err != nil {
			t.Errorf("first read: %v", err)
		}
	}()
	<-entered

	committed := make(chan error, 1)
	go func() {
		_, err := CommitToken(repo, pack, s.Code, "right_speech", noEvent, nil)
		committed <- err
	}()

	var got *game.Session
	var err error
	select {
	case cerr := <-committed:
		// The commit finished while the first read was still in flight. A
		// read issued now must not be handed that older load.
		if cerr != nil {
			t.Fatalf("commit: %v", cerr)
		}
		readDone := make(chan struct{})
		go func() {
			defer close(readDone)
			got, err = GetSession(repo, s.Code)
		}()
		time.Sleep(50 * time.Millisecond)
		close(release)
		<-readDone
	case <-time.After(100 * time.Millisecond):
		close(release)
		if cerr := <-committed; cerr != nil {
			t.Fatalf("commit: %v", cerr)
		}
		got, err = GetSession(repo, s.Code)
	}
	<-firstDone

	if err != nil {
		t.Fatalf("read after commit: %v", err)
	}
	if got.Phase != game.PhaseDebrief || got.Freedom != 65 || got.Order != 40 {
		t.Fatalf("read after commit returned stale state: phase=%s (%d,%d)", got.Phase, got.Freedom, got.Order)
	}
}

func TestObserverSeesTransitionsInStoredOrder(t *testing.T) {
	repo := newMockRepo()
	pack := game.BuiltinPack()
	s := start(t, repo, pack)

	var mu sync.Mutex
	var seen []game.State
	observe := Observer(func(sess *game.Session) {
		mu.Lock()
		seen = append(seen, sess.State())
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, _ = CommitToken(repo, pack, s.Code, "balance_dialogue", noEvent, observe)
		}()
		go func() {
			defer wg.Done()
			_, _ = AdvanceSession(repo, pack, s.Code, observe)
		}()
		go func(i int) {
			defer wg.Done()
			if i%10 == 9 {
				_, _ = RestartSession(repo, pack, s.Code, observe)
			}
		}(i)
	}
	wg.Wait()

	stored, err := repo.GetSessionByCode(s.Code)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(seen) == 0 {
		t.Fatalf("expected observed transitions")
	}
	last := seen[len(seen)-1]
	if last.Phase != stored.Phase || last.Freedom != stored.Freedom || last.Order != stored.Order || last.ScenarioIndex != stored.ScenarioIndex {
		t.Fatalf("last observed %+v does not match stored %+v", last, stored.State())
	}
}

func TestObserverNotCalledOnError(t *testing.T) {
	repo := newMockRepo()
	pack := game.BuiltinPack()
	s := start(t, repo, pack)
	calls := 0
	observe := Observer(func(*game.Session) { calls++ })

	_, _ = AdvanceSession(repo, pack, s.Code, observe)
	_, _ = CommitToken(repo, pack, s.Code, "nope", noEvent, observe)
	if calls != 0 {
		t.Fatalf("failed transitions must not notify, got %d calls", calls)
	}
	if _, err := CommitToken(repo, pack, s.Code, "right_speech", noEvent, observe); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one notification, got %d", calls)
	}
}

func TestObserve(t *testing.T) {
	repo := newMockRepo()
	s := start(t, repo, game.BuiltinPack())

	attached := false
	if _, err := Observe(repo, "missing", func() { attached = true }); !errors.Is(err, ErrSessionNotFound) || attached {
		t.Fatalf("expected not found without attach, got %v (attached=%v)", err, attached)
	}
	got, err := Observe(repo, s.Code, func() { attached = true })
	if err != nil || !attached || got.Code != s.Code {
		t.Fatalf("unexpected observe result %+v (%v, attached=%v)", got, err, attached)
	}
}

type fixedStatsRepo struct{ st *game.Stats }

func (f fixedStatsRepo) GetStats(int) (*game.Stats, error) { return f.st, nil }

func TestStatsReturnsCopies(t *testing.T) {
	repo := fixedStatsRepo{st: &game.Stats{
		Verdicts:  map[game.Verdict]int64{game.VerdictBalanced: 2},
		TopTokens: []game.TokenCount{{TokenID: "right_speech", Count: 3}},
	}}
	a, err := Stats(repo)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	a.Verdicts[game.VerdictBalanced] = 99
	a.TopTokens[0].Count = 99

	b, err := Stats(repo)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if b.Verdicts[game.VerdictBalanced] != 2 || b.TopTokens[0].Count != 3 {
		t.Fatalf("callers must not share results: %+v", b)
	}
	if repo.st.Verdicts[game.VerdictBalanced] != 2 {
		t.Fatalf("source stats were modified")
	}
}
