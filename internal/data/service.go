package data

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/progress"
	"github.com/dafoma/lingualearn/internal/store"
)

// Persisted keys. Each collection lives under its own key as a JSON payload.
const (
	keyCourses    = "saved_courses"
	keySkills     = "saved_skills"
	keyChallenges = "saved_challenges"
	keyProgress   = "user_progress"
	keyVersion    = "catalog_version"
	keyOnboarding = "onboarding_complete"
	keyUsername   = "username"
)

// Service is the single source of truth for catalog collections and user
// progress. It loads each collection from the store on startup, reseeding
// from bundled content when the persisted payload is missing, undecodable,
// fails schema validation, or carries an older catalog version. Load never
// surfaces decode problems to the caller; they degrade to fresh state.
//
// Service is not safe for concurrent use. All mutation happens on the one
// goroutine driving the UI loop.
type Service struct {
	st *store.Store

	courses    []catalog.Course
	skills     []catalog.BusinessSkill
	challenges []catalog.EntertainmentChallenge
	prog       *progress.UserProgress
}

// NewService creates a Service over the given store and loads all state.
func NewService(ctx context.Context, st *store.Store) (*Service, error) {
	s := &Service{st: st}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Courses returns the current course collection.
func (s *Service) Courses() []catalog.Course { return s.courses }

// Skills returns the current business-skill collection.
func (s *Service) Skills() []catalog.BusinessSkill { return s.skills }

// Challenges returns the current challenge collection.
func (s *Service) Challenges() []catalog.EntertainmentChallenge { return s.challenges }

// Progress returns the user progress record.
func (s *Service) Progress() *progress.UserProgress { return s.prog }

// CourseByID returns the course with the given id, or false.
func (s *Service) CourseByID(id uuid.UUID) (catalog.Course, bool) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return catalog.Course{}, false
}

// SkillByID returns the skill with the given id, or false.
func (s *Service) SkillByID(id uuid.UUID) (catalog.BusinessSkill, bool) {
	for _, sk := range s.skills {
		if sk.ID == id {
			return sk, true
		}
	}
	return catalog.BusinessSkill{}, false
}

// ChallengeByID returns the challenge with the given id, or false.
func (s *Service) ChallengeByID(id uuid.UUID) (catalog.EntertainmentChallenge, bool) {
	for _, ch := range s.challenges {
		if ch.ID == id {
			return ch, true
		}
	}
	return catalog.EntertainmentChallenge{}, false
}

func (s *Service) load(ctx context.Context) error {
	reseedCatalog, err := s.catalogStale(ctx)
	if err != nil {
		return err
	}

	if err := s.loadCourses(ctx, reseedCatalog); err != nil {
		return err
	}
	if err := s.loadSkills(ctx, reseedCatalog); err != nil {
		return err
	}
	if err := s.loadChallenges(ctx, reseedCatalog); err != nil {
		return err
	}
	if err := s.loadProgress(ctx); err != nil {
		return err
	}

	if err := s.st.Put(ctx, keyVersion, []byte(catalog.SeedVersion)); err != nil {
		return fmt.Errorf("save catalog version: %w", err)
	}
	return nil
}

// catalogStale reports whether the persisted catalog predates the bundled
// seed version. An absent or unparsable version counts as stale.
func (s *Service) catalogStale(ctx context.Context) (bool, error) {
	raw, ok, err := s.st.Get(ctx, keyVersion)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	stored := string(raw)
	if !semver.IsValid(stored) {
		return true, nil
	}
	return semver.Compare(stored, catalog.SeedVersion) < 0, nil
}

func (s *Service) loadCourses(ctx context.Context, forceReseed bool) error {
	if !forceReseed {
		raw, ok, err := s.st.Get(ctx, keyCourses)
		if err != nil {
			return err
		}
		if ok && catalog.ValidateCourses(raw) == nil {
			var courses []catalog.Course
			if json.Unmarshal(raw, &courses) == nil {
				s.courses = courses
				return nil
			}
		}
	}
	s.courses = catalog.SeedCourses()
	return s.SaveCourses(ctx)
}

func (s *Service) loadSkills(ctx context.Context, forceReseed bool) error {
	if !forceReseed {
		raw, ok, err := s.st.Get(ctx, keySkills)
		if err != nil {
			return err
		}
		if ok && catalog.ValidateSkills(raw) == nil {
			var skills []catalog.BusinessSkill
			if json.Unmarshal(raw, &skills) == nil {
				s.skills = skills
				return nil
			}
		}
	}
	s.skills = catalog.SeedSkills()
	return s.SaveSkills(ctx)
}

func (s *Service) loadChallenges(ctx context.Context, forceReseed bool) error {
	if !forceReseed {
		raw, ok, err := s.st.Get(ctx, keyChallenges)
		if err != nil {
			return err
		}
		if ok && catalog.ValidateChallenges(raw) == nil {
			var challenges []catalog.EntertainmentChallenge
			if json.Unmarshal(raw, &challenges) == nil {
				s.challenges = challenges
				return nil
			}
		}
	}
	s.challenges = catalog.SeedChallenges()
	return s.SaveChallenges(ctx)
}

func (s *Service) loadProgress(ctx context.Context) error {
	raw, ok, err := s.st.Get(ctx, keyProgress)
	if err != nil {
		return err
	}
	if ok {
		var p progress.UserProgress
		if json.Unmarshal(raw, &p) == nil {
			if p.ChallengeScores == nil {
				p.ChallengeScores = make(map[uuid.UUID]int)
			}
			s.prog = &p
			return nil
		}
	}
	s.prog = progress.New()
	return s.SaveProgress(ctx)
}

// SaveCourses persists the course collection.
func (s *Service) SaveCourses(ctx context.Context) error {
	return s.put(ctx, keyCourses, s.courses)
}

// SaveSkills persists the skill collection.
func (s *Service) SaveSkills(ctx context.Context) error {
	return s.put(ctx, keySkills, s.skills)
}

// SaveChallenges persists the challenge collection.
func (s *Service) SaveChallenges(ctx context.Context) error {
	return s.put(ctx, keyChallenges, s.challenges)
}

// SaveProgress persists the user progress record.
func (s *Service) SaveProgress(ctx context.Context) error {
	return s.put(ctx, keyProgress, s.prog)
}

func (s *Service) put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.st.Put(ctx, key, raw)
}

// ReplaceCourses swaps in a freshly fetched course collection and persists it.
func (s *Service) ReplaceCourses(ctx context.Context, courses []catalog.Course) error {
	s.courses = courses
	return s.SaveCourses(ctx)
}

// ReplaceSkills swaps in a freshly fetched skill collection and persists it.
func (s *Service) ReplaceSkills(ctx context.Context, skills []catalog.BusinessSkill) error {
	s.skills = skills
	return s.SaveSkills(ctx)
}

// ReplaceChallenges swaps in a freshly fetched challenge collection and persists it.
func (s *Service) ReplaceChallenges(ctx context.Context, challenges []catalog.EntertainmentChallenge) error {
	s.challenges = challenges
	return s.SaveChallenges(ctx)
}

// UpdateCourseProgress replaces the progress of the course with the given id
// and persists the collection. The course id survives the copy. An unknown
// id is a silent no-op. A course reaching full progress is marked completed
// on the user progress record.
func (s *Service) UpdateCourseProgress(ctx context.Context, id uuid.UUID, p float64) error {
	for i, c := range s.courses {
		if c.ID != id {
			continue
		}
		s.courses[i] = c.WithProgress(p)
		if err := s.SaveCourses(ctx); err != nil {
			return err
		}
		if s.courses[i].Progress >= 1.0 {
			s.prog.MarkCourseCompleted(id)
			return s.SaveProgress(ctx)
		}
		return nil
	}
	return nil
}

// UpdateSkillProgress replaces the progress of the skill with the given id
// and persists the collection. Same contract as UpdateCourseProgress.
func (s *Service) UpdateSkillProgress(ctx context.Context, id uuid.UUID, p float64) error {
	for i, sk := range s.skills {
		if sk.ID != id {
			continue
		}
		s.skills[i] = sk.WithProgress(p)
		if err := s.SaveSkills(ctx); err != nil {
			return err
		}
		if s.skills[i].Progress >= 1.0 {
			s.prog.MarkSkillCompleted(id)
			return s.SaveProgress(ctx)
		}
		return nil
	}
	return nil
}

// AddChallengeScore records a challenge score (overwriting any prior score
// for that challenge), adds it to the point total, and persists immediately.
func (s *Service) AddChallengeScore(ctx context.Context, challengeID uuid.UUID, score int) error {
	s.prog.SetChallengeScore(challengeID, score)
	return s.SaveProgress(ctx)
}

// AddPoints adds unconditional points (module completion awards) and persists.
func (s *Service) AddPoints(ctx context.Context, points int) error {
	s.prog.AddPoints(points)
	return s.SaveProgress(ctx)
}

// RecordStudy books study minutes against the streak and persists.
func (s *Service) RecordStudy(ctx context.Context, minutes int) error {
	s.prog.RecordStudy(minutes, time.Now())
	return s.SaveProgress(ctx)
}

// ResetAll clears every persisted key and reseeds all collections from
// bundled content. User progress restarts zero-valued.
func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.st.Delete(ctx, keyCourses, keySkills, keyChallenges, keyProgress, keyVersion); err != nil {
		return err
	}

	s.courses = catalog.SeedCourses()
	s.skills = catalog.SeedSkills()
	s.challenges = catalog.SeedChallenges()
	s.prog = progress.New()

	if err := s.SaveCourses(ctx); err != nil {
		return err
	}
	if err := s.SaveSkills(ctx); err != nil {
		return err
	}
	if err := s.SaveChallenges(ctx); err != nil {
		return err
	}
	if err := s.SaveProgress(ctx); err != nil {
		return err
	}
	return s.st.Put(ctx, keyVersion, []byte(catalog.SeedVersion))
}

// OnboardingComplete reports whether the onboarding carousel has been seen.
func (s *Service) OnboardingComplete(ctx context.Context) bool {
	raw, ok, err := s.st.Get(ctx, keyOnboarding)
	return err == nil && ok && string(raw) == "1"
}

// SetOnboardingComplete marks the onboarding carousel as seen.
func (s *Service) SetOnboardingComplete(ctx context.Context) error {
	return s.st.Put(ctx, keyOnboarding, []byte("1"))
}

// Username returns the display name used on the leaderboard, or fallback
// when none has been set.
func (s *Service) Username(ctx context.Context, fallback string) string {
	raw, ok, err := s.st.Get(ctx, keyUsername)
	if err != nil || !ok || len(raw) == 0 {
		return fallback
	}
	return string(raw)
}

// SetUsername stores the leaderboard display name.
func (s *Service) SetUsername(ctx context.Context, name string) error {
	return s.st.Put(ctx, keyUsername, []byte(name))
}
