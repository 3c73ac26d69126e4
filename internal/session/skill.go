package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/data"
)

// PointsPerMinute is the award rate for completing a skill module.
const PointsPerMinute = 2

// SkillSession walks one business skill. Unlike the sequential exercise
// walk, scenarios complete in any order: the module finishes when the
// completed set covers every scenario.
type SkillSession struct {
	svc *data.Service

	Skill          *catalog.BusinessSkill
	Module         *catalog.SkillModule
	Scenario       *catalog.PracticeScenario
	ModuleProgress float64
	Completed      map[uuid.UUID]bool
	ErrMsg         string
}

// NewSkillSession creates an idle skill session.
func NewSkillSession(svc *data.Service) *SkillSession {
	return &SkillSession{svc: svc, Completed: make(map[uuid.UUID]bool)}
}

// SelectSkill enters the skill and starts its first module, if any.
func (s *SkillSession) SelectSkill(skill catalog.BusinessSkill) {
	s.Skill = &skill
	if len(skill.Modules) > 0 {
		s.StartModule(skill.Modules[0])
	}
}

// StartModule begins a module with an empty completed-scenario set.
func (s *SkillSession) StartModule(module catalog.SkillModule) {
	s.Module = &module
	s.ModuleProgress = 0
	s.Completed = make(map[uuid.UUID]bool)
	s.Scenario = nil
}

// SelectScenario opens a scenario for study.
func (s *SkillSession) SelectScenario(scenario catalog.PracticeScenario) {
	s.Scenario = &scenario
}

// CompleteScenario adds the scenario to the completed set and recomputes
// module progress. Covering the whole set completes the module.
func (s *SkillSession) CompleteScenario(ctx context.Context, scenario catalog.PracticeScenario) {
	if s.Module == nil || len(s.Module.Scenarios) == 0 {
		return
	}

	s.Completed[scenario.ID] = true
	s.ModuleProgress = float64(len(s.Completed)) / float64(len(s.Module.Scenarios))

	if s.ModuleProgress >= 1.0 {
		s.CompleteModule(ctx)
	}
}

// CompleteModule folds one module's worth of progress into the stored skill
// record and awards points for the module's duration. The award goes
// straight onto the point total: it is not tied to a challenge id and is
// not score-validated.
func (s *SkillSession) CompleteModule(ctx context.Context) {
	if s.Skill == nil {
		return
	}

	skill, ok := s.svc.SkillByID(s.Skill.ID)
	if ok && len(skill.Modules) > 0 {
		newProgress := skill.Progress + 1.0/float64(len(skill.Modules))
		if err := s.svc.UpdateSkillProgress(ctx, skill.ID, newProgress); err != nil {
			s.ErrMsg = err.Error()
		}
	}

	if s.Module != nil {
		if err := s.svc.AddPoints(ctx, s.Module.Duration*PointsPerMinute); err != nil {
			s.ErrMsg = err.Error()
		}
		if s.Module.Duration > 0 {
			if err := s.svc.RecordStudy(ctx, s.Module.Duration); err != nil {
				s.ErrMsg = err.Error()
			}
		}
	}
}

// Reset abandons the walk without touching stored progress.
func (s *SkillSession) Reset() {
	s.Skill = nil
	s.Module = nil
	s.Scenario = nil
	s.ModuleProgress = 0
	s.Completed = make(map[uuid.UUID]bool)
	s.ErrMsg = ""
}
