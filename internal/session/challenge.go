package session

import (
	"context"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/data"
)

// MaxTimeBonus is the extra awarded for an instant correct answer; the bonus
// decays linearly as the countdown runs down.
const MaxTimeBonus = 50

// ChallengeSession runs a timed quiz. The countdown is driven externally:
// whoever owns the clock calls Tick once per second with the generation it
// was scheduled under. Every timer start bumps the generation, so ticks
// scheduled for an earlier question are dropped instead of double-counting
// against the fresh countdown.
type ChallengeSession struct {
	svc *data.Service

	Challenge      *catalog.EntertainmentChallenge
	Question       *catalog.ChallengeQuestion
	QuestionIndex  int
	SelectedAnswer int
	ShowingResult  bool
	Correct        bool
	Score          int
	TimeRemaining  int
	TimerActive    bool
	Completed      bool
	ErrMsg         string

	timerGen int
}

// NewChallengeSession creates an idle challenge session.
func NewChallengeSession(svc *data.Service) *ChallengeSession {
	return &ChallengeSession{svc: svc, SelectedAnswer: -1}
}

// Start resets all quiz state and begins the first question's countdown.
func (s *ChallengeSession) Start(challenge catalog.EntertainmentChallenge) {
	s.Challenge = &challenge
	s.QuestionIndex = 0
	s.Score = 0
	s.Completed = false
	s.SelectedAnswer = -1
	s.ShowingResult = false
	s.TimeRemaining = challenge.TimeLimit

	if len(challenge.Questions) > 0 {
		s.Question = &challenge.Questions[0]
		s.startTimer()
	}
}

// TimerGen returns the generation of the currently scheduled countdown.
// Schedule the next external tick with this value.
func (s *ChallengeSession) TimerGen() int {
	return s.timerGen
}

// Tick advances the countdown one second. Ticks from a stale generation or
// a stopped timer are ignored. The return value reports whether the caller
// should schedule another tick.
func (s *ChallengeSession) Tick(gen int) bool {
	if gen != s.timerGen || !s.TimerActive {
		return false
	}

	if s.TimeRemaining > 0 {
		s.TimeRemaining--
		return true
	}

	s.timeUp()
	return false
}

// timeUp marks the question wrong with no selected answer.
func (s *ChallengeSession) timeUp() {
	s.stopTimer()
	s.ShowingResult = true
	s.Correct = false
	s.SelectedAnswer = -1
}

// SubmitAnswer grades the choice and stops the countdown. Correct answers
// score the question's share of the pot plus a time bonus.
func (s *ChallengeSession) SubmitAnswer(choice int) {
	if s.Question == nil || s.ShowingResult || s.Completed {
		return
	}

	s.SelectedAnswer = choice
	s.Correct = choice == s.Question.CorrectAnswer
	s.ShowingResult = true

	if s.Correct {
		s.Score += s.questionPoints()
	}
	s.stopTimer()
}

// questionPoints is the award for answering the current question correctly
// with the current time remaining.
func (s *ChallengeSession) questionPoints() int {
	if s.Challenge == nil || len(s.Challenge.Questions) == 0 {
		return 0
	}
	base := s.Challenge.Points / len(s.Challenge.Questions)
	bonus := int(float64(s.TimeRemaining) / float64(s.Challenge.TimeLimit) * MaxTimeBonus)
	return base + bonus
}

// NextQuestion clears the result panel and either starts the next question
// with a full countdown or completes the challenge.
func (s *ChallengeSession) NextQuestion(ctx context.Context) {
	if s.Challenge == nil {
		return
	}

	s.ShowingResult = false
	s.SelectedAnswer = -1

	if s.QuestionIndex < len(s.Challenge.Questions)-1 {
		s.QuestionIndex++
		s.Question = &s.Challenge.Questions[s.QuestionIndex]
		s.TimeRemaining = s.Challenge.TimeLimit
		s.startTimer()
		return
	}
	s.CompleteChallenge(ctx)
}

// CompleteChallenge records the session score against the challenge id
// (overwriting any previous score) and books the study time.
func (s *ChallengeSession) CompleteChallenge(ctx context.Context) {
	if s.Challenge == nil {
		return
	}

	s.stopTimer()
	s.Completed = true

	if err := s.svc.AddChallengeScore(ctx, s.Challenge.ID, s.Score); err != nil {
		s.ErrMsg = err.Error()
	}

	minutes := s.Challenge.TimeLimit * len(s.Challenge.Questions) / 60
	if minutes < 1 {
		minutes = 1
	}
	if err := s.svc.RecordStudy(ctx, minutes); err != nil {
		s.ErrMsg = err.Error()
	}
}

// Reset abandons the quiz and cancels any running countdown.
func (s *ChallengeSession) Reset() {
	s.stopTimer()
	s.Challenge = nil
	s.Question = nil
	s.QuestionIndex = 0
	s.SelectedAnswer = -1
	s.ShowingResult = false
	s.Correct = false
	s.Score = 0
	s.TimeRemaining = 0
	s.Completed = false
	s.ErrMsg = ""
}

func (s *ChallengeSession) startTimer() {
	s.timerGen++
	s.TimerActive = true
}

func (s *ChallengeSession) stopTimer() {
	s.timerGen++
	s.TimerActive = false
}
