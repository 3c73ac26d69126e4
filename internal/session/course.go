package session

import (
	"context"

	"github.com/dafoma/lingualearn/internal/catalog"
	"github.com/dafoma/lingualearn/internal/data"
)

// CourseSession walks one course: pick a lesson, step through its exercises
// in order, then fold the completed lesson back into the course's stored
// progress. Lesson progress tracks attempts, not correctness — answering
// every exercise finishes the lesson even if every answer was wrong.
type CourseSession struct {
	svc *data.Service

	Course         *catalog.Course
	Lesson         *catalog.Lesson
	Exercise       *catalog.Exercise
	ExerciseIndex  int
	SelectedAnswer int
	ShowingResult  bool
	Correct        bool
	LessonProgress float64
	ErrMsg         string
}

// NewCourseSession creates an idle course session.
func NewCourseSession(svc *data.Service) *CourseSession {
	return &CourseSession{svc: svc, SelectedAnswer: -1}
}

// SelectCourse enters the course and starts its first lesson, if any.
func (s *CourseSession) SelectCourse(course catalog.Course) {
	s.Course = &course
	if len(course.Lessons) > 0 {
		s.StartLesson(course.Lessons[0])
	}
}

// StartLesson begins a lesson at its first exercise. A lesson with no
// exercises leaves Exercise nil; no progress accrues for it.
func (s *CourseSession) StartLesson(lesson catalog.Lesson) {
	s.Lesson = &lesson
	s.ExerciseIndex = 0
	s.LessonProgress = 0
	s.Exercise = nil
	s.SelectedAnswer = -1
	s.ShowingResult = false

	if len(lesson.Exercises) > 0 {
		s.Exercise = &lesson.Exercises[0]
	}
}

// SubmitAnswer records the choice, grades it, and advances lesson progress
// by one exercise's worth regardless of correctness.
func (s *CourseSession) SubmitAnswer(choice int) {
	if s.Exercise == nil || s.ShowingResult {
		return
	}

	s.SelectedAnswer = choice
	s.Correct = choice == s.Exercise.CorrectAnswer
	s.ShowingResult = true

	count := len(s.Lesson.Exercises)
	if count == 0 {
		count = 1
	}
	s.LessonProgress = catalog.ClampProgress(s.LessonProgress + 1.0/float64(count))
}

// NextExercise clears the result panel and advances, completing the lesson
// after the last exercise.
func (s *CourseSession) NextExercise(ctx context.Context) {
	if s.Lesson == nil {
		return
	}

	s.ShowingResult = false
	s.SelectedAnswer = -1

	if s.ExerciseIndex < len(s.Lesson.Exercises)-1 {
		s.ExerciseIndex++
		s.Exercise = &s.Lesson.Exercises[s.ExerciseIndex]
		return
	}
	s.CompleteLesson(ctx)
}

// CompleteLesson folds one lesson's worth of progress into the stored
// course record, books the study time, and returns the session to idle.
func (s *CourseSession) CompleteLesson(ctx context.Context) {
	if s.Course == nil {
		return
	}

	course, ok := s.svc.CourseByID(s.Course.ID)
	if ok && len(course.Lessons) > 0 {
		newProgress := course.Progress + 1.0/float64(len(course.Lessons))
		if err := s.svc.UpdateCourseProgress(ctx, course.ID, newProgress); err != nil {
			s.ErrMsg = err.Error()
		}
	}
	if s.Lesson != nil && s.Lesson.Duration > 0 {
		if err := s.svc.RecordStudy(ctx, s.Lesson.Duration); err != nil {
			s.ErrMsg = err.Error()
		}
	}

	s.Lesson = nil
	s.Exercise = nil
	s.ExerciseIndex = 0
	s.LessonProgress = 0
	s.SelectedAnswer = -1
	s.ShowingResult = false
}

// Reset abandons the walk without touching stored progress.
func (s *CourseSession) Reset() {
	s.Course = nil
	s.Lesson = nil
	s.Exercise = nil
	s.ExerciseIndex = 0
	s.SelectedAnswer = -1
	s.ShowingResult = false
	s.LessonProgress = 0
	s.ErrMsg = ""
}
