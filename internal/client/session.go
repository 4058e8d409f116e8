package client

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"
)

type Screen string

const (
	ScreenWelcome Screen = "welcome"
	ScreenQuiz    Screen = "quiz"
	ScreenResults Screen = "results"
	ScreenAnswers Screen = "answers"
)

// SecondsPerQuestion sizes the countdown: 60 seconds for each question.
const SecondsPerQuestion = 60

var (
	// ErrNoQuestions is returned when the API has nothing for the chosen filters.
	ErrNoQuestions = errors.New("no questions available")
	// ErrNotInQuiz is returned for quiz actions outside the quiz screen.
	ErrNotInQuiz = errors.New("no quiz in progress")
)

type Question struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Question      string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options"`
}

type ResultSubmission struct {
	Category       string `json:"category"`
	Difficulty     string `json:"difficulty"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Percentage     int    `json:"percentage"`
	TimeTaken      int    `json:"time_taken"`
}

// API is the slice of the HTTP client a quiz session needs.
type API interface {
	Questions(ctx context.Context, category, difficulty string, limit int) ([]Question, error)
	SubmitResult(ctx context.Context, sub ResultSubmission) (*SubmitResponse, error)
}

type Summary struct {
	Score          int
	TotalQuestions int
	Percentage     int
	TimeTaken      int
}

type AnswerReview struct {
	Question      string
	CorrectAnswer string
	UserAnswer    string
	Correct       bool
}

// Session is the in-memory state machine behind the quiz screens. Nothing
// survives a restart; all state lives for one sitting.
type Session struct {
	api  API
	tick time.Duration

	mu         sync.Mutex
	screen     Screen
	category   string
	difficulty string
	questions  []Question
	index      int
	answers    map[int]string
	countdown  *Countdown
	generation uint64
	summary    *Summary
}

func NewSession(api API) *Session {
	return &Session{
		api:     api,
		tick:    time.Second,
		screen:  ScreenWelcome,
		answers: map[int]string{},
	}
}

// Start fetches questions, resets quiz state and begins the countdown. The
// countdown auto-submits when it hits zero.
func (s *Session) Start(ctx context.Context, category, difficulty string, limit int) error {
	questions, err := s.api.Questions(ctx, category, difficulty, limit)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopCountdownLocked()
	s.screen = ScreenQuiz
	s.category = category
	s.difficulty = difficulty
	s.questions = questions
	s.index = 0
	s.answers = map[int]string{}
	s.summary = nil
	s.generation++

	gen := s.generation
	s.countdown = NewCountdown(SecondsPerQuestion*len(questions), s.tick, func() {
		s.expire(gen)
	})
	s.countdown.Start()

	return nil
}

// expire is the countdown callback. The generation guard makes expiries from
// a replaced countdown no-ops: one may already be past its stop check and
// blocked on the lock while Start sets up the next quiz.
func (s *Session) expire(gen uint64) {
	s.mu.Lock()
	if s.screen != ScreenQuiz || s.generation != gen {
		s.mu.Unlock()
		return
	}
	sub, _ := s.finishLocked()
	s.mu.Unlock()

	s.api.SubmitResult(context.Background(), sub)
}

func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// Current returns the question at the cursor while a quiz is running.
func (s *Session) Current() (Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenQuiz {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Select records the answer for the current question.
func (s *Session) Select(answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenQuiz {
		return ErrNotInQuiz
	}
	s.answers[s.index] = answer
	return nil
}

// Next advances the cursor, staying within bounds.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen == ScreenQuiz && s.index < len(s.questions)-1 {
		s.index++
	}
}

// Previous moves the cursor back, staying within bounds.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen == ScreenQuiz && s.index > 0 {
		s.index--
	}
}

// Submit stops the countdown, scores the answers, posts the result and moves
// to the results screen. The screen transition happens even when the post
// fails, so the user still sees their score; the error is returned for the
// caller to surface.
func (s *Session) Submit(ctx context.Context) (*Summary, error) {
	s.mu.Lock()

	if s.screen != ScreenQuiz {
		summary := s.summary
		s.mu.Unlock()
		if summary != nil {
			return summary, nil
		}
		return nil, ErrNotInQuiz
	}

	sub, summary := s.finishLocked()
	s.mu.Unlock()

	if _, err := s.api.SubmitResult(ctx, sub); err != nil {
		return summary, err
	}
	return summary, nil
}

// finishLocked stops the countdown, scores the answers and transitions to
// the results screen. Callers hold s.mu and post the returned submission
// after releasing it.
func (s *Session) finishLocked() (ResultSubmission, *Summary) {
	remaining := 0
	if s.countdown != nil {
		remaining = s.countdown.Remaining()
	}
	s.stopCountdownLocked()

	total := len(s.questions)
	score := 0
	for i, q := range s.questions {
		if s.answers[i] == q.CorrectAnswer {
			score++
		}
	}

	summary := &Summary{
		Score:          score,
		TotalQuestions: total,
		Percentage:     int(math.Round(float64(score) / float64(total) * 100)),
		TimeTaken:      SecondsPerQuestion*total - remaining,
	}
	s.summary = summary
	s.screen = ScreenResults

	return ResultSubmission{
		Category:       s.category,
		Difficulty:     s.difficulty,
		Score:          summary.Score,
		TotalQuestions: summary.TotalQuestions,
		Percentage:     summary.Percentage,
		TimeTaken:      summary.TimeTaken,
	}, summary
}

// ViewAnswers switches to the per-question review screen.
func (s *Session) ViewAnswers() ([]AnswerReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenResults && s.screen != ScreenAnswers {
		return nil, ErrNotInQuiz
	}
	s.screen = ScreenAnswers

	reviews := make([]AnswerReview, 0, len(s.questions))
	for i, q := range s.questions {
		answer := s.answers[i]
		reviews = append(reviews, AnswerReview{
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			UserAnswer:    answer,
			Correct:       answer == q.CorrectAnswer,
		})
	}
	return reviews, nil
}

// Restart cancels any running countdown and returns to the welcome screen.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopCountdownLocked()
	s.screen = ScreenWelcome
	s.questions = nil
	s.index = 0
	s.answers = map[int]string{}
	s.summary = nil
}

// Remaining reports the countdown seconds left, zero when idle.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countdown == nil {
		return 0
	}
	return s.countdown.Remaining()
}

func (s *Session) stopCountdownLocked() {
	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
}
