package service

import "errors"

var (
	// ErrQuizNotFound is returned when a quiz identity does not resolve.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuizHasNoQuestions rejects submissions against an empty quiz.
	ErrQuizHasNoQuestions = errors.New("quiz has no questions")
	// ErrQuestionNotInQuiz is returned when a submitted answer references a
	// question that does not belong to the quiz. The whole submission is
	// rejected and nothing is persisted.
	ErrQuestionNotInQuiz = errors.New("submitted answer references a question not in this quiz")
	// ErrNoAnswers rejects an empty submission.
	ErrNoAnswers = errors.New("submission must contain at least one answer")

	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	ErrInterviewNotFound = errors.New("interview not found")
)
