package cli

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/mwhitley/capquiz/internal/models"
	"github.com/mwhitley/capquiz/internal/service"
)

// runQuiz starts or resumes a quiz. An interrupted quiz gives the user the
// binary choice Resume / Start New; declining leaves the old quiz in storage
// as orphaned history.
func (a *App) runQuiz() {
	ctx, cancel := a.ctx()
	resumable, found, err := a.service.ResumableQuiz(ctx)
	cancel()
	if err != nil {
		log.Printf("failed to check for resumable quiz: %v", err)
		fmt.Fprintln(a.out, "Failed to start the quiz. Try again later.")
		return
	}

	var quiz *service.ActiveQuiz

	if found {
		fmt.Fprintf(a.out, "You have an unfinished quiz from %s (%d/%d answered).\n",
			resumable.Date, resumable.QuestionsAnswered, models.QuestionsPerQuiz)
		fmt.Fprint(a.out, "Resume it? (y/n) > ")

		line, ok := a.readLine()
		if !ok {
			return
		}

		ctx, cancel := a.ctx()
		if strings.EqualFold(strings.TrimSpace(line), "y") {
			quiz, err = a.service.ResumeQuiz(ctx, resumable)
		} else {
			quiz, err = a.service.StartQuiz(ctx)
		}
		cancel()
	} else {
		ctx, cancel := a.ctx()
		quiz, err = a.service.StartQuiz(ctx)
		cancel()
	}

	if err != nil {
		if errors.Is(err, service.ErrNotEnoughStates) {
			fmt.Fprintln(a.out, "Not enough states loaded to start a quiz.")
			return
		}
		log.Printf("failed to start quiz: %v", err)
		fmt.Fprintln(a.out, "Failed to start the quiz. Try again later.")
		return
	}

	a.playQuiz(quiz)
}

func (a *App) playQuiz(quiz *service.ActiveQuiz) {
	for {
		question, err := a.service.Question(quiz)
		if err != nil {
			log.Printf("failed to get question: %v", err)
			return
		}

		fmt.Fprintf(a.out, "\nQuestion %d/%d: What is the capital of %s?\n",
			question.Number, question.Total, question.StateName)
		for i, choice := range question.Choices {
			fmt.Fprintf(a.out, "  %d) %s\n", i+1, choice)
		}
		fmt.Fprint(a.out, "> ")

		line, ok := a.readLine()
		if !ok {
			// input gone; the quiz stays resumable on the next run
			return
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || choice < 1 || choice > len(question.Choices) {
			fmt.Fprintln(a.out, "Please select an answer")
			continue
		}

		ctx, cancel := a.ctx()
		result, err := a.service.Answer(ctx, quiz, question.Choices[choice-1])
		cancel()
		if err != nil {
			if errors.Is(err, service.ErrNoAnswerSelected) {
				fmt.Fprintln(a.out, "Please select an answer")
				continue
			}
			log.Printf("failed to submit answer: %v", err)
			return
		}

		if result.Done {
			fmt.Fprintf(a.out, "\nQuiz complete! You scored %d out of %d.\n", result.Score, result.Total)
			return
		}
	}
}
