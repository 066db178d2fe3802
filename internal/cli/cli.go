package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mwhitley/capquiz/internal/models"
	"github.com/mwhitley/capquiz/internal/service"
)

type QuizSI interface {
	StartQuiz(ctx context.Context) (*service.ActiveQuiz, error)
	ResumableQuiz(ctx context.Context) (models.Quiz, bool, error)
	ResumeQuiz(ctx context.Context, quiz models.Quiz) (*service.ActiveQuiz, error)
	Question(quiz *service.ActiveQuiz) (models.Question, error)
	Answer(ctx context.Context, quiz *service.ActiveQuiz, userAnswer string) (models.AnswerResult, error)
}

type ResultsSI interface {
	PastResults(ctx context.Context) ([]models.QuizResult, error)
	ResultsSummary(ctx context.Context) (string, error)
}

type ServiceI interface {
	QuizSI
	ResultsSI
}

// App is the terminal front end. It only drives the services; all quiz rules
// live behind ServiceI.
type App struct {
	in      *bufio.Scanner
	out     io.Writer
	service ServiceI
	timeout time.Duration
}

func New(in io.Reader, out io.Writer, service ServiceI, timeout time.Duration) *App {
	return &App{
		in:      bufio.NewScanner(in),
		out:     out,
		service: service,
		timeout: timeout,
	}
}

func (a *App) Run() error {
	fmt.Fprintln(a.out, "State Capitals Quiz")

	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "1) Take a quiz")
		fmt.Fprintln(a.out, "2) View results")
		fmt.Fprintln(a.out, "3) Quit")
		fmt.Fprint(a.out, "> ")

		line, ok := a.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(line) {
		case "1":
			a.runQuiz()
		case "2":
			a.showResults()
		case "3", "q", "quit":
			fmt.Fprintln(a.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Please choose 1, 2 or 3")
		}
	}
}

func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

func (a *App) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.timeout)
}
