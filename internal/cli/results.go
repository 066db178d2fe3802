package cli

import (
	"fmt"
	"log"

	"github.com/mwhitley/capquiz/internal/models"
)

func (a *App) showResults() {
	ctx, cancel := a.ctx()
	defer cancel()

	results, err := a.service.PastResults(ctx)
	if err != nil {
		log.Printf("failed to load results: %v", err)
		fmt.Fprintln(a.out, "Failed to load results.")
		return
	}

	if len(results) == 0 {
		fmt.Fprintln(a.out, "No quizzes taken yet.")
		return
	}

	fmt.Fprintln(a.out, "\nPast quizzes:")
	for _, r := range results {
		fmt.Fprintf(a.out, "  #%d  %s  %d/%d\n", r.ID, r.Date, r.Score, models.QuestionsPerQuiz)
	}

	summary, err := a.service.ResultsSummary(ctx)
	if err != nil {
		log.Printf("failed to load results summary: %v", err)
		return
	}
	fmt.Fprintln(a.out, summary)
}
